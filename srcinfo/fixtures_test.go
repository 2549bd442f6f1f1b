package srcinfo

const complexSrcinfo = `# Generated by makepkg
pkgbase = complex-example-bin
	pkgdesc = Description under pkgbase
	pkgver = 12.34.56.r789
	pkgrel = 2
	epoch = 3
	url = https://github.com/example/complex-example
	install = complex-example.install
	arch = x86_64
	arch = aarch64
	license = MIT
	license = Apache-2.0
	makedepends = cargo
	depends = glibc>=2.0
	depends = coreutils
	depends = linux
	depends_aarch64 = aarch64-compatibility
	provides = complex-example=12.34.56.r789
	conflicts = complex-example
	options = !strip
	validpgpkeys = 0123456789ABCDEF0123456789ABCDEF01234567
	source = https://example.com/complex-example-12.34.56.r789.tar.gz
	source_x86_64 = complex-example-x86_64.bin
	source_aarch64 = complex-example-aarch64.bin
	md5sums = SKIP
	md5sums_x86_64 = 5495cf22d770d93e912dc3fec4e00df1
	md5sums_aarch64 = SKIP
	sha256sums = SKIP
	sha256sums_x86_64 = d7e17f20ffb45f5c86d00514bbb664a28511c3efb9a6d7dc1f73b16418e7bc8a
	sha256sums_aarch64 = SKIP
	b2sums = SKIP
	b2sums_x86_64 = 5fda632a82ba2bb26430d3fc8735d84c1b2f7b646ac278b104d89d678b5ec443e931ed5ebf118b8a46067bb7dafe7167d70b400ea533de42761ceaca52fa6909
	b2sums_aarch64 = SKIP

pkgname = foo-bin
	pkgdesc = Description under foo-bin
	arch = i686
	depends_x86_64 = x86_64-compatibility-for-foo
	depends_i686 = i686-compatibility-for-foo
	depends = extra-depend-for-foo

pkgname = bar-bin
	depends_x86_64 = x86_64-compatibility-for-bar
	depends = extra-depend-for-bar
	optdepends = bash: for the completion script
`

// sourceContent is the content whose digests appear in complexSrcinfo for x86_64.
const sourceContent = "complex-example source\n"
