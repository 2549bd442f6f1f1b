// Package srcinfo parses and queries .SRCINFO records.
//
// A .SRCINFO record is the rendered metadata of a build recipe. It starts with a base
// section opened by pkgbase and continues with one derivative section per pkgname:
//
//	pkgbase = complex-example-bin
//		pkgver = 12.34.56.r789
//		pkgrel = 2
//		arch = x86_64
//		depends = glibc>=2.0
//		depends_aarch64 = aarch64-compatibility
//
//	pkgname = foo-bin
//		pkgdesc = Description under foo-bin
//		depends_x86_64 = x86_64-compatibility-for-foo
//
// Blank lines and '#' comments are ignored. Field names may carry an architecture suffix
// after the first '_'.
//
// # Field classes
//
// Each FieldName has a FieldClass that fixes where it may appear:
//
//   - ClassHeader: pkgname, opens a derivative section
//   - ClassBaseSingle, ClassBaseMulti: only in the base section
//   - ClassSharedSingle: once per section, inherited by derivatives that do not set it
//   - ClassSharedMultiNoArch, ClassSharedMultiArch: repeatable per section; only the latter
//     accepts an architecture suffix
//
// Fields found where their class forbids them are reported as IssueIgnoredField and dropped.
//
// # Query strategies
//
// Parsed, Forgetful and Memo implement Querier with the same results and different costs,
// mirroring package desc. Query yields RawItem values carrying their Section and
// Architecture: base values first, then each derivative's own values in declaration order.
// Single applies inheritance for one section; Accessor adds typed getters; Checksums unifies
// the seven *sums fields.
//
// Every value is a substring of the record text.
package srcinfo
