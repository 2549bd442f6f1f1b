package value

type (
	// Name is a package name.
	Name string
	// Base is the name of the package base a package was built from.
	Base string
	// FileName is the file name of a package archive.
	FileName string
	// Description is a one-line package description.
	Description string
	// URL is an upstream project URL.
	URL string
	// Packager identifies the person who built a package.
	Packager string
	// License is a license identifier.
	License string
	// Group is a package group name.
	Group string
	// Architecture is a CPU architecture such as "x86_64".
	Architecture string
	// PgpSignature is a base64 detached signature.
	PgpSignature string
	// PgpKey is a PGP key fingerprint.
	PgpKey string
	// Source is a source entry of a build recipe, a file name or a URL.
	Source string
	// FilePath is a path relative to the build recipe or the file system root.
	FilePath string
	// BuildOption is a makepkg option such as "!strip".
	BuildOption string
	// ChangeLog is the file name of a change log.
	ChangeLog string
	// SkipOrHex is a hex digest or the literal "SKIP".
	SkipOrHex string
)

// Skip is the checksum value that disables verification of a source.
const Skip SkipOrHex = "SKIP"

// IsSkip reports whether the value is the skip sentinel.
func (s SkipOrHex) IsSkip() bool {
	return s == Skip
}
