// Package errs defines the sentinel errors shared by every pkgtext package.
//
// Errors returned by pkgtext are either one of these sentinels or wrap one of them,
// so callers classify failures with errors.Is:
//
//	parsed, err := desc.Parse(text)
//	if errors.Is(err, errs.ErrEmptyInput) {
//	    // nothing to read
//	}
package errs

import "errors"

// Field token errors.
var (
	ErrIncorrectStartingCharacter = errors.New("incorrect starting character")
	ErrIncorrectEndingCharacter   = errors.New("incorrect ending character")
	ErrEmptyFieldName             = errors.New("field name is empty")
	ErrNotASCIIUppercase          = errors.New("field name is not ascii uppercase")
	ErrMissingSeparator           = errors.New("line has no '=' separator")
)

// Parse issues.
var (
	ErrEmptyInput        = errors.New("input is empty")
	ErrValueWithoutField = errors.New("value without field")
	ErrUnknownField      = errors.New("unknown field")
	ErrDuplicateField    = errors.New("field already set")
	ErrIgnoredField      = errors.New("field ignored")
	ErrInvalidLine       = errors.New("invalid line")
)

// Value decoding errors.
var (
	ErrInvalidNumber          = errors.New("invalid number")
	ErrInvalidHex             = errors.New("invalid hex string")
	ErrInvalidHexLength       = errors.New("invalid hex length")
	ErrMissingRelease         = errors.New("release suffix not found")
	ErrInvalidEpoch           = errors.New("invalid epoch")
	ErrInvalidRelease         = errors.New("invalid release")
	ErrInvalidUpstreamVersion = errors.New("invalid upstream version")
	ErrInvalidDependencyName  = errors.New("invalid dependency name")
	ErrChecksumMismatch       = errors.New("checksum mismatch")
	ErrUnknownChecksumType    = errors.New("unknown checksum type")
)

// Package database errors.
var (
	ErrUnsupportedCompression = errors.New("unsupported compression type")
	ErrEntryTooLarge          = errors.New("archive entry exceeds size limit")
	ErrArchiveTooLarge        = errors.New("archive exceeds size limit")
	ErrInvalidArchive         = errors.New("invalid archive")
	ErrDuplicatePackage       = errors.New("duplicate package name")
	ErrInvalidPackageName     = errors.New("invalid package name")
	ErrInvalidOption          = errors.New("invalid option")
)
