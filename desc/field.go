package desc

import "iter"

// FieldName identifies a field of a desc record.
type FieldName uint8

const (
	FileName FieldName = iota
	Name
	Base
	Version
	Description
	Groups
	CompressedSize
	InstalledSize
	Md5Checksum
	Sha256Checksum
	PgpSignature
	URL
	License
	Architecture
	BuildDate
	Packager
	Dependencies
	CheckDependencies
	MakeDependencies
	OptionalDependencies
	Provides
	Conflicts
	Replaces

	fieldCount
)

var fieldNames = [fieldCount]string{
	FileName:             "FILENAME",
	Name:                 "NAME",
	Base:                 "BASE",
	Version:              "VERSION",
	Description:          "DESC",
	Groups:               "GROUPS",
	CompressedSize:       "CSIZE",
	InstalledSize:        "ISIZE",
	Md5Checksum:          "MD5SUM",
	Sha256Checksum:       "SHA256SUM",
	PgpSignature:         "PGPSIG",
	URL:                  "URL",
	License:              "LICENSE",
	Architecture:         "ARCH",
	BuildDate:            "BUILDDATE",
	Packager:             "PACKAGER",
	Dependencies:         "DEPENDS",
	CheckDependencies:    "CHECKDEPENDS",
	MakeDependencies:     "MAKEDEPENDS",
	OptionalDependencies: "OPTDEPENDS",
	Provides:             "PROVIDES",
	Conflicts:            "CONFLICTS",
	Replaces:             "REPLACES",
}

var fieldLookup = func() map[string]FieldName {
	m := make(map[string]FieldName, fieldCount)
	for i, name := range fieldNames {
		m[name] = FieldName(i)
	}

	return m
}()

// ParseFieldName resolves a raw field name such as "NAME".
func ParseFieldName(name string) (FieldName, bool) {
	f, ok := fieldLookup[name]
	return f, ok
}

// String returns the name as written between percent signs.
func (f FieldName) String() string {
	if !f.Valid() {
		return "UNKNOWN"
	}

	return fieldNames[f]
}

// Valid reports whether f is a known field.
func (f FieldName) Valid() bool {
	return f < fieldCount
}

// FieldNames returns an iterator over every known field in catalog order.
func FieldNames() iter.Seq[FieldName] {
	return func(yield func(FieldName) bool) {
		for f := range fieldCount {
			if !yield(f) {
				return
			}
		}
	}
}
