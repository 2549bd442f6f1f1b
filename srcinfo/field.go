package srcinfo

import "iter"

// FieldName identifies a field of a .SRCINFO record.
type FieldName uint8

const (
	PackageBase FieldName = iota
	PackageName
	Epoch
	Release
	Version
	ValidPgpKeys
	Architecture
	Backup
	ChangeLog
	Description
	Groups
	Install
	License
	NoExtract
	Options
	Source
	URL
	Dependencies
	CheckDependencies
	MakeDependencies
	OptionalDependencies
	Provides
	Conflicts
	Replaces
	Md5Checksums
	Sha1Checksums
	Sha224Checksums
	Sha256Checksums
	Sha384Checksums
	Sha512Checksums
	Blake2bChecksums

	fieldCount
)

// FieldClass describes where a field may appear and how often.
type FieldClass uint8

const (
	// ClassHeader is the section header field (pkgname).
	ClassHeader FieldClass = iota + 1
	// ClassBaseSingle appears once, in the base section only.
	ClassBaseSingle
	// ClassBaseMulti repeats, in the base section only, without architecture.
	ClassBaseMulti
	// ClassSharedSingle appears once per section and is inherited by derivatives.
	ClassSharedSingle
	// ClassSharedMultiNoArch repeats in any section, without architecture.
	ClassSharedMultiNoArch
	// ClassSharedMultiArch repeats in any section, optionally architecture-qualified.
	ClassSharedMultiArch
)

var fieldSpecs = [fieldCount]struct {
	name  string
	class FieldClass
}{
	PackageBase:          {"pkgbase", ClassBaseSingle},
	PackageName:          {"pkgname", ClassHeader},
	Epoch:                {"epoch", ClassBaseSingle},
	Release:              {"pkgrel", ClassBaseSingle},
	Version:              {"pkgver", ClassBaseSingle},
	ValidPgpKeys:         {"validpgpkeys", ClassBaseMulti},
	Architecture:         {"arch", ClassSharedMultiNoArch},
	Backup:               {"backup", ClassSharedMultiNoArch},
	ChangeLog:            {"changelog", ClassSharedSingle},
	Description:          {"pkgdesc", ClassSharedSingle},
	Groups:               {"groups", ClassSharedMultiNoArch},
	Install:              {"install", ClassSharedSingle},
	License:              {"license", ClassSharedMultiNoArch},
	NoExtract:            {"noextract", ClassSharedMultiNoArch},
	Options:              {"options", ClassSharedMultiNoArch},
	Source:               {"source", ClassSharedMultiArch},
	URL:                  {"url", ClassSharedSingle},
	Dependencies:         {"depends", ClassSharedMultiArch},
	CheckDependencies:    {"checkdepends", ClassSharedMultiArch},
	MakeDependencies:     {"makedepends", ClassSharedMultiArch},
	OptionalDependencies: {"optdepends", ClassSharedMultiArch},
	Provides:             {"provides", ClassSharedMultiArch},
	Conflicts:            {"conflicts", ClassSharedMultiArch},
	Replaces:             {"replaces", ClassSharedMultiArch},
	Md5Checksums:         {"md5sums", ClassSharedMultiArch},
	Sha1Checksums:        {"sha1sums", ClassSharedMultiArch},
	Sha224Checksums:      {"sha224sums", ClassSharedMultiArch},
	Sha256Checksums:      {"sha256sums", ClassSharedMultiArch},
	Sha384Checksums:      {"sha384sums", ClassSharedMultiArch},
	Sha512Checksums:      {"sha512sums", ClassSharedMultiArch},
	Blake2bChecksums:     {"b2sums", ClassSharedMultiArch},
}

var fieldLookup = func() map[string]FieldName {
	m := make(map[string]FieldName, fieldCount)
	for i, spec := range fieldSpecs {
		m[spec.name] = FieldName(i)
	}

	return m
}()

// ParseFieldName resolves a raw field name such as "depends".
func ParseFieldName(name string) (FieldName, bool) {
	f, ok := fieldLookup[name]
	return f, ok
}

// String returns the field name as written in the record.
func (f FieldName) String() string {
	if !f.Valid() {
		return "unknown"
	}

	return fieldSpecs[f].name
}

// Valid reports whether f is a known field.
func (f FieldName) Valid() bool {
	return f < fieldCount
}

// Class returns the field's class.
func (f FieldName) Class() FieldClass {
	if !f.Valid() {
		return 0
	}

	return fieldSpecs[f].class
}

// IsSingle reports whether the field holds at most one value per section.
func (c FieldClass) IsSingle() bool {
	return c == ClassBaseSingle || c == ClassSharedSingle
}

// BaseOnly reports whether the field may only appear in the base section.
func (c FieldClass) BaseOnly() bool {
	return c == ClassBaseSingle || c == ClassBaseMulti
}

// AcceptsArchitecture reports whether the field may carry an architecture suffix.
func (c FieldClass) AcceptsArchitecture() bool {
	return c == ClassSharedMultiArch
}

func (c FieldClass) String() string {
	switch c {
	case ClassHeader:
		return "header"
	case ClassBaseSingle:
		return "base-single"
	case ClassBaseMulti:
		return "base-multi"
	case ClassSharedSingle:
		return "shared-single"
	case ClassSharedMultiNoArch:
		return "shared-multi-no-arch"
	case ClassSharedMultiArch:
		return "shared-multi-arch"
	default:
		return "unknown"
	}
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
