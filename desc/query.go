package desc

import "github.com/arloliu/pkgtext/value"

// Querier looks up the raw value of a field.
//
// The value is trimmed and borrowed from the record text. A field that is missing or has
// an all-blank value reports false.
type Querier interface {
	Lookup(field FieldName) (string, bool)
}

// ReuseAdvisor tells whether keeping an instance around for more lookups pays off.
type ReuseAdvisor interface {
	ShouldReuse() bool
}

// Accessor exposes typed getters on top of a Querier.
type Accessor struct {
	q Querier
}

// Access wraps q with typed getters.
func Access(q Querier) Accessor {
	return Accessor{q: q}
}

func get[V ~string](q Querier, field FieldName) (V, bool) {
	raw, ok := q.Lookup(field)
	return V(raw), ok
}

// Raw returns the untyped value of a field.
func (a Accessor) Raw(field FieldName) (string, bool) {
	return a.q.Lookup(field)
}

// FileName returns the package archive file name.
func (a Accessor) FileName() (value.FileName, bool) {
	return get[value.FileName](a.q, FileName)
}

// Name returns the package name.
func (a Accessor) Name() (value.Name, bool) {
	return get[value.Name](a.q, Name)
}

// Base returns the package base name.
func (a Accessor) Base() (value.Base, bool) {
	return get[value.Base](a.q, Base)
}

// Version returns the full package version.
func (a Accessor) Version() (value.Version, bool) {
	return get[value.Version](a.q, Version)
}

func (a Accessor) Description() (value.Description, bool) {
	return get[value.Description](a.q, Description)
}

func (a Accessor) Groups() (value.Groups, bool) {
	return get[value.Groups](a.q, Groups)
}

// CompressedSize returns the archive size in bytes.
func (a Accessor) CompressedSize() (value.Size, bool) {
	return get[value.Size](a.q, CompressedSize)
}

// InstalledSize returns the installed size in bytes.
func (a Accessor) InstalledSize() (value.Size, bool) {
	return get[value.Size](a.q, InstalledSize)
}

func (a Accessor) Md5Checksum() (value.Hex128, bool) {
	return get[value.Hex128](a.q, Md5Checksum)
}

func (a Accessor) Sha256Checksum() (value.Hex256, bool) {
	return get[value.Hex256](a.q, Sha256Checksum)
}

func (a Accessor) PgpSignature() (value.PgpSignature, bool) {
	return get[value.PgpSignature](a.q, PgpSignature)
}

func (a Accessor) URL() (value.URL, bool) {
	return get[value.URL](a.q, URL)
}

func (a Accessor) Licenses() (value.Licenses, bool) {
	return get[value.Licenses](a.q, License)
}

func (a Accessor) Architectures() (value.Architectures, bool) {
	return get[value.Architectures](a.q, Architecture)
}

func (a Accessor) BuildDate() (value.Timestamp, bool) {
	return get[value.Timestamp](a.q, BuildDate)
}

func (a Accessor) Packager() (value.Packager, bool) {
	return get[value.Packager](a.q, Packager)
}

// Dependencies returns the run-time dependencies.
func (a Accessor) Dependencies() (value.Dependencies, bool) {
	return get[value.Dependencies](a.q, Dependencies)
}

func (a Accessor) CheckDependencies() (value.Dependencies, bool) {
	return get[value.Dependencies](a.q, CheckDependencies)
}

func (a Accessor) MakeDependencies() (value.Dependencies, bool) {
	return get[value.Dependencies](a.q, MakeDependencies)
}

// OptionalDependencies returns optional dependencies with their reasons.
func (a Accessor) OptionalDependencies() (value.OptionalDependencies, bool) {
	return get[value.OptionalDependencies](a.q, OptionalDependencies)
}

func (a Accessor) Provides() (value.Dependencies, bool) {
	return get[value.Dependencies](a.q, Provides)
}

func (a Accessor) Conflicts() (value.Dependencies, bool) {
	return get[value.Dependencies](a.q, Conflicts)
}

func (a Accessor) Replaces() (value.Dependencies, bool) {
	return get[value.Dependencies](a.q, Replaces)
}
