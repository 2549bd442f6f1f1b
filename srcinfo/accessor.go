package srcinfo

import (
	"fmt"
	"iter"

	"github.com/arloliu/pkgtext/errs"
	"github.com/arloliu/pkgtext/value"
)

// Accessor exposes typed getters on top of a Querier.
//
// Base-only single fields return their value directly; every other field returns an
// iterator of items carrying section and architecture.
type Accessor struct {
	q Querier
}

// Access wraps q with typed getters.
func Access(q Querier) Accessor {
	return Accessor{q: q}
}

func first[V ~string](q Querier, f FieldName) (V, bool) {
	item, ok := First(q, f)
	return V(item.Value), ok
}

// Raw yields the untyped values of a field.
func (a Accessor) Raw(f FieldName) iter.Seq[RawItem] {
	return a.q.Query(f)
}

// Section returns a view of the record from one section.
func (a Accessor) Section(s Section) SectionView {
	return SectionView{q: a.q, s: s}
}

// PackageBase returns the pkgbase value.
func (a Accessor) PackageBase() (value.Base, bool) {
	return first[value.Base](a.q, PackageBase)
}

// Epoch returns the epoch value.
func (a Accessor) Epoch() (value.Epoch, bool) {
	return first[value.Epoch](a.q, Epoch)
}

// Release returns the pkgrel value.
func (a Accessor) Release() (value.Release, bool) {
	return first[value.Release](a.q, Release)
}

// Version returns the pkgver value.
func (a Accessor) Version() (value.UpstreamVersion, bool) {
	return first[value.UpstreamVersion](a.q, Version)
}

// ParsedVersion assembles epoch, pkgver and pkgrel into a comparable version.
//
// A missing epoch is left unset; a missing pkgrel is an ErrMissingRelease error.
func (a Accessor) ParsedVersion() (value.ParsedVersion, error) {
	var out value.ParsedVersion
	var err error

	if epoch, ok := a.Epoch(); ok {
		if out.Epoch, err = epoch.Parse(); err != nil {
			return value.ParsedVersion{}, err
		}
		out.HasEpoch = true
	}

	pkgver, _ := a.Version()
	if out.Upstream, err = pkgver.Validate(); err != nil {
		return value.ParsedVersion{}, err
	}

	release, ok := a.Release()
	if !ok {
		return value.ParsedVersion{}, fmt.Errorf("%w: pkgrel is not set", errs.ErrMissingRelease)
	}
	if out.Release, err = release.Parse(); err != nil {
		return value.ParsedVersion{}, err
	}

	return out, nil
}

// PackageNames yields the derivative names in declaration order.
func (a Accessor) PackageNames() iter.Seq[Item[value.Name]] {
	return typed[value.Name](a.q.Query(PackageName))
}

func (a Accessor) ValidPgpKeys() iter.Seq[Item[value.PgpKey]] {
	return typed[value.PgpKey](a.q.Query(ValidPgpKeys))
}

func (a Accessor) Architectures() iter.Seq[Item[value.Architecture]] {
	return typed[value.Architecture](a.q.Query(Architecture))
}

// Backups yields the files to keep on upgrade.
func (a Accessor) Backups() iter.Seq[Item[value.FilePath]] {
	return typed[value.FilePath](a.q.Query(Backup))
}

func (a Accessor) ChangeLogs() iter.Seq[Item[value.ChangeLog]] {
	return typed[value.ChangeLog](a.q.Query(ChangeLog))
}

// Descriptions yields the pkgdesc of every section that declares one.
func (a Accessor) Descriptions() iter.Seq[Item[value.Description]] {
	return typed[value.Description](a.q.Query(Description))
}

func (a Accessor) Groups() iter.Seq[Item[value.Group]] {
	return typed[value.Group](a.q.Query(Groups))
}

// Installs yields the install scripts.
func (a Accessor) Installs() iter.Seq[Item[value.FilePath]] {
	return typed[value.FilePath](a.q.Query(Install))
}

func (a Accessor) Licenses() iter.Seq[Item[value.License]] {
	return typed[value.License](a.q.Query(License))
}

func (a Accessor) NoExtracts() iter.Seq[Item[value.FileName]] {
	return typed[value.FileName](a.q.Query(NoExtract))
}

func (a Accessor) Options() iter.Seq[Item[value.BuildOption]] {
	return typed[value.BuildOption](a.q.Query(Options))
}

func (a Accessor) Sources() iter.Seq[Item[value.Source]] {
	return typed[value.Source](a.q.Query(Source))
}

func (a Accessor) URLs() iter.Seq[Item[value.URL]] {
	return typed[value.URL](a.q.Query(URL))
}

func (a Accessor) Dependencies() iter.Seq[Item[value.Dependency]] {
	return typed[value.Dependency](a.q.Query(Dependencies))
}

func (a Accessor) CheckDependencies() iter.Seq[Item[value.Dependency]] {
	return typed[value.Dependency](a.q.Query(CheckDependencies))
}

func (a Accessor) MakeDependencies() iter.Seq[Item[value.Dependency]] {
	return typed[value.Dependency](a.q.Query(MakeDependencies))
}

func (a Accessor) OptionalDependencies() iter.Seq[Item[value.DependencyAndReason]] {
	return typed[value.DependencyAndReason](a.q.Query(OptionalDependencies))
}

func (a Accessor) Provides() iter.Seq[Item[value.Dependency]] {
	return typed[value.Dependency](a.q.Query(Provides))
}

func (a Accessor) Conflicts() iter.Seq[Item[value.Dependency]] {
	return typed[value.Dependency](a.q.Query(Conflicts))
}

func (a Accessor) Replaces() iter.Seq[Item[value.Dependency]] {
	return typed[value.Dependency](a.q.Query(Replaces))
}

func (a Accessor) Md5Checksums() iter.Seq[Item[value.SkipOrHex]] {
	return typed[value.SkipOrHex](a.q.Query(Md5Checksums))
}

func (a Accessor) Sha1Checksums() iter.Seq[Item[value.SkipOrHex]] {
	return typed[value.SkipOrHex](a.q.Query(Sha1Checksums))
}

func (a Accessor) Sha224Checksums() iter.Seq[Item[value.SkipOrHex]] {
	return typed[value.SkipOrHex](a.q.Query(Sha224Checksums))
}

func (a Accessor) Sha256Checksums() iter.Seq[Item[value.SkipOrHex]] {
	return typed[value.SkipOrHex](a.q.Query(Sha256Checksums))
}

func (a Accessor) Sha384Checksums() iter.Seq[Item[value.SkipOrHex]] {
	return typed[value.SkipOrHex](a.q.Query(Sha384Checksums))
}

func (a Accessor) Sha512Checksums() iter.Seq[Item[value.SkipOrHex]] {
	return typed[value.SkipOrHex](a.q.Query(Sha512Checksums))
}

func (a Accessor) Blake2bChecksums() iter.Seq[Item[value.SkipOrHex]] {
	return typed[value.SkipOrHex](a.q.Query(Blake2bChecksums))
}

// SectionView reads a record from the point of view of one section.
type SectionView struct {
	q Querier
	s Section
}

// Section returns the viewed section.
func (v SectionView) Section() Section {
	return v.s
}

// Single returns a single-valued field, inheriting the base value when the section has none.
func (v SectionView) Single(f FieldName) (RawItem, bool) {
	return Single(v.q, f, v.s)
}

// Values yields the section's own values of a field, without inheritance.
func (v SectionView) Values(f FieldName) iter.Seq[RawItem] {
	return QuerySection(v.q, f, v.s)
}

// Description returns the pkgdesc in effect for the section.
func (v SectionView) Description() (value.Description, bool) {
	item, ok := v.Single(Description)
	return value.Description(item.Value), ok
}

// URL returns the url in effect for the section.
func (v SectionView) URL() (value.URL, bool) {
	item, ok := v.Single(URL)
	return value.URL(item.Value), ok
}

// Install returns the install script in effect for the section.
func (v SectionView) Install() (value.FilePath, bool) {
	item, ok := v.Single(Install)
	return value.FilePath(item.Value), ok
}

// ChangeLog returns the change log in effect for the section.
func (v SectionView) ChangeLog() (value.ChangeLog, bool) {
	item, ok := v.Single(ChangeLog)
	return value.ChangeLog(item.Value), ok
}

// Dependencies yields the section's own run-time dependencies.
func (v SectionView) Dependencies() iter.Seq[Item[value.Dependency]] {
	return typed[value.Dependency](v.Values(Dependencies))
}

// Architectures yields the section's own architectures.
func (v SectionView) Architectures() iter.Seq[Item[value.Architecture]] {
	return typed[value.Architecture](v.Values(Architecture))
}
