package value

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/arloliu/pkgtext/errs"
)

// Version is a full package version: [epoch:]upstream-release.
type Version string

// VersionComponents is a version split into its three textual parts.
type VersionComponents struct {
	Epoch    Epoch
	HasEpoch bool
	Upstream UpstreamVersion
	Release  Release
}

// Components splits the version on the first ':' and the last '-'.
//
// Returns:
//   - VersionComponents: The borrowed parts
//   - error: ErrMissingRelease when there is no '-'
func (v Version) Components() (VersionComponents, error) {
	var out VersionComponents

	rest := string(v)
	if epoch, after, ok := strings.Cut(rest, ":"); ok {
		out.Epoch = Epoch(epoch)
		out.HasEpoch = true
		rest = after
	}

	i := strings.LastIndexByte(rest, '-')
	if i < 0 {
		return out, fmt.Errorf("%w: %q", errs.ErrMissingRelease, string(v))
	}
	out.Upstream = UpstreamVersion(rest[:i])
	out.Release = Release(rest[i+1:])

	return out, nil
}

// ParsedVersion is a validated version ready for comparison.
type ParsedVersion struct {
	Epoch    uint64
	HasEpoch bool
	Upstream ValidUpstreamVersion
	Release  uint64
}

// Parse splits and validates the version.
//
// Returns:
//   - ParsedVersion: The parsed version
//   - error: ErrMissingRelease, ErrInvalidEpoch, ErrInvalidRelease or an *UpstreamVersionError
func (v Version) Parse() (ParsedVersion, error) {
	parts, err := v.Components()
	if err != nil {
		return ParsedVersion{}, err
	}

	var out ParsedVersion
	if parts.HasEpoch {
		if out.Epoch, err = parts.Epoch.Parse(); err != nil {
			return ParsedVersion{}, err
		}
		out.HasEpoch = true
	}

	if out.Upstream, err = parts.Upstream.Validate(); err != nil {
		return ParsedVersion{}, err
	}

	if out.Release, err = parts.Release.Parse(); err != nil {
		return ParsedVersion{}, err
	}

	return out, nil
}

// Compare orders two versions by epoch (absent counts as 0), upstream version and release.
//
// Returns -1, 0 or 1.
func (p ParsedVersion) Compare(other ParsedVersion) int {
	if c := cmp.Compare(p.Epoch, other.Epoch); c != 0 {
		return c
	}
	if c := p.Upstream.Compare(other.Upstream); c != 0 {
		return c
	}

	return cmp.Compare(p.Release, other.Release)
}

// String formats the version back into its canonical textual form.
func (p ParsedVersion) String() string {
	if p.HasEpoch {
		return fmt.Sprintf("%d:%s-%d", p.Epoch, p.Upstream, p.Release)
	}

	return fmt.Sprintf("%s-%d", p.Upstream, p.Release)
}

// CompareVersions parses and compares two version strings.
//
// Returns -1 if a < b, 0 if they are equal and 1 if a > b.
func CompareVersions(a, b string) (int, error) {
	va, err := Version(a).Parse()
	if err != nil {
		return 0, err
	}
	vb, err := Version(b).Parse()
	if err != nil {
		return 0, err
	}

	return va.Compare(vb), nil
}
