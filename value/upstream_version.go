package value

import (
	"cmp"
	"fmt"
	"iter"
	"math"
	"strconv"
	"strings"

	"github.com/arloliu/pkgtext/errs"
	"github.com/arloliu/pkgtext/internal/hash"
)

// UpstreamVersion is the upstream part of a version, not yet validated.
type UpstreamVersion string

// UpstreamVersionError reports a character that is not allowed in an upstream version.
type UpstreamVersionError struct {
	Char  rune
	Input string
}

func (e *UpstreamVersionError) Error() string {
	return fmt.Sprintf("%q is not a valid version because %q is not a valid character", e.Input, e.Char)
}

// Unwrap returns errs.ErrInvalidUpstreamVersion.
func (e *UpstreamVersionError) Unwrap() error {
	return errs.ErrInvalidUpstreamVersion
}

func isUpstreamChar(ch rune) bool {
	return ch >= '0' && ch <= '9' ||
		ch >= 'a' && ch <= 'z' ||
		ch >= 'A' && ch <= 'Z' ||
		isUpstreamSeparator(ch)
}

func isUpstreamSeparator(ch rune) bool {
	return ch == '.' || ch == '_' || ch == '+' || ch == '@'
}

// Validate checks every character against [0-9a-zA-Z._+@].
func (u UpstreamVersion) Validate() (ValidUpstreamVersion, error) {
	for _, ch := range string(u) {
		if !isUpstreamChar(ch) {
			return ValidUpstreamVersion{}, &UpstreamVersionError{Char: ch, Input: string(u)}
		}
	}

	return ValidUpstreamVersion{raw: string(u)}, nil
}

// ValidUpstreamVersion is an upstream version that passed validation.
//
// Equality is defined by Compare: "1.2.3" and "1_2_3" are equal even though
// their texts differ. Hash is consistent with that equality.
type ValidUpstreamVersion struct {
	raw string
}

// String returns the version text.
func (v ValidUpstreamVersion) String() string {
	return v.raw
}

// Components returns an iterator over the version components.
func (v ValidUpstreamVersion) Components() iter.Seq[UpstreamComponent] {
	return func(yield func(UpstreamComponent) bool) {
		rest := v.raw
		for {
			end := strings.IndexFunc(rest, isUpstreamSeparator)
			if end < 0 {
				yield(newUpstreamComponent(rest))
				return
			}
			if !yield(newUpstreamComponent(rest[:end])) {
				return
			}
			rest = rest[end+1:]
		}
	}
}

// Compare orders two upstream versions.
//
// Components are compared pairwise; when one sequence is a strict prefix of the other,
// the longer sequence is greater.
//
// Returns -1, 0 or 1.
func (v ValidUpstreamVersion) Compare(other ValidUpstreamVersion) int {
	nextA, stopA := iter.Pull(v.Components())
	defer stopA()
	nextB, stopB := iter.Pull(other.Components())
	defer stopB()

	for {
		a, okA := nextA()
		b, okB := nextB()
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return -1
		case !okB:
			return 1
		}
		if c := a.Compare(b); c != 0 {
			return c
		}
	}
}

// Equal reports whether Compare returns 0.
func (v ValidUpstreamVersion) Equal(other ValidUpstreamVersion) bool {
	return v.Compare(other) == 0
}

// Hash returns an xxHash64 of the normalized components.
//
// Versions that are Equal have the same hash.
func (v ValidUpstreamVersion) Hash() uint64 {
	d := hash.NewDigest()
	for c := range v.Components() {
		if c.HasPrefix() {
			d.WriteString("#")
			d.WriteString(c.digits)
		}
		d.WriteString("|")
		d.WriteField(c.Suffix)
	}

	return d.Sum64()
}

// UpstreamComponent is one separator-delimited chunk of an upstream version:
// an optional numeric prefix followed by a suffix.
type UpstreamComponent struct {
	// digits holds the numeric prefix without leading zeros; "0" for all-zero prefixes.
	digits    string
	hasPrefix bool
	// Suffix is everything after the numeric prefix.
	Suffix string
}

func newUpstreamComponent(s string) UpstreamComponent {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return UpstreamComponent{Suffix: s}
	}

	digits := strings.TrimLeft(s[:end], "0")
	if digits == "" {
		digits = "0"
	}

	return UpstreamComponent{digits: digits, hasPrefix: true, Suffix: s[end:]}
}

// HasPrefix reports whether the component starts with a digit.
func (c UpstreamComponent) HasPrefix() bool {
	return c.hasPrefix
}

// Prefix returns the numeric prefix. Values beyond uint64 saturate at math.MaxUint64.
func (c UpstreamComponent) Prefix() (uint64, bool) {
	if !c.hasPrefix {
		return 0, false
	}

	n, err := strconv.ParseUint(c.digits, 10, 64)
	if err != nil {
		return math.MaxUint64, true
	}

	return n, true
}

// Compare orders components: a missing numeric prefix sorts before a present one, present
// prefixes compare by magnitude, then suffixes compare lexicographically.
func (c UpstreamComponent) Compare(other UpstreamComponent) int {
	switch {
	case !c.hasPrefix && other.hasPrefix:
		return -1
	case c.hasPrefix && !other.hasPrefix:
		return 1
	case c.hasPrefix:
		if n := cmp.Compare(len(c.digits), len(other.digits)); n != 0 {
			return n
		}
		if n := strings.Compare(c.digits, other.digits); n != 0 {
			return n
		}
	}

	return strings.Compare(c.Suffix, other.Suffix)
}
