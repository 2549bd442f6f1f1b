package srcinfo

import (
	"bytes"
	"crypto/md5"  //nolint: gosec
	"crypto/sha1" //nolint: gosec
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"io"
	"iter"

	"github.com/arloliu/pkgtext/errs"
	"github.com/arloliu/pkgtext/value"
	"golang.org/x/crypto/blake2b"
)

// ChecksumType is a digest algorithm used by the *sums fields.
type ChecksumType uint8

const (
	Md5 ChecksumType = iota
	Sha1
	Sha224
	Sha256
	Sha384
	Sha512
	Blake2b

	checksumTypeCount
)

// maxChecksumSize is the largest digest size, shared by sha512 and b2.
const maxChecksumSize = 64

var checksumSpecs = [checksumTypeCount]struct {
	name  string
	field FieldName
	size  int
	new   func() hash.Hash
}{
	Md5:     {"md5", Md5Checksums, 16, md5.New},
	Sha1:    {"sha1", Sha1Checksums, 20, sha1.New},
	Sha224:  {"sha224", Sha224Checksums, 28, sha256.New224},
	Sha256:  {"sha256", Sha256Checksums, 32, sha256.New},
	Sha384:  {"sha384", Sha384Checksums, 48, sha512.New384},
	Sha512:  {"sha512", Sha512Checksums, 64, sha512.New},
	Blake2b: {"b2", Blake2bChecksums, 64, newBlake2b},
}

func newBlake2b() hash.Hash {
	h, _ := blake2b.New512(nil) // only fails for keys longer than 64 bytes

	return h
}

// ChecksumTypes returns an iterator over every algorithm in field order.
func ChecksumTypes() iter.Seq[ChecksumType] {
	return func(yield func(ChecksumType) bool) {
		for t := range checksumTypeCount {
			if !yield(t) {
				return
			}
		}
	}
}

// ParseChecksumType resolves an algorithm name such as "sha256" or "b2".
func ParseChecksumType(name string) (ChecksumType, error) {
	for t := range ChecksumTypes() {
		if checksumSpecs[t].name == name {
			return t, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", errs.ErrUnknownChecksumType, name)
}

func (t ChecksumType) String() string {
	if t >= checksumTypeCount {
		return "unknown"
	}

	return checksumSpecs[t].name
}

// Size returns the digest length in bytes.
func (t ChecksumType) Size() int {
	return checksumSpecs[t].size
}

// Field returns the field holding digests of this type.
func (t ChecksumType) Field() FieldName {
	return checksumSpecs[t].field
}

// New returns a hash computing digests of this type.
func (t ChecksumType) New() hash.Hash {
	return checksumSpecs[t].new()
}

// ChecksumItem is one *sums value tagged with its algorithm.
type ChecksumItem struct {
	Type         ChecksumType
	Value        value.SkipOrHex
	Section      Section
	Architecture value.Architecture
}

// Decode turns the hex value into a Checksum. "SKIP" decodes to a skip checksum.
//
// Returns ErrInvalidHex or ErrInvalidHexLength for malformed digests.
func (c ChecksumItem) Decode() (Checksum, error) {
	out := Checksum{Type: c.Type}
	if c.Value.IsSkip() {
		out.skip = true
		return out, nil
	}

	if err := value.DecodeHex(string(c.Value), out.sum[:c.Type.Size()]); err != nil {
		return Checksum{}, fmt.Errorf("%s checksum %q: %w", c.Type, string(c.Value), err)
	}

	return out, nil
}

// Checksum is a decoded digest or the skip sentinel.
type Checksum struct {
	Type ChecksumType
	skip bool
	sum  [maxChecksumSize]byte
}

// IsSkip reports whether verification is disabled for this source.
func (c Checksum) IsSkip() bool {
	return c.skip
}

// Bytes returns the digest, nil for a skip checksum.
func (c Checksum) Bytes() []byte {
	if c.skip {
		return nil
	}

	return c.sum[:c.Type.Size()]
}

// Verify hashes r with the checksum's algorithm and compares the digest.
// A skip checksum accepts any content without reading it.
//
// Returns ErrChecksumMismatch when the digests differ.
func (c Checksum) Verify(r io.Reader) error {
	if c.skip {
		return nil
	}

	h := c.Type.New()
	if _, err := io.Copy(h, r); err != nil {
		return fmt.Errorf("hash content: %w", err)
	}

	if got := h.Sum(nil); !bytes.Equal(got, c.Bytes()) {
		return fmt.Errorf("%w: %s expected %x, got %x", errs.ErrChecksumMismatch, c.Type, c.Bytes(), got)
	}

	return nil
}

// Checksums yields every checksum of the record: all md5sums first, then sha1sums and so on,
// each algorithm in the usual base-then-derivatives order.
//
// Decoding is left to ChecksumItem.Decode so one malformed digest does not stop iteration.
func Checksums(q Querier) iter.Seq[ChecksumItem] {
	return func(yield func(ChecksumItem) bool) {
		for t := range ChecksumTypes() {
			for item := range q.Query(t.Field()) {
				ci := ChecksumItem{
					Type:         t,
					Value:        value.SkipOrHex(item.Value),
					Section:      item.Section,
					Architecture: item.Architecture,
				}
				if !yield(ci) {
					return
				}
			}
		}
	}
}

// SourceChecksum pairs a source entry with its checksum of one algorithm.
type SourceChecksum struct {
	Source   Item[value.Source]
	Checksum ChecksumItem
}

// SourceChecksums pairs each source of a section with the checksum at the same position,
// matching architecture qualifiers the way makepkg does: source_x86_64 pairs with
// sha256sums_x86_64.
func SourceChecksums(q Querier, s Section, t ChecksumType) iter.Seq[SourceChecksum] {
	return func(yield func(SourceChecksum) bool) {
		sums := make(map[value.Architecture][]RawItem)
		for item := range QuerySection(q, t.Field(), s) {
			sums[item.Architecture] = append(sums[item.Architecture], item)
		}

		positions := make(map[value.Architecture]int)
		for src := range QuerySection(q, Source, s) {
			pos := positions[src.Architecture]
			positions[src.Architecture] = pos + 1

			list := sums[src.Architecture]
			if pos >= len(list) {
				continue
			}
			sum := list[pos]

			pair := SourceChecksum{
				Source: Item[value.Source]{Value: value.Source(src.Value), Section: src.Section, Architecture: src.Architecture},
				Checksum: ChecksumItem{
					Type: t, Value: value.SkipOrHex(sum.Value), Section: sum.Section, Architecture: sum.Architecture,
				},
			}
			if !yield(pair) {
				return
			}
		}
	}
}
