// Package hash provides the xxHash64 helpers shared by the package index and the version hash.
package hash

import "github.com/cespare/xxhash/v2"

// ID returns the xxHash64 of a package name.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Digest accumulates xxHash64 over a sequence of strings.
type Digest struct {
	d *xxhash.Digest
}

// NewDigest returns an empty digest.
func NewDigest() Digest {
	return Digest{d: xxhash.New()}
}

// WriteString appends s to the hashed stream.
func (d Digest) WriteString(s string) {
	_, _ = d.d.WriteString(s)
}

// WriteField appends s followed by a terminator, so adjacent fields cannot run together.
func (d Digest) WriteField(s string) {
	d.WriteString(s)
	_, _ = d.d.Write([]byte{0})
}

// Sum64 returns the hash of everything written so far.
func (d Digest) Sum64() uint64 {
	return d.d.Sum64()
}
