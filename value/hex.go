package value

import (
	"fmt"

	"github.com/arloliu/pkgtext/errs"
)

type (
	// Hex128 is a 128-bit digest written as 32 hex digits, such as an MD5 sum.
	Hex128 string
	// Hex256 is a 256-bit digest written as 64 hex digits, such as a SHA-256 sum.
	Hex256 string
)

// Array decodes the digest.
func (h Hex128) Array() ([16]byte, error) {
	var out [16]byte
	err := DecodeHex(string(h), out[:])

	return out, err
}

// Array decodes the digest.
func (h Hex256) Array() ([32]byte, error) {
	var out [32]byte
	err := DecodeHex(string(h), out[:])

	return out, err
}

// DecodeHex decodes a hex string into dst, which must be exactly half its length.
//
// Both upper- and lowercase digits are accepted.
//
// Parameters:
//   - s: Hex string
//   - dst: Destination, len(dst)*2 must equal len(s)
//
// Returns:
//   - error: ErrInvalidHexLength or ErrInvalidHex (wrapped with the offending position)
func DecodeHex(s string, dst []byte) error {
	if len(s) != len(dst)*2 {
		return fmt.Errorf("%w: expected %d hex digits, got %d", errs.ErrInvalidHexLength, len(dst)*2, len(s))
	}

	for i := range dst {
		hi, ok := fromHexChar(s[i*2])
		if !ok {
			return fmt.Errorf("%w: byte %q at index %d", errs.ErrInvalidHex, s[i*2], i*2)
		}
		lo, ok := fromHexChar(s[i*2+1])
		if !ok {
			return fmt.Errorf("%w: byte %q at index %d", errs.ErrInvalidHex, s[i*2+1], i*2+1)
		}
		dst[i] = hi<<4 | lo
	}

	return nil
}

func fromHexChar(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
