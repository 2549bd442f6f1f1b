package value

import (
	"fmt"
	"strconv"
	"time"

	"github.com/arloliu/pkgtext/errs"
)

type (
	// Size is a size in bytes.
	Size string
	// Timestamp is a UNIX timestamp in seconds.
	Timestamp string
	// Epoch is the epoch part of a version.
	Epoch string
	// Release is the release part of a version.
	Release string
)

func parseUint(kind, s string) (uint64, error) {
	if s == "" {
		return 0, nil
	}

	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", errs.ErrInvalidNumber, kind, s)
	}

	return n, nil
}

// Parse decodes the size; an empty value is 0.
func (s Size) Parse() (uint64, error) {
	return parseUint("size", string(s))
}

// Parse decodes the timestamp; an empty value is 0.
func (t Timestamp) Parse() (uint64, error) {
	return parseUint("timestamp", string(t))
}

// Time decodes the timestamp into a time.Time in UTC.
func (t Timestamp) Time() (time.Time, error) {
	secs, err := t.Parse()
	if err != nil {
		return time.Time{}, err
	}

	return time.Unix(int64(secs), 0).UTC(), nil //nolint: gosec
}

// Parse decodes the epoch; an empty value is 0.
func (e Epoch) Parse() (uint64, error) {
	n, err := parseUint("epoch", string(e))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidEpoch, string(e))
	}

	return n, nil
}

// Parse decodes the release; an empty value is 0.
func (r Release) Parse() (uint64, error) {
	n, err := parseUint("release", string(r))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidRelease, string(r))
	}

	return n, nil
}
