// Package pkgtext parses the plain-text package metadata of Arch-style distributions without
// copying it.
//
// Two record formats are supported:
//
//   - desc: flat records of "%NAME%" headers followed by value lines, as found in sync
//     databases and the local package database
//   - .SRCINFO: sectioned "key = value" records generated from a PKGBUILD, with a pkgbase
//     section followed by one section per pkgname
//
// Every value returned is a substring of the input text. The packages desc and srcinfo each
// offer four query strategies with identical results:
//
//   - Eager (Parse): scans once and indexes every field; best for many queries
//   - Forgetful: holds only the text and rescans per query; best for one or two queries
//   - Memo: scans lazily, each line at most once, caching what it passed
//   - SyncMemo: a Memo safe for concurrent use
//
// # Basic Usage
//
// Reading a desc record:
//
//	parsed, err := pkgtext.ParseDesc(text)
//	if err != nil {
//	    return err
//	}
//	version, _ := desc.Access(parsed).Version()
//
// Reading a .SRCINFO record with inheritance:
//
//	q := srcinfo.NewMemo(text)
//	descr, _ := srcinfo.Access(q).Section(srcinfo.Derivative("foo-bin")).Description()
//
// Comparing versions the way pacman does:
//
//	cmp, err := pkgtext.CompareVersions("1:1.0-1", "2.0-1") // 1
//
// # Package Databases
//
// LoadDatabase reads a compressed sync database archive and indexes its desc records by
// package name:
//
//	db, err := pkgtext.LoadDatabase(f, repodb.WithWorkers(8))
//	entry, ok := db.Lookup("zstd")
//
// # Issues
//
// Parse functions stop at the first fatal issue and return what they parsed so far together
// with the error. The ParseWithIssues variants of desc and srcinfo take an IssueHandler that
// decides per issue whether to continue.
package pkgtext

import (
	"fmt"
	"io"
	"strings"

	"github.com/arloliu/pkgtext/desc"
	"github.com/arloliu/pkgtext/errs"
	"github.com/arloliu/pkgtext/format"
	"github.com/arloliu/pkgtext/internal/hash"
	"github.com/arloliu/pkgtext/repodb"
	"github.com/arloliu/pkgtext/srcinfo"
	"github.com/arloliu/pkgtext/value"
)

// Strategy selects how a record is queried.
type Strategy uint8

const (
	StrategyEager Strategy = iota + 1
	StrategyForgetful
	StrategyMemo
	StrategySyncMemo
)

var strategyNames = map[Strategy]string{
	StrategyEager:     "eager",
	StrategyForgetful: "forgetful",
	StrategyMemo:      "memo",
	StrategySyncMemo:  "sync-memo",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}

	return "unknown"
}

// ParseStrategy returns the strategy with the given name.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown strategy %q", errs.ErrInvalidOption, name)
}

// ParseDesc parses a desc record eagerly with the default issue handler.
//
// Parameters:
//   - text: Record text; returned values borrow from it
//
// Returns:
//   - *desc.Parsed: The record parsed so far, never nil
//   - error: The first fatal issue
func ParseDesc(text string) (*desc.Parsed, error) {
	return desc.Parse(text)
}

// QueryDesc returns a desc querier using the given strategy.
//
// Only StrategyEager parses up front and can fail; the lazy strategies report nothing and
// skip what they cannot read.
//
// Example:
//
//	q, err := pkgtext.QueryDesc(text, pkgtext.StrategyMemo)
//	name, _ := desc.Access(q).Name()
func QueryDesc(text string, s Strategy) (desc.Querier, error) {
	switch s {
	case StrategyEager:
		return desc.Parse(text)
	case StrategyForgetful:
		return desc.NewForgetful(text), nil
	case StrategyMemo:
		return desc.NewMemo(text), nil
	case StrategySyncMemo:
		return desc.NewSyncMemo(text), nil
	default:
		return nil, fmt.Errorf("%w: unknown strategy %d", errs.ErrInvalidOption, s)
	}
}

// ParseSrcinfo parses a .SRCINFO record eagerly with the default issue handler.
func ParseSrcinfo(text string) (*srcinfo.Parsed, error) {
	return srcinfo.Parse(text)
}

// QuerySrcinfo returns a .SRCINFO querier using the given strategy.
func QuerySrcinfo(text string, s Strategy) (srcinfo.Querier, error) {
	switch s {
	case StrategyEager:
		return srcinfo.Parse(text)
	case StrategyForgetful:
		return srcinfo.NewForgetful(text), nil
	case StrategyMemo:
		return srcinfo.NewMemo(text), nil
	case StrategySyncMemo:
		return srcinfo.NewSyncMemo(text), nil
	default:
		return nil, fmt.Errorf("%w: unknown strategy %d", errs.ErrInvalidOption, s)
	}
}

// CompareVersions compares two full versions ("[epoch:]pkgver-pkgrel") and returns -1, 0 or 1.
func CompareVersions(a, b string) (int, error) {
	return value.CompareVersions(a, b)
}

// LoadDatabase reads a sync database archive. See repodb.Load.
func LoadDatabase(r io.Reader, opts ...repodb.Option) (*repodb.DB, error) {
	return repodb.Load(r, opts...)
}

// DetectFormat guesses the format of a record from its first meaningful line.
//
// desc records start with a "%NAME%" header; .SRCINFO records start with a comment or a
// "key = value" line.
func DetectFormat(text string) format.RecordFormat {
	for line := range strings.Lines(text) {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}
		if line[0] == '%' {
			return format.FormatDesc
		}

		return format.FormatSrcinfo
	}

	return 0
}

// PackageID returns the 64-bit hash used to index a package name.
func PackageID(name string) uint64 {
	return hash.ID(name)
}
