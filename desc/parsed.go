package desc

import (
	"strings"

	"github.com/arloliu/pkgtext/field"
	"github.com/arloliu/pkgtext/internal/lines"
)

// Parsed is a desc record scanned eagerly; every lookup is O(1).
//
// Parsed is immutable after parsing and safe for concurrent use.
type Parsed struct {
	text   string
	values [fieldCount]string
	seen   [fieldCount]bool
}

var (
	_ Querier      = (*Parsed)(nil)
	_ ReuseAdvisor = (*Parsed)(nil)
)

// Parse scans a desc record, skipping unknown fields and stopping at the first structural
// problem.
//
// Parameters:
//   - text: Record text; every value returned later borrows from it
//
// Returns:
//   - *Parsed: The record parsed so far, never nil
//   - error: An Issue when parsing stopped early
func Parse(text string) (*Parsed, error) {
	return ParseWithIssues(text, DefaultIssueHandler)
}

// ParseWithIssues scans a desc record and reports every anomaly to handle.
//
// When handle returns an error, parsing stops and that error is returned together with the
// fields parsed before the issue.
//
// Parameters:
//   - text: Record text
//   - handle: Issue handler, nil means DefaultIssueHandler
//
// Returns:
//   - *Parsed: The record parsed so far, never nil
//   - error: The error returned by handle, if any
func ParseWithIssues(text string, handle IssueHandler) (*Parsed, error) {
	if handle == nil {
		handle = DefaultIssueHandler
	}

	p := &Parsed{text: text}
	pos := 0

	var current string
	for {
		line, next, ok := lines.Next(text, pos)
		if !ok {
			return p, handle(Issue{Kind: IssueEmptyInput})
		}
		pos = next

		name, err := field.ParseDesc(strings.TrimSpace(line))
		if err == nil {
			current = name
			break
		}
		if herr := handle(Issue{Kind: IssueValueWithoutField, Line: line, Cause: err}); herr != nil {
			return p, herr
		}
	}

	for {
		valueStart := pos
		valueEnd := len(text)
		nextName := ""
		for {
			line, next, ok := lines.Next(text, pos)
			if !ok {
				break
			}
			if name, err := field.ParseDesc(strings.TrimSpace(line)); err == nil {
				valueEnd = pos
				nextName = name
				pos = next

				break
			}
			pos = next
		}

		if err := p.set(current, strings.TrimSpace(text[valueStart:valueEnd]), handle); err != nil {
			return p, err
		}

		if nextName == "" {
			return p, nil
		}
		current = nextName
	}
}

func (p *Parsed) set(name, raw string, handle IssueHandler) error {
	f, known := ParseFieldName(name)
	if !known {
		return handle(Issue{Kind: IssueUnknownField, Field: name})
	}
	if p.seen[f] {
		return handle(Issue{Kind: IssueDuplicateField, Field: name})
	}

	p.seen[f] = true
	p.values[f] = raw

	return nil
}

// Lookup returns the value of a field.
func (p *Parsed) Lookup(f FieldName) (string, bool) {
	if !f.Valid() || p.values[f] == "" {
		return "", false
	}

	return p.values[f], true
}

// Text returns the record text.
func (p *Parsed) Text() string {
	return p.text
}

// ShouldReuse returns true: the scan cost is paid once at parse time.
func (p *Parsed) ShouldReuse() bool {
	return true
}
