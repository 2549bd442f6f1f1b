package desc

import (
	"strings"

	"github.com/arloliu/pkgtext/field"
	"github.com/arloliu/pkgtext/internal/lines"
)

// Forgetful answers every lookup by rescanning the record from the start.
//
// It holds nothing but the text, so creating one is free and it is safe for concurrent use.
type Forgetful struct {
	text string
}

var (
	_ Querier      = Forgetful{}
	_ ReuseAdvisor = Forgetful{}
)

// NewForgetful creates a Forgetful querier over text.
func NewForgetful(text string) Forgetful {
	return Forgetful{text: text}
}

// Lookup scans for the first line naming the field and returns the text up to the next
// field line.
func (q Forgetful) Lookup(f FieldName) (string, bool) {
	if !f.Valid() {
		return "", false
	}
	want := f.String()

	pos := 0
	for {
		line, next, ok := lines.Next(q.text, pos)
		if !ok {
			return "", false
		}
		pos = next

		if name, err := field.ParseDesc(strings.TrimSpace(line)); err == nil && name == want {
			break
		}
	}

	start := pos
	for {
		line, next, ok := lines.Next(q.text, pos)
		if !ok || field.IsDescField(line) {
			break
		}
		pos = next
	}

	raw := strings.TrimSpace(q.text[start:pos])

	return raw, raw != ""
}

// Text returns the record text.
func (q Forgetful) Text() string {
	return q.text
}

// ShouldReuse returns false: a kept instance makes every lookup a full rescan anyway.
func (q Forgetful) ShouldReuse() bool {
	return false
}
