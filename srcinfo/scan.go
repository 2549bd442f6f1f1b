package srcinfo

import (
	"strings"

	"github.com/arloliu/pkgtext/field"
	"github.com/arloliu/pkgtext/internal/lines"
	"github.com/arloliu/pkgtext/value"
)

type eventKind uint8

const (
	eventEntry eventKind = iota + 1
	eventHeader
	eventInvalid
	eventUnknown
	eventIgnored
)

// event is one meaningful line of a record, already attributed to a section.
type event struct {
	kind    eventKind
	line    string
	raw     field.Raw
	field   FieldName
	value   string
	section Section
}

func (e event) item() RawItem {
	return RawItem{Value: e.value, Section: e.section, Architecture: value.Architecture(e.raw.Architecture)}
}

func (e event) issue(kind IssueKind) Issue {
	return Issue{Kind: kind, Line: e.line, Raw: e.raw, Section: e.section}
}

// scanner tracks the current section while walking the lines of a record.
type scanner struct {
	cursor  lines.Cursor
	section Section
}

func newScanner(text string) scanner {
	return scanner{cursor: lines.NewCursor(text)}
}

// next returns the next event, skipping blank lines, comments and empty values.
func (s *scanner) next() (event, bool) {
	for {
		line, _, ok := s.cursor.Next()
		if !ok {
			return event{}, false
		}

		line = strings.TrimSpace(line)
		if field.IsSrcinfoSkippable(line) {
			continue
		}

		raw, val, err := field.ParseSrcinfo(line)
		if err != nil {
			return event{kind: eventInvalid, line: line, section: s.section}, true
		}

		f, known := ParseFieldName(raw.Name)
		if !known {
			return event{kind: eventUnknown, line: line, raw: raw, section: s.section}, true
		}
		if val == "" {
			continue
		}

		ev := event{kind: eventEntry, line: line, raw: raw, field: f, value: val, section: s.section}
		class := f.Class()
		switch {
		case class == ClassHeader && raw.HasArchitecture():
			ev.kind = eventIgnored
		case class == ClassHeader:
			s.section = Derivative(val)
			ev.kind = eventHeader
			ev.section = s.section
		case class.BaseOnly() && !s.section.IsBase():
			ev.kind = eventIgnored
		case raw.HasArchitecture() && !class.AcceptsArchitecture():
			ev.kind = eventIgnored
		}

		return ev, true
	}
}

// done reports whether every line has been read.
func (s *scanner) done() bool {
	return s.cursor.Done()
}
