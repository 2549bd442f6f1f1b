package srcinfo

import (
	"iter"

	"github.com/arloliu/pkgtext/value"
)

type entry struct {
	value string
	arch  string
}

// sectionData holds the exclusive values of one section, indexed by field.
type sectionData struct {
	single [fieldCount]string
	multi  [fieldCount][]entry
}

// add stores the value of ev and reports whether it was kept. A conflicting single value
// is reported to handle and dropped.
func (d *sectionData) add(ev event, handle IssueHandler) (bool, error) {
	if ev.field.Class().IsSingle() {
		if old := d.single[ev.field]; old != "" {
			issue := ev.issue(IssueFieldAlreadySet)
			issue.OldValue = old
			issue.NewValue = ev.value

			return false, handle(issue)
		}
		d.single[ev.field] = ev.value

		return true, nil
	}

	d.multi[ev.field] = append(d.multi[ev.field], entry{value: ev.value, arch: ev.raw.Architecture})

	return true, nil
}

func (d *sectionData) items(f FieldName, s Section, yield func(RawItem) bool) bool {
	if f.Class().IsSingle() {
		if v := d.single[f]; v != "" {
			return yield(RawItem{Value: v, Section: s})
		}

		return true
	}

	for _, e := range d.multi[f] {
		if !yield(RawItem{Value: e.value, Section: s, Architecture: value.Architecture(e.arch)}) {
			return false
		}
	}

	return true
}

type derivative struct {
	name string
	data sectionData
}

// Parsed is a .SRCINFO record scanned eagerly.
//
// It holds the base section and every derivative section in declaration order. A
// derivative declared twice is merged into its first declaration; whole-record queries
// still yield values in source order. Parsed is immutable after parsing and safe for
// concurrent use.
type Parsed struct {
	base        sectionData
	derivatives []derivative
	index       map[string]int
	order       [fieldCount][]RawItem
}

var (
	_ Querier        = (*Parsed)(nil)
	_ SectionQuerier = (*Parsed)(nil)
	_ ReuseAdvisor   = (*Parsed)(nil)
)

// Parse scans a .SRCINFO record, skipping unknown and misplaced fields and stopping at the
// first invalid line or single-value conflict.
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

// ParseWithIssues scans a .SRCINFO record and reports every anomaly to handle.
//
// When handle returns an error, parsing stops and that error is returned together with
// everything parsed before the issue.
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

	p := &Parsed{index: make(map[string]int)}
	current := &p.base
	sc := newScanner(text)

	for {
		ev, ok := sc.next()
		if !ok {
			return p, nil
		}

		var err error
		switch ev.kind {
		case eventInvalid:
			err = handle(ev.issue(IssueInvalidLine))
		case eventUnknown:
			err = handle(ev.issue(IssueUnknownField))
		case eventIgnored:
			err = handle(ev.issue(IssueIgnoredField))
		case eventHeader:
			current = p.derivative(ev.value)
		case eventEntry:
			var kept bool
			kept, err = current.add(ev, handle)
			if kept {
				p.order[ev.field] = append(p.order[ev.field], ev.item())
			}
		}
		if err != nil {
			return p, err
		}
	}
}

func (p *Parsed) derivative(name string) *sectionData {
	if i, ok := p.index[name]; ok {
		return &p.derivatives[i].data
	}

	p.index[name] = len(p.derivatives)
	p.derivatives = append(p.derivatives, derivative{name: name})

	return &p.derivatives[len(p.derivatives)-1].data
}

func (p *Parsed) section(s Section) (*sectionData, bool) {
	if s.IsBase() {
		return &p.base, true
	}

	i, ok := p.index[s.name]
	if !ok {
		return nil, false
	}

	return &p.derivatives[i].data, true
}

// Query yields every value of a field in source order: the base section first, then the
// derivative blocks as they appear. For PackageName it yields one item per derivative.
func (p *Parsed) Query(f FieldName) iter.Seq[RawItem] {
	return func(yield func(RawItem) bool) {
		if !f.Valid() {
			return
		}

		if f == PackageName {
			for _, d := range p.derivatives {
				if !yield(RawItem{Value: d.name, Section: Derivative(d.name)}) {
					return
				}
			}

			return
		}

		for _, item := range p.order[f] {
			if !yield(item) {
				return
			}
		}
	}
}

// QuerySection yields the values a section declares itself, without inheritance.
func (p *Parsed) QuerySection(f FieldName, s Section) iter.Seq[RawItem] {
	return func(yield func(RawItem) bool) {
		if !f.Valid() {
			return
		}

		if f == PackageName {
			if _, ok := p.index[s.name]; ok && !s.IsBase() {
				yield(RawItem{Value: s.name, Section: s})
			}

			return
		}

		if data, ok := p.section(s); ok {
			data.items(f, s, yield)
		}
	}
}

// Sections returns the base section followed by every derivative in declaration order.
func (p *Parsed) Sections() []Section {
	out := make([]Section, 0, len(p.derivatives)+1)
	out = append(out, BaseSection)
	for _, d := range p.derivatives {
		out = append(out, Derivative(d.name))
	}

	return out
}

// ShouldReuse returns true: the scan cost is paid once at parse time.
func (p *Parsed) ShouldReuse() bool {
	return true
}
