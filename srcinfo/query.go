package srcinfo

import (
	"iter"
)

// Querier yields every value of a field across the whole record.
//
// Items come in source order: base section values first, then each derivative's own
// values in declaration order.
type Querier interface {
	Query(field FieldName) iter.Seq[RawItem]
}

// SectionQuerier is implemented by queriers that can restrict a query to one section
// without visiting the others.
type SectionQuerier interface {
	Querier
	QuerySection(field FieldName, section Section) iter.Seq[RawItem]
}

// ReuseAdvisor tells whether keeping an instance around for more queries pays off.
type ReuseAdvisor interface {
	ShouldReuse() bool
}

// QuerySection yields the values a section declares itself, without inheritance.
func QuerySection(q Querier, f FieldName, s Section) iter.Seq[RawItem] {
	if sq, ok := q.(SectionQuerier); ok {
		return sq.QuerySection(f, s)
	}

	return func(yield func(RawItem) bool) {
		for item := range q.Query(f) {
			if item.Section == s && !yield(item) {
				return
			}
		}
	}
}

// First returns the first value of a field across the whole record.
func First(q Querier, f FieldName) (RawItem, bool) {
	for item := range q.Query(f) {
		return item, true
	}

	return RawItem{}, false
}

// Single returns the value of a single-valued field as seen from a section.
//
// The section's own value wins; when the section has none, the base section's value is
// inherited. The returned item's Section tells which one was used.
func Single(q Querier, f FieldName, s Section) (RawItem, bool) {
	for item := range QuerySection(q, f, s) {
		return item, true
	}
	if s.IsBase() {
		return RawItem{}, false
	}
	for item := range QuerySection(q, f, BaseSection) {
		return item, true
	}

	return RawItem{}, false
}

// Sections returns the base section followed by every derivative in declaration order.
func Sections(q Querier) []Section {
	out := []Section{BaseSection}
	for item := range q.Query(PackageName) {
		out = append(out, item.Section)
	}

	return out
}
