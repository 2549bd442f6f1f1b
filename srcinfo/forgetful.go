package srcinfo

import "iter"

// Forgetful answers every query by rescanning the record from the start.
//
// It holds nothing but the text and is safe for concurrent use. Invalid lines are skipped.
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

// Query scans the record and yields every value of the field in source order.
func (q Forgetful) Query(f FieldName) iter.Seq[RawItem] {
	return func(yield func(RawItem) bool) {
		if !f.Valid() {
			return
		}

		// single-valued fields keep their first value per section,
		// pkgname yields each derivative once
		var seen map[Section]struct{}
		dedupe := f.Class().IsSingle() || f == PackageName

		sc := newScanner(q.text)
		for {
			ev, ok := sc.next()
			if !ok {
				return
			}
			if ev.field != f || (ev.kind != eventEntry && ev.kind != eventHeader) {
				continue
			}

			if dedupe {
				if _, dup := seen[ev.section]; dup {
					continue
				}
				if seen == nil {
					seen = make(map[Section]struct{})
				}
				seen[ev.section] = struct{}{}
			}

			if !yield(ev.item()) {
				return
			}
		}
	}
}

// Text returns the record text.
func (q Forgetful) Text() string {
	return q.text
}

// ShouldReuse returns false: a kept instance makes every query a full rescan anyway.
func (q Forgetful) ShouldReuse() bool {
	return false
}
