package srcinfo

import (
	"iter"
	"slices"
	"sync"
)

// resolution is the outcome of a cache probe.
type resolution uint8

const (
	resolved resolution = iota + 1
	// unresolved means the cursor has not scanned far enough to tell.
	unresolved
	// missing means the cursor scanned past the index and it does not exist.
	missing
)

// Memo scans a record lazily and caches every value it passes.
//
// Each line is scanned at most once over the lifetime of a Memo, whatever the order of
// queries. Queries advance shared state, so a Memo must not be used from several goroutines
// at once; see SyncMemo. Invalid lines are skipped.
type Memo struct {
	scan  scanner
	items [fieldCount][]RawItem
	names map[string]struct{}
}

var (
	_ Querier        = (*Memo)(nil)
	_ SectionQuerier = (*Memo)(nil)
	_ ReuseAdvisor   = (*Memo)(nil)
)

// NewMemo creates a Memo over text. No scanning happens until the first query.
func NewMemo(text string) *Memo {
	return &Memo{
		scan:  newScanner(text),
		names: make(map[string]struct{}),
	}
}

// get probes the cache for the index-th value of a field.
func (m *Memo) get(f FieldName, index int) (RawItem, resolution) {
	if index < len(m.items[f]) {
		return m.items[f][index], resolved
	}
	if m.scan.done() {
		return RawItem{}, missing
	}

	return RawItem{}, unresolved
}

// advance scans one more event into the cache. It returns false once the record is exhausted.
func (m *Memo) advance() bool {
	ev, ok := m.scan.next()
	if !ok {
		return false
	}

	switch ev.kind {
	case eventHeader:
		if _, dup := m.names[ev.value]; !dup {
			m.names[ev.value] = struct{}{}
			m.items[PackageName] = append(m.items[PackageName], ev.item())
		}
	case eventEntry:
		if ev.field.Class().IsSingle() && m.hasValueIn(ev.field, ev.section) {
			return true
		}
		m.items[ev.field] = append(m.items[ev.field], ev.item())
	}

	return true
}

func (m *Memo) hasValueIn(f FieldName, s Section) bool {
	for _, item := range m.items[f] {
		if item.Section == s {
			return true
		}
	}

	return false
}

// completed reports whether no more values can appear for a section.
//
// The base section ends at the first pkgname header. A derivative may be declared again
// further down, so it only completes with the record.
func (m *Memo) completed(s Section) bool {
	if m.scan.done() {
		return true
	}

	return s.IsBase() && !m.scan.section.IsBase()
}

// Query yields every value of a field in source order, scanning only as far as needed.
func (m *Memo) Query(f FieldName) iter.Seq[RawItem] {
	return func(yield func(RawItem) bool) {
		if !f.Valid() {
			return
		}

		for i := 0; ; {
			item, res := m.get(f, i)
			switch res {
			case resolved:
				if !yield(item) {
					return
				}
				i++
			case missing:
				return
			case unresolved:
				m.advance()
			}
		}
	}
}

// QuerySection yields the values a section declares itself, scanning only until no more
// can appear: the first pkgname header for the base section, the end of the record for a
// derivative.
//
// A redeclared derivative yields the values of all its blocks in source order; a section
// that never appears resolves to nothing once the record is exhausted.
func (m *Memo) QuerySection(f FieldName, s Section) iter.Seq[RawItem] {
	return func(yield func(RawItem) bool) {
		if !f.Valid() {
			return
		}

		for i := 0; ; {
			item, res := m.get(f, i)
			switch res {
			case resolved:
				if item.Section == s && !yield(item) {
					return
				}
				i++
			case missing:
				return
			case unresolved:
				if m.completed(s) {
					return
				}
				m.advance()
			}
		}
	}
}

// ShouldReuse returns true: later queries are served from the cache.
func (m *Memo) ShouldReuse() bool {
	return true
}

// SyncMemo is a Memo guarded by a mutex, safe for concurrent use.
//
// The lock is held while one query collects its values; the values are yielded after the
// lock is released, so a consumer may issue nested queries.
type SyncMemo struct {
	mu   sync.Mutex
	memo *Memo
}

var (
	_ SectionQuerier = (*SyncMemo)(nil)
	_ ReuseAdvisor   = (*SyncMemo)(nil)
)

// NewSyncMemo creates a SyncMemo over text.
func NewSyncMemo(text string) *SyncMemo {
	return &SyncMemo{memo: NewMemo(text)}
}

// Query collects every value of a field under the lock and yields them.
func (s *SyncMemo) Query(f FieldName) iter.Seq[RawItem] {
	s.mu.Lock()
	items := slices.Collect(s.memo.Query(f))
	s.mu.Unlock()

	return slices.Values(items)
}

// QuerySection collects the section's own values under the lock and yields them.
func (s *SyncMemo) QuerySection(f FieldName, section Section) iter.Seq[RawItem] {
	s.mu.Lock()
	items := slices.Collect(s.memo.QuerySection(f, section))
	s.mu.Unlock()

	return slices.Values(items)
}

// ShouldReuse returns true.
func (s *SyncMemo) ShouldReuse() bool {
	return true
}
