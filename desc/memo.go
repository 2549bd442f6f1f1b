package desc

import (
	"strings"
	"sync"

	"github.com/arloliu/pkgtext/field"
	"github.com/arloliu/pkgtext/internal/lines"
)

type slotState uint8

const (
	slotUnoccupied slotState = iota
	slotNone
	slotValue
)

// Memo scans a record lazily and remembers every field it passes.
//
// Each byte of the record is scanned at most once over the lifetime of a Memo. Lookup
// advances shared state, so a Memo must not be used from several goroutines at once;
// see SyncMemo.
type Memo struct {
	cursor  lines.Cursor
	pending string
	values  [fieldCount]string
	states  [fieldCount]slotState
}

var (
	_ Querier      = (*Memo)(nil)
	_ ReuseAdvisor = (*Memo)(nil)
)

// NewMemo creates a Memo over text. No scanning happens until the first lookup.
func NewMemo(text string) *Memo {
	return &Memo{cursor: lines.NewCursor(text)}
}

// Lookup returns a cached value, or advances the scan until the field is found or the
// record ends.
func (m *Memo) Lookup(f FieldName) (string, bool) {
	if !f.Valid() {
		return "", false
	}

	switch m.states[f] {
	case slotValue:
		return m.values[f], true
	case slotNone:
		return "", false
	}

	for {
		name, raw, ok := m.next()
		if !ok {
			return "", false
		}

		found, known := ParseFieldName(name)
		if !known || m.states[found] != slotUnoccupied {
			continue
		}

		if raw == "" {
			m.states[found] = slotNone
		} else {
			m.states[found] = slotValue
			m.values[found] = raw
		}

		if found == f {
			return raw, raw != ""
		}
	}
}

// next reads one field line and its value.
func (m *Memo) next() (string, string, bool) {
	name := m.pending
	if name == "" {
		for {
			line, _, ok := m.cursor.Next()
			if !ok {
				return "", "", false
			}
			if n, err := field.ParseDesc(strings.TrimSpace(line)); err == nil {
				name = n
				break
			}
		}
	}
	m.pending = ""

	text := m.cursor.Text()
	start := m.cursor.Offset()
	end := len(text)
	for {
		line, lineStart, ok := m.cursor.Next()
		if !ok {
			break
		}
		if n, err := field.ParseDesc(strings.TrimSpace(line)); err == nil {
			end = lineStart
			m.pending = n

			break
		}
	}

	return name, strings.TrimSpace(text[start:end]), true
}

// cached reports whether the field's slot is populated.
func (m *Memo) cached(f FieldName) bool {
	return m.states[f] != slotUnoccupied
}

// Text returns the record text.
func (m *Memo) Text() string {
	return m.cursor.Text()
}

// ShouldReuse returns true: later lookups are served from the cache.
func (m *Memo) ShouldReuse() bool {
	return true
}

// SyncMemo is a Memo guarded by a mutex, safe for concurrent use.
//
// The lock is held for the duration of one lookup.
type SyncMemo struct {
	mu   sync.Mutex
	memo *Memo
}

var (
	_ Querier      = (*SyncMemo)(nil)
	_ ReuseAdvisor = (*SyncMemo)(nil)
)

// NewSyncMemo creates a SyncMemo over text.
func NewSyncMemo(text string) *SyncMemo {
	return &SyncMemo{memo: NewMemo(text)}
}

// Lookup performs a Memo lookup under the lock.
func (s *SyncMemo) Lookup(f FieldName) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.memo.Lookup(f)
}

// ShouldReuse returns true.
func (s *SyncMemo) ShouldReuse() bool {
	return true
}
