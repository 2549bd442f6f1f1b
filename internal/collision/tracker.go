// Package collision provides a name index keyed by 64-bit hashes that stays correct when two
// names share a hash.
package collision

import (
	"fmt"

	"github.com/arloliu/pkgtext/errs"
)

// Tracker maps package names to positions through their hashes.
//
// Lookups compare the stored name, so a hash collision never returns the wrong position.
// Colliding names share a bucket and the collision flag is raised.
type Tracker struct {
	buckets      map[uint64][]slot // Hash → names with that hash
	hasCollision bool              // Whether two different names share a hash
}

type slot struct {
	name string
	pos  int
}

// NewTracker creates a new tracker sized for n names.
func NewTracker(n int) *Tracker {
	return &Tracker{
		buckets: make(map[uint64][]slot, n),
	}
}

// Track records name at position pos.
//
// Returns:
//   - ErrInvalidPackageName: name is empty
//   - ErrDuplicatePackage: name was tracked before
//
// Hash collisions (different names, same hash) are not errors; the names share a bucket.
func (t *Tracker) Track(name string, hash uint64, pos int) error {
	if name == "" {
		return errs.ErrInvalidPackageName
	}

	bucket := t.buckets[hash]
	for _, s := range bucket {
		if s.name == name {
			return fmt.Errorf("%w: %s", errs.ErrDuplicatePackage, name)
		}
	}
	if len(bucket) > 0 {
		t.hasCollision = true
	}

	t.buckets[hash] = append(bucket, slot{name: name, pos: pos})

	return nil
}

// Lookup returns the position of name.
func (t *Tracker) Lookup(name string, hash uint64) (int, bool) {
	for _, s := range t.buckets[hash] {
		if s.name == name {
			return s.pos, true
		}
	}

	return 0, false
}

// HasCollision returns true if two tracked names share a hash.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}
