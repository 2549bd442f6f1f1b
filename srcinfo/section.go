package srcinfo

import (
	"iter"

	"github.com/arloliu/pkgtext/value"
)

// Section is the scope a value belongs to: the base section or a named derivative.
//
// Section is comparable and usable as a map key.
type Section struct {
	name string
}

// BaseSection is the section before the first pkgname header.
var BaseSection = Section{}

// Derivative returns the section opened by "pkgname = name".
func Derivative(name string) Section {
	return Section{name: name}
}

// IsBase reports whether s is the base section.
func (s Section) IsBase() bool {
	return s.name == ""
}

// Name returns the derivative name, empty for the base section.
func (s Section) Name() value.Name {
	return value.Name(s.name)
}

func (s Section) String() string {
	if s.IsBase() {
		return "pkgbase"
	}

	return "pkgname:" + s.name
}

// Item is one value yielded by a query, with its section and optional architecture.
type Item[V ~string] struct {
	Value        V
	Section      Section
	Architecture value.Architecture
}

// RawItem is an Item holding the untyped value text.
type RawItem = Item[string]

func typed[V ~string](seq iter.Seq[RawItem]) iter.Seq[Item[V]] {
	return func(yield func(Item[V]) bool) {
		for item := range seq {
			if !yield(Item[V]{Value: V(item.Value), Section: item.Section, Architecture: item.Architecture}) {
				return
			}
		}
	}
}
