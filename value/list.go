package value

import (
	"iter"
	"strings"
)

// List is a multi-line value whose lines are items of type T.
//
// Joining the items with "\n" reproduces the list text exactly.
type List[T ~string] string

// All returns an iterator over the items in source order.
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == "" {
			return
		}

		rest := string(l)
		for {
			i := strings.IndexByte(rest, '\n')
			if i < 0 {
				yield(T(rest))
				return
			}
			if !yield(T(rest[:i])) {
				return
			}
			rest = rest[i+1:]
		}
	}
}

// Items collects the items into a slice.
func (l List[T]) Items() []T {
	items := make([]T, 0, strings.Count(string(l), "\n")+1)
	for item := range l.All() {
		items = append(items, item)
	}

	return items
}

// Len returns the number of items.
func (l List[T]) Len() int {
	if l == "" {
		return 0
	}

	return strings.Count(string(l), "\n") + 1
}

type (
	// Groups is a list of package groups.
	Groups = List[Group]
	// Licenses is a list of licenses.
	Licenses = List[License]
	// Architectures is a list of architectures.
	Architectures = List[Architecture]
	// Dependencies is a list of dependencies.
	Dependencies = List[Dependency]
	// OptionalDependencies is a list of dependencies with reasons.
	OptionalDependencies = List[DependencyAndReason]
)
