package value

import (
	"path"
	"strings"
)

// Components splits a source entry of the form "name::location" into its parts.
//
// Entries without "::" have an empty name.
func (s Source) Components() (name string, location string) {
	if before, after, ok := strings.Cut(string(s), "::"); ok {
		return before, after
	}

	return "", string(s)
}

// IsRemote reports whether the location is fetched rather than shipped next to the recipe.
func (s Source) IsRemote() bool {
	_, location := s.Components()
	return strings.Contains(location, "://")
}

// LocalName returns the file name makepkg stores the source under.
//
// An explicit "name::" prefix wins. Otherwise it is the last path element of the location,
// without query string, fragment or a trailing slash.
func (s Source) LocalName() string {
	name, location := s.Components()
	if name != "" {
		return name
	}

	if i := strings.IndexAny(location, "?#"); i >= 0 {
		location = location[:i]
	}
	if _, rest, ok := strings.Cut(location, "://"); ok {
		location = rest
	}

	return path.Base(strings.TrimRight(location, "/"))
}
