package depgraph

import "sort"

// Set is an unordered collection of dependency names.
type Set map[string]struct{}

// NewSet builds a Set from names.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}

	return s
}

// Add inserts name into the set.
func (s Set) Add(name string) {
	s[name] = struct{}{}
}

// Has reports whether name is a member.
func (s Set) Has(name string) bool {
	_, ok := s[name]

	return ok
}

// Sorted returns the members in sorted order.
func (s Set) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Equal reports whether both sets hold the same members.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}

	for name := range s {
		if !other.Has(name) {
			return false
		}
	}

	return true
}
