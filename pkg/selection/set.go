// Package selection implements the multi-select list: a sorted view over a
// candidate list that toggles names in a caller-owned Set.
package selection

import "slices"

// Set is an unordered set of item names.
type Set map[string]struct{}

// NewSet creates a set holding names.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}
	return s
}

// Has reports whether name is in the set.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Add inserts name.
func (s Set) Add(name string) {
	s[name] = struct{}{}
}

// Remove deletes name.
func (s Set) Remove(name string) {
	delete(s, name)
}

// Toggle flips membership of name and reports whether it is now present.
func (s Set) Toggle(name string) bool {
	if s.Has(name) {
		delete(s, name)
		return false
	}
	s[name] = struct{}{}
	return true
}

// Len returns the number of names in the set.
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the members in ascending order.
func (s Set) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Clone returns an independent copy.
func (s Set) Clone() Set {
	c := make(Set, len(s))
	for name := range s {
		c[name] = struct{}{}
	}
	return c
}

// Clear removes every member.
func (s Set) Clear() {
	clear(s)
}

// FirstIn returns the first element of order that is in the set.
func (s Set) FirstIn(order []string) (string, bool) {
	for _, name := range order {
		if s.Has(name) {
			return name, true
		}
	}
	return "", false
}
