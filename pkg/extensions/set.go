package extensions

import (
	"cmp"
	"slices"
)

// Set is an unordered collection of unique values.
type Set[T comparable] map[T]struct{}

// NewSet returns a set holding the given values.
func NewSet[T comparable](values ...T) Set[T] {
	s := make(Set[T], len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts v into the set.
func (s Set[T]) Add(v T) {
	s[v] = struct{}{}
}

// Has reports whether v is in the set.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of values in the set.
func (s Set[T]) Len() int {
	return len(s)
}

// Diff returns the values of s that are not in other.
func (s Set[T]) Diff(other Set[T]) Set[T] {
	r := NewSet[T]()
	for v := range s {
		if !other.Has(v) {
			r.Add(v)
		}
	}
	return r
}

// Sorted returns the values of s in ascending order. The result is never nil.
func Sorted[T cmp.Ordered](s Set[T]) []T {
	out := make([]T, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}
