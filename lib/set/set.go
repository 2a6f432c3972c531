package set

import (
	"encoding/json"
	"sort"
)

// Set is a lightweight set implementation over comparable values.
// It marshals to a JSON list while allowing map-like access in code.
// Iteration order follows Go's map type.
type Set[T comparable] map[T]struct{}

func New[T comparable](values ...T) Set[T] {
	s := make(Set[T], len(values))
	for _, v := range values {
		s.Add(v)
	}
	return s
}

func (s Set[T]) Add(v T) Set[T] {
	s[v] = struct{}{}
	return s
}

func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

func (s Set[T]) Len() int {
	return len(s)
}

// Difference returns the values of s that are not present in other.
func (s Set[T]) Difference(other Set[T]) Set[T] {
	out := make(Set[T])
	for v := range s {
		if !other.Has(v) {
			out.Add(v)
		}
	}
	return out
}

// Sorted lists the values ordered by less.
func (s Set[T]) Sorted(less func(a, b T) bool) []T {
	values := make([]T, 0, len(s))
	for v := range s {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool { return less(values[i], values[j]) })
	return values
}

func (s Set[T]) MarshalJSON() ([]byte, error) {
	values := make([]T, 0, len(s))
	for v := range s {
		values = append(values, v)
	}
	return json.Marshal(values)
}

func (s *Set[T]) UnmarshalJSON(data []byte) error {
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	if *s == nil {
		*s = make(Set[T])
	}
	s.truncate()
	for _, v := range values {
		s.Add(v)
	}
	return nil
}

func (s Set[T]) truncate() {
	for v := range s {
		delete(s, v)
	}
}
