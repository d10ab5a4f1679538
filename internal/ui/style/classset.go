package style

import (
	"slices"
	"strings"
)

// Class is a style rule identifier. Classes are only produced by the resolver
// (or, for caller merge hooks, passed through verbatim) and name a rule in the
// compiled stylesheet.
type Class string

// ClassSet is an ordered collection of classes with idempotent membership.
// The zero value is ready to use. Membership is derived from the ordered
// slice, so copies of a set never observe each other's additions.
type ClassSet struct {
	classes []Class
}

// NewClassSet returns a set holding the supplied classes in first-seen order.
func NewClassSet(classes ...Class) ClassSet {
	var set ClassSet
	for _, c := range classes {
		set.Add(c)
	}
	return set
}

// Add appends the class unless it is empty or already present.
// It reports whether the set changed.
func (s *ClassSet) Add(c Class) bool {
	if c == "" {
		return false
	}
	if slices.Contains(s.classes, c) {
		return false
	}
	s.classes = append(slices.Clip(s.classes), c)
	return true
}

// AddTokens splits a whitespace separated class list and adds every token.
func (s *ClassSet) AddTokens(list string) {
	for _, token := range strings.Fields(list) {
		s.Add(Class(token))
	}
}

// Union returns a new set with the receiver's classes followed by any of
// other's classes not already present.
func (s ClassSet) Union(other ClassSet) ClassSet {
	out := NewClassSet(s.classes...)
	for _, c := range other.classes {
		out.Add(c)
	}
	return out
}

// Contains reports whether the class is a member of the set.
func (s ClassSet) Contains(c Class) bool {
	return slices.Contains(s.classes, c)
}

// Len returns the number of classes.
func (s ClassSet) Len() int {
	return len(s.classes)
}

// Classes returns a copy of the classes in insertion order.
func (s ClassSet) Classes() []Class {
	out := make([]Class, len(s.classes))
	copy(out, s.classes)
	return out
}

// String renders the set as a class attribute value.
func (s ClassSet) String() string {
	parts := make([]string, len(s.classes))
	for i, c := range s.classes {
		parts[i] = string(c)
	}
	return strings.Join(parts, " ")
}
