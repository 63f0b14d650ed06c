package gazetteer

import (
	"sort"
	"strings"
)

// Set groups gazetteers by category. A zero Set is empty and usable.
type Set struct {
	byName map[string]*Gazetteer
}

// NewSet creates a set from the given gazetteers. Gazetteers sharing a
// category are merged.
func NewSet(gs ...*Gazetteer) *Set {
	s := &Set{byName: make(map[string]*Gazetteer)}
	for _, g := range gs {
		s.Add(g)
	}
	return s
}

// Add registers g, merging its entries into an existing gazetteer of the
// same category.
func (s *Set) Add(g *Gazetteer) {
	if g == nil {
		return
	}
	if s.byName == nil {
		s.byName = make(map[string]*Gazetteer)
	}
	existing, ok := s.byName[g.name]
	if !ok {
		s.byName[g.name] = g
		return
	}
	for w := range g.words {
		existing.words[w] = struct{}{}
	}
}

// Get returns the gazetteer for category.
func (s *Set) Get(category string) (*Gazetteer, bool) {
	if s == nil {
		return nil, false
	}
	g, ok := s.byName[strings.ToUpper(category)]
	return g, ok
}

// Contains reports whether the gazetteer for category contains word. A
// missing category never matches.
func (s *Set) Contains(category, word string) bool {
	g, ok := s.Get(category)
	if !ok {
		return false
	}
	return g.Contains(word)
}

// Categories returns the registered category names in sorted order.
func (s *Set) Categories() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.byName))
	for name := range s.byName {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
