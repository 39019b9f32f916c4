package frontier

import (
	"strings"

	"github.com/katalvlaran/frontier/gridgraph"
)

// Set is an insertion-ordered set of frontier candidates.
// It is not safe for concurrent use.
type Set struct {
	order []gridgraph.Cell
	index map[gridgraph.Cell]struct{}
}

// New returns an empty Set.
func New() *Set {
	return &Set{index: make(map[gridgraph.Cell]struct{})}
}

// Insert adds c unless it is already present. Reports whether c was added.
// Complexity: O(1) amortized.
func (s *Set) Insert(c gridgraph.Cell) bool {
	if _, ok := s.index[c]; ok {
		return false
	}
	s.index[c] = struct{}{}
	s.order = append(s.order, c)
	return true
}

// Contains reports whether c is a candidate.
func (s *Set) Contains(c gridgraph.Cell) bool {
	_, ok := s.index[c]
	return ok
}

// Len returns the number of candidates.
func (s *Set) Len() int {
	return len(s.order)
}

// IsEmpty reports whether no candidates remain.
func (s *Set) IsEmpty() bool {
	return len(s.order) == 0
}

// Newest returns the most recently inserted candidate without removing it.
// The second result is false when the set is empty.
// Complexity: O(1).
func (s *Set) Newest() (gridgraph.Cell, bool) {
	n := len(s.order)
	if n == 0 {
		return gridgraph.Cell{}, false
	}
	return s.order[n-1], true
}

// TakeNext removes and returns the most recently inserted candidate.
// The second result is false when the set is empty.
// Complexity: O(1).
func (s *Set) TakeNext() (gridgraph.Cell, bool) {
	n := len(s.order)
	if n == 0 {
		return gridgraph.Cell{}, false
	}
	c := s.order[n-1]
	s.order = s.order[:n-1]
	delete(s.index, c)
	return c, true
}

// Remove deletes c, preserving the order of the others. Reports whether c was present.
// Complexity: O(n).
func (s *Set) Remove(c gridgraph.Cell) bool {
	if _, ok := s.index[c]; !ok {
		return false
	}
	delete(s.index, c)
	for i := len(s.order) - 1; i >= 0; i-- {
		if s.order[i] == c {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// PruneStale removes every candidate for which keep returns false and
// returns how many were removed. The slice is walked from the back so a
// removal never shifts an element that has not been examined yet; every
// candidate is examined exactly once and survivors keep their order.
// Complexity: O(n) calls to keep, O(n) moves.
func (s *Set) PruneStale(keep func(gridgraph.Cell) bool) int {
	removed := 0
	for i := len(s.order) - 1; i >= 0; i-- {
		c := s.order[i]
		if keep(c) {
			continue
		}
		delete(s.index, c)
		s.order = append(s.order[:i], s.order[i+1:]...)
		removed++
	}
	return removed
}

// Cells returns a snapshot of the candidates in insertion order.
func (s *Set) Cells() []gridgraph.Cell {
	out := make([]gridgraph.Cell, len(s.order))
	copy(out, s.order)
	return out
}

// String lists the candidates in insertion order: "Target Locations: (0,1), (1,1)".
func (s *Set) String() string {
	var sb strings.Builder
	sb.WriteString("Target Locations:")
	for i, c := range s.order {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte(' ')
		sb.WriteString(c.String())
	}
	return sb.String()
}
