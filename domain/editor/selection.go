package editor

import "slices"

// selection is an ordered set of collection indices: membership is unique,
// iteration order is insertion order so render numbering stays deterministic.
type selection struct {
	order  []int
	member map[int]bool
}

func newSelection() *selection {
	return &selection{member: make(map[int]bool)}
}

func (s *selection) Add(i int) {
	if s.member[i] {
		return
	}
	s.member[i] = true
	s.order = append(s.order, i)
}

// Set collapses the selection to exactly one index.
func (s *selection) Set(i int) {
	s.Clear()
	s.Add(i)
}

// SetAll selects indices 0..n-1.
func (s *selection) SetAll(n int) {
	s.Clear()
	for i := 0; i < n; i++ {
		s.Add(i)
	}
}

func (s *selection) Clear() {
	s.order = s.order[:0]
	clear(s.member)
}

func (s *selection) Has(i int) bool { return s.member[i] }

func (s *selection) Len() int { return len(s.order) }

// Items returns the selected indices in insertion order.
func (s *selection) Items() []int { return slices.Clone(s.order) }
