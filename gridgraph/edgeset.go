package gridgraph

import (
	"github.com/emirpasic/gods/sets/linkedhashset"
)

// EdgeSet is an insertion-ordered set of EdgeIDs. It represents the open
// passages of a maze: members are traversable, every other edge is a wall.
// The zero value is not usable; call NewEdgeSet.
type EdgeSet struct {
	set *linkedhashset.Set
}

// NewEdgeSet returns a set holding ids, in the given order.
func NewEdgeSet(ids ...EdgeID) *EdgeSet {
	s := &EdgeSet{set: linkedhashset.New()}
	for _, id := range ids {
		s.set.Add(id)
	}

	return s
}

// Add inserts id and reports whether it was absent.
func (s *EdgeSet) Add(id EdgeID) bool {
	if s.set.Contains(id) {
		return false
	}
	s.set.Add(id)

	return true
}

// Contains reports whether id is open.
func (s *EdgeSet) Contains(id EdgeID) bool {
	return s.set.Contains(id)
}

// Len returns the number of open edges.
func (s *EdgeSet) Len() int {
	return s.set.Size()
}

// IDs returns the members in insertion order.
func (s *EdgeSet) IDs() []EdgeID {
	vals := s.set.Values()
	out := make([]EdgeID, len(vals))
	for i, v := range vals {
		out[i] = v.(EdgeID)
	}

	return out
}

// Clear removes every member.
func (s *EdgeSet) Clear() {
	s.set.Clear()
}
