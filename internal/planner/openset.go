package planner

import (
	"container/heap"

	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/geometry"
)

// openSet is a min-priority queue over *Node keyed by F, backed by
// container/heap, with an index map from point to entry so that a
// cheaper re-discovery of an already-open point replaces it in place
// (decrease-key) instead of leaving a stale duplicate in the heap.
type openSet struct {
	heap    nodeHeap
	entries map[geometry.Point]*Node
}

func newOpenSet() *openSet {
	return &openSet{entries: make(map[geometry.Point]*Node)}
}

// Contains reports whether point is currently open, and if so its entry.
func (s *openSet) Contains(p geometry.Point) (*Node, bool) {
	n, ok := s.entries[p]
	return n, ok
}

// Push inserts n, or replaces the existing open entry for n.Point if one
// exists, per the decrease-key semantics in §4.4's open-set description.
func (s *openSet) Push(n *Node) {
	if existing, ok := s.entries[n.Point]; ok {
		existing.G, existing.H, existing.F = n.G, n.H, n.F
		existing.Parent = n.Parent
		existing.Direction = n.Direction
		heap.Fix(&s.heap, existing.heapIndex)
		return
	}
	s.entries[n.Point] = n
	heap.Push(&s.heap, n)
}

// Pop removes and returns the entry with the lowest F, or nil if empty.
func (s *openSet) Pop() *Node {
	if s.heap.Len() == 0 {
		return nil
	}
	n := heap.Pop(&s.heap).(*Node)
	delete(s.entries, n.Point)
	return n
}

func (s *openSet) Empty() bool {
	return s.heap.Len() == 0
}

// nodeHeap is the container/heap backing store. heapIndex lives on Node
// itself so Fix can locate an entry after Push without a second lookup.
type nodeHeap []*Node

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].F < h[j].F }
func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].heapIndex = i
	h[j].heapIndex = j
}

func (h *nodeHeap) Push(x any) {
	n := x.(*Node)
	n.heapIndex = len(*h)
	*h = append(*h, n)
}

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.heapIndex = -1
	*h = old[:n-1]
	return node
}
