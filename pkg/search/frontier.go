package search

import "container/heap"

// Node is a search state: a word, the cost accumulated to reach it and its
// priority (accumulated cost plus heuristic estimate).
type Node struct {
	Word     string
	Cost     int
	Priority int
}

// Explored maps a visited word to the best accumulated cost seen for it.
// Entries only ever decrease and are never removed.
type Explored map[string]int

// Record stores cost for word unless a cheaper cost is already known.
func (e Explored) Record(word string, cost int) {
	if best, ok := e[word]; !ok || cost < best {
		e[word] = cost
	}
}

// Cost returns the best known cost for word.
func (e Explored) Cost(word string) (int, bool) {
	c, ok := e[word]
	return c, ok
}

// entry is a heap slot; index is kept current by the heap callbacks so a
// word's entry can be fixed in place.
type entry struct {
	node  Node
	index int
}

// nodeHeap orders entries by priority, then by word.
type nodeHeap []*entry

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].node.Priority != h[j].node.Priority {
		return h[i].node.Priority < h[j].node.Priority
	}
	return h[i].node.Word < h[j].node.Word
}

func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *nodeHeap) Push(x any) {
	e := x.(*entry)
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}

// Frontier is the open set: a min-heap of nodes with at most one entry per word.
// A word-to-entry map gives decrease-key in O(log n) without scanning.
type Frontier struct {
	heap   nodeHeap
	byWord map[string]*entry
}

// NewFrontier returns an empty frontier.
func NewFrontier() *Frontier {
	return &Frontier{byWord: make(map[string]*entry)}
}

// Len returns the number of pending nodes.
func (f *Frontier) Len() int {
	return len(f.heap)
}

// Push inserts n. If the word is already pending, the entry with the lower
// priority survives; on equal priority the existing entry is kept.
// It reports whether n is now in the frontier.
func (f *Frontier) Push(n Node) bool {
	if e, ok := f.byWord[n.Word]; ok {
		if n.Priority >= e.node.Priority {
			return false
		}
		e.node = n
		heap.Fix(&f.heap, e.index)
		return true
	}
	e := &entry{node: n}
	heap.Push(&f.heap, e)
	f.byWord[n.Word] = e
	return true
}

// PopMin removes and returns the lowest priority node.
// ok is false once the frontier is exhausted.
func (f *Frontier) PopMin() (n Node, ok bool) {
	if len(f.heap) == 0 {
		return Node{}, false
	}
	e := heap.Pop(&f.heap).(*entry)
	delete(f.byWord, e.node.Word)
	return e.node, true
}

// Upsert discards n when explored already holds a cost for the word that is
// less than or equal to n.Cost, and otherwise behaves like Push.
func (f *Frontier) Upsert(n Node, explored Explored) bool {
	if best, ok := explored.Cost(n.Word); ok && best <= n.Cost {
		return false
	}
	return f.Push(n)
}
