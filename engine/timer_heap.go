package engine

import (
	"container/heap"
	"time"
)

// timerEntry is one scheduled callback
type timerEntry struct {
	deadline time.Time
	seq      uint64 // Tie-breaker, preserves scheduling order for equal deadlines
	fn       func()
	index    int // Heap position, -1 once popped or removed
}

// timerHeap orders entries by deadline then scheduling order
type timerHeap []*timerEntry

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].deadline.Equal(h[j].deadline) {
		return h[i].seq < h[j].seq
	}
	return h[i].deadline.Before(h[j].deadline)
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	e := x.(*timerEntry)
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}

// peek returns the earliest entry without removing it
func (h timerHeap) peek() *timerEntry {
	if len(h) == 0 {
		return nil
	}
	return h[0]
}

// remove drops e if it is still scheduled
func (h *timerHeap) remove(e *timerEntry) bool {
	if e.index < 0 || e.index >= len(*h) || (*h)[e.index] != e {
		return false
	}
	heap.Remove(h, e.index)
	return true
}

// popDue removes and returns the earliest entry if its deadline is not after now
func (h *timerHeap) popDue(now time.Time) *timerEntry {
	top := h.peek()
	if top == nil || top.deadline.After(now) {
		return nil
	}
	return heap.Pop(h).(*timerEntry)
}
