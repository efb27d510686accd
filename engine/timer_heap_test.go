package engine

import (
	"container/heap"
	"testing"
	"time"
)

func TestTimerHeapOrdering(t *testing.T) {
	base := time.Unix(0, 0)
	var h timerHeap

	push := func(offset time.Duration, seq uint64) *timerEntry {
		e := &timerEntry{deadline: base.Add(offset), seq: seq}
		heap.Push(&h, e)
		return e
	}

	push(30*time.Millisecond, 0)
	push(10*time.Millisecond, 1)
	push(10*time.Millisecond, 2)
	removed := push(20*time.Millisecond, 3)
	push(5*time.Millisecond, 4)

	if !h.remove(removed) {
		t.Fatal("remove of scheduled entry returned false")
	}
	if h.remove(removed) {
		t.Error("second remove should report false")
	}

	if e := h.popDue(base); e != nil {
		t.Errorf("popDue before any deadline returned seq %d", e.seq)
	}

	var got []uint64
	for e := h.popDue(base.Add(time.Second)); e != nil; e = h.popDue(base.Add(time.Second)) {
		if e.index != -1 {
			t.Errorf("popped entry seq %d keeps index %d", e.seq, e.index)
		}
		got = append(got, e.seq)
	}

	want := []uint64{4, 1, 2, 0}
	if len(got) != len(want) {
		t.Fatalf("popped %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pop %d = seq %d, want %d", i, got[i], want[i])
		}
	}
}
