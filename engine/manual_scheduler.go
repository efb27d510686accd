package engine

import (
	"container/heap"
	"sync"
	"time"
)

// ManualScheduler is a virtual clock for tests, callbacks fire only inside Advance
type ManualScheduler struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers timerHeap
}

// NewManualScheduler creates a manual scheduler starting at the given time
func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{now: start}
}

// Now returns the current virtual time
func (m *ManualScheduler) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// After schedules fn at now+d
func (m *ManualScheduler) After(d time.Duration, fn func()) (cancel func()) {
	if d < 0 {
		d = 0
	}

	m.mu.Lock()
	e := &timerEntry{deadline: m.now.Add(d), seq: m.seq, fn: fn}
	m.seq++
	heap.Push(&m.timers, e)
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		m.timers.remove(e)
		m.mu.Unlock()
	}
}

// Advance moves the clock forward by d, firing due callbacks in deadline order
// Callbacks scheduled while advancing fire too if they fall inside the window
// Returns the number of callbacks fired
func (m *ManualScheduler) Advance(d time.Duration) int {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	fired := 0
	for {
		m.mu.Lock()
		e := m.timers.popDue(target)
		if e == nil {
			m.now = target
			m.mu.Unlock()
			return fired
		}
		m.now = e.deadline
		m.mu.Unlock()

		e.fn()
		fired++
	}
}

// RunUntilIdle fires callbacks until none remain or limit is reached
// Returns the virtual time consumed
func (m *ManualScheduler) RunUntilIdle(limit int) time.Duration {
	m.mu.Lock()
	start := m.now
	m.mu.Unlock()

	for i := 0; i < limit; i++ {
		next, ok := m.NextDeadline()
		if !ok {
			break
		}
		m.Advance(next)
	}

	return m.Now().Sub(start)
}

// NextDeadline returns the delay until the earliest pending callback
func (m *ManualScheduler) NextDeadline() (time.Duration, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	top := m.timers.peek()
	if top == nil {
		return 0, false
	}
	return top.deadline.Sub(m.now), true
}

// Pending returns the number of scheduled callbacks
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}
