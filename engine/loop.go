package engine

import (
	"container/heap"
	"sync"
	"sync/atomic"
	"time"
)

// Loop is a single goroutine that runs posted tasks and due timers serially
// It is the only thread of control allowed to touch game state
type Loop struct {
	tasks chan func()
	wake  chan struct{}

	mu     sync.Mutex
	timers timerHeap
	seq    uint64

	clock TimeProvider

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	crashHandler func(any)
}

// NewLoop creates a stopped loop with a task queue of the given capacity
func NewLoop(queueSize int) *Loop {
	if queueSize < 1 {
		queueSize = 1
	}
	return &Loop{
		tasks:    make(chan func(), queueSize),
		wake:     make(chan struct{}, 1),
		clock:    NewMonotonicTimeProvider(),
		stopChan: make(chan struct{}),
	}
}

// SetCrashHandler installs the handler invoked when a task panics, must be called before Start()
// Without a handler the panic propagates and terminates the process
func (l *Loop) SetCrashHandler(fn func(any)) {
	l.crashHandler = fn
}

// Start begins the loop goroutine
func (l *Loop) Start() {
	if l.running.CompareAndSwap(false, true) {
		l.wg.Add(1)
		go l.run()
	}
}

// Stop halts the loop and drops every pending timer
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
		if l.running.Load() {
			l.wg.Wait()
		}
		l.mu.Lock()
		l.timers = nil
		l.mu.Unlock()
	})
}

// Post queues fn for execution on the loop, returns false once stopped
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.stopChan:
		return false
	default:
	}

	select {
	case l.tasks <- fn:
		return true
	case <-l.stopChan:
		return false
	}
}

// Do runs fn on the loop and waits for it to finish
func (l *Loop) Do(fn func()) bool {
	done := make(chan struct{})
	if !l.Post(func() {
		defer close(done)
		fn()
	}) {
		return false
	}

	select {
	case <-done:
		return true
	case <-l.stopChan:
		return false
	}
}

// After schedules fn to run on the loop once d has elapsed
func (l *Loop) After(d time.Duration, fn func()) (cancel func()) {
	if d < 0 {
		d = 0
	}

	l.mu.Lock()
	e := &timerEntry{
		deadline: l.clock.Now().Add(d),
		seq:      l.seq,
		fn:       fn,
	}
	l.seq++
	heap.Push(&l.timers, e)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}

	return func() {
		l.mu.Lock()
		l.timers.remove(e)
		l.mu.Unlock()
	}
}

// Pending returns the number of scheduled timers
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.timers)
}

// run is the loop body: due timers first, then wait for the next deadline, task or wake-up
func (l *Loop) run() {
	defer l.wg.Done()

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		l.runDue()

		var timerC <-chan time.Time
		l.mu.Lock()
		if next := l.timers.peek(); next != nil {
			sleep := next.deadline.Sub(l.clock.Now())
			if sleep < 0 {
				sleep = 0
			}
			timer.Reset(sleep)
			timerC = timer.C
		}
		l.mu.Unlock()

		select {
		case <-l.stopChan:
			return
		case fn := <-l.tasks:
			l.exec(fn)
		case <-l.wake:
		case <-timerC:
		}
		timer.Stop()
	}
}

// runDue executes every timer whose deadline has passed, one at a time so callbacks may schedule more
func (l *Loop) runDue() {
	for {
		select {
		case <-l.stopChan:
			return
		default:
		}

		l.mu.Lock()
		e := l.timers.popDue(l.clock.Now())
		l.mu.Unlock()
		if e == nil {
			return
		}
		l.exec(e.fn)
	}
}

// exec runs fn, routing panics to the crash handler when one is set
func (l *Loop) exec(fn func()) {
	if l.crashHandler != nil {
		defer func() {
			if r := recover(); r != nil {
				l.crashHandler(r)
			}
		}()
	}
	fn()
}
