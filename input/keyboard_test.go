package input

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/simon-says/game"
)

type actionLog struct {
	mu      sync.Mutex
	actions []game.Action
}

func (l *actionLog) sink(a game.Action) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.actions = append(l.actions, a)
}

func (l *actionLog) snapshot() []game.Action {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]game.Action(nil), l.actions...)
}

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	return screen
}

func TestKeyboardDeliversActionsUntilQuit(t *testing.T) {
	screen := newSimScreen(t)
	var log actionLog
	resized := make(chan struct{}, 4)
	kb := NewKeyboard(screen, nil, log.sink, func() { resized <- struct{}{} }, nil)

	done := make(chan bool, 1)
	go func() { done <- kb.Run(context.Background()) }()

	events := []tcell.Event{
		tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone),
		tcell.NewEventResize(50, 20),
		tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	}
	for _, ev := range events {
		if err := screen.PostEvent(ev); err != nil {
			t.Fatalf("PostEvent: %v", err)
		}
	}

	select {
	case quit := <-done:
		if !quit {
			t.Error("Expected Run to report a quit request")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Keyboard did not stop on Ctrl+C")
	}

	want := []game.Action{game.ActionUp, game.ActionButton, game.ActionShake}
	got := log.snapshot()
	if len(got) != len(want) {
		t.Fatalf("Delivered %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("action %d = %v, want %v", i, got[i], want[i])
		}
	}

	select {
	case <-resized:
	default:
		t.Error("Expected resize callback")
	}
}

func TestKeyboardStopsOnContextCancel(t *testing.T) {
	screen := newSimScreen(t)
	var log actionLog
	kb := NewKeyboard(screen, nil, log.sink, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan bool, 1)
	go func() { done <- kb.Run(ctx) }()

	cancel()
	select {
	case quit := <-done:
		if quit {
			t.Error("Cancellation must not be reported as a quit request")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Keyboard did not stop on cancellation")
	}
}
