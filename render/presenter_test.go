package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/simon-says/game"
)

func newTestPresenter(t *testing.T) (*TerminalPresenter, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(40, 20)
	t.Cleanup(screen.Fini)
	return NewTerminalPresenter(screen), screen
}

// screenText returns every row of the screen joined by newlines
func screenText(s tcell.Screen) string {
	w, h := s.Size()
	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, _, _, _ := s.GetContent(x, y)
			if r == 0 {
				r = ' '
			}
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func TestTitleView(t *testing.T) {
	p, screen := newTestPresenter(t)
	p.SetHighScore(21)
	p.ShowView(game.ViewTitle)

	out := screenText(screen)
	for _, want := range []string{"SIMON SAYS", "PRESS ● TO START", "HIGH: 21", "▲ UP", "✱ SHAKE"} {
		if !strings.Contains(out, want) {
			t.Errorf("Title view missing %q:\n%s", want, out)
		}
	}
}

func TestPlayViewRoundAndScore(t *testing.T) {
	p, screen := newTestPresenter(t)
	p.ShowView(game.ViewPlay)
	p.UpdateRoundScore(4, 6)

	out := screenText(screen)
	if !strings.Contains(out, "ROUND 4") || !strings.Contains(out, "SCORE: 6") {
		t.Errorf("Expected round and score on play view:\n%s", out)
	}
	if strings.Contains(out, "SIMON SAYS") {
		t.Error("Title text still visible on play view")
	}
}

func TestEmitAndHideAction(t *testing.T) {
	tests := []struct {
		action game.Action
		symbol string
		label  string
	}{
		{game.ActionUp, "▲", "UP"},
		{game.ActionDown, "▼", "DOWN"},
		{game.ActionButton, "●", "BUTTON"},
		{game.ActionShake, "✱", "SHAKE"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			p, screen := newTestPresenter(t)
			p.ShowView(game.ViewPlay)

			p.EmitAction(tt.action)
			out := screenText(screen)
			if !strings.Contains(out, tt.symbol) || !strings.Contains(out, tt.label) {
				t.Errorf("Expected %s %s on screen:\n%s", tt.symbol, tt.label, out)
			}

			p.HideAction()
			if strings.Contains(screenText(screen), tt.symbol) {
				t.Errorf("Symbol %s still visible after HideAction", tt.symbol)
			}
		})
	}
}

func TestMessageLifecycle(t *testing.T) {
	p, screen := newTestPresenter(t)
	p.ShowView(game.ViewPlay)

	p.ShowMessage("WATCH")
	if !strings.Contains(screenText(screen), "WATCH") {
		t.Fatal("Expected message on screen")
	}

	p.ShowMessage("YOUR TURN")
	out := screenText(screen)
	if strings.Contains(out, "WATCH") || !strings.Contains(out, "YOUR TURN") {
		t.Errorf("Expected message replaced:\n%s", out)
	}

	p.HideMessage()
	if strings.Contains(screenText(screen), "YOUR TURN") {
		t.Error("Message still visible after HideMessage")
	}
}

func TestShowViewHidesActionAndMessage(t *testing.T) {
	p, screen := newTestPresenter(t)
	p.ShowView(game.ViewPlay)
	p.EmitAction(game.ActionShake)
	p.ShowMessage("WATCH")

	p.ShowView(game.ViewPlay)
	out := screenText(screen)
	if strings.Contains(out, "✱") || strings.Contains(out, "WATCH") {
		t.Errorf("Expected view switch to clear action and message:\n%s", out)
	}
}

func TestGameOverView(t *testing.T) {
	p, screen := newTestPresenter(t)
	p.ShowGameOver(10, 15)
	p.ShowView(game.ViewGameOver)

	out := screenText(screen)
	for _, want := range []string{"GAME OVER", "SCORE: 10", "HIGH: 15", "TO RESTART"} {
		if !strings.Contains(out, want) {
			t.Errorf("Game over view missing %q:\n%s", want, out)
		}
	}
}

func TestSmallScreenDoesNotPanic(t *testing.T) {
	p, screen := newTestPresenter(t)
	screen.SetSize(10, 4)

	p.ShowView(game.ViewPlay)
	p.EmitAction(game.ActionUp)
	p.ShowMessage("YOUR TURN")
	p.Redraw()
}
