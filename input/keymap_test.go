package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/simon-says/game"
)

func TestDefaultKeyMapTranslate(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		ev   tcell.Event
		want Intent
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), action(game.ActionUp)},
		{"arrow down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), action(game.ActionDown)},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), action(game.ActionButton)},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), action(game.ActionButton)},
		{"s", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), action(game.ActionShake)},
		{"S", tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModShift), action(game.ActionShake)},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), Intent{Type: IntentQuit}},
		{"ctrl+c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), Intent{Type: IntentQuit}},
		{"ctrl+q", tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl), Intent{Type: IntentQuit}},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), Intent{}},
		{"unbound key", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), Intent{}},
		{"resize", tcell.NewEventResize(80, 24), Intent{Type: IntentResize}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Translate(tt.ev); got != tt.want {
				t.Errorf("Translate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestKeyMapBind(t *testing.T) {
	km := DefaultKeyMap()
	km.Bind('K', game.ActionUp)

	got := km.Translate(tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone))
	if got != action(game.ActionUp) {
		t.Errorf("Translate(k) = %+v, want up", got)
	}
}
