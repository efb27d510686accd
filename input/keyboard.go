package input

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// Keyboard reads terminal events and delivers actions to a sink
type Keyboard struct {
	screen   tcell.Screen
	keys     *KeyMap
	sink     Sink
	onResize func()
	log      *zap.Logger
}

// NewKeyboard creates a keyboard source
// onResize may be nil
func NewKeyboard(screen tcell.Screen, keys *KeyMap, sink Sink, onResize func(), log *zap.Logger) *Keyboard {
	if keys == nil {
		keys = DefaultKeyMap()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Keyboard{
		screen:   screen,
		keys:     keys,
		sink:     sink,
		onResize: onResize,
		log:      log,
	}
}

// Run polls events until a quit key, screen shutdown, or ctx cancellation
// It returns true when the player asked to quit
func (k *Keyboard) Run(ctx context.Context) bool {
	stop := context.AfterFunc(ctx, func() {
		// Wake PollEvent so the loop observes cancellation
		_ = k.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for {
		ev := k.screen.PollEvent()
		if ev == nil {
			return false
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok && ctx.Err() != nil {
			return false
		}

		in := k.keys.Translate(ev)
		switch in.Type {
		case IntentQuit:
			k.log.Info("quit requested")
			return true
		case IntentResize:
			if k.onResize != nil {
				k.onResize()
			}
		case IntentAction:
			k.sink(in.Action)
		}
	}
}
