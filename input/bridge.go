package input

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/lixenwraith/simon-says/constants"
	"github.com/lixenwraith/simon-says/game"
)

// Device event names sent by the handheld
const (
	EventScrollUp      = "scrollUp"
	EventScrollDown    = "scrollDown"
	EventSideClick     = "sideClick"
	EventAccelerometer = "accelerometer"
)

var (
	ErrUnknownEvent = errors.New("unknown event")
	ErrNoShake      = errors.New("below shake threshold")
)

// Message is one device event
// Either Event (with Data for accelerometer samples) or Action is set
type Message struct {
	Event  string  `json:"event,omitempty"`
	Action string  `json:"action,omitempty"`
	Data   *Vector `json:"data,omitempty"`
}

// Vector is an accelerometer sample
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// reply acknowledges each message
type reply struct {
	OK     bool   `json:"ok"`
	Action string `json:"action,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Bridge accepts device events over a websocket and feeds them to a sink
type Bridge struct {
	upgrader websocket.Upgrader
	sink     Sink
	shake    *ShakeDetector
	log      *zap.Logger

	mu     sync.Mutex
	conns  map[*websocket.Conn]struct{}
	closed bool
}

// NewBridge creates a bridge delivering to sink
func NewBridge(sink Sink, shake *ShakeDetector, log *zap.Logger) *Bridge {
	if shake == nil {
		shake = NewShakeDetector()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Bridge{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Devices connect from app webviews with arbitrary origins
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		sink:  sink,
		shake: shake,
		log:   log,
		conns: make(map[*websocket.Conn]struct{}),
	}
}

// Classify maps a device message to a player action
func (b *Bridge) Classify(m Message) (game.Action, error) {
	if m.Action != "" {
		if a, ok := game.ParseAction(m.Action); ok {
			return a, nil
		}
		return 0, ErrUnknownEvent
	}

	switch m.Event {
	case EventScrollUp:
		return game.ActionUp, nil
	case EventScrollDown:
		return game.ActionDown, nil
	case EventSideClick:
		return game.ActionButton, nil
	case EventAccelerometer:
		if m.Data != nil && b.shake.Detect(m.Data.X, m.Data.Y, m.Data.Z) {
			return game.ActionShake, nil
		}
		return 0, ErrNoShake
	default:
		return 0, ErrUnknownEvent
	}
}

// ServeHTTP upgrades the connection and reads events until it closes
func (b *Bridge) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		b.log.Warn("bridge upgrade failed", zap.Error(err))
		return
	}
	if !b.track(conn) {
		_ = conn.Close()
		return
	}
	defer b.untrack(conn)

	remote := r.RemoteAddr
	b.log.Info("bridge connected", zap.String("remote", remote))
	defer b.log.Info("bridge disconnected", zap.String("remote", remote))

	conn.SetReadLimit(constants.BridgeReadLimit)
	_ = conn.SetReadDeadline(time.Now().Add(constants.BridgeReadDeadline))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(constants.BridgeReadDeadline))
	})

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				b.log.Debug("bridge read failed", zap.Error(err))
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(constants.BridgeReadDeadline))

		var resp reply
		var m Message
		if err := json.Unmarshal(payload, &m); err != nil {
			resp.Error = "invalid json"
		} else if a, err := b.Classify(m); err != nil {
			// Sub-threshold accelerometer samples are normal traffic
			resp.OK = errors.Is(err, ErrNoShake)
			if !resp.OK {
				resp.Error = err.Error()
			}
		} else {
			b.sink(a)
			resp.OK = true
			resp.Action = a.String()
		}

		_ = conn.SetWriteDeadline(time.Now().Add(constants.BridgeWriteTimeout))
		if err := conn.WriteJSON(resp); err != nil {
			return
		}
	}
}

// Close disconnects every device and rejects new connections
func (b *Bridge) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	for c := range b.conns {
		_ = c.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutdown"),
			time.Now().Add(constants.BridgeWriteTimeout))
		_ = c.Close()
	}
}

func (b *Bridge) track(c *websocket.Conn) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return false
	}
	b.conns[c] = struct{}{}
	return true
}

func (b *Bridge) untrack(c *websocket.Conn) {
	b.mu.Lock()
	delete(b.conns, c)
	b.mu.Unlock()
	_ = c.Close()
}
