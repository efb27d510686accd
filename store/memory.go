package store

import (
	"context"
	"sync"

	"github.com/lixenwraith/simon-says/game"
)

// Memory keeps the high score in process memory
type Memory struct {
	mu    sync.RWMutex
	value int
	set   bool
}

// NewMemory returns an empty in-memory store
func NewMemory() *Memory {
	return &Memory{}
}

// LoadHighScore returns the stored value or game.ErrNoHighScore
func (m *Memory) LoadHighScore(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.set {
		return 0, game.ErrNoHighScore
	}
	return m.value, nil
}

// SaveHighScore overwrites the stored value
func (m *Memory) SaveHighScore(ctx context.Context, score int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = score
	m.set = true
	return nil
}

func (m *Memory) Close() error { return nil }
