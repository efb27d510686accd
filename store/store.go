// Package store persists the single high score value
//
// Backends:
//   - memory: process-local, used by tests and the "memory" backend
//   - sqlite: one-row table in a local database file
//   - redis:  a string key holding the decimal score
//   - none:   loads report game.ErrNoHighScore, saves succeed
//
// Every backend reports a missing value as game.ErrNoHighScore.
package store

import (
	"fmt"
	"io"

	"github.com/lixenwraith/simon-says/config"
	"github.com/lixenwraith/simon-says/game"
)

// Store is a game.Storage that owns backend resources
type Store interface {
	game.Storage
	io.Closer
}

// Open returns the backend selected by cfg
func Open(cfg *config.Config) (Store, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		s, err := OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.BackendRedis:
		r, err := OpenRedis(RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Key:      cfg.RedisKey,
		})
		if err != nil {
			return nil, err
		}
		return r, nil
	case config.BackendMemory:
		return NewMemory(), nil
	case config.BackendNone:
		return nopStore{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrInvalidBackend, cfg.Backend)
	}
}

// nopStore adds Close to game.NopStorage
type nopStore struct {
	game.NopStorage
}

func (nopStore) Close() error { return nil }
