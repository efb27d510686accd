package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lixenwraith/simon-says/game"
)

const redisDialTimeout = 2 * time.Second

// RedisOptions selects the server and key
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Key      string
}

// Redis stores the high score as a string key
type Redis struct {
	client *redis.Client
	key    string
}

// OpenRedis connects and pings the server
func OpenRedis(opts RedisOptions) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        opts.Addr,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: redisDialTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisDialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opts.Addr, err)
	}
	return &Redis{client: client, key: opts.Key}, nil
}

// LoadHighScore reads the key, a missing key is game.ErrNoHighScore
func (r *Redis) LoadHighScore(ctx context.Context) (int, error) {
	score, err := r.client.Get(ctx, r.key).Int()
	if errors.Is(err, redis.Nil) {
		return 0, game.ErrNoHighScore
	}
	if err != nil {
		return 0, fmt.Errorf("load high score: %w", err)
	}
	return score, nil
}

// SaveHighScore sets the key without expiry
func (r *Redis) SaveHighScore(ctx context.Context, score int) error {
	if err := r.client.Set(ctx, r.key, score, 0).Err(); err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	return nil
}

// Close closes the client
func (r *Redis) Close() error {
	return r.client.Close()
}
