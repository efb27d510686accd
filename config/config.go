// Package config resolves runtime settings from defaults, a .env file,
// SIMON_* environment variables and command-line flags, in that order
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Storage backends
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
	BackendNone   = "none"
)

// ErrInvalidBackend is returned for an unknown storage backend name
var ErrInvalidBackend = errors.New("invalid storage backend")

// Config holds process settings
type Config struct {
	Backend string

	SQLitePath string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisKey      string

	LogFile  string
	LogLevel string

	// Empty disables the remote bridge and the HTTP server
	BridgeAddr string

	// Zero seeds from the clock
	Seed int64
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Backend:    BackendSQLite,
		SQLitePath: "data/simon.db",
		RedisAddr:  "localhost:6379",
		RedisKey:   "simon:high_score",
		LogLevel:   "info",
	}
}

// Load builds the configuration for args (without the program name)
// envFiles are loaded with godotenv first; missing files are ignored
func Load(args []string, envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("simon", flag.ContinueOnError)
	fs.StringVar(&cfg.Backend, "store", cfg.Backend, "High score backend: sqlite, redis, memory, none")
	fs.StringVar(&cfg.SQLitePath, "db", cfg.SQLitePath, "SQLite database path")
	fs.StringVar(&cfg.RedisAddr, "redis-addr", cfg.RedisAddr, "Redis address")
	fs.StringVar(&cfg.RedisPassword, "redis-password", cfg.RedisPassword, "Redis password")
	fs.IntVar(&cfg.RedisDB, "redis-db", cfg.RedisDB, "Redis database number")
	fs.StringVar(&cfg.RedisKey, "redis-key", cfg.RedisKey, "Redis key holding the high score")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Log file path (empty disables logging)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.BridgeAddr, "bridge", cfg.BridgeAddr, "Listen address for the remote input bridge (empty disables)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Sequence RNG seed (0 uses the clock)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate normalizes and checks the backend selection
func (c *Config) Validate() error {
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	switch c.Backend {
	case BackendSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("%w: sqlite requires a database path", ErrInvalidBackend)
		}
	case BackendRedis:
		if c.RedisAddr == "" || c.RedisKey == "" {
			return fmt.Errorf("%w: redis requires an address and key", ErrInvalidBackend)
		}
	case BackendMemory, BackendNone:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidBackend, c.Backend)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Backend = getEnv("SIMON_STORE", c.Backend)
	c.SQLitePath = getEnv("SIMON_DB_PATH", c.SQLitePath)
	c.RedisAddr = getEnv("SIMON_REDIS_ADDR", c.RedisAddr)
	c.RedisPassword = getEnv("SIMON_REDIS_PASSWORD", c.RedisPassword)
	c.RedisKey = getEnv("SIMON_REDIS_KEY", c.RedisKey)
	c.LogFile = getEnv("SIMON_LOG_FILE", c.LogFile)
	c.LogLevel = getEnv("SIMON_LOG_LEVEL", c.LogLevel)
	c.BridgeAddr = getEnv("SIMON_BRIDGE_ADDR", c.BridgeAddr)

	if v := os.Getenv("SIMON_REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SIMON_REDIS_DB: %w", err)
		}
		c.RedisDB = n
	}
	if v := os.Getenv("SIMON_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("SIMON_SEED: %w", err)
		}
		c.Seed = n
	}
	return nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
