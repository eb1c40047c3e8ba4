package config

import (
	"errors"
	"fmt"
)

// Store backends selectable at runtime
const (
	StoreMemory = "memory"
	StoreDisk   = "disk"
	StoreRedis  = "redis"
)

// Config holds the runtime configuration for the engine server. The
// persistence backend is chosen here, by configuration and not build flags,
// so every backend runs through the same store interface.
type Config struct {
	Bind          string
	Port          int
	Store         string
	SaveDir       string
	RedisAddr     string
	RedisPassword string
	MaxRounds     int
	Verbose       bool
}

// Validate checks the configuration before any wiring happens
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.Port)
	}

	switch c.Store {
	case StoreMemory:
	case StoreDisk:
		if c.SaveDir == "" {
			return errors.New("--save-dir is required with the disk store")
		}
	case StoreRedis:
		if c.RedisAddr == "" {
			return errors.New("--redis-addr is required with the redis store")
		}
	default:
		return fmt.Errorf("unknown store backend %q (expected memory, disk or redis)", c.Store)
	}

	if c.MaxRounds < 1 {
		return fmt.Errorf("invalid max rounds: %d", c.MaxRounds)
	}

	return nil
}

// ListenAddr returns the bind address for the HTTP server
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Bind, c.Port)
}
