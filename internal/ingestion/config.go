package ingestion

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Env maps environment variable names for ingestion configuration.
type Env struct {
	ChunkSize   string
	Workers     string
	QueueSize   string
	FailTimeout string
}

// Config controls chunking and the background worker pool.
type Config struct {
	// ChunkSize is the maximum chunk length in runes.
	ChunkSize   int    `toml:"chunk_size"`
	Workers     int    `toml:"workers"`
	QueueSize   int    `toml:"queue_size"`
	FailTimeout string `toml:"fail_timeout"`
}

// FailTimeoutDuration bounds the compensating failed-status write.
func (c *Config) FailTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.FailTimeout)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies non-zero values from overlay onto the receiver.
func (c *Config) Merge(overlay *Config) {
	if overlay.ChunkSize != 0 {
		c.ChunkSize = overlay.ChunkSize
	}
	if overlay.Workers != 0 {
		c.Workers = overlay.Workers
	}
	if overlay.QueueSize != 0 {
		c.QueueSize = overlay.QueueSize
	}
	if overlay.FailTimeout != "" {
		c.FailTimeout = overlay.FailTimeout
	}
}

func (c *Config) loadDefaults() {
	if c.ChunkSize == 0 {
		c.ChunkSize = 800
	}
	if c.Workers == 0 {
		c.Workers = 4
	}
	if c.QueueSize == 0 {
		c.QueueSize = 64
	}
	if c.FailTimeout == "" {
		c.FailTimeout = "10s"
	}
}

func (c *Config) loadEnv(env *Env) {
	setInt := func(name string, dst *int) {
		if name == "" {
			return
		}
		if v := os.Getenv(name); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}

	setInt(env.ChunkSize, &c.ChunkSize)
	setInt(env.Workers, &c.Workers)
	setInt(env.QueueSize, &c.QueueSize)
	if env.FailTimeout != "" {
		if v := os.Getenv(env.FailTimeout); v != "" {
			c.FailTimeout = v
		}
	}
}

func (c *Config) validate() error {
	if c.ChunkSize < 1 {
		return fmt.Errorf("chunk_size must be positive")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive")
	}
	if c.QueueSize < 1 {
		return fmt.Errorf("queue_size must be positive")
	}
	d, err := time.ParseDuration(c.FailTimeout)
	if err != nil {
		return fmt.Errorf("invalid fail_timeout: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("fail_timeout must be positive")
	}
	return nil
}
