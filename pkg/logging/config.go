package logging

import (
	"fmt"
	"maps"
	"os"
	"strings"
)

// Env maps environment variable names for logging configuration.
// Systems holds comma-separated system=level pairs such as
// "ingestion=debug,search=warn".
type Env struct {
	Level   string
	Format  string
	Systems string
}

// Config holds logging configuration settings.
//
// Systems overrides Level for loggers scoped with a "system" attribute,
// keyed by the system name (ingestion, search, documents, database, storage, http).
type Config struct {
	Level   Level            `toml:"level"`
	Format  Format           `toml:"format"`
	Systems map[string]Level `toml:"systems"`
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize(env *Env) error {
	if c.Level == "" {
		c.Level = LevelInfo
	}
	if c.Format == "" {
		c.Format = FormatText
	}
	if env != nil {
		if err := c.loadEnv(env); err != nil {
			return err
		}
	}
	return c.validate()
}

// Merge applies non-zero values from the overlay configuration.
// System levels merge key by key.
func (c *Config) Merge(overlay *Config) {
	if overlay.Level != "" {
		c.Level = overlay.Level
	}
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
	if len(overlay.Systems) > 0 {
		if c.Systems == nil {
			c.Systems = make(map[string]Level, len(overlay.Systems))
		}
		maps.Copy(c.Systems, overlay.Systems)
	}
}

func (c *Config) loadEnv(env *Env) error {
	if v := getenv(env.Level); v != "" {
		c.Level = Level(v)
	}
	if v := getenv(env.Format); v != "" {
		c.Format = Format(v)
	}
	if v := getenv(env.Systems); v != "" {
		systems, err := parseSystems(v)
		if err != nil {
			return err
		}
		c.Systems = systems
	}
	return nil
}

func (c *Config) validate() error {
	if err := c.Level.Validate(); err != nil {
		return err
	}
	if err := c.Format.Validate(); err != nil {
		return err
	}
	for name, lvl := range c.Systems {
		if err := lvl.Validate(); err != nil {
			return fmt.Errorf("system %s: %w", name, err)
		}
	}
	return nil
}

func parseSystems(v string) (map[string]Level, error) {
	systems := make(map[string]Level)
	for pair := range strings.SplitSeq(v, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, lvl, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid system level %q (want name=level)", pair)
		}
		systems[strings.TrimSpace(name)] = Level(strings.TrimSpace(lvl))
	}
	return systems, nil
}

func getenv(name string) string {
	if name == "" {
		return ""
	}
	return os.Getenv(name)
}
