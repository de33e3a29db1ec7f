package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
)

const (
	DefaultMediaURL      = "/media/"
	DefaultMigrationsDir = "docs/patches"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host     string
		Port     int
		MediaURL string
	}
	Seed struct {
		MigrationsDir string
	}
	Sentry struct {
		DSN         string
		Environment string
	}
}

// Load reads a TOML file and fills unset application values with defaults.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	cfg.setDefaults()
	return &cfg, nil
}

// FromURL builds a config from a database URL, used when no config file is given.
func FromURL(databaseURL string, maxConns int, maxConnLifetime string) (*Config, error) {
	opt, err := pg.ParseURL(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	opt.MaxRetries = 3
	opt.PoolSize = maxConns

	if maxConnLifetime != "" {
		lifetime, err := time.ParseDuration(maxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("failed to parse DB_MAX_CONN_LIFETIME: %w", err)
		}
		opt.MaxConnAge = lifetime
	}

	cfg := Config{Database: *opt}
	cfg.setDefaults()
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.App.Port == 0 {
		c.App.Port = 3000
	}
	if c.App.MediaURL == "" {
		c.App.MediaURL = DefaultMediaURL
	}
	if c.Seed.MigrationsDir == "" {
		c.Seed.MigrationsDir = DefaultMigrationsDir
	}
}

// DatabaseURL returns a postgres URL for tools that do not take pg.Options.
func (c *Config) DatabaseURL() string {
	sslMode := "disable"
	if c.Database.TLSConfig != nil {
		sslMode = "require"
	}

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		c.Database.User, c.Database.Password, c.Database.Addr, c.Database.Database, sslMode)
}
