// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Supported database drivers.
const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBDriver string `env:"KAGE_DB_DRIVER" envDefault:"sqlite"`
	DBPath   string `env:"KAGE_DB_PATH" envDefault:"./data/kagelife.db"`
	DBDSN    string `env:"KAGE_DB_DSN"` // MySQL DSN, required when KAGE_DB_DRIVER=mysql

	ServerHost string `env:"KAGE_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"KAGE_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"KAGE_ENV" envDefault:"development"`
	LogLevel   string `env:"KAGE_LOG_LEVEL" envDefault:"info"`

	// All "current time" values (created_at, updated_at, done_at, resolving
	// "today") use a fixed civil offset instead of the server zone. The
	// original deployment lives in UTC+8.
	UTCOffsetHours int `env:"KAGE_UTC_OFFSET_HOURS" envDefault:"8"`

	// Cache configuration for event-type reference data
	RedisURL     string `env:"KAGE_REDIS_URL"`                         // Optional Redis URL for distributed caching
	CachePrefix  string `env:"KAGE_CACHE_PREFIX" envDefault:"kage:"`   // Redis key prefix
	CacheTTL     int    `env:"KAGE_CACHE_TTL" envDefault:"3600"`       // Default cache TTL in seconds
	CacheMaxSize int    `env:"KAGE_CACHE_MAX_SIZE" envDefault:"10000"` // Max memory cache entries

	// Seeding configuration
	DoSeed bool `env:"KAGE_DO_SEED" envDefault:"true"` // Seed event-type reference data when empty
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// Location returns the fixed civil time zone used for all timestamp writes
// and date-only filters.
func (c Config) Location() *time.Location {
	name := fmt.Sprintf("UTC+%d", c.UTCOffsetHours)
	if c.UTCOffsetHours < 0 {
		name = fmt.Sprintf("UTC%d", c.UTCOffsetHours)
	}
	return time.FixedZone(name, c.UTCOffsetHours*3600)
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	switch cfg.DBDriver {
	case DriverSQLite:
		if cfg.DBPath == "" {
			return nil, fmt.Errorf("KAGE_DB_PATH is required for the sqlite driver")
		}
	case DriverMySQL:
		if cfg.DBDSN == "" {
			return nil, fmt.Errorf("KAGE_DB_DSN is required for the mysql driver")
		}
	default:
		return nil, fmt.Errorf("unsupported KAGE_DB_DRIVER %q (use %q or %q)", cfg.DBDriver, DriverSQLite, DriverMySQL)
	}

	if cfg.UTCOffsetHours < -12 || cfg.UTCOffsetHours > 14 {
		return nil, fmt.Errorf("KAGE_UTC_OFFSET_HOURS %d is outside the valid range [-12, 14]", cfg.UTCOffsetHours)
	}

	return cfg, nil
}
