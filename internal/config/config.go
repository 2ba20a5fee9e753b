// Package config loads Mini-CRM settings from an optional YAML file, a .env
// file and the process environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	// Timezone names must resolve even in images without a zoneinfo database.
	_ "time/tzdata"
)

type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	JWT      JWTConfig      `koanf:"jwt"`
	CORS     CORSConfig     `koanf:"cors"`
	App      AppConfig      `koanf:"app"`
	Log      LogConfig      `koanf:"log"`
}

type ServerConfig struct {
	Port            string        `koanf:"port"`
	Mode            string        `koanf:"mode"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Driver          string        `koanf:"driver"` // "postgres" or "sqlite"
	URL             string        `koanf:"url"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
}

type JWTConfig struct {
	Secret string        `koanf:"secret"`
	TTL    time.Duration `koanf:"ttl"`
}

type CORSConfig struct {
	// Comma separated list, as it arrives from ALLOWED_ORIGINS.
	AllowedOrigins string `koanf:"allowed_origins"`
	ClientURL      string `koanf:"client_url"`
}

type AppConfig struct {
	Timezone string `koanf:"timezone"`
}

type LogConfig struct {
	Level       string `koanf:"level"`
	Development bool   `koanf:"development"`
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Default allowed origins for development.
var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "5000"
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = "release"
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}

	if cfg.Database.Driver == "" {
		cfg.Database.Driver = DriverPostgres
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 30 * time.Minute
	}

	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 168 * time.Hour
	}

	if cfg.App.Timezone == "" {
		cfg.App.Timezone = "UTC"
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

// Validate reports the first setting that prevents the server from starting.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET environment variable is not set")
	}

	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	if c.Database.URL == "" {
		return errors.New("DATABASE_URL environment variable is not set")
	}

	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unsupported server mode %q", c.Server.Mode)
	}

	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.App.Timezone, err)
	}

	return nil
}

// Origins merges the development defaults with CLIENT_URL and ALLOWED_ORIGINS.
func (c CORSConfig) Origins() []string {
	origins := make([]string, len(defaultOrigins))
	copy(origins, defaultOrigins)

	if c.ClientURL != "" {
		origins = append(origins, c.ClientURL)
	}

	for _, origin := range strings.Split(c.AllowedOrigins, ",") {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	return origins
}

// Location resolves the timezone that calendar windows are anchored to.
func (a AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
