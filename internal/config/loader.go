package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const maxConfigFileSize = 1024 * 1024 // 1MB

// envKeys maps the environment variables the service understands onto
// config keys. Anything not listed here is ignored.
var envKeys = map[string]string{
	"PORT":                 "server.port",
	"GIN_MODE":             "server.mode",
	"SHUTDOWN_TIMEOUT":     "server.shutdown_timeout",
	"DATABASE_DRIVER":      "database.driver",
	"DATABASE_URL":         "database.url",
	"DB_MAX_OPEN_CONNS":    "database.max_open_conns",
	"DB_MAX_IDLE_CONNS":    "database.max_idle_conns",
	"DB_CONN_MAX_LIFETIME": "database.conn_max_lifetime",
	"JWT_SECRET":           "jwt.secret",
	"JWT_TTL":              "jwt.ttl",
	"ALLOWED_ORIGINS":      "cors.allowed_origins",
	"CLIENT_URL":           "cors.client_url",
	"TIMEZONE":             "app.timezone",
	"LOG_LEVEL":            "log.level",
	"LOG_DEVELOPMENT":      "log.development",
}

// Load reads configuration with the following precedence (highest first):
//  1. Process environment (PORT, DATABASE_URL, JWT_SECRET, ...)
//  2. .env in the working directory, when present
//  3. The YAML file at configPath, when configPath is not empty
//  4. Built-in defaults
func Load(configPath string) (*Config, error) {
	// godotenv never overrides variables that are already set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	k := koanf.New(".")

	if configPath != "" {
		content, err := readConfigFile(configPath)
		if err != nil {
			return nil, err
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", func(s string) string {
		return envKeys[strings.ToUpper(s)]
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func readConfigFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigFileSize)
	}

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return content, nil
}
