package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vk/hyago/internal/engine"
)

// DefaultNamespace prefixes every core resolver key unless Config.Namespace
// says otherwise.
const DefaultNamespace = "hya"

// Config holds all the necessary configuration for an App instance.
type Config struct {
	ConfigPaths []string // .hcl files or directories
	Namespace   string   // resolver key prefix, "hya" by default

	LogFormat string // "text" or "json"
	LogLevel  string // "debug", "info", "warn" or "error"
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.ConfigPaths) == 0 {
		return nil, errors.New("ConfigPaths is a required configuration field and cannot be empty")
	}

	if cfg.Namespace == "" {
		cfg.Namespace = DefaultNamespace
	}
	if _, err := engine.FunctionName(cfg.Namespace); err != nil {
		return nil, fmt.Errorf("invalid namespace: %w", err)
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	switch cfg.LogFormat {
	case "":
		cfg.LogFormat = "text"
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "":
		cfg.LogLevel = "info"
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	cfg.ConfigPaths = append([]string(nil), cfg.ConfigPaths...)
	return &cfg, nil
}
