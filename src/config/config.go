package config

import (
	"fmt"
	"log/slog"

	"github.com/kelseyhightower/envconfig"
)

const (
	IDSchemeCounter = "counter"
	IDSchemeTypeID  = "typeid"
	IDSchemeUUID    = "uuid"
)

type Config struct {
	ArraySize int        `envconfig:"ARRAY_SIZE" default:"10"`
	LogLevel  slog.Level `envconfig:"LOG_LEVEL" default:"info"`
	IDScheme  string     `envconfig:"ID_SCHEME" default:"counter"`
}

// Load reads CADGEOM_* variables from the environment. LOG_LEVEL takes a slog
// level name such as "debug" or "warn".
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("cadgeom", &cfg); err != nil {
		return nil, err
	}
	if cfg.ArraySize < 0 {
		return nil, fmt.Errorf("array size must not be negative, got %d", cfg.ArraySize)
	}
	switch cfg.IDScheme {
	case IDSchemeCounter, IDSchemeTypeID, IDSchemeUUID:
	default:
		return nil, fmt.Errorf("unknown id scheme %q", cfg.IDScheme)
	}
	return &cfg, nil
}
