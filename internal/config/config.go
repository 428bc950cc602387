// Package config resolves engine defaults from the environment. Functional
// options on the session override anything read here.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds environment-driven defaults for the editing-session engine.
// Variables are prefixed with PAPERBLOOM_, e.g. PAPERBLOOM_BASE_URL.
type Config struct {
	// BaseURL of the remote collection store.
	BaseURL string `envconfig:"BASE_URL" default:"http://localhost:8080"`

	// HTTPTimeout bounds a single remote call end to end.
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`

	// DebounceWindow is the quiet period before a snapshot write commits.
	DebounceWindow time.Duration `envconfig:"DEBOUNCE_WINDOW" default:"2s"`

	// DataDir overrides where the local snapshot database lives. Empty means
	// the per-user default directory.
	DataDir string `envconfig:"DATA_DIR" default:""`

	// DevServerPort is where paperbloom-dev serve listens.
	DevServerPort int `envconfig:"DEV_SERVER_PORT" default:"8080"`
}

// New parses PAPERBLOOM_-prefixed environment variables into a Config.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("PAPERBLOOM", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if cfg.DebounceWindow <= 0 {
		return nil, fmt.Errorf("debounce window must be > 0, got %s", cfg.DebounceWindow)
	}
	if cfg.HTTPTimeout <= 0 {
		return nil, fmt.Errorf("http timeout must be > 0, got %s", cfg.HTTPTimeout)
	}
	return &cfg, nil
}
