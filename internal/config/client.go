package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// GetClientConfig loads the userctl CLI configuration from CLIENT_*-prefixed
// environment variables, falling back to defaults that match the server's
// own defaults (local address, baked-in token).
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "CLIENT_"}); err != nil {
		return nil, fmt.Errorf("error getting client env configs: %w", err)
	}

	if cfg.Address == "" {
		cfg.Address = defaultHTTPAddress
	}
	if cfg.AuthToken == "" {
		cfg.AuthToken = DefaultAuthToken
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 10 * time.Second
	}

	return cfg, cfg.validate()
}
