// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Fallback values applied by applyDefaults for settings that were not
// provided by any configuration source.
const (
	defaultHTTPAddress       = "localhost:8080"
	defaultDBDriver          = "pgx"
	defaultTokenIssuer       = "credstore"
	defaultTokenDuration     = 24 * time.Hour
	defaultRequestTimeout    = 30 * time.Second
	defaultActivityWorkers   = 2
	defaultActivityQueueSize = 256
)

// applyDefaults fills in fallback values for optional settings left empty by
// every configuration source. Secrets are deliberately excluded: an empty
// encryption secret still derives a key deterministically, and supplying a
// real one is a deployment concern.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = defaultDBDriver
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.Workers.ActivityWorkers == 0 {
		cfg.Workers.ActivityWorkers = defaultActivityWorkers
	}
	if cfg.Workers.ActivityQueueSize == 0 {
		cfg.Workers.ActivityQueueSize = defaultActivityQueueSize
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.Driver != "pgx" && cfg.Storage.DB.Driver != "sqlite3" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
