// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.JWTSecret == "" {
		return ErrMissingJWTSecret
	}

	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" || cfg.Storage.DB.MaxConnections < 1 || cfg.Storage.DB.AcquireTimeout <= 0 {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidServerConfigs, cfg.Server.Port)
	}

	if cfg.Adapter.TMDBBaseURL == "" || cfg.Adapter.BarcodeBaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.EnrichInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
