// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks the merged [StructuredConfig].
//
// A missing remote URL or key is not an error: the client runs offline.
func (cfg *StructuredConfig) validate() error {
	if cfg.Remote.URL != "" {
		if err := validateHTTPURL(cfg.Remote.URL); err != nil {
			return fmt.Errorf("%w: url: %w", ErrInvalidRemoteConfigs, err)
		}
	}
	if cfg.Remote.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidRemoteConfigs)
	}
	if cfg.Workers.RefreshInterval < 0 || cfg.Workers.RefreshMargin < 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	switch cfg.Remote.Driver {
	case DriverPostgREST:
	case DriverPostgres:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: driver %q needs a database DSN", ErrInvalidStorageConfigs, DriverPostgres)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidRemoteConfigs, cfg.Remote.Driver)
	}

	if cfg.Remote.RedirectURL != "" {
		if err := validateHTTPURL(cfg.Remote.RedirectURL); err != nil {
			return fmt.Errorf("%w: redirect url: %w", ErrInvalidRemoteConfigs, err)
		}
	}

	if cfg.Auth.CallbackAddress != "" {
		var addr NetAddress
		if err := addr.Set(cfg.Auth.CallbackAddress); err != nil {
			return fmt.Errorf("%w: callback address: %w", ErrInvalidAuthConfigs, err)
		}
	}

	return nil
}

func validateHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}
