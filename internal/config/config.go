// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the notes
// client. It is populated by merging defaults, environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name of a scalar field.
type StructuredConfig struct {
	// Remote describes the hosted backend (Supabase project).
	Remote Remote `envPrefix:"REMOTE_"`

	// Storage holds the direct Postgres DSN and the local session store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Auth holds sign-in settings of the client.
	Auth Auth `envPrefix:"AUTH_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Remote holds the endpoint and credentials of the notes backend.
//
// Leaving URL or Key empty is valid: the client then runs with disabled
// gateways and reports itself as offline.
type Remote struct {
	// URL is the project base URL (e.g. "https://xyz.supabase.co").
	// Env: REMOTE_URL
	URL string `env:"URL"`

	// Key is the anon/public API key sent as "apikey".
	// Env: REMOTE_KEY
	Key string `env:"KEY"`

	// RedirectURL is where magic links and OAuth flows return to.
	// Defaults to the local callback listener.
	// Env: REMOTE_REDIRECT_URL
	RedirectURL string `env:"REDIRECT_URL"`

	// Driver selects the notes transport: "postgrest" or "postgres".
	// Env: REMOTE_DRIVER
	Driver string `env:"DRIVER"`

	// Table is the notes table name.
	// Env: REMOTE_TABLE
	Table string `env:"TABLE"`

	// RequestTimeout bounds every outbound request.
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the storage backends used by the client.
type Storage struct {
	// DB is used when Remote.Driver is "postgres".
	DB DB `envPrefix:"DB_"`

	// Session is the local SQLite file holding the signed-in session.
	Session Session `envPrefix:"SESSION_"`
}

// DB holds connection settings for direct Postgres access.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Session configures persistence of the auth session.
type Session struct {
	// DSN is the SQLite file path. Empty disables persistence.
	// Env: STORAGE_SESSION_DSN
	DSN string `env:"DSN"`

	// Key is an optional passphrase sealing the stored session.
	// Env: STORAGE_SESSION_KEY
	Key string `env:"KEY"`
}

// Auth holds sign-in settings.
type Auth struct {
	// CallbackAddress is the host:port of the local redirect listener.
	// Env: AUTH_CALLBACK_ADDRESS
	CallbackAddress string `env:"CALLBACK_ADDRESS"`

	// Providers are the OAuth providers offered on the sign-in screen.
	// Env: AUTH_PROVIDERS (comma separated)
	Providers []string `env:"PROVIDERS" envSeparator:","`

	// Optional lets the UI skip the sign-in screen.
	// Env: AUTH_OPTIONAL
	Optional bool `env:"OPTIONAL"`
}

// Workers holds background job settings.
type Workers struct {
	// RefreshInterval is how often the session expiry is checked.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`

	// RefreshMargin is how long before expiry the session is refreshed.
	// Env: WORKERS_REFRESH_MARGIN
	RefreshMargin time.Duration `env:"REFRESH_MARGIN"`
}

// GetStructuredConfig loads and validates the configuration from all sources
// in the following priority order (later sources override non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(commandLineArgs()).
		withJSON().
		build()
}
