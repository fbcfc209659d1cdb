package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default values applied before any other source.
const (
	DriverPostgREST = "postgrest"
	DriverPostgres  = "postgres"

	DefaultTable           = "notes"
	DefaultRequestTimeout  = 15 * time.Second
	DefaultCallbackAddress = "localhost:54321"
	DefaultRefreshInterval = 30 * time.Second
	DefaultRefreshMargin   = time.Minute
	DefaultSessionFile     = "session.db"
	CallbackPath           = "/auth/callback"

	appDirName = "go-notes-keeper"
)

// DefaultProviders are offered when AUTH_PROVIDERS is unset.
var DefaultProviders = []string{"github", "google"}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Remote: Remote{
			Driver:         DriverPostgREST,
			Table:          DefaultTable,
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: Storage{
			Session: Session{DSN: defaultSessionPath()},
		},
		Auth: Auth{
			CallbackAddress: DefaultCallbackAddress,
			Providers:       append([]string(nil), DefaultProviders...),
		},
		Workers: Workers{
			RefreshInterval: DefaultRefreshInterval,
			RefreshMargin:   DefaultRefreshMargin,
		},
		LogLevel: "debug",
	}
}

// defaultSessionPath places the session file in the user config dir, or the
// working directory when there is none.
func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return DefaultSessionFile
	}
	return filepath.Join(dir, appDirName, DefaultSessionFile)
}
