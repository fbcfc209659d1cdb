package config

import (
	"fmt"
	"strings"
	"time"
)

// ClientRemote holds the backend endpoint settings used by gateways.
type ClientRemote struct {
	URL            string
	Key            string
	RedirectURL    string
	Driver         string
	Table          string
	RequestTimeout time.Duration
}

// Configured reports whether both endpoint and key are present.
func (r ClientRemote) Configured() bool {
	return strings.TrimSpace(r.URL) != "" && strings.TrimSpace(r.Key) != ""
}

// ClientDB holds direct Postgres settings.
type ClientDB struct {
	DSN string
}

// ClientSessionStorage holds the local session store settings.
type ClientSessionStorage struct {
	DSN string
	Key string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB      ClientDB
	Session ClientSessionStorage
}

// ClientAuth holds sign-in settings.
type ClientAuth struct {
	CallbackAddress string
	Providers       []string
	Optional        bool
}

// ClientWorkers contains background job settings.
type ClientWorkers struct {
	RefreshInterval time.Duration
	RefreshMargin   time.Duration
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	Remote   ClientRemote
	Storage  ClientStorage
	Auth     ClientAuth
	Workers  ClientWorkers
	LogLevel string
}

// GetClientConfig loads the configuration from defaults, env, command-line
// flags and the JSON file, and returns the validated client view.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

// LoadClientConfig is GetClientConfig without command-line flags, for
// binaries that parse their own arguments. jsonPath, when non-empty, wins
// over the CONFIG environment variable.
func LoadClientConfig(jsonPath string) (*ClientConfig, error) {
	b := newConfigBuilder().withDefaults().withEnv()
	if jsonPath != "" {
		b = b.withJSONFile(jsonPath)
	} else {
		b = b.withJSON()
	}

	cfg, err := b.build()
	if err != nil {
		return nil, fmt.Errorf("error load structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Remote: ClientRemote{
			URL:            strings.TrimRight(strings.TrimSpace(cfg.Remote.URL), "/"),
			Key:            strings.TrimSpace(cfg.Remote.Key),
			RedirectURL:    cfg.Remote.RedirectURL,
			Driver:         strings.ToLower(cfg.Remote.Driver),
			Table:          cfg.Remote.Table,
			RequestTimeout: cfg.Remote.RequestTimeout,
		},
		Storage: ClientStorage{
			DB:      ClientDB{DSN: cfg.Storage.DB.DSN},
			Session: ClientSessionStorage{DSN: cfg.Storage.Session.DSN, Key: cfg.Storage.Session.Key},
		},
		Auth: ClientAuth{
			CallbackAddress: cfg.Auth.CallbackAddress,
			Providers:       cfg.Auth.Providers,
			Optional:        cfg.Auth.Optional,
		},
		Workers: ClientWorkers{
			RefreshInterval: cfg.Workers.RefreshInterval,
			RefreshMargin:   cfg.Workers.RefreshMargin,
		},
		LogLevel: cfg.LogLevel,
	}

	if clientCfg.Remote.RedirectURL == "" && clientCfg.Auth.CallbackAddress != "" {
		clientCfg.Remote.RedirectURL = "http://" + clientCfg.Auth.CallbackAddress + CallbackPath
	}

	return clientCfg, clientCfg.validate()
}
