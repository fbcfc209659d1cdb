package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearRemoteEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"REMOTE_URL", "REMOTE_KEY", "REMOTE_REDIRECT_URL", "REMOTE_DRIVER", "STORAGE_DB_DATABASE_URI", "CONFIG"} {
		t.Setenv(k, "")
	}
}

func TestLoadClientConfig_OfflineIsValid(t *testing.T) {
	clearRemoteEnv(t)

	cfg, err := LoadClientConfig("")
	require.NoError(t, err)

	assert.False(t, cfg.Remote.Configured())
	assert.Equal(t, "http://"+DefaultCallbackAddress+CallbackPath, cfg.Remote.RedirectURL)
}

func TestLoadClientConfig_FromJSONFile(t *testing.T) {
	clearRemoteEnv(t)
	path := writeTempJSONConfig(t, map[string]any{
		"remote": map[string]any{"url": "https://xyz.supabase.co/", "key": " anon "},
	})

	cfg, err := LoadClientConfig(path)
	require.NoError(t, err)

	assert.True(t, cfg.Remote.Configured())
	assert.Equal(t, "https://xyz.supabase.co", cfg.Remote.URL)
	assert.Equal(t, "anon", cfg.Remote.Key)
}

func TestLoadClientConfig_ExplicitRedirectKept(t *testing.T) {
	clearRemoteEnv(t)
	t.Setenv("REMOTE_REDIRECT_URL", "https://app.example/callback")

	cfg, err := LoadClientConfig("")
	require.NoError(t, err)
	assert.Equal(t, "https://app.example/callback", cfg.Remote.RedirectURL)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return &ClientConfig{
			Remote: ClientRemote{Driver: DriverPostgREST},
			Auth:   ClientAuth{CallbackAddress: "localhost:3000"},
		}
	}

	tests := []struct {
		name   string
		mutate func(*ClientConfig)
		want   error
	}{
		{name: "valid", mutate: func(*ClientConfig) {}},
		{name: "unknown driver", mutate: func(c *ClientConfig) { c.Remote.Driver = "mysql" }, want: ErrInvalidRemoteConfigs},
		{name: "postgres without dsn", mutate: func(c *ClientConfig) { c.Remote.Driver = DriverPostgres }, want: ErrInvalidStorageConfigs},
		{name: "postgres with dsn", mutate: func(c *ClientConfig) {
			c.Remote.Driver = DriverPostgres
			c.Storage.DB.DSN = "postgres://localhost/db"
		}},
		{name: "bad redirect", mutate: func(c *ClientConfig) { c.Remote.RedirectURL = "::" }, want: ErrInvalidRemoteConfigs},
		{name: "bad callback", mutate: func(c *ClientConfig) { c.Auth.CallbackAddress = "nowhere" }, want: ErrInvalidAuthConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
