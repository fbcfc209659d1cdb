package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	Remote struct {
		URL            string   `json:"url"`
		Key            string   `json:"key"`
		RedirectURL    string   `json:"redirect_url"`
		Driver         string   `json:"driver"`
		Table          string   `json:"table"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"remote"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db"`
		Session struct {
			DSN string `json:"dsn"`
			Key string `json:"key"`
		} `json:"session"`
	} `json:"storage"`

	Auth struct {
		CallbackAddress string   `json:"callback_address"`
		Providers       []string `json:"providers"`
		Optional        bool     `json:"optional"`
	} `json:"auth"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
		RefreshMargin   Duration `json:"refresh_margin"`
	} `json:"workers"`

	LogLevel string `json:"log_level"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		Remote: Remote{
			URL:            jsonCfg.Remote.URL,
			Key:            jsonCfg.Remote.Key,
			RedirectURL:    jsonCfg.Remote.RedirectURL,
			Driver:         jsonCfg.Remote.Driver,
			Table:          jsonCfg.Remote.Table,
			RequestTimeout: time.Duration(jsonCfg.Remote.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
			Session: Session{
				DSN: jsonCfg.Storage.Session.DSN,
				Key: jsonCfg.Storage.Session.Key,
			},
		},
		Auth: Auth{
			CallbackAddress: jsonCfg.Auth.CallbackAddress,
			Providers:       jsonCfg.Auth.Providers,
			Optional:        jsonCfg.Auth.Optional,
		},
		Workers: Workers{
			RefreshInterval: time.Duration(jsonCfg.Workers.RefreshInterval),
			RefreshMargin:   time.Duration(jsonCfg.Workers.RefreshMargin),
		},
		LogLevel: jsonCfg.LogLevel,
	}, nil
}

// Duration is a time.Duration that unmarshals from strings like "1h" or
// from nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// durationFlag is a flag.Value for durations that leaves the zero value
// untouched when the flag is absent.
type durationFlag time.Duration

var _ flag.Value = (*durationFlag)(nil)

func (d *durationFlag) String() string { return time.Duration(*d).String() }

func (d *durationFlag) Set(s string) error {
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = durationFlag(v)
	return nil
}

func (d durationFlag) Duration() time.Duration { return time.Duration(d) }
