package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"os"
	"strconv"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

func commandLineArgs() []string {
	return os.Args[1:]
}

// ParseFlags parses the client flags from args.
//
// Flags:
//
//	-url Supabase project URL
//	-key anon/public API key
//	-redirect-url sign-in redirect target
//	-driver notes driver: postgrest or postgres
//	-request-timeout outbound request timeout (e.g., "15s")
//	-d Postgres DSN (driver=postgres)
//	-session-db SQLite file holding the session
//	-session-key passphrase sealing the stored session
//	-callback-address local redirect listener host:port
//	-refresh-interval session expiry check period (e.g., "30s")
//	-log-level zerolog level name
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("notes", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var callbackAddress NetAddress
	var remoteURL, remoteKey, redirectURL, driver string
	var databaseDSN, sessionDSN, sessionKey string
	var jsonConfigPath, logLevel string
	var requestTimeout, refreshInterval durationFlag

	fs.StringVar(&remoteURL, "url", "", "Supabase project URL")
	fs.StringVar(&remoteKey, "key", "", "Supabase anon key")
	fs.StringVar(&redirectURL, "redirect-url", "", "Sign-in redirect URL")
	fs.StringVar(&driver, "driver", "", "Notes driver: postgrest or postgres")
	fs.Var(&requestTimeout, "request-timeout", "Request timeout (e.g., 15s)")
	fs.StringVar(&databaseDSN, "d", "", "Postgres DSN")
	fs.StringVar(&sessionDSN, "session-db", "", "Session SQLite file")
	fs.StringVar(&sessionKey, "session-key", "", "Session sealing passphrase")
	fs.Var(&callbackAddress, "callback-address", "Callback listener host:port")
	fs.Var(&refreshInterval, "refresh-interval", "Session refresh check period (e.g., 30s)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Remote: Remote{
			URL:            remoteURL,
			Key:            remoteKey,
			RedirectURL:    redirectURL,
			Driver:         driver,
			RequestTimeout: requestTimeout.Duration(),
		},
		Storage: Storage{
			DB:      DB{DSN: databaseDSN},
			Session: Session{DSN: sessionDSN, Key: sessionKey},
		},
		Auth:         Auth{CallbackAddress: callbackAddress.String()},
		Workers:      Workers{RefreshInterval: refreshInterval.Duration()},
		LogLevel:     logLevel,
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host must be "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in 1..65535")
	}

	if host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
