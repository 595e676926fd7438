package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// General settings shared by every entrypoint.
type coreSettings struct {
	Debug bool `env:"DEBUG"`

	// The built-in table served when the client does not ask for one.
	Table string `env:"PALETTE_TABLE" envDefault:"earth"`
	// Whether hex values are written and parsed with a leading #.
	HexPrefix bool `env:"PALETTE_HEX_PREFIX"`

	Signature string `env:"SIGNATURE" envDefault:"shades"`
}

// Settings related to the ssh server.
type serverSettings struct {
	SSHHostKeyPath string `env:"SSH_HOST_KEY_PATH,expand" envDefault:"${HOME}/.ssh/id_rsa"`
	SSHBindAddr    string `env:"SSH_BIND_ADDR" envDefault:"127.0.0.1:2222"`

	// Metrics are only exposed when this is set.
	MetricsBindAddr string `env:"METRICS_BIND_ADDR"`
}

func init() {
	// A missing .env is fine, the environment may already be set up.
	_ = godotenv.Load()

	if err := env.Parse(&Core); err != nil {
		panic(fmt.Sprintf("could not parse core configuration: %v", err))
	}

	if err := env.Parse(&Server); err != nil {
		panic(fmt.Sprintf("could not parse server configuration: %v", err))
	}
}

var Core coreSettings
var Server serverSettings

// The level every entrypoint logs at.
func (s coreSettings) LogLevel() slog.Level {
	if s.Debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
