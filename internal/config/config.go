// Package config loads process settings from PALLETS_* environment
// variables.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/gabapcia/palletsapi/internal/pkg/validator"
)

// Prefix is prepended to every variable name, e.g. PALLETS_NODE_URL.
const Prefix = "PALLETS"

// Config holds every setting of palletsctl. Grouped settings are read from
// PALLETS_<GROUP>_<NAME>, e.g. PALLETS_REDIS_ADDR.
type Config struct {
	// NodeURL is the websocket endpoint of the substrate node.
	NodeURL string `envconfig:"NODE_URL" default:"ws://127.0.0.1:9944" validate:"required,url"`

	// SignerKey is the 0x-prefixed hex secp256k1 key used for signed extrinsics. Only
	// unsigned submissions are possible without it.
	SignerKey string `envconfig:"SIGNER_KEY" validate:"omitempty,privkey"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	Dial      Dial      `envconfig:"DIAL"`
	Telemetry Telemetry `envconfig:"OTEL"`
	Redis     Redis     `envconfig:"REDIS"`
	Forward   Forward   `envconfig:"FORWARD"`
}

// Dial controls the retries of the initial node connection.
type Dial struct {
	Attempts uint          `envconfig:"ATTEMPTS" default:"5" validate:"min=1"`
	Delay    time.Duration `envconfig:"DELAY" default:"1s"`
	MaxDelay time.Duration `envconfig:"MAX_DELAY" default:"10s" validate:"gtefield=Delay"`
}

// Telemetry configures OTLP export.
type Telemetry struct {
	Enabled     bool   `envconfig:"ENABLED" default:"false"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"palletsctl" validate:"required"`
	Endpoint    string `envconfig:"ENDPOINT"`
	Insecure    bool   `envconfig:"INSECURE" default:"false"`
}

// Redis locates the relay outbox.
type Redis struct {
	Addr      string `envconfig:"ADDR" default:"127.0.0.1:6379" validate:"required,hostname_port"`
	Username  string `envconfig:"USERNAME"`
	Password  string `envconfig:"PASSWORD"`
	DB        int    `envconfig:"DB" default:"0" validate:"min=0"`
	OutboxKey string `envconfig:"OUTBOX_KEY" default:"palletsapi:relay:outbox" validate:"required"`
}

// Forward configures where outbox entries are broadcast. An empty URL makes
// the flush go through the node connection instead.
type Forward struct {
	URL      string        `envconfig:"URL" validate:"omitempty,url"`
	Timeout  time.Duration `envconfig:"TIMEOUT" default:"5s"`
	RetryMax int           `envconfig:"RETRY_MAX" default:"2" validate:"min=0"`
	Attempts uint          `envconfig:"ATTEMPTS" default:"3" validate:"min=1"`
}

// Load reads the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
