// Package config reads the checkout service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds process-wide settings. Payment provider credentials are not part
// of it: they live in the payment settings document managed by the admin.
type Config struct {
	Server  ServerConfig
	Dynamo  DynamoConfig
	Gateway GatewayConfig
}

type ServerConfig struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	GinMode         string        `env:"GIN_MODE" envDefault:"release"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// DynamoConfig is local-friendly: DynamoDB Local does not validate
// credentials, but the AWS SDK requires them.
type DynamoConfig struct {
	Region          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	Endpoint        string `env:"DYNAMODB_ENDPOINT"`
	OrdersTable     string `env:"ORDERS_TABLE" envDefault:"orders"`
	ProductsTable   string `env:"PRODUCTS_TABLE" envDefault:"products"`
	SettingsTable   string `env:"SETTINGS_TABLE" envDefault:"payment_settings"`
}

type GatewayConfig struct {
	MockFlag            string        `env:"PAYMENT_GATEWAY_MOCK"`
	LegacyMockFlag      string        `env:"MERCADOPAGO_MOCK"`
	ProviderTimeout     time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"15s"`
	PixExpiration       time.Duration `env:"PIX_EXPIRATION" envDefault:"30m"`
	ManualPixExpiration time.Duration `env:"MANUAL_PIX_EXPIRATION" envDefault:"24h"`
}

// MockEnabled reports whether the payment gateway should simulate the provider.
func (g GatewayConfig) MockEnabled() bool {
	return isTruthy(g.MockFlag) || isTruthy(g.LegacyMockFlag)
}

// Parse reads the configuration from environment variables.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Server.Port) == "" {
		return fmt.Errorf("%w: PORT is empty", ErrInvalidConfig)
	}
	if c.Gateway.ProviderTimeout <= 0 {
		return fmt.Errorf("%w: PROVIDER_TIMEOUT must be positive", ErrInvalidConfig)
	}
	if c.Gateway.PixExpiration <= 0 || c.Gateway.ManualPixExpiration <= 0 {
		return fmt.Errorf("%w: PIX expirations must be positive", ErrInvalidConfig)
	}
	return nil
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
