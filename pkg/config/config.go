package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is passed to envconfig; individual fields carry their full
// variable names, so the prefix stays empty.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App      AppConfig
	Catalog  CatalogConfig
	Checkout CheckoutConfig
	CORS     CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Checkout.ensureChannelURL(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STOREFRONT_APP_ENV" required:"true"`
	Port         string `envconfig:"STOREFRONT_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"STOREFRONT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STOREFRONT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type CatalogConfig struct {
	FeedPath string `envconfig:"STOREFRONT_CATALOG_FEED_PATH" required:"true"`
}

// CheckoutConfig describes the messaging channel the composed order
// summary is handed off to. The channel itself is external; only the
// URL shape is owned here.
type CheckoutConfig struct {
	ChannelURL     string `envconfig:"STOREFRONT_CHECKOUT_CHANNEL_URL"`
	ChannelBase    string `envconfig:"STOREFRONT_CHECKOUT_CHANNEL_BASE" default:"https://wa.me"`
	Phone          string `envconfig:"STOREFRONT_CHECKOUT_PHONE"`
	CurrencySymbol string `envconfig:"STOREFRONT_CURRENCY_SYMBOL" default:"S/"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"STOREFRONT_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

func (c *CheckoutConfig) ensureChannelURL() error {
	if c.ChannelURL != "" {
		if _, err := url.Parse(c.ChannelURL); err != nil {
			return fmt.Errorf("invalid STOREFRONT_CHECKOUT_CHANNEL_URL: %w", err)
		}
		return nil
	}

	phone := strings.TrimSpace(c.Phone)
	if phone == "" {
		return fmt.Errorf("either STOREFRONT_CHECKOUT_CHANNEL_URL or STOREFRONT_CHECKOUT_PHONE is required")
	}

	base := strings.TrimRight(c.ChannelBase, "/")
	c.ChannelURL = base + "/" + phone
	return nil
}
