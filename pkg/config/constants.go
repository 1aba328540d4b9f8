package config

// Canonical environment variable names, kept in one place so tests and
// deploy manifests reference the same spellings as the struct tags.
const (
	EnvAppEnv          = "STOREFRONT_APP_ENV"
	EnvPort            = "STOREFRONT_APP_PORT"
	EnvLogLevel        = "STOREFRONT_LOG_LEVEL"
	EnvCatalogFeedPath = "STOREFRONT_CATALOG_FEED_PATH"
	EnvChannelURL      = "STOREFRONT_CHECKOUT_CHANNEL_URL"
	EnvChannelBase     = "STOREFRONT_CHECKOUT_CHANNEL_BASE"
	EnvCheckoutPhone   = "STOREFRONT_CHECKOUT_PHONE"
	EnvCurrencySymbol  = "STOREFRONT_CURRENCY_SYMBOL"
	EnvCORSOrigins     = "STOREFRONT_CORS_ALLOWED_ORIGINS"
)
