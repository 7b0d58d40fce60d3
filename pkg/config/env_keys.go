package config

const EnvPrefix = "coffee"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names, kept alongside the struct tags so tests and
// deploy manifests reference a single set of constants.
const (
	EnvAppEnv      = "COFFEE_APP_ENV"
	EnvAppPort     = "COFFEE_APP_PORT"
	EnvLogLevel    = "COFFEE_LOG_LEVEL"
	EnvRedisURL    = "COFFEE_REDIS_URL"
	EnvDBPath      = "COFFEE_DB_PATH"
	EnvDeliveryFee = "COFFEE_CHECKOUT_DELIVERY_FEE"
)
