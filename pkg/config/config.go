package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	Redis    RedisConfig
	DB       DBConfig
	Checkout CheckoutConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"COFFEE_APP_ENV" required:"true"`
	Port         string `envconfig:"COFFEE_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"COFFEE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"COFFEE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type RedisConfig struct {
	URL          string        `envconfig:"COFFEE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"COFFEE_REDIS_ADDR"`
	Password     string        `envconfig:"COFFEE_REDIS_PASSWORD"`
	DB           int           `envconfig:"COFFEE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"COFFEE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"COFFEE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"COFFEE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"COFFEE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"COFFEE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// DBConfig configures the SQLite order archive.
type DBConfig struct {
	Path        string `envconfig:"COFFEE_DB_PATH" default:"coffee-delivery.db"`
	AutoMigrate bool   `envconfig:"COFFEE_DB_AUTO_MIGRATE" default:"true"`
}

type CheckoutConfig struct {
	// DeliveryFee is a decimal string applied on top of the cart subtotal.
	DeliveryFee string `envconfig:"COFFEE_CHECKOUT_DELIVERY_FEE" default:"3.50"`
}
