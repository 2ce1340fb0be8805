package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP        HTTP
	Logger      Logger
	Postgres    Postgres
	Kafka       Kafka
	Policy      Policy
	Checkout    Checkout
	IdentityURL string `env:"IDENTITY_SERVICE_URL"`
}

type HTTP struct {
	Port int `env:"HTTP_PORT" envDefault:"8080"`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Kafka struct {
	Brokers            []string `env:"KAFKA_BROKERS"`
	NotificationsTopic string   `env:"KAFKA_NOTIFICATIONS_TOPIC"`
}

type Policy struct {
	// StrictTransitions restricts status updates to the normal request
	// lifecycle instead of the historical write-anything behavior.
	StrictTransitions bool `env:"POLICY_STRICT_TRANSITIONS" envDefault:"false"`
}

type Checkout struct {
	BaseURL      string        `env:"CHECKOUT_BASE_URL"`
	StoreID      string        `env:"CHECKOUT_STORE_ID"`
	StoreSecret  string        `env:"CHECKOUT_STORE_SECRET"`
	Currency     string        `env:"CHECKOUT_CURRENCY" envDefault:"BDT"`
	SuccessURL   string        `env:"CHECKOUT_SUCCESS_URL"`
	CancelURL    string        `env:"CHECKOUT_CANCEL_URL"`
	PollInterval time.Duration `env:"CHECKOUT_POLL_INTERVAL" envDefault:"10m"`

	CallbackCheckEnabled bool   `env:"CHECKOUT_CALLBACK_CHECK_ENABLED" envDefault:"false"`
	CallbackPublicKey    string `env:"CHECKOUT_CALLBACK_PUBLIC_KEY"` // base64 of PEM
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
