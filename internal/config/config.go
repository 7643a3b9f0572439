package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	IsTestMode bool `env:"TEST_MODE" envDefault:"false"`
	Port       uint `env:"PORT" envDefault:"9090"`

	Secret           string `env:"SECRET,required"`
	BcryptHasherCost int    `env:"BCRYPT_HASHER_COST" envDefault:"10"`

	PostgresqlURL string `env:"POSTGRESQL_URL,required"`
	MigrationsURL string `env:"MIGRATIONS_URL" envDefault:"file://migrations"`
	RedisURL      string `env:"REDIS_URL,required"`
	RabbitmqURL   string `env:"RABBITMQ_URL,required"`

	RabbitmqDigestQueue string `env:"RABBITMQ_DIGEST_QUEUE" envDefault:"digest-ready"`
	DigestCronSpec      string `env:"DIGEST_CRON_SPEC" envDefault:"0 13 * * *"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	TwilioAccountSid string `env:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken  string `env:"TWILIO_AUTH_TOKEN"`
	TwilioFromNumber string `env:"TWILIO_FROM_NUMBER"`

	AwsRegion      string `env:"AWS_REGION" envDefault:"us-east-1"`
	AwsAccessKey   string `env:"AWS_ACCESS_KEY"`
	AwsSecretKey   string `env:"AWS_SECRET_KEY"`
	AwsEmailSender string `env:"AWS_EMAIL_SENDER" envDefault:"reminders@collegereminders.app"`

	SentryDsn *url.URL `env:"SENTRY_DSN"`
}

// Load reads the optional .env file first; real environment variables win over it.
func Load() (*Config, error) {
	return load(".env")
}

func load(dotenvPath string) (*Config, error) {
	if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not load %s: %w", dotenvPath, err)
	}

	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, err
	}
	if config.Port == 0 {
		return nil, fmt.Errorf("PORT must be positive")
	}
	if config.BcryptHasherCost < 4 || config.BcryptHasherCost > 31 {
		return nil, fmt.Errorf("invalid BCRYPT_HASHER_COST value: %d", config.BcryptHasherCost)
	}
	return config, nil
}
