package main

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string `mapstructure:"PORT"`
	Environment string `mapstructure:"ENVIRONMENT"`
	Version     string `mapstructure:"VERSION"`
	TLSCertFile string `mapstructure:"TLS_CERT_FILE"`
	TLSKeyFile  string `mapstructure:"TLS_KEY_FILE"`

	DB struct {
		Host     string `mapstructure:"POSTGRES_HOST"`
		Port     string `mapstructure:"POSTGRES_PORT"`
		User     string `mapstructure:"POSTGRES_USER"`
		Password string `mapstructure:"POSTGRES_PASSWORD"`
		Name     string `mapstructure:"POSTGRES_DB"`
	} `mapstructure:",squash"`

	Session struct {
		Store      string        `mapstructure:"SESSION_STORE"`
		TTL        time.Duration `mapstructure:"SESSION_TTL"`
		CookieName string        `mapstructure:"SESSION_COOKIE_NAME"`
	} `mapstructure:",squash"`

	Redis struct {
		Addr     string `mapstructure:"REDIS_ADDR"`
		Password string `mapstructure:"REDIS_PASSWORD"`
		DB       int    `mapstructure:"REDIS_DB"`
	} `mapstructure:",squash"`

	RabbitMQ struct {
		Host     string `mapstructure:"RABBITMQ_HOST"`
		Port     string `mapstructure:"RABBITMQ_PORT"`
		User     string `mapstructure:"RABBITMQ_USER"`
		Password string `mapstructure:"RABBITMQ_PASSWORD"`
	} `mapstructure:",squash"`

	RateLimit struct {
		RPS     float64 `mapstructure:"RATE_LIMIT_RPS"`
		Burst   int     `mapstructure:"RATE_LIMIT_BURST"`
		Enabled bool    `mapstructure:"RATE_LIMIT_ENABLED"`
	} `mapstructure:",squash"`
}

// Every key needs a default so that environment variables can override it even
// when there is no .env file.
var configDefaults = map[string]any{
	"PORT":                "3000",
	"ENVIRONMENT":         "development",
	"VERSION":             "1.0.0",
	"TLS_CERT_FILE":       "",
	"TLS_KEY_FILE":        "",
	"POSTGRES_HOST":       "localhost",
	"POSTGRES_PORT":       "5432",
	"POSTGRES_USER":       "postgres",
	"POSTGRES_PASSWORD":   "",
	"POSTGRES_DB":         "blogdb",
	"SESSION_STORE":       "memory",
	"SESSION_TTL":         "24h",
	"SESSION_COOKIE_NAME": "blogsite_session",
	"REDIS_ADDR":          "localhost:6379",
	"REDIS_PASSWORD":      "",
	"REDIS_DB":            0,
	"RABBITMQ_HOST":       "",
	"RABBITMQ_PORT":       "5672",
	"RABBITMQ_USER":       "guest",
	"RABBITMQ_PASSWORD":   "guest",
	"RATE_LIMIT_RPS":      4,
	"RATE_LIMIT_BURST":    8,
	"RATE_LIMIT_ENABLED":  true,
}

func loadConfig(path string) (*Config, error) {
	v := viper.New()

	for key, value := range configDefaults {
		v.SetDefault(key, value)
	}

	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
