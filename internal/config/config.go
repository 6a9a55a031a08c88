package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

var validate = validator.New()

// Config holds the application's configuration, loaded from the environment
// with an optional config/.env file for local development.
type Config struct {
	DatabaseURL    string `validate:"required"`
	Port           int    `validate:"required,min=1,max=65535"`
	AuthURL        string `validate:"required,url"`
	AuthServiceKey string `validate:"required"`
	BodyLimit      string `validate:"required"`
}

// Load loads and validates the full application configuration.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile("config/.env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetDefault("PORT", 8080)
	v.SetDefault("BODY_LIMIT", "10M")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		DatabaseURL:    v.GetString("DATABASE_URL"),
		Port:           v.GetInt("PORT"),
		AuthURL:        v.GetString("AUTH_URL"),
		AuthServiceKey: v.GetString("AUTH_SERVICE_KEY"),
		BodyLimit:      v.GetString("BODY_LIMIT"),
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
