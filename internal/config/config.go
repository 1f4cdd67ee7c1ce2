package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	TelegramToken    string        `envconfig:"TELEGRAM_BOT_TOKEN" required:"true"`
	WebhookPublicURL string        `envconfig:"WEBHOOK_PUBLIC_URL" required:"true"`
	OpenAIKey        string        `envconfig:"OPENAI_API_KEY"`
	Port             string        `envconfig:"PORT" default:"9095"`
	DBPath           string        `envconfig:"DB_PATH" default:"/app/data/usage.db"`
	Debug            bool          `envconfig:"DEBUG" default:"false"`
	ChartCacheTTL    time.Duration `envconfig:"CHART_CACHE_TTL" default:"60s"`
}

// Validate checks values envconfig cannot express with tags.
func (c *Config) Validate() error {
	if c.TelegramToken == "" || c.WebhookPublicURL == "" {
		return errors.New("TELEGRAM_BOT_TOKEN and WEBHOOK_PUBLIC_URL must not be empty")
	}
	if c.ChartCacheTTL < time.Second {
		return fmt.Errorf("CHART_CACHE_TTL must be at least 1s, got %s", c.ChartCacheTTL)
	}
	if c.Port == "" {
		return errors.New("PORT must not be empty")
	}
	return nil
}

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}
