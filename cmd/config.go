package main

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/jobdeck/jobdeck/pkg/logx"
)

// Config is the full server configuration, loaded from the environment
type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	DB struct {
		Host string `env:"DB_HOST" envDefault:"localhost"`
		Port string `env:"DB_PORT" envDefault:"5432"`
		User string `env:"DB_USER" envDefault:"postgres"`
		Pass string `env:"DB_PASS"`
		Name string `env:"DB_NAME" envDefault:"jobdeck"`
	}

	Redis struct {
		Addr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
		Pass string `env:"REDIS_PASS"`
	}

	S3 struct {
		Region string `env:"AWS_REGION" envDefault:"us-east-1"`
		Bucket string `env:"AWS_BUCKET"`
		Prefix string `env:"AWS_PREFIX" envDefault:"uploads"`
	}

	JWT struct {
		Secret string        `env:"JWT_SECRET"`
		TTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`
		Issuer string        `env:"JWT_ISSUER" envDefault:"jobdeck"`
	}
}

// LoadConfig parses the environment into a Config
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// LogxLevel maps the configured level name to a logx level
func (c *Config) LogxLevel() logx.Level {
	switch c.LogLevel {
	case "debug":
		return logx.LevelDebug
	case "warn":
		return logx.LevelWarn
	case "error":
		return logx.LevelError
	default:
		return logx.LevelInfo
	}
}

// DSN builds the postgres connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DB.Host, c.DB.Port, c.DB.User, c.DB.Pass, c.DB.Name)
}
