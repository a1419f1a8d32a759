package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// APIPrefix is where the gated resource routes are mounted.
	APIPrefix string `env:"API_PREFIX, default=/api/record"`
	// SummaryMaxLength bounds an experience summary, in characters.
	SummaryMaxLength int `env:"SUMMARY_MAX_LENGTH, default=10000"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`

	Identity IdentityConfig
	Mongo    MongoConfig
	Redis    RedisConfig
}

type IdentityConfig struct {
	TokenSecret   string        `env:"TOKEN_SECRET, required"`
	LoginTokenTTL time.Duration `env:"LOGIN_TOKEN_TTL, default=1h"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=campus_experience"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// IsDevelopment reports whether human-friendly output should be used.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.SummaryMaxLength <= 0 {
		return nil, fmt.Errorf("config: SUMMARY_MAX_LENGTH must be positive, got %d", cfg.SummaryMaxLength)
	}
	return &cfg, nil
}

// LoadMongo reads only the document store settings. Used by commands that
// do not serve traffic.
func LoadMongo(ctx context.Context) (*MongoConfig, error) {
	return loadMongo(ctx, envconfig.OsLookuper())
}

func loadMongo(ctx context.Context, lookuper envconfig.Lookuper) (*MongoConfig, error) {
	var cfg MongoConfig
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
