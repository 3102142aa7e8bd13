package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	App   AppConfig   `toml:"app"`
	Mongo MongoConfig `toml:"mongo"`
	Auth  AuthConfig  `toml:"auth"`
}

type AppConfig struct {
	Name    string `toml:"name"`
	Env     string `toml:"env"`
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
	GinMode string `toml:"gin_mode"`
}

// MongoConfig carries the document-store settings. Both values are
// optional: when either is empty the process still starts, with
// signup/login degraded to "database not available" responses.
type MongoConfig struct {
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

type AuthConfig struct {
	BcryptCost int `toml:"bcrypt_cost"`
}

func Load() (*Config, error) {
	cfg := defaultConfig()

	configPath := getEnv("CONFIG_FILE", "configs/config.toml")
	if _, err := os.Stat(configPath); err == nil {
		if _, err := toml.DecodeFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("decode config file failed: %w", err)
		}
	}

	overrideByEnv(cfg)
	return cfg, nil
}

func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%d", c.App.Host, c.App.Port)
}

// DatabaseConfigured reports whether both settings needed to reach the
// store are present.
func (c *Config) DatabaseConfigured() bool {
	return c.Mongo.URI != "" && c.Mongo.Database != ""
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:    "accountsvc",
			Env:     "dev",
			Host:    "0.0.0.0",
			Port:    8000,
			GinMode: "debug",
		},
		Auth: AuthConfig{
			BcryptCost: bcrypt.DefaultCost,
		},
	}
}

func overrideByEnv(cfg *Config) {
	cfg.App.Name = getEnv("APP_NAME", cfg.App.Name)
	cfg.App.Env = getEnv("APP_ENV", cfg.App.Env)
	cfg.App.Host = getEnv("APP_HOST", cfg.App.Host)
	cfg.App.Port = getEnvAsInt("PORT", cfg.App.Port)
	cfg.App.GinMode = getEnv("GIN_MODE", cfg.App.GinMode)

	cfg.Mongo.URI = getEnv("DATABASE_URL", cfg.Mongo.URI)
	cfg.Mongo.Database = getEnv("DATABASE_NAME", cfg.Mongo.Database)

	cfg.Auth.BcryptCost = getEnvAsInt("BCRYPT_COST", cfg.Auth.BcryptCost)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
