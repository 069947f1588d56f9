// config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Store backends.
const (
	StorePostgres = "postgres"
	StoreRedis    = "redis"
	StoreMemory   = "memory"
)

// Issuer modes.
const (
	IssuerMock = "mock"
	IssuerHTTP = "http"
)

type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Issuer   IssuerConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type StoreConfig struct {
	Backend string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN renders the postgres connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func (c RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

type IssuerConfig struct {
	Mode      string
	BaseURL   string
	Timeout   time.Duration
	MaxAmount float64
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("ENVIRONMENT", "development"),
		},
		Store: StoreConfig{
			Backend: getEnv("STORE_BACKEND", StorePostgres),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "issuing_bank"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Issuer: IssuerConfig{
			Mode:      getEnv("ISSUER_MODE", IssuerMock),
			BaseURL:   getEnv("ISSUER_BASE_URL", ""),
			Timeout:   getEnvDuration("ISSUER_TIMEOUT", 10*time.Second),
			MaxAmount: getEnvFloat("ISSUER_MAX_AMOUNT", 1_000_000),
		},
	}

	switch cfg.Store.Backend {
	case StorePostgres, StoreRedis, StoreMemory:
	default:
		return nil, fmt.Errorf("unsupported STORE_BACKEND: %s", cfg.Store.Backend)
	}

	switch cfg.Issuer.Mode {
	case IssuerMock, IssuerHTTP:
	default:
		return nil, fmt.Errorf("unsupported ISSUER_MODE: %s", cfg.Issuer.Mode)
	}

	if cfg.Issuer.Mode == IssuerHTTP && cfg.Issuer.BaseURL == "" {
		return nil, fmt.Errorf("ISSUER_BASE_URL is required when ISSUER_MODE=http")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.Atoi(value); err == nil {
			return v
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			return v
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if v, err := time.ParseDuration(value); err == nil {
			return v
		}
	}
	return defaultValue
}
