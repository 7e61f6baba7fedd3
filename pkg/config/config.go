package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Pricing  PricingConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port           string
	RequestTimeout time.Duration
	AllowOrigins   []string
}

type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN formats the postgres connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

// RedisConfig is optional; an empty host disables the session token cache.
type RedisConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	SessionTTL    time.Duration
}

func (r RedisConfig) Enabled() bool {
	return r.RedisHost != ""
}

type PricingConfig struct {
	// ConfigFile points at a YAML file with category adjustments and extra
	// vendors. Empty means built-in defaults.
	ConfigFile string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, errors.New("invalid redis database")
	}

	timeoutSeconds, err := getEnvInt("REQUEST_TIMEOUT_SECONDS", 10)
	if err != nil || timeoutSeconds <= 0 {
		return nil, errors.New("invalid request timeout")
	}

	ttlMinutes, err := getEnvInt("SESSION_CACHE_TTL_MINUTES", 60*24)
	if err != nil || ttlMinutes <= 0 {
		return nil, errors.New("invalid session cache ttl")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "SaaS Stack Analyzer"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RequestTimeout: time.Duration(timeoutSeconds) * time.Second,
			AllowOrigins:   splitList(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:8080")),
		},
		Database: DatabaseConfig{
			Driver:   strings.ToLower(getEnv("STORE_DRIVER", StoreDriverPostgres)),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "saas_stack_analyzer"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			RedisHost:     getEnv("REDIS_HOST", ""),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
			SessionTTL:    time.Duration(ttlMinutes) * time.Minute,
		},
		Pricing: PricingConfig{
			ConfigFile: getEnv("PRICING_CONFIG_FILE", ""),
		},
	}

	switch cfg.Database.Driver {
	case StoreDriverPostgres:
		if cfg.Database.Password == "" {
			return nil, errors.New("missing database password")
		}
	case StoreDriverMemory:
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Database.Driver)
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}

	return strconv.Atoi(val)
}

func splitList(val string) []string {
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
