package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the card service.
type Config struct {
	Port  string
	Env   string
	Store string

	DB    DBConfig
	Redis RedisConfig

	CardLockTTL time.Duration

	APIUsername     string
	APIPassword     string
	APIPasswordHash string

	InternalCall InternalCallConfig

	CORSAllowOrigins      string
	InternalCallRateLimit int
}

// DBConfig holds the postgres connection and pool settings.
type DBConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// RedisConfig is empty-hosted when the number lock is disabled.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// InternalCallConfig points the remote delegate at a peer instance.
type InternalCallConfig struct {
	URL      string
	Username string
	Password string
	Timeout  time.Duration
}

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// Load reads the environment into a Config, applying defaults.
func Load() Config {
	return Config{
		Port:  GetEnv("PORT", "3000"),
		Env:   GetEnv("ENV", "development"),
		Store: GetEnv("STORE", StorePostgres),
		DB: DBConfig{
			Host:            GetEnv("DB_HOST", "localhost"),
			Port:            GetEnv("DB_PORT", "5432"),
			User:            GetEnv("DB_USER", "postgres"),
			Password:        GetEnv("DB_PASSWORD", "postgres"),
			Name:            GetEnv("DB_NAME", "cardvault"),
			SSLMode:         GetEnv("DB_SSLMODE", "disable"),
			MaxIdleConns:    GetIntEnv("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    GetIntEnv("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: GetDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			ConnMaxIdleTime: GetDurationEnv("DB_CONN_MAX_IDLE_TIME", 30*time.Minute),
		},
		Redis: RedisConfig{
			Host:     GetEnv("REDIS_HOST", ""),
			Port:     GetEnv("REDIS_PORT", "6379"),
			Password: GetEnv("REDIS_PASSWORD", ""),
			DB:       GetIntEnv("REDIS_DB", 0),
		},
		CardLockTTL:     GetDurationEnv("CARD_LOCK_TTL", 5*time.Second),
		APIUsername:     GetEnv("API_USERNAME", "test_user"),
		APIPassword:     GetEnv("API_PASSWORD", ""),
		APIPasswordHash: GetEnv("API_PASSWORD_HASH", ""),
		InternalCall: InternalCallConfig{
			URL:      GetEnv("INTERNAL_CALL_URL", "http://localhost:3000"),
			Username: GetEnv("INTERNAL_CALL_USERNAME", "test_user"),
			Password: GetEnv("INTERNAL_CALL_PASSWORD", ""),
			Timeout:  GetDurationEnv("INTERNAL_CALL_TIMEOUT", 10*time.Second),
		},
		CORSAllowOrigins:      GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173"),
		InternalCallRateLimit: GetIntEnv("INTERNAL_CALL_RATE_LIMIT", 60),
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetDurationEnv parses a time.Duration ("30s", "1h") or returns the default.
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
		log.Printf("Invalid %s %q, using default: %s", key, val, defaultVal)
	}
	return defaultVal
}

// IsProduction checks if the app runs in production mode.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// LockEnabled reports whether a redis host was configured for the number lock.
func (c Config) LockEnabled() bool {
	return c.Redis.Host != ""
}
