package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"
)

// Store backends
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendFile     = "file"
	BackendMemory   = "memory"
)

// DefaultStorageKey names the record holding the transaction collection.
const DefaultStorageKey = "crypto-transactions"

// Config holds the service configuration
type Config struct {
	// HTTP server
	Port string

	// Storage
	StoreBackend string
	SQLitePath   string
	StoreDir     string
	StorageKey   string

	// PostgreSQL, used when StoreBackend is "postgres"
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Logging
	Env      string
	LogLevel string
}

// Load reads an optional .env file and then the environment.
func Load() *Config {
	// a missing .env is fine, real environment variables still apply
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from environment variables only.
func FromEnv() *Config {
	env := getEnv("LOG_ENV", "")
	if env == "" {
		env = getEnv("APP_ENV", "development")
	}
	return &Config{
		Port: getEnv("SERVER_PORT", "8080"),

		StoreBackend: strings.ToLower(getEnv("STORE_BACKEND", BackendSQLite)),
		SQLitePath:   getEnv("SQLITE_PATH", "./data/cryptofolio.db"),
		StoreDir:     getEnv("STORE_DIR", "./data"),
		StorageKey:   getEnv("STORAGE_KEY", DefaultStorageKey),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "cryptofolio"),
		DBPassword: getEnv("DB_PASSWORD", "cryptofolio"),
		DBName:     getEnv("DB_NAME", "cryptofolio"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),

		Env:      env,
		LogLevel: strings.ToLower(getEnv("LOG_LEVEL", "")),
	}
}

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	var err error

	if port, perr := strconv.Atoi(c.Port); perr != nil {
		err = multierr.Append(err, fmt.Errorf("invalid port %q: must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		err = multierr.Append(err, fmt.Errorf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.StoreBackend {
	case BackendSQLite:
		if c.SQLitePath == "" {
			err = multierr.Append(err, fmt.Errorf("SQLITE_PATH is required for the sqlite backend"))
		}
	case BackendFile:
		if c.StoreDir == "" {
			err = multierr.Append(err, fmt.Errorf("STORE_DIR is required for the file backend"))
		}
	case BackendPostgres:
		if c.DBHost == "" || c.DBName == "" {
			err = multierr.Append(err, fmt.Errorf("DB_HOST and DB_NAME are required for the postgres backend"))
		}
	case BackendMemory:
	default:
		err = multierr.Append(err, fmt.Errorf("invalid store backend %q: must be one of sqlite, postgres, file, memory", c.StoreBackend))
	}

	if strings.TrimSpace(c.StorageKey) == "" {
		err = multierr.Append(err, fmt.Errorf("STORAGE_KEY must not be empty"))
	}

	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		err = multierr.Append(err, fmt.Errorf("invalid log level %q", c.LogLevel))
	}

	return err
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
