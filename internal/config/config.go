package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Supported document backends
const (
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendMemory   = "memory"
)

// Config holds all application configuration
type Config struct {
	API       APIConfig
	Store     StoreConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Log       LogConfig
	Telemetry TelemetryConfig
}

// APIConfig holds API server configuration
type APIConfig struct {
	Port int
}

// StoreConfig selects and configures the document backend
type StoreConfig struct {
	Backend      string
	File         string
	SQLitePath   string
	RedisKey     string
	DocumentName string
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	URL string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// TelemetryConfig holds tracing configuration
type TelemetryConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
	Environment string
}

// defaults are applied before the config file and the environment
var defaults = map[string]any{
	"api_port":                    "8080",
	"store_backend":               BackendFile,
	"store_file":                  "db.json",
	"store_sqlite_path":           "webshop.db",
	"store_redis_key":             "webshop:document",
	"store_document_name":         "webshop",
	"db_host":                     "localhost",
	"db_port":                     "5432",
	"db_user":                     "webshop",
	"db_password":                 "webshop",
	"db_name":                     "webshop",
	"db_sslmode":                  "disable",
	"redis_url":                   "redis://localhost:6379/0",
	"log_level":                   "info",
	"otel_enabled":                false,
	"otel_exporter_otlp_endpoint": "localhost:4317",
	"service_name":                "webshop-api",
	"deployment_environment":      "local",
}

// Load reads configuration from defaults, an optional YAML file and the
// environment, in increasing order of precedence. An empty configFile looks
// for webshop.yaml in the working directory and ignores it when missing.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("webshop")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	apiPort, err := parsePort(v, "api_port")
	if err != nil {
		return nil, err
	}

	dbPort, err := parsePort(v, "db_port")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		API: APIConfig{
			Port: apiPort,
		},
		Store: StoreConfig{
			Backend:      strings.ToLower(strings.TrimSpace(v.GetString("store_backend"))),
			File:         strings.TrimSpace(v.GetString("store_file")),
			SQLitePath:   strings.TrimSpace(v.GetString("store_sqlite_path")),
			RedisKey:     v.GetString("store_redis_key"),
			DocumentName: v.GetString("store_document_name"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("db_host"),
			Port:     dbPort,
			User:     v.GetString("db_user"),
			Password: v.GetString("db_password"),
			DBName:   v.GetString("db_name"),
			SSLMode:  v.GetString("db_sslmode"),
		},
		Redis: RedisConfig{
			URL: v.GetString("redis_url"),
		},
		Log: LogConfig{
			Level: v.GetString("log_level"),
		},
		Telemetry: TelemetryConfig{
			Enabled:     v.GetBool("otel_enabled"),
			Endpoint:    v.GetString("otel_exporter_otlp_endpoint"),
			ServiceName: v.GetString("service_name"),
			Environment: v.GetString("deployment_environment"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that cannot be defaulted
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendFile:
		if c.Store.File == "" {
			return errors.New("STORE_FILE must be set for the file backend")
		}
	case BackendSQLite:
		if c.Store.SQLitePath == "" {
			return errors.New("STORE_SQLITE_PATH must be set for the sqlite backend")
		}
	case BackendRedis:
		if c.Store.RedisKey == "" {
			return errors.New("STORE_REDIS_KEY must be set for the redis backend")
		}
	case BackendPostgres, BackendMemory:
	default:
		return fmt.Errorf("invalid STORE_BACKEND %q: must be one of file, redis, postgres, sqlite, memory", c.Store.Backend)
	}
	return nil
}

// DSN returns the database connection string
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// parsePort reads key as a TCP port number
func parsePort(v *viper.Viper, key string) (int, error) {
	name := strings.ToUpper(key)
	port, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("invalid %s: %d is out of range", name, port)
	}
	return port, nil
}
