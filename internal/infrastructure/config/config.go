// Package config loads service configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/tierbank/depositcalc/internal/platform/kafka"
	"github.com/tierbank/depositcalc/internal/platform/observability"
	"github.com/tierbank/depositcalc/internal/platform/postgres"
)

// RedisConfig holds Redis connection parameters for the preset store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// TelemetryConfig holds tracing exporter settings.
type TelemetryConfig struct {
	ServiceName  string
	OTLPEndpoint string
	Insecure     bool
}

// AuthConfig holds token verification settings for the gRPC surface.
type AuthConfig struct {
	Secret        string
	PublicKeyFile string
	Issuer        string
}

// Config is the full service configuration.
type Config struct {
	HTTPPort         int
	GRPCPort         int
	DB               postgres.Config
	MigrationsDir    string
	Kafka            kafka.Config
	Redis            RedisConfig
	Telemetry        TelemetryConfig
	Auth             AuthConfig
	Log              observability.LogConfig
	DecimalPrecision int32
}

// Load reads configuration from environment variables, falling back to
// development defaults.
func Load() *Config {
	return &Config{
		HTTPPort: getEnvInt("HTTP_PORT", 8080),
		GRPCPort: getEnvInt("GRPC_PORT", 9090),
		DB: postgres.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "depositcalc"),
			Password: getEnv("DB_PASSWORD", "depositcalc"),
			Database: getEnv("DB_NAME", "depositcalc"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: int32(getEnvInt("DB_MAX_CONNS", 10)),
			MinConns: int32(getEnvInt("DB_MIN_CONNS", 2)),
		},
		MigrationsDir: getEnv("MIGRATIONS_DIR", "file://internal/infrastructure/persistence/migration"),
		Kafka: kafka.Config{
			Brokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Telemetry: TelemetryConfig{
			ServiceName:  getEnv("OTEL_SERVICE_NAME", "depositcalc"),
			OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Insecure:     getEnvBool("OTEL_EXPORTER_OTLP_INSECURE", true),
		},
		Auth: AuthConfig{
			Secret:        getEnv("JWT_SECRET", "dev-secret-change-in-prod"),
			PublicKeyFile: getEnv("JWT_PUBLIC_KEY_FILE", ""),
			Issuer:        getEnv("JWT_ISSUER", "tierbank"),
		},
		Log: observability.LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		DecimalPrecision: int32(getEnvInt("DECIMAL_PRECISION", 50)),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
