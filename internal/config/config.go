// Package config handles configuration loading for the clinic front-desk service.
package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the service, loaded once at startup.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisHost     string
	RedisPort     string
	RedisPassword string

	// JWTSecret signs identity tokens; the process refuses to start without it.
	JWTSecret           string
	AccessTokenLifetime time.Duration

	AdminEmail    string
	AdminPassword string

	AllowedOrigins []string
	Port           string
	Environment    string
}

// Load reads configuration from the environment. A .env file is honoured when
// present but its absence is not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBHost:     GetEnv("DB_HOST", "localhost"),
		DBPort:     GetEnv("DB_PORT", "5432"),
		DBUser:     GetEnv("DB_USER", "postgres"),
		DBPassword: GetEnv("DB_PASSWORD", ""),
		DBName:     GetEnv("DB_NAME", "clinic"),

		RedisHost:     GetEnv("REDIS_HOST", ""),
		RedisPort:     GetEnv("REDIS_PORT", "6379"),
		RedisPassword: GetEnv("REDIS_PASSWORD", ""),

		JWTSecret:           GetEnvRequired("JWT_SECRET"),
		AccessTokenLifetime: parseDuration(GetEnv("ACCESS_TOKEN_LIFETIME", "24h"), 24*time.Hour),

		AdminEmail:    GetEnv("ADMIN_EMAIL", "admin@clinic.local"),
		AdminPassword: GetEnv("ADMIN_PASSWORD", "admin"),

		AllowedOrigins: splitOrigins(GetEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		Port:           GetEnv("PORT", "8080"),
		Environment:    GetEnv("ENVIRONMENT", "development"),
	}
}

// GetEnv returns the value of the environment variable or the default when unset.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvRequired returns the value of the environment variable or exits the
// process. Missing secrets must fail at startup, not at first request.
func GetEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("required environment variable %s is not set", key)
	}
	return value
}

func parseDuration(value string, defaultValue time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

func splitOrigins(value string) []string {
	var origins []string
	for _, origin := range strings.Split(value, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
