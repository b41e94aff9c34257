package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string

	// AI chat-completions API (editorial copy + outfit analysis)
	AIAPIKey string
	AIAPIURL string
	AIModel  string

	// Weather collaborator (Open-Meteo)
	WeatherAPIURL string
	GeocodeAPIURL string

	// Object storage
	S3Bucket  string
	AWSRegion string
}

// LoadConfig builds a Config from environment variables, falling back to
// Docker secrets for sensitive values and to development defaults elsewhere.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnvOrSecret("DB_USER", "db_user", "postgres"),
		DBPassword: getEnvOrSecret("DB_PASSWORD", "db_password", ""),
		DBName:     getEnv("DB_NAME", "aure"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnvOrSecret("REDIS_PASSWORD", "redis_password", ""),
		RedisURL:      getEnv("REDIS_URL", ""),

		JWTSecret: getEnvOrSecret("JWT_SECRET", "jwt_secret", ""),

		AIAPIKey: getEnvOrSecret("AI_API_KEY", "ai_api_key", ""),
		AIAPIURL: getEnv("AI_API_URL", "https://api.deepseek.com/v1/chat/completions"),
		AIModel:  getEnv("AI_MODEL", "deepseek-chat"),

		WeatherAPIURL: getEnv("WEATHER_API_URL", "https://api.open-meteo.com/v1/forecast"),
		GeocodeAPIURL: getEnv("GEOCODE_API_URL", "https://geocoding-api.open-meteo.com/v1/search"),

		S3Bucket:  getEnv("S3_BUCKET_NAME", "aure-outfit-images"),
		AWSRegion: getEnv("AWS_REGION", "us-east-1"),
	}

	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		db, err := strconv.Atoi(dbStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB value %q: %w", dbStr, err)
		}
		cfg.RedisDB = db
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvOrSecret prefers the environment variable, then the Docker secret
// file of the same concern, then the fallback.
func getEnvOrSecret(envKey, secretName, fallback string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	if v := readSecret(secretName); v != "" {
		return v
	}
	return fallback
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
