package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string
	HTTPPort    string
	LogLevel    string
	LogFormat   string

	// Redis Config
	RedisAddr string
	RedisPass string
	RedisDB   int

	// Push Gateway Config
	PushGatewayURL  string
	PushSecret      string
	PushTimeout     time.Duration
	PushMaxAttempts int

	// Интервалы фоновых задач
	IntensitySweepInterval  time.Duration
	ExpirationSweepInterval time.Duration
	RetrySweepInterval      time.Duration
	LocationSweepInterval   time.Duration
	LocationRetention       time.Duration

	// API Keys for authentication
	APIKeys []string
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:     getEnvAsInt("REDIS_DB", 0),

		PushGatewayURL:  os.Getenv("PUSH_GATEWAY_URL"),
		PushSecret:      os.Getenv("PUSH_SECRET"),
		PushTimeout:     getEnvAsDuration("PUSH_TIMEOUT", 5*time.Second),
		PushMaxAttempts: getEnvAsInt("PUSH_MAX_ATTEMPTS", 5),

		IntensitySweepInterval:  getEnvAsDuration("INTENSITY_SWEEP_INTERVAL", 5*time.Minute),
		ExpirationSweepInterval: getEnvAsDuration("EXPIRATION_SWEEP_INTERVAL", time.Hour),
		RetrySweepInterval:      getEnvAsDuration("RETRY_SWEEP_INTERVAL", time.Minute),
		LocationSweepInterval:   getEnvAsDuration("LOCATION_SWEEP_INTERVAL", time.Hour),
		LocationRetention:       getEnvAsDuration("LOCATION_RETENTION", time.Hour),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
