package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Services ServicesConfig
	JWT      JWTConfig
	// AllowedOrigins - источники, которым разрешены CORS запросы
	AllowedOrigins []string
	LogLevel       string
	LogstashAddr   string
	Locale         string
}

type ServerConfig struct {
	Host string
	Port string
}

// ServicesConfig - адреса соседних сервисов
type ServicesConfig struct {
	CatalogueURL  string
	FeedbackURL   string
	ClientTimeout time.Duration
}

type JWTConfig struct {
	Secret string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	timeout, err := time.ParseDuration(getEnv("CLIENT_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid CLIENT_TIMEOUT value: %w", err)
	}

	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnv("SERVER_PORT", "8083"),
		},
		Services: ServicesConfig{
			CatalogueURL:  getEnv("CATALOGUE_SERVICE_URL", "http://localhost:8081"),
			FeedbackURL:   getEnv("FEEDBACK_SERVICE_URL", "http://localhost:8084"),
			ClientTimeout: timeout,
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "change-me-in-production"),
		},
		AllowedOrigins: strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:8083"), ","),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogstashAddr:   getEnv("LOGSTASH_ADDR", ""),
		Locale:         getEnv("DEFAULT_LOCALE", "ru"),
	}, nil
}

func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
