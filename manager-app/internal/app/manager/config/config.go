package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Catalogue CatalogueConfig
	JWT       JWTConfig
	OAuth     OAuthClientConfig
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

type CatalogueConfig struct {
	URL           string
	ClientTimeout time.Duration
}

type JWTConfig struct {
	Secret        string
	TokenDuration time.Duration
}

// OAuthClientConfig - учётные данные manager-app как клиента Catalogue Service
type OAuthClientConfig struct {
	ClientID string
	Scopes   []string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	timeout, err := time.ParseDuration(getEnv("CLIENT_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid CLIENT_TIMEOUT value: %w", err)
	}

	tokenDuration, err := time.ParseDuration(getEnv("CLIENT_TOKEN_DURATION", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CLIENT_TOKEN_DURATION value: %w", err)
	}

	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Catalogue: CatalogueConfig{
			URL:           getEnv("CATALOGUE_SERVICE_URL", "http://localhost:8081"),
			ClientTimeout: timeout,
		},
		JWT: JWTConfig{
			Secret:        getEnv("JWT_SECRET", "change-me-in-production"),
			TokenDuration: tokenDuration,
		},
		OAuth: OAuthClientConfig{
			ClientID: getEnv("OAUTH_CLIENT_ID", "manager-app"),
			Scopes:   strings.Fields(getEnv("OAUTH_CLIENT_SCOPES", "view_catalogue edit_catalogue")),
		},
		AllowedOrigins: strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:8080"), ","),
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
