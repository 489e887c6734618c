package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	MongoDB MongoDBConfig
	Kafka   KafkaConfig
	JWT     JWTConfig
	// LogLevel - уровень логирования zerolog
	LogLevel     string
	LogstashAddr string
	Locale       string
}

type ServerConfig struct {
	Host string // Адрес хоста (по умолчанию 0.0.0.0)
	Port string // Порт сервера (по умолчанию 8084)
}

type MongoDBConfig struct {
	URI      string // URI подключения к MongoDB
	Database string // Имя базы данных
}

// KafkaConfig - подписка на события товаров каталога
type KafkaConfig struct {
	Brokers []string
	Topic   string
	GroupID string
	// FetchTimeout ограничивает одно ожидание сообщения
	FetchTimeout time.Duration
}

type JWTConfig struct {
	Secret string // Должен совпадать с секретом, которым подписываются токены
}

// Load читает конфигурацию из окружения; .env необязателен
func Load() (*Config, error) {
	_ = godotenv.Load()

	fetchTimeout, err := time.ParseDuration(getEnv("KAFKA_FETCH_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid KAFKA_FETCH_TIMEOUT value: %w", err)
	}

	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnv("SERVER_PORT", "8084"),
		},
		MongoDB: MongoDBConfig{
			URI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGODB_DATABASE", "feedback"),
		},
		Kafka: KafkaConfig{
			Brokers:      strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			Topic:        getEnv("KAFKA_TOPIC", "product_events"),
			GroupID:      getEnv("KAFKA_GROUP_ID", "feedback-service"),
			FetchTimeout: fetchTimeout,
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "change-me-in-production"),
		},
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogstashAddr: getEnv("LOGSTASH_ADDR", ""),
		Locale:       getEnv("DEFAULT_LOCALE", "ru"),
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
