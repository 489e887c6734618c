package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config содержит все настройки Catalogue Service
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	JWT      JWTConfig
	LogLevel string
	// LogstashAddr - необязательный адрес Logstash (host:port)
	LogstashAddr string
	Locale       string
}

type ServerConfig struct {
	Host string
	Port string
}

// DatabaseConfig - подключение к PostgreSQL, где лежит схема catalogue
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	// StatsSchedule - расписание снятия статистики пула в метрики
	StatsSchedule string
}

// RedisConfig - кеш товаров по id
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

// KafkaConfig - топик событий PRODUCT_CREATED, PRODUCT_UPDATED, PRODUCT_DELETED
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// JWTConfig - общий секрет для проверки access токенов
type JWTConfig struct {
	Secret string
}

// Load читает конфигурацию из окружения; .env в рабочей директории необязателен
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB value: %w", err)
	}

	cacheTTL, err := time.ParseDuration(getEnv("REDIS_TTL", "10m"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_TTL value: %w", err)
	}

	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnv("SERVER_PORT", "8081"),
		},
		Database: DatabaseConfig{
			Host:          getEnv("DB_HOST", "localhost"),
			Port:          getEnv("DB_PORT", "5432"),
			User:          getEnv("DB_USER", "catalogue"),
			Password:      getEnv("DB_PASSWORD", "catalogue"),
			DBName:        getEnv("DB_NAME", "catalogue"),
			SSLMode:       getEnv("DB_SSLMODE", "disable"),
			StatsSchedule: getEnv("DB_STATS_SCHEDULE", "@every 15s"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
			TTL:      cacheTTL,
		},
		Kafka: KafkaConfig{
			Brokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			Topic:   getEnv("KAFKA_TOPIC", "product_events"),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "change-me-in-production"),
		},
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogstashAddr: getEnv("LOGSTASH_ADDR", ""),
		Locale:       getEnv("DEFAULT_LOCALE", "ru"),
	}, nil
}

// URL возвращает строку подключения для pgx и golang-migrate
func (c *DatabaseConfig) URL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func (c *RedisConfig) Address() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
