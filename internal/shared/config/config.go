package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port           string
	DBHost         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBPort         string
	DBSSLMode      string
	RedisAddr      string
	KafkaBrokers   string
	JWTSecret      string
	UploadDir      string
	OutboxInterval time.Duration
	ConnectRetries int
}

// Load reads the process environment. Call godotenv.Load first so a local
// .env file can populate it during development.
func Load() Config {
	return Config{
		Port:           getEnv("PORT", "3000"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", ""),
		DBName:         getEnv("DB_NAME", "hr_console"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBrokers:   getEnv("KAFKA_BROKERS", "localhost:9092"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		OutboxInterval: getEnvDuration("OUTBOX_POLL_INTERVAL", 3*time.Second),
		ConnectRetries: getEnvInt("CONNECT_RETRIES", 5),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
