package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const DefaultRecommenderURL = "https://your-backend.fly.dev/recommend"

type Config struct {
	Server      ServerConfig
	Recommender RecommenderConfig
	Upload      UploadConfig
	Locale      LocaleConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type RecommenderConfig struct {
	URL     string
	Timeout time.Duration
}

type UploadConfig struct {
	MaxFileSize int64
	MaxBodySize int64
}

type LocaleConfig struct {
	Default string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Recommender: RecommenderConfig{
			URL:     getEnv("RECOMMENDER_URL", DefaultRecommenderURL),
			Timeout: getEnvAsDuration("RECOMMENDER_TIMEOUT", "60s"),
		},
		Upload: UploadConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
			MaxBodySize: getEnvAsInt64("MAX_BODY_SIZE", 52428800),
		},
		Locale: LocaleConfig{
			Default: getEnv("DEFAULT_LOCALE", "es"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
