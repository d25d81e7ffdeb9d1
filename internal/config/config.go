package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort    string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	ShippingFee     string
	Currency        string
	StripeSecretKey string
	AppID           string

	KafkaBrokers  string
	KafkaClientID string
	EventsEnabled string
}

func Load() *Config {
	// Optional .env for local development; deployments set the environment
	// directly.
	_ = godotenv.Load()

	return &Config{
		AppPort:    getEnv("APP_PORT", "8080"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "checkoutdb"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		ShippingFee:     getEnv("SHIPPING_FEE", "20000"),
		Currency:        getEnv("CURRENCY", "vnd"),
		StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),
		AppID:           getEnv("APP_ID", "gocart"),

		KafkaBrokers:  getEnv("KAFKA_BROKERS", "kafka:9092"),
		KafkaClientID: getEnv("KAFKA_CLIENT_ID", "checkout-service"),
		EventsEnabled: getEnv("EVENTS_ENABLED", "false"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) ShippingFeeAmount() float64 {
	return parseFloat(c.ShippingFee, 20000)
}

func parseFloat(value string, fallback float64) float64 {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || parsed < 0 {
		return fallback
	}
	return parsed
}
