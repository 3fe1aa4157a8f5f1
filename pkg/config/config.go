package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	FirebaseProject string
	Environment     string

	// Payment processor settings. The secret key never leaves the server;
	// the publishable key is handed to mobile clients as-is.
	PaymentSecretKey      string
	PaymentPublishableKey string
	PaymentAPIBaseURL     string
	Currency              string

	ChatHistoryLimit int
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:            getEnv("SERVER_PORT", "8080"),
		FirebaseProject:       getEnv("FIREBASE_PROJECT_ID", ""),
		Environment:           getEnv("ENVIRONMENT", "development"),
		PaymentSecretKey:      getEnv("PAYMENT_SECRET_KEY", ""),
		PaymentPublishableKey: getEnv("PAYMENT_PUBLISHABLE_KEY", ""),
		PaymentAPIBaseURL:     getEnv("PAYMENT_API_BASE_URL", "https://api.stripe.com/v1"),
		Currency:              getEnv("CURRENCY", "pkr"),
		ChatHistoryLimit:      getEnvAsInt("CHAT_HISTORY_LIMIT", 200),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.Atoi(value)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
