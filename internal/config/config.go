package config

import (
	"os"
)

type Config struct {
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	RedisHost     string
	RedisPort     string
	SessionSecret string
	GinMode       string

	// Planning assumptions used by the financial summary. Yield is in tons
	// per hectare, market price in currency per ton.
	EstimatedYield     string
	CurrentMarketPrice string
}

func Load() *Config {
	return &Config{
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "3306"),
		DBUser:             getEnv("DB_USER", "agriuser"),
		DBPassword:         getEnv("DB_PASSWORD", "agripassword"),
		DBName:             getEnv("DB_NAME", "agri_partnership"),
		RedisHost:          getEnv("REDIS_HOST", "localhost"),
		RedisPort:          getEnv("REDIS_PORT", "6379"),
		SessionSecret:      getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		GinMode:            getEnv("GIN_MODE", "debug"),
		EstimatedYield:     getEnv("ESTIMATED_YIELD_TONS_PER_HECTARE", "5"),
		CurrentMarketPrice: getEnv("MARKET_PRICE_PER_TON", "12000"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
