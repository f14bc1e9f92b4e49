package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	ServerPort    string
	DevTelegramID string
}

// DefaultDevTelegramID — фиксированный Telegram ID для режима разработки,
// используется когда host-окружение не передало идентификатор.
const DefaultDevTelegramID = "764381135"

func LoadConfig() (Config, error) {

	err := godotenv.Load()

	return Config{
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "password"),
		DBName:        getEnv("DB_NAME", "corporate_portal"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		DevTelegramID: getEnv("DEV_TELEGRAM_ID", DefaultDevTelegramID),
	}, err
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
