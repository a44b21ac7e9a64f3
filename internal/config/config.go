package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server        ServerConfig
	API           APIConfig
	SessionSecret string
	PageLimit     int
	AllowedOrigin string
}

type ServerConfig struct {
	Port int
}

type APIConfig struct {
	BaseURL string
}

func Load() *Config {
	err := godotenv.Load(".env")

	if err != nil {
		log.Printf("No .env file found: %s", err)
	}

	serverPort, _ := strconv.Atoi(getEnv("SERVER_PORT", "8080"))
	pageLimit, _ := strconv.Atoi(getEnv("PAGE_LIMIT", "5"))

	return &Config{
		Server: ServerConfig{
			Port: serverPort,
		},
		API: APIConfig{
			BaseURL: getEnv("API_BASE_URL", "http://localhost:8000"),
		},
		SessionSecret: getEnv("SESSION_SECRET", ""),
		PageLimit:     pageLimit,
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:8080"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
