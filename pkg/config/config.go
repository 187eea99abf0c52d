package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	Environment     string
	DataDir         string
	FirebaseProject string
	DevTokenSecret  string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		DataDir:         getEnv("DATA_DIR", "./data"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		DevTokenSecret:  getEnv("DEV_TOKEN_SECRET", "dev-only-secret"),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
