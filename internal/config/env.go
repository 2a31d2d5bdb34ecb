package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// loads auth service configuration from environment variables
func LoadAuth() (*AuthConfig, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	databaseURL := os.Getenv("DATABASE_URL")
	jwtSecret := os.Getenv("JWT_SECRET")
	sessionSecret := os.Getenv("SESSION_SECRET")
	googleClientID := os.Getenv("GOOGLE_CLIENT_ID")
	googleClientSecret := os.Getenv("GOOGLE_CLIENT_SECRET")

	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if sessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET environment variable is required")
	}

	if googleClientID == "" || googleClientSecret == "" {
		return nil, fmt.Errorf("GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET environment variables are required")
	}

	return &AuthConfig{
		DatabaseURL:        databaseURL,
		JWTSecret:          jwtSecret,
		SessionSecret:      sessionSecret,
		GoogleClientID:     googleClientID,
		GoogleClientSecret: googleClientSecret,
		BaseURL:            getEnvOrDefault("BASE_URL", "http://localhost:8001"),
		FrontendURL:        getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),
		Port:               getEnvOrDefault("PORT", "8001"),
		Environment:        getEnvOrDefault("ENVIRONMENT", "development"),
	}, nil
}

// loads chat relay service configuration from environment variables
func LoadChat() (*ChatConfig, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	return &ChatConfig{
		OllamaHost:  getEnvOrDefault("OLLAMA_HOST", "http://localhost:11434"),
		ChatModel:   getEnvOrDefault("CHAT_MODEL", "llama3:8b"),
		FrontendURL: getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),
		Port:        getEnvOrDefault("PORT", "8002"),
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),
	}, nil
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}
