package config

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort      string
	BaseURL         string
	DatabaseType    string
	DatabasePath    string
	DatabaseURL     string
	MigrationsPath  string
	TemplatesPath   string
	SessionDuration time.Duration

	// LaunchSecret signs the tokens handed to spawned quiz processes.
	LaunchSecret string

	// QuizBinary is the executable the launcher spawns for a quiz attempt.
	QuizBinary string
}

// Load reads configuration from the environment with sensible defaults.
// A local .env file is loaded first when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	return &Config{
		ServerPort:      getEnv("PORT", "8080"),
		BaseURL:         getEnv("BASE_URL", "http://localhost:8080"),
		DatabaseType:    getEnv("DB_TYPE", "sqlite"),
		DatabasePath:    getEnv("DB_PATH", "./learningplatform.db"),
		DatabaseURL:     getEnv("DB_URL", ""),
		MigrationsPath:  getEnv("MIGRATIONS_PATH", "./migrations"),
		TemplatesPath:   getEnv("TEMPLATES_PATH", "./templates"),
		SessionDuration: 24 * time.Hour,
		LaunchSecret:    getEnv("LAUNCH_SECRET", randomSecret()),
		QuizBinary:      getEnv("QUIZ_BINARY", "./quiz"),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// randomSecret generates a per-process secret. Launch tokens only need to be
// verifiable by the process that issued them, so an ephemeral secret is a safe
// default; set LAUNCH_SECRET to survive restarts.
func randomSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		log.Fatalf("Failed to generate launch secret: %v", err)
	}
	return hex.EncodeToString(buf)
}
