// Package config provides configuration for the chat backend.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the server configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Database. SupabaseURL/SupabaseKey select the hosted store; otherwise
	// DatabaseURL is opened as a local sqlite database.
	DatabaseURL string
	SupabaseURL string
	SupabaseKey string

	// Completion API
	GroqAPIKey  string
	GroqBaseURL string
	GroqModel   string
	LLMTimeout  time.Duration

	// Character catalog override file
	CharactersFile string

	// Logging
	LogLevel string
}

// Load loads configuration from a .env file (if present) and the environment.
func Load() *Config {
	// Missing .env is fine; the environment is the source of truth.
	_ = godotenv.Load()

	return &Config{
		HTTPPort:       getEnvInt("PORT", 3000),
		DatabaseURL:    getEnv("DATABASE_URL", "file:charchat.db?cache=shared&mode=rwc"),
		SupabaseURL:    getEnv("SUPABASE_URL", ""),
		SupabaseKey:    getEnv("SUPABASE_KEY", ""),
		GroqAPIKey:     getEnv("GROQ_API_KEY", ""),
		GroqBaseURL:    getEnv("GROQ_BASE_URL", "https://api.groq.com/openai"),
		GroqModel:      getEnv("GROQ_MODEL", "llama3-8b-8192"),
		LLMTimeout:     time.Duration(getEnvInt("LLM_TIMEOUT_MS", 30000)) * time.Millisecond,
		CharactersFile: getEnv("CHARACTERS_FILE", "data/characters.json"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}
}

// UseSupabase reports whether the hosted store is configured.
func (c *Config) UseSupabase() bool {
	return c.SupabaseURL != "" && c.SupabaseKey != ""
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
