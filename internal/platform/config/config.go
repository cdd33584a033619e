package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DBPath       string // SQLite file backing the key-value store
	ActorEmail   string // Simulated signed-in user stamped on audit trails
	IsProduction bool

	// External compliance-audit service
	GenAIAPIKey  string
	GenAIBaseURL string
	GenAIModel   string
	GenAITimeout time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("AUDITEASY_DB_PATH", "auditeasy.db")
	viper.SetDefault("ACTOR_EMAIL", "rahul.nss@stpaul.edu")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("GENAI_API_KEY", "")
	viper.SetDefault("GENAI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("GENAI_MODEL", "gemini-3-pro-preview")
	viper.SetDefault("GENAI_TIMEOUT", "60s")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DBPath = viper.GetString("AUDITEASY_DB_PATH")
	cfg.ActorEmail = viper.GetString("ACTOR_EMAIL")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.GenAIAPIKey = viper.GetString("GENAI_API_KEY")
	cfg.GenAIBaseURL = viper.GetString("GENAI_BASE_URL")
	cfg.GenAIModel = viper.GetString("GENAI_MODEL")

	if cfg.GenAIAPIKey == "" {
		log.Println("Warning: GENAI_API_KEY not set. The compliance audit command will not function.")
	}

	timeoutStr := viper.GetString("GENAI_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 60 * time.Second
		if timeoutStr != "" {
			log.Printf("Warning: Invalid value for GENAI_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
		}
	}
	cfg.GenAITimeout = timeout

	return cfg, nil
}
