package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	SQLitePath     string
	Port           string
	IsProduction   bool
	BaseCurrency   string
	DisplayLocale  string
	RateLimit      string
	SeedSampleData bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("SQLITE_PATH", "pfa.db")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("BASE_CURRENCY", "USD")
	viper.SetDefault("DISPLAY_LOCALE", "en-US")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("SEED_SAMPLE_DATA", false)

	viper.AutomaticEnv()

	cfg := &Config{
		SQLitePath:     viper.GetString("SQLITE_PATH"),
		Port:           viper.GetString("PORT"),
		IsProduction:   viper.GetBool("IS_PRODUCTION"),
		BaseCurrency:   viper.GetString("BASE_CURRENCY"),
		DisplayLocale:  viper.GetString("DISPLAY_LOCALE"),
		RateLimit:      viper.GetString("RATE_LIMIT"),
		SeedSampleData: viper.GetBool("SEED_SAMPLE_DATA"),
	}

	if cfg.SQLitePath == "" {
		cfg.SQLitePath = "pfa.db"
		log.Printf("Warning: SQLITE_PATH environment variable not set. Defaulting to %s\n", cfg.SQLitePath)
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	return cfg, nil
}
