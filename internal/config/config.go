package config

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get a required env var. It will fail if the env var is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		log.Fatalf("Error: Required environment variable %s is not set.", key)
		return "" // This line is never reached
	}
	getEnvOr := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		return fallback
	}

	cfg := Config{
		DBName: getEnvOr("DB_NAME", "khelile.db"),
		Port:   getEnvOr("PORT", "8080"),
		Discord: DiscordConfig{
			Token: getEnv("DISCORD_BOT_TOKEN"),
		},
		Codeforces: CodeforcesConfig{
			BaseURL: getEnvOr("CODEFORCES_BASE_URL", "https://codeforces.com/api"),
		},
		Turso: TursoConfig{
			PrimaryURL: getEnvOr("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnvOr("TURSO_AUTH_TOKEN", ""),
		},
		ProjectID: getEnvOr("GCP_PROJECT", ""),
	}
	return cfg
}
