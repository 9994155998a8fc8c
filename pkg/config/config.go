package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	HasuraEndpoint     string
	HasuraSecret       string
	CampaignServiceURL string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:               getEnv("PORT", "8080"),
		HasuraEndpoint:     getEnv("HASURA_ENDPOINT", "https://arc.vocallabs.ai/v1/graphql"),
		HasuraSecret:       getEnv("HASURA_SECRET", "legalpwd123"),
		CampaignServiceURL: getEnv("CAMPAIGN_SERVICE_URL", "https://campaign.vocallabs.ai"),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
