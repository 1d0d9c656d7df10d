package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Default recipient used when CONTACT_EMAIL is unset.
const defaultRecipient = "hritik3447@gmail.com"

type Config struct {
	Port        string
	FrontendURL string
	// Email delivery (Resend)
	ResendAPIKey string
	FromName     string
	FromEmail    string
	ContactEmail string
	// Visitor metrics
	MetricsDBPath string
	AdminToken    string
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		// Email delivery. The API key has no default: its absence is a
		// recoverable runtime condition, not a startup failure.
		ResendAPIKey: getEnv("RESEND_API_KEY", ""),
		FromName:     getEnv("RESEND_FROM_NAME", "Portfolio Contact"),
		FromEmail:    getEnv("RESEND_FROM_EMAIL", "onboarding@resend.dev"),
		ContactEmail: getEnv("CONTACT_EMAIL", defaultRecipient),
		// Visitor metrics
		MetricsDBPath: getEnv("METRICS_DB_PATH", "portfolio.db"),
		AdminToken:    getEnv("ADMIN_TOKEN", ""),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
