package config

import (
	"fmt"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config holds every environment-driven setting of the service.
type Config struct {
	Port           string `env:"PORT,default=8080"`
	GeminiAPIKey   string `env:"GEMINI_API_KEY"`
	AdminAPIKey    string `env:"ADMIN_API_KEY"`
	WhatsAppNumber string `env:"WHATSAPP_NUMBER,default=584120000000"`

	// Database settings are optional; when none are set the catalog is
	// served from the embedded seed data.
	DatabaseURL string `env:"DATABASE_URL"`
	DBHost      string `env:"DB_HOST"`
	DBPort      string `env:"DB_PORT,default=5432"`
	DBUser      string `env:"DB_USER"`
	DBPassword  string `env:"DB_PASSWORD"`
	DBName      string `env:"DB_NAME"`
}

// Load reads .env (if present) and decodes the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode environment: %w", err)
	}
	return &cfg, nil
}

// DatabaseConfigured reports whether any postgres settings were provided.
func (c *Config) DatabaseConfigured() bool {
	return c.DatabaseURL != "" || c.DBHost != ""
}

// DSN returns the postgres connection string, preferring DATABASE_URL.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}
