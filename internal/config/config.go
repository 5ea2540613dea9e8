package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// CORS
	AllowedOrigins []string

	// JWT
	JWTSecret    string
	JWTAccessTTL time.Duration

	// Email transport
	ResendAPIKey   string
	ResendEndpoint string
	FromEmail      string
	FromName       string

	// Public site URL used to build links in email templates
	PublicBaseURL string

	// Google OAuth
	GoogleClientID    string
	GoogleRedirectURI string

	// Logging
	LogLevel string
}

func Load() *Config {
	// Load .env file in development
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// CORS
		AllowedOrigins: parseStringSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),

		// JWT
		JWTSecret:    getEnv("JWT_SECRET", "super-secret-key-change-me"),
		JWTAccessTTL: parseDuration(getEnv("JWT_ACCESS_TTL", "24h")),

		// Email
		ResendAPIKey:   getEnv("RESEND_API_KEY", ""),
		ResendEndpoint: getEnv("RESEND_ENDPOINT", "https://api.resend.com/emails"),
		FromEmail:      getEnv("FROM_EMAIL", "noreply@weddingvenueskigali.rw"),
		FromName:       getEnv("FROM_NAME", "Wedding Venues Kigali"),

		// Links
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:3000"),

		// Google OAuth
		GoogleClientID:    getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleRedirectURI: getEnv("GOOGLE_REDIRECT_URI", "http://localhost:3000/auth/callback"),

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "debug"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 24 * time.Hour
	}
	return d
}

func parseStringSlice(s string) []string {
	if s == "" {
		return []string{}
	}
	var result []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			if start < i {
				result = append(result, s[start:i])
			}
			start = i + 1
		}
	}
	return result
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
