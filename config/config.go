package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string
	Version     string
	FrontendURL string
	// SMTP transport (contact form delivery)
	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	// Resend transport (takes precedence over SMTP when set)
	ResendAPIKey string
	EmailFrom    string
	// Destination for contact form and newsletter notifications
	ContactEmail string
	// Redis (rate limit counters)
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	GlobalRateLimit          int
	GlobalRateWindowSeconds  int
	ContactRateLimit         int
	ContactRateWindowSecs    int
	NewsletterRateLimit      int
	NewsletterRateWindowSecs int
	// Outbound mail call timeout, seconds
	MailTimeoutSeconds int
}

func Load() (*Config, error) {
	// .env is only present locally; ignored in production.
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("APP_ENV", "development"),
		Version:     getEnv("APP_VERSION", "1.0.0"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),

		SMTPHost: getEnv("SMTP_HOST", ""),
		SMTPPort: getEnv("SMTP_PORT", "587"),
		SMTPUser: getEnv("SMTP_USER", ""),
		SMTPPass: getEnv("SMTP_PASS", ""),

		ResendAPIKey: getEnv("RESEND_API_KEY", ""),
		EmailFrom:    getEnv("EMAIL_FROM", "noreply@example.com"),

		ContactEmail: getEnv("CONTACT_EMAIL", "mohamed20220632@gmail.com"),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		// Thresholds mirror what the frontend communicates to users:
		// 5 contact submissions per 15 minutes, 3 newsletter signups
		// per hour, 100 API requests per 15 minutes.
		GlobalRateLimit:          getEnvInt("RATE_LIMIT_GLOBAL", 100),
		GlobalRateWindowSeconds:  getEnvInt("RATE_LIMIT_GLOBAL_WINDOW_SECONDS", 900),
		ContactRateLimit:         getEnvInt("RATE_LIMIT_CONTACT", 5),
		ContactRateWindowSecs:    getEnvInt("RATE_LIMIT_CONTACT_WINDOW_SECONDS", 900),
		NewsletterRateLimit:      getEnvInt("RATE_LIMIT_NEWSLETTER", 3),
		NewsletterRateWindowSecs: getEnvInt("RATE_LIMIT_NEWSLETTER_WINDOW_SECONDS", 3600),

		MailTimeoutSeconds: getEnvInt("MAIL_TIMEOUT_SECONDS", 10),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
