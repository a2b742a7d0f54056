package config_test

import (
	"testing"

	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "587", cfg.SMTPPort)
	assert.Equal(t, 5, cfg.ContactRateLimit)
	assert.Equal(t, 900, cfg.ContactRateWindowSecs)
	assert.Equal(t, 3, cfg.NewsletterRateLimit)
	assert.Equal(t, 3600, cfg.NewsletterRateWindowSecs)
	assert.Equal(t, 10, cfg.MailTimeoutSeconds)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SMTP_HOST", "smtp.gmail.com")
	t.Setenv("SMTP_USER", "me@gmail.com")
	t.Setenv("SMTP_PASS", "secret")
	t.Setenv("RATE_LIMIT_CONTACT", "7")
	t.Setenv("FRONTEND_URL", "https://portfolio.example.com/")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTPHost)
	assert.Equal(t, 7, cfg.ContactRateLimit)
	// Trailing slash is stripped to avoid double-slash URLs.
	assert.Equal(t, "https://portfolio.example.com", cfg.FrontendURL)
}

func TestInvalidIntFallsBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_GLOBAL", "not-a-number")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.GlobalRateLimit)
}
