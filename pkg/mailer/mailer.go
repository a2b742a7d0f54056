// Package mailer dispatches outbound email through one of three
// strategies selected once at startup: the Resend API, plain SMTP, or a
// simulated no-op used when no transport credentials are configured.
// Callers never branch on which strategy is active.
package mailer

import (
	"context"

	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/config"
	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/pkg/logger"
)

// Message is a single outbound email.
type Message struct {
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// Outcome reports the result of one delivery attempt. Failures are
// folded into the struct; Send never returns a Go error across the
// boundary, so handlers cannot accidentally leak transport internals.
type Outcome struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Simulated bool   `json:"simulated,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Mailer sends one message per call. Calls are independent; a Mailer is
// safe for concurrent use.
type Mailer interface {
	Send(ctx context.Context, msg Message) Outcome
	// Name identifies the active strategy ("resend", "smtp", "simulated").
	Name() string
}

// FromConfig selects the delivery strategy from configuration presence:
// a Resend API key wins, then complete SMTP credentials, and with
// neither the simulated mailer stands in so the happy path stays
// exercisable in development.
func FromConfig(cfg *config.Config) Mailer {
	switch {
	case cfg.ResendAPIKey != "":
		logger.Log.Info("Mail delivery via Resend", "from", cfg.EmailFrom)
		return NewResend(cfg.ResendAPIKey, cfg.EmailFrom)
	case cfg.SMTPHost != "" && cfg.SMTPUser != "" && cfg.SMTPPass != "":
		logger.Log.Info("Mail delivery via SMTP", "host", cfg.SMTPHost, "port", cfg.SMTPPort)
		return NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	default:
		logger.Log.Warn("Mail transport not configured - deliveries will be simulated")
		return NewSimulated(0)
	}
}
