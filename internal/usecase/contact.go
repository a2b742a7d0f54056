package usecase

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/internal/domain"
	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/pkg/logger"
	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/pkg/mailer"
	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/pkg/validation"
)

// contactEmailTemplate is the HTML body delivered to the site owner.
const contactEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Form Submission</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #0066cc; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Contact Form Submission</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">Name:</div>
                <div>{{.Name}}</div>
            </div>
            <div class="field">
                <div class="label">Email:</div>
                <div>{{.Email}}</div>
            </div>
            <div class="field">
                <div class="label">Subject:</div>
                <div>{{.Subject}}</div>
            </div>
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{.Message}}</div>
            </div>
        </div>
        <div class="footer">
            <p>Sent from portfolio contact form</p>
            <p>To reply, send an email to: {{.Email}}</p>
        </div>
    </div>
</body>
</html>`

var contactTmpl = template.Must(template.New("contact").Parse(contactEmailTemplate))

type contactUsecase struct {
	mailer      mailer.Mailer
	rules       validation.RuleSet
	destination string
	timeout     time.Duration
}

// NewContactUsecase wires the contact pipeline: the shared validation
// rules plus the configured mail strategy and destination address.
func NewContactUsecase(m mailer.Mailer, destination string, timeout time.Duration) domain.ContactUsecase {
	return &contactUsecase{
		mailer:      m,
		rules:       validation.ContactRules(),
		destination: destination,
		timeout:     timeout,
	}
}

// Validate applies the shared rule set to every tracked field. The
// client is never trusted; this runs on every submission regardless of
// what the form controller already checked.
func (uc *contactUsecase) Validate(req *domain.ContactRequest) []validation.FieldError {
	result := validation.ValidateForm(req.Fields(), uc.rules)
	return result.FieldErrors()
}

// Submit renders the notification email and hands it to the mailer.
// One attempt, no retry: the outcome is folded into the response and
// the submission is discarded.
func (uc *contactUsecase) Submit(ctx context.Context, req *domain.ContactRequest) mailer.Outcome {
	var body bytes.Buffer
	if err := contactTmpl.Execute(&body, req); err != nil {
		logger.Log.Error("Failed to render contact email template", "error", err)
		return mailer.Outcome{Success: false, Error: "failed to render email template"}
	}

	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	outcome := uc.mailer.Send(ctx, mailer.Message{
		To:      uc.destination,
		ReplyTo: strings.TrimSpace(req.Email),
		Subject: fmt.Sprintf("Portfolio Contact: %s", req.Subject),
		HTML:    body.String(),
	})

	if outcome.Success {
		logger.Log.Info("Contact submission delivered",
			"transport", uc.mailer.Name(),
			"simulated", outcome.Simulated,
			"messageId", outcome.MessageID)
	} else {
		logger.Log.Error("Contact submission delivery failed",
			"transport", uc.mailer.Name(),
			"error", outcome.Error)
	}
	return outcome
}
