package mailer

import (
	"context"

	"github.com/resend/resend-go/v2"
)

// Resend delivers mail through the Resend transactional email API.
type Resend struct {
	client *resend.Client
	from   string
}

func NewResend(apiKey, from string) *Resend {
	return &Resend{client: resend.NewClient(apiKey), from: from}
}

func (r *Resend) Name() string { return "resend" }

func (r *Resend) Send(ctx context.Context, msg Message) Outcome {
	params := &resend.SendEmailRequest{
		From:    r.from,
		To:      []string{msg.To},
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Html:    msg.HTML,
	}

	sent, err := r.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return Outcome{Success: false, Error: err.Error()}
	}
	return Outcome{Success: true, MessageID: sent.Id}
}
