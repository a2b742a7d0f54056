package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/google/uuid"
)

// SMTP delivers mail through a plain SMTP relay (Gmail, Brevo, etc.)
// using PLAIN auth. The login address doubles as the sender address,
// which is what the common relays expect.
type SMTP struct {
	host     string
	port     string
	username string
	password string
}

func NewSMTP(host, port, username, password string) *SMTP {
	return &SMTP{host: host, port: port, username: username, password: password}
}

func (s *SMTP) Name() string { return "smtp" }

// Send builds a MIME message and hands it to the relay. smtp.SendMail
// has no context support, so the dial runs on its own goroutine and the
// caller's deadline is honored with a select.
func (s *SMTP) Send(ctx context.Context, msg Message) Outcome {
	messageID := fmt.Sprintf("<%s@%s>", uuid.NewString(), s.host)

	raw := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Reply-To: %s\r\n"+
			"Subject: %s\r\n"+
			"Message-ID: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.username,
		msg.To,
		msg.ReplyTo,
		msg.Subject,
		messageID,
		msg.HTML,
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, s.username, []string{msg.To}, raw)
	}()

	select {
	case <-ctx.Done():
		return Outcome{Success: false, Error: ctx.Err().Error()}
	case err := <-done:
		if err != nil {
			return Outcome{Success: false, Error: err.Error()}
		}
		return Outcome{Success: true, MessageID: messageID}
	}
}
