package domain

import (
	"context"

	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/pkg/mailer"
	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/pkg/validation"
)

// ContactRequest represents a contact form submission. No binding tags:
// the payload is parsed as-is and validated against the shared rule set
// so the server and the form controller can never disagree.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Fields exposes the request as the field map the validation rules
// operate on. Every tracked field is always present.
func (r *ContactRequest) Fields() map[string]string {
	return map[string]string{
		"name":    r.Name,
		"email":   r.Email,
		"subject": r.Subject,
		"message": r.Message,
	}
}

// ContactResponse is the wire shape of POST /api/contact for all three
// outcomes. Exactly one of EmailResult, Errors, or Error is populated.
type ContactResponse struct {
	Success     bool                     `json:"success"`
	Message     string                   `json:"message"`
	EmailResult *mailer.Outcome          `json:"emailResult,omitempty"`
	Errors      []validation.FieldError  `json:"errors,omitempty"`
	Error       string                   `json:"error,omitempty"`
}

// ContactUsecase defines the contact form pipeline: validate against
// the shared rules, then deliver through the configured mail strategy.
type ContactUsecase interface {
	// Validate re-checks the payload server-side. A nil slice means the
	// submission is fully valid; otherwise it is rejected in its
	// entirety.
	Validate(req *ContactRequest) []validation.FieldError
	// Submit delivers a validated submission. The outcome is reported,
	// never retried; the submission is discarded either way.
	Submit(ctx context.Context, req *ContactRequest) mailer.Outcome
}
