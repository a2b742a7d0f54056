package domain

import (
	"context"

	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/pkg/mailer"
)

// NewsletterRequest represents a newsletter subscription.
type NewsletterRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// NewsletterUsecase handles newsletter signups. Nothing is persisted;
// the subscription is relayed to the site owner by email and the
// subscriber gets a welcome message.
type NewsletterUsecase interface {
	Subscribe(ctx context.Context, req *NewsletterRequest) (mailer.Outcome, error)
}
