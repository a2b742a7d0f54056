package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/internal/domain"
	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/pkg/apperror"
	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/pkg/logger"
	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/pkg/mailer"

	"github.com/go-playground/validator/v10"
)

const newsletterNotificationTemplate = `<h2>New Newsletter Subscription</h2>
<p><strong>Email:</strong> %s</p>
<p><strong>Date:</strong> %s</p>
<hr>
<p><small>Sent from portfolio newsletter form</small></p>`

const welcomeTemplate = `<h2>Welcome to the newsletter!</h2>
<p>Thank you for subscribing.</p>
<p>You'll receive updates about the latest projects and news.</p>
<hr>
<p><small>This is an automated message.</small></p>`

type newsletterUsecase struct {
	mailer      mailer.Mailer
	validate    *validator.Validate
	destination string
	timeout     time.Duration
}

func NewNewsletterUsecase(m mailer.Mailer, validate *validator.Validate, destination string, timeout time.Duration) domain.NewsletterUsecase {
	return &newsletterUsecase{
		mailer:      m,
		validate:    validate,
		destination: destination,
		timeout:     timeout,
	}
}

// Subscribe relays the signup to the site owner and sends the
// subscriber a welcome email. The welcome email is best effort; a
// failure there does not fail the subscription.
func (uc *newsletterUsecase) Subscribe(ctx context.Context, req *domain.NewsletterRequest) (mailer.Outcome, error) {
	if err := uc.validate.Struct(req); err != nil {
		return mailer.Outcome{}, apperror.BadRequest("A valid email address is required")
	}

	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	outcome := uc.mailer.Send(ctx, mailer.Message{
		To:      uc.destination,
		ReplyTo: req.Email,
		Subject: "Newsletter Subscription",
		HTML:    fmt.Sprintf(newsletterNotificationTemplate, req.Email, time.Now().Format("2006-01-02")),
	})
	if !outcome.Success {
		logger.Log.Error("Newsletter notification failed", "error", outcome.Error)
		return outcome, nil
	}

	welcome := uc.mailer.Send(ctx, mailer.Message{
		To:      req.Email,
		Subject: "Welcome to the newsletter!",
		HTML:    welcomeTemplate,
	})
	if !welcome.Success {
		logger.Log.Warn("Welcome email failed", "error", welcome.Error)
	}

	return outcome, nil
}
