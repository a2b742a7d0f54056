package usecase_test

import (
	"context"
	"testing"

	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/internal/domain"
	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/internal/usecase"
	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/pkg/apperror"
	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/pkg/mailer"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewsletterSubscribeRejectsBadEmail(t *testing.T) {
	mockMailer := new(MockMailer)
	uc := usecase.NewNewsletterUsecase(mockMailer, validator.New(), "owner@example.com", 0)

	_, err := uc.Subscribe(context.Background(), &domain.NewsletterRequest{Email: "nope"})

	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	mockMailer.AssertNotCalled(t, "Send")
}

func TestNewsletterSubscribeSendsNotificationAndWelcome(t *testing.T) {
	mockMailer := new(MockMailer)
	uc := usecase.NewNewsletterUsecase(mockMailer, validator.New(), "owner@example.com", 0)

	mockMailer.On("Send", mock.Anything, mock.MatchedBy(func(msg mailer.Message) bool {
		return msg.To == "owner@example.com" && msg.Subject == "Newsletter Subscription"
	})).Return(mailer.Outcome{Success: true}).Once()
	mockMailer.On("Send", mock.Anything, mock.MatchedBy(func(msg mailer.Message) bool {
		return msg.To == "fan@example.com"
	})).Return(mailer.Outcome{Success: true}).Once()

	outcome, err := uc.Subscribe(context.Background(), &domain.NewsletterRequest{Email: "fan@example.com"})

	require.NoError(t, err)
	assert.True(t, outcome.Success)
	mockMailer.AssertExpectations(t)
}

func TestNewsletterWelcomeFailureDoesNotFailSubscription(t *testing.T) {
	mockMailer := new(MockMailer)
	uc := usecase.NewNewsletterUsecase(mockMailer, validator.New(), "owner@example.com", 0)

	mockMailer.On("Send", mock.Anything, mock.MatchedBy(func(msg mailer.Message) bool {
		return msg.To == "owner@example.com"
	})).Return(mailer.Outcome{Success: true}).Once()
	mockMailer.On("Send", mock.Anything, mock.Anything).
		Return(mailer.Outcome{Success: false, Error: "mailbox full"}).Once()

	outcome, err := uc.Subscribe(context.Background(), &domain.NewsletterRequest{Email: "fan@example.com"})

	require.NoError(t, err)
	assert.True(t, outcome.Success)
}
