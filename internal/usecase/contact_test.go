package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/internal/domain"
	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/internal/usecase"
	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/pkg/logger"
	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/pkg/mailer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func init() {
	logger.Init()
}

// Mock Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg mailer.Message) mailer.Outcome {
	args := m.Called(ctx, msg)
	return args.Get(0).(mailer.Outcome)
}

func (m *MockMailer) Name() string {
	return "mock"
}

func validContact() *domain.ContactRequest {
	return &domain.ContactRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Project inquiry",
		Message: "I would like to discuss a project with you.",
	}
}

func TestContactValidate(t *testing.T) {
	uc := usecase.NewContactUsecase(new(MockMailer), "owner@example.com", 0)

	t.Run("valid submission has no violations", func(t *testing.T) {
		assert.Nil(t, uc.Validate(validContact()))
	})

	t.Run("invalid submission reports every failing field", func(t *testing.T) {
		errs := uc.Validate(&domain.ContactRequest{
			Name:    "J",
			Email:   "not-an-email",
			Subject: "Hi",
			Message: "short",
		})
		assert.Len(t, errs, 4)
		fields := map[string]bool{}
		for _, e := range errs {
			fields[e.Field] = true
		}
		for _, f := range []string{"name", "email", "subject", "message"} {
			assert.True(t, fields[f], "expected a violation for %q", f)
		}
	})
}

func TestContactSubmitBuildsNotification(t *testing.T) {
	mockMailer := new(MockMailer)
	uc := usecase.NewContactUsecase(mockMailer, "owner@example.com", 10*time.Second)

	mockMailer.On("Send", mock.Anything, mock.MatchedBy(func(msg mailer.Message) bool {
		return msg.To == "owner@example.com" &&
			msg.ReplyTo == "jane@example.com" &&
			msg.Subject == "Portfolio Contact: Project inquiry"
	})).Return(mailer.Outcome{Success: true, MessageID: "msg-1"})

	outcome := uc.Submit(context.Background(), validContact())

	assert.True(t, outcome.Success)
	assert.Equal(t, "msg-1", outcome.MessageID)
	mockMailer.AssertNumberOfCalls(t, "Send", 1)
}

func TestContactSubmitPropagatesDeliveryFailure(t *testing.T) {
	mockMailer := new(MockMailer)
	uc := usecase.NewContactUsecase(mockMailer, "owner@example.com", 0)

	mockMailer.On("Send", mock.Anything, mock.Anything).
		Return(mailer.Outcome{Success: false, Error: "relay refused connection"})

	outcome := uc.Submit(context.Background(), validContact())

	assert.False(t, outcome.Success)
	assert.Equal(t, "relay refused connection", outcome.Error)
}

func TestContactSubmitEscapesHTML(t *testing.T) {
	mockMailer := new(MockMailer)
	uc := usecase.NewContactUsecase(mockMailer, "owner@example.com", 0)

	var captured mailer.Message
	mockMailer.On("Send", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(mailer.Message)
		}).
		Return(mailer.Outcome{Success: true})

	req := validContact()
	req.Message = `Hello <script>alert("x")</script> there, nice site!`
	uc.Submit(context.Background(), req)

	assert.NotContains(t, captured.HTML, "<script>")
}
