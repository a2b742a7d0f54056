package mailer_test

import (
	"context"
	"testing"
	"time"

	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/config"
	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/pkg/logger"
	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/pkg/mailer"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func init() {
	logger.Init()
}

func TestSimulatedReturnsSuccessAfterDelay(t *testing.T) {
	m := mailer.NewSimulated(10 * time.Millisecond)

	start := time.Now()
	outcome := m.Send(context.Background(), mailer.Message{
		To:      "owner@example.com",
		Subject: "Portfolio Contact: hi",
		HTML:    "<p>hi</p>",
	})

	assert.True(t, outcome.Success)
	assert.True(t, outcome.Simulated)
	assert.Empty(t, outcome.Error)
	assert.Empty(t, outcome.MessageID)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestSimulatedHonorsContextCancellation(t *testing.T) {
	m := mailer.NewSimulated(time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	outcome := m.Send(ctx, mailer.Message{To: "owner@example.com"})
	assert.False(t, outcome.Success)
	assert.NotEmpty(t, outcome.Error)
}

func TestFromConfigSelection(t *testing.T) {
	cases := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{
			name: "resend key wins",
			cfg:  config.Config{ResendAPIKey: "re_123", SMTPHost: "smtp.gmail.com", SMTPUser: "u", SMTPPass: "p"},
			want: "resend",
		},
		{
			name: "smtp when fully configured",
			cfg:  config.Config{SMTPHost: "smtp.gmail.com", SMTPPort: "587", SMTPUser: "u", SMTPPass: "p"},
			want: "smtp",
		},
		{
			name: "simulated when password missing",
			cfg:  config.Config{SMTPHost: "smtp.gmail.com", SMTPUser: "u"},
			want: "simulated",
		},
		{
			name: "simulated when nothing configured",
			cfg:  config.Config{},
			want: "simulated",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := mailer.FromConfig(&tc.cfg)
			assert.Equal(t, tc.want, m.Name())
		})
	}
}

func TestWithMetricsCountsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := mailer.WithMetrics(mailer.NewSimulated(time.Millisecond), reg)

	assert.Equal(t, "simulated", m.Name())

	outcome := m.Send(context.Background(), mailer.Message{To: "owner@example.com"})
	assert.True(t, outcome.Success)

	sent, err := testutil.GatherAndCount(reg, "portfolio_emails_sent_total")
	assert.NoError(t, err)
	assert.Equal(t, 1, sent)
}
