package mailer

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	sendLatency prometheus.Histogram
	sentCount   prometheus.Counter
	errorCount  prometheus.Counter
}

// instrumented wraps a Mailer and records delivery metrics.
type instrumented struct {
	next Mailer
	m    *metrics
}

// WithMetrics decorates a mailer with Prometheus delivery metrics.
func WithMetrics(next Mailer, reg prometheus.Registerer) Mailer {
	m := &metrics{
		sendLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "portfolio_email_send_duration_seconds",
			Help:    "Time taken to send emails",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10},
		}),
		sentCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_emails_sent_total",
			Help: "Total number of emails sent",
		}),
		errorCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_email_errors_total",
			Help: "Total number of email delivery failures",
		}),
	}
	reg.MustRegister(m.sendLatency, m.sentCount, m.errorCount)
	return &instrumented{next: next, m: m}
}

func (i *instrumented) Name() string { return i.next.Name() }

func (i *instrumented) Send(ctx context.Context, msg Message) Outcome {
	start := time.Now()
	outcome := i.next.Send(ctx, msg)
	i.m.sendLatency.Observe(time.Since(start).Seconds())

	if outcome.Success {
		i.m.sentCount.Inc()
	} else {
		i.m.errorCount.Inc()
	}
	return outcome
}
