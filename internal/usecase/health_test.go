package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestHealthCheckSnapshot(t *testing.T) {
	uc := usecase.NewHealthUsecase("test", "1.2.3", func() map[string]string {
		return map[string]string{"email": "simulated", "rate_limiter": "memory"}
	})

	status := uc.Check(context.Background())

	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, "test", status.Environment)
	assert.Equal(t, "1.2.3", status.Version)
	assert.Equal(t, "simulated", status.Services["email"])
	assert.GreaterOrEqual(t, status.Uptime, 0.0)

	ts, err := time.Parse(time.RFC3339, status.Timestamp)
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), ts, time.Minute)
}
