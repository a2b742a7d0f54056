package usecase

import (
	"context"
	"time"

	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/internal/domain"
)

type healthUsecase struct {
	environment string
	version     string
	services    func() map[string]string
	startedAt   time.Time
}

// NewHealthUsecase reports a liveness snapshot. The services callback
// is evaluated per check so transport/store state stays current.
func NewHealthUsecase(environment, version string, services func() map[string]string) domain.HealthUsecase {
	return &healthUsecase{
		environment: environment,
		version:     version,
		services:    services,
		startedAt:   time.Now(),
	}
}

func (u *healthUsecase) Check(ctx context.Context) domain.HealthStatus {
	return domain.HealthStatus{
		Status:      "healthy",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Uptime:      time.Since(u.startedAt).Seconds(),
		Environment: u.environment,
		Version:     u.version,
		Services:    u.services(),
	}
}
