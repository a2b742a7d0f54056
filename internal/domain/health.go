package domain

import "context"

// HealthStatus is the GET /api/health snapshot.
type HealthStatus struct {
	Status      string            `json:"status"`
	Timestamp   string            `json:"timestamp"`
	Uptime      float64           `json:"uptime"`
	Environment string            `json:"environment"`
	Version     string            `json:"version"`
	Services    map[string]string `json:"services"`
}

type HealthUsecase interface {
	Check(ctx context.Context) HealthStatus
}
