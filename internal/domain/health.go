package domain

// StatusBackendRunning is the fixed liveness payload value.
const StatusBackendRunning = "Backend running"

// HealthStatus is the liveness probe response body.
type HealthStatus struct {
	Status string `json:"status"`
}

// NewHealthStatus returns the liveness payload. The value never varies.
func NewHealthStatus() HealthStatus {
	return HealthStatus{Status: StatusBackendRunning}
}

// ReadinessStatus is the body of a successful readiness probe.
type ReadinessStatus struct {
	Status string `json:"status"`
}

// ServiceInfo identifies the running build.
type ServiceInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
}
