package model

import "time"

// HealthStatusOK is the status reported by a live process
const HealthStatusOK = "ok"

// HealthStatus represents the health check response
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// NewHealthStatus builds the response for the given instant. The timestamp is
// RFC 3339 in UTC, e.g. 2026-10-18T09:15:00Z.
func NewHealthStatus(now time.Time) *HealthStatus {
	return &HealthStatus{
		Status:    HealthStatusOK,
		Timestamp: now.UTC().Format(time.RFC3339),
	}
}
