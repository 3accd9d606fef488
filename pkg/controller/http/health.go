package http

import (
	"net/http"
	"time"

	"github.com/m-mizutani/simplecounter/pkg/domain/interfaces"
	"github.com/m-mizutani/simplecounter/pkg/domain/model"
)

type healthHandler struct {
	now func() time.Time
}

func newHealthHandler(now func() time.Time) *healthHandler {
	return &healthHandler{now: now}
}

// ServeHTTP answers health check requests. The timestamp is taken per request.
func (h *healthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, model.NewHealthStatus(h.now()))
}

type readinessHandler struct {
	uc interfaces.ReadinessUseCase
}

func newReadinessHandler(uc interfaces.ReadinessUseCase) *readinessHandler {
	return &readinessHandler{uc: uc}
}

func (h *readinessHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	report := h.uc.Check(r.Context())

	status := http.StatusOK
	if !report.Ready() {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, r, status, report)
}
