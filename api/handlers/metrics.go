package handlers

import (
	"net/http"

	"github.com/gourav1211/officeagent/office/orchestrator"
)

// MetricsHandler exposes the in-process telemetry snapshot.
type MetricsHandler struct {
	orchestrator *orchestrator.Orchestrator
}

// NewMetricsHandler creates a metrics handler.
func NewMetricsHandler(o *orchestrator.Orchestrator) *MetricsHandler {
	return &MetricsHandler{orchestrator: o}
}

// GetMetrics handles GET /metrics.
func (h *MetricsHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed", "Use GET method")
		return
	}
	writeJSON(w, http.StatusOK, h.orchestrator.MetricsSnapshot())
}
