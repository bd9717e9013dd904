package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gourav1211/officeagent/api"
	"github.com/gourav1211/officeagent/office/orchestrator"
)

// TaskHandler handles task execution requests.
type TaskHandler struct {
	orchestrator *orchestrator.Orchestrator
	logger       zerolog.Logger
}

// NewTaskHandler creates a task handler over the orchestrator.
func NewTaskHandler(o *orchestrator.Orchestrator, logger zerolog.Logger) *TaskHandler {
	return &TaskHandler{
		orchestrator: o,
		logger:       logger.With().Str("handler", "tasks").Logger(),
	}
}

// ExecuteTask handles POST /tasks/execute.
func (h *TaskHandler) ExecuteTask(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	requestID := uuid.NewString()
	h.logger.Info().Str("request_id", requestID).Str("task", req.Task).Msg("task received")

	result := h.orchestrator.Execute(r.Context(), req.Task, req.Context, req.UserID, req.TaskID)
	writeJSON(w, http.StatusOK, result)
}

// StreamTask handles POST /tasks/stream, replaying the lifecycle events as
// server-sent events.
func (h *TaskHandler) StreamTask(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	requestID := uuid.NewString()
	h.logger.Info().Str("request_id", requestID).Str("task", req.Task).Msg("streaming task received")

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	flusher, canFlush := w.(http.Flusher)
	for _, event := range h.orchestrator.ExecuteStreaming(r.Context(), req.Task, req.Context, req.UserID, req.TaskID) {
		payload, err := json.Marshal(event)
		if err != nil {
			h.logger.Error().Str("request_id", requestID).Err(err).Msg("encoding stream event")
			return
		}
		fmt.Fprintf(w, "data: %s\n\n", payload)
		if canFlush {
			flusher.Flush()
		}
	}
}

func (h *TaskHandler) decodeRequest(w http.ResponseWriter, r *http.Request) (*api.ExecuteTaskRequest, bool) {
	if r.Method != http.MethodPost {
		writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed", "Use POST method")
		return nil, false
	}

	var req api.ExecuteTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request", err.Error())
		return nil, false
	}
	if strings.TrimSpace(req.Task) == "" {
		writeJSONError(w, http.StatusBadRequest, "MISSING_REQUIRED_FIELD", "task field is required")
		return nil, false
	}
	return &req, true
}
