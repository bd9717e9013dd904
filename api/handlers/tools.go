package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gourav1211/officeagent/api"
	"github.com/gourav1211/officeagent/office/tools"
)

// ToolHandler handles tool-related HTTP requests.
type ToolHandler struct {
	toolRegistry *tools.Registry
}

// NewToolHandler creates a tool handler.
func NewToolHandler(registry *tools.Registry) *ToolHandler {
	return &ToolHandler{toolRegistry: registry}
}

// ExecuteTool handles POST /tools/{name}.
func (h *ToolHandler) ExecuteTool(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed", "Use POST method")
		return
	}

	toolName := strings.TrimPrefix(r.URL.Path, "/tools/")
	if toolName == "" {
		writeJSONError(w, http.StatusBadRequest, "Invalid tool name", "Tool name is required")
		return
	}

	var req api.ExecuteToolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	if req.Input == nil {
		writeJSONError(w, http.StatusBadRequest, "MISSING_REQUIRED_FIELD", "input field is required")
		return
	}

	result, err := h.toolRegistry.Execute(r.Context(), &tools.ToolInput{
		Name: toolName,
		Data: req.Input,
	})
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "Tool execution failed", err.Error())
		return
	}

	response := api.ToolResponse{
		Success: result.Success,
		Output:  result.Data,
		Stats:   result.Stats,
	}
	if !result.Success {
		response.Error = result.Error
	}
	writeJSON(w, http.StatusOK, response)
}

// ListTools handles GET /tools.
func (h *ToolHandler) ListTools(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed", "Use GET method")
		return
	}

	infos := make([]api.ToolInfo, 0)
	for _, tool := range h.toolRegistry.List() {
		infos = append(infos, api.ToolInfo{
			Name:        tool.Name(),
			Description: tool.Description(),
			Schema:      tool.Schema(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"tools": infos})
}
