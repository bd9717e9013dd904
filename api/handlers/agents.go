package handlers

import (
	"net/http"

	"github.com/gourav1211/officeagent/api"
	"github.com/gourav1211/officeagent/office/agents"
)

// AgentHandler serves the agent catalog.
type AgentHandler struct {
	agents *agents.Registry
}

// NewAgentHandler creates an agent handler.
func NewAgentHandler(registry *agents.Registry) *AgentHandler {
	return &AgentHandler{agents: registry}
}

// ListAgents handles GET /agents.
func (h *AgentHandler) ListAgents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed", "Use GET method")
		return
	}

	infos := make([]api.AgentInfo, 0, len(h.agents.Names()))
	for _, name := range h.agents.Names() {
		agent, err := h.agents.Get(name)
		if err != nil {
			continue
		}
		infos = append(infos, api.AgentInfo{
			Name:         agent.Name(),
			SystemPrompt: agent.SystemPrompt(),
			Tools:        agent.ToolNames(),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"agents": infos})
}
