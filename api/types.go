// Package api defines the request and response shapes of the HTTP surface.
package api

import (
	"github.com/gourav1211/officeagent/office/tools"
)

// ExecuteTaskRequest is the body of POST /tasks/execute and /tasks/stream.
type ExecuteTaskRequest struct {
	Task    string         `json:"task"`
	Context map[string]any `json:"context,omitempty"`
	UserID  string         `json:"user_id,omitempty"`
	TaskID  string         `json:"task_id,omitempty"`
}

// ExecuteToolRequest is the body of POST /tools/{name}.
type ExecuteToolRequest struct {
	Input map[string]any `json:"input"`
}

// ToolResponse reports one tool execution.
type ToolResponse struct {
	Success bool            `json:"success"`
	Output  map[string]any  `json:"output,omitempty"`
	Error   string          `json:"error,omitempty"`
	Stats   tools.ToolStats `json:"stats"`
}

// ToolInfo describes one registered tool.
type ToolInfo struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Schema      *tools.ToolSchema `json:"schema"`
}

// AgentInfo describes one registered agent.
type AgentInfo struct {
	Name         string   `json:"name"`
	SystemPrompt string   `json:"system_prompt"`
	Tools        []string `json:"tools"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}
