package tools

import (
	"context"
	"time"
)

// ToolInput represents input data for tool execution
type ToolInput struct {
	Name string         `json:"name"`
	Data map[string]any `json:"data"`
}

// ToolResult represents the result of tool execution. Success=false carries a
// recoverable, tool-reported failure; infrastructure problems travel as Go
// errors instead.
type ToolResult struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data,omitempty"`
	Error   string         `json:"error,omitempty"`
	Stats   ToolStats      `json:"stats,omitempty"`
}

// ToolStats tracks tool execution statistics
type ToolStats struct {
	ExecutionTime time.Duration `json:"execution_time"`
}

// ToolSchema defines the JSON schema for tool input validation
type ToolSchema struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
	Required   []string       `json:"required,omitempty"`
}

// Tool defines the interface that all tools must implement
type Tool interface {
	Name() string
	Description() string
	Schema() *ToolSchema
	Execute(ctx context.Context, input *ToolInput) (*ToolResult, error)
}

func okResult(data map[string]any) *ToolResult {
	return &ToolResult{Success: true, Data: data}
}

func errResult(msg string) *ToolResult {
	return &ToolResult{Success: false, Error: msg}
}
