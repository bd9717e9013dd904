// Package tools provides the tool registry and the office composition tools.
//
// The registry is the sole namespace agents use to invoke effects; a missing
// binding is a wiring bug, reported as "tool not found".
package tools

import (
	"context"
	"fmt"
	"time"
)

// Registry manages tool registration and execution
type Registry struct {
	tools map[string]Tool
	order []string
}

// NewRegistry creates a new tool registry
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the registry, replacing any previous entry with the
// same name.
func (r *Registry) Register(tool Tool) {
	if _, exists := r.tools[tool.Name()]; !exists {
		r.order = append(r.order, tool.Name())
	}
	r.tools[tool.Name()] = tool
}

// Lookup retrieves a tool by name; absence is not an error here.
func (r *Registry) Lookup(name string) (Tool, bool) {
	tool, exists := r.tools[name]
	return tool, exists
}

// Get retrieves a tool by name
func (r *Registry) Get(name string) (Tool, error) {
	tool, exists := r.tools[name]
	if !exists {
		return nil, fmt.Errorf("tool not found: %s", name)
	}
	return tool, nil
}

// List returns all registered tools in registration order.
func (r *Registry) List() []Tool {
	out := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}

// Execute runs a tool by name with the given input
func (r *Registry) Execute(ctx context.Context, input *ToolInput) (*ToolResult, error) {
	tool, err := r.Get(input.Name)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := tool.Execute(ctx, input)
	if err != nil {
		return nil, err
	}

	result.Stats.ExecutionTime = time.Since(start)
	return result, nil
}
