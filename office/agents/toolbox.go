package agents

import (
	"context"
	"fmt"

	"github.com/gourav1211/officeagent/office/tools"
)

// Toolbox resolves an agent's tool bindings against the registry. A missing
// binding is a wiring bug and comes back as a hard error, unlike the
// recoverable failures tools report in their results.
type Toolbox struct {
	registry *tools.Registry
}

// NewToolbox wraps a registry for agent use.
func NewToolbox(registry *tools.Registry) *Toolbox {
	return &Toolbox{registry: registry}
}

// Call executes a named tool. Tool-reported failures are converted to errors
// carrying the tool's message; the caller decides how far they propagate.
func (tb *Toolbox) Call(ctx context.Context, name string, data map[string]any) (map[string]any, error) {
	tool, ok := tb.registry.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("tool not found: %s", name)
	}
	result, err := tool.Execute(ctx, &tools.ToolInput{Name: name, Data: data})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if !result.Success {
		return nil, fmt.Errorf("%s: %s", name, result.Error)
	}
	return result.Data, nil
}
