// Package workflow implements the cross-application planning agent.
package workflow

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gourav1211/officeagent/office/agents"
	"github.com/gourav1211/officeagent/office/tools"
)

const (
	// AgentName is the routing key for this agent.
	AgentName = "workflow"

	defaultTitle = "Workflow Plan"
	planText     = "1) Prepare presentation\n2) Draft summary\n3) Share results"

	systemPrompt = "Plan multi-step workflows and summarize outputs across office applications."
)

var toolNames = []string{"create_document", "add_heading", "add_paragraph", "save_document"}

// Agent produces a plan document for a multi-step task.
type Agent struct {
	toolbox *agents.Toolbox
	logger  zerolog.Logger
}

// NewAgent creates a workflow agent bound to the registry.
func NewAgent(registry *tools.Registry, logger zerolog.Logger) *Agent {
	return &Agent{
		toolbox: agents.NewToolbox(registry),
		logger:  logger.With().Str("agent", AgentName).Logger(),
	}
}

func (a *Agent) Name() string         { return AgentName }
func (a *Agent) SystemPrompt() string { return systemPrompt }
func (a *Agent) ToolNames() []string  { return toolNames }

// Execute writes a fixed three-step plan plus the raw task text as context.
func (a *Agent) Execute(ctx context.Context, task *agents.Task) (map[string]any, error) {
	title := agents.ResolveTitle(task, defaultTitle)
	a.logger.Debug().Str("title", title).Msg("composing workflow plan")

	created, err := a.toolbox.Call(ctx, "create_document", map[string]any{"title": title})
	if err != nil {
		return nil, err
	}
	docID := created["doc_id"].(string)

	if _, err := a.toolbox.Call(ctx, "add_heading", map[string]any{"doc_id": docID, "text": title}); err != nil {
		return nil, err
	}
	if _, err := a.toolbox.Call(ctx, "add_paragraph", map[string]any{"doc_id": docID, "text": planText}); err != nil {
		return nil, err
	}
	taskContext := fmt.Sprintf("Task context: %s", task.Text)
	if _, err := a.toolbox.Call(ctx, "add_paragraph", map[string]any{"doc_id": docID, "text": taskContext}); err != nil {
		return nil, err
	}

	return a.toolbox.Call(ctx, "save_document", map[string]any{"doc_id": docID})
}
