// Package communication implements the communication-summary agent.
//
// Real email/chat integrations are out of scope; the agent produces a
// document representing the communication content.
package communication

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/gourav1211/officeagent/office/agents"
	"github.com/gourav1211/officeagent/office/tools"
)

const (
	// AgentName is the routing key for this agent.
	AgentName = "communication"

	defaultTitle = "Communication Summary"
	trailer      = "Summary prepared by CommunicationAgent"

	systemPrompt = "Draft clear, concise communications; summarize key points and actions."
)

var toolNames = []string{"create_document", "add_heading", "add_paragraph", "save_document"}

// Agent writes a summary document for a communication task.
type Agent struct {
	toolbox *agents.Toolbox
	logger  zerolog.Logger
}

// NewAgent creates a communication agent bound to the registry.
func NewAgent(registry *tools.Registry, logger zerolog.Logger) *Agent {
	return &Agent{
		toolbox: agents.NewToolbox(registry),
		logger:  logger.With().Str("agent", AgentName).Logger(),
	}
}

func (a *Agent) Name() string         { return AgentName }
func (a *Agent) SystemPrompt() string { return systemPrompt }
func (a *Agent) ToolNames() []string  { return toolNames }

// Execute writes the task text plus a trailer identifying the source.
func (a *Agent) Execute(ctx context.Context, task *agents.Task) (map[string]any, error) {
	title := agents.ResolveTitle(task, defaultTitle)
	a.logger.Debug().Str("title", title).Msg("composing communication summary")

	created, err := a.toolbox.Call(ctx, "create_document", map[string]any{"title": title})
	if err != nil {
		return nil, err
	}
	docID := created["doc_id"].(string)

	if _, err := a.toolbox.Call(ctx, "add_heading", map[string]any{"doc_id": docID, "text": title}); err != nil {
		return nil, err
	}
	if _, err := a.toolbox.Call(ctx, "add_paragraph", map[string]any{"doc_id": docID, "text": task.Text}); err != nil {
		return nil, err
	}
	if _, err := a.toolbox.Call(ctx, "add_paragraph", map[string]any{"doc_id": docID, "text": trailer}); err != nil {
		return nil, err
	}

	return a.toolbox.Call(ctx, "save_document", map[string]any{"doc_id": docID})
}
