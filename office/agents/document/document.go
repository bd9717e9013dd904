// Package document implements the general document-writing agent.
package document

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/gourav1211/officeagent/office/agents"
	"github.com/gourav1211/officeagent/office/tools"
)

const (
	// AgentName is the routing key for this agent.
	AgentName = "document"

	defaultTitle = "Generated Document"
	trailer      = "This document was generated by DocumentAgent."

	systemPrompt = "Write clear, well-structured documents with a heading and concise paragraphs."
)

var toolNames = []string{"create_document", "add_heading", "add_paragraph", "save_document"}

// Agent composes a simple document from the task text.
type Agent struct {
	toolbox *agents.Toolbox
	logger  zerolog.Logger
}

// NewAgent creates a document agent bound to the registry.
func NewAgent(registry *tools.Registry, logger zerolog.Logger) *Agent {
	return &Agent{
		toolbox: agents.NewToolbox(registry),
		logger:  logger.With().Str("agent", AgentName).Logger(),
	}
}

func (a *Agent) Name() string         { return AgentName }
func (a *Agent) SystemPrompt() string { return systemPrompt }
func (a *Agent) ToolNames() []string  { return toolNames }

// Execute writes the task text as a single paragraph plus a fixed trailer.
func (a *Agent) Execute(ctx context.Context, task *agents.Task) (map[string]any, error) {
	title := agents.ResolveTitle(task, defaultTitle)
	a.logger.Debug().Str("title", title).Msg("composing document")

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
