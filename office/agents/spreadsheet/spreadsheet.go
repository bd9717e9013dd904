// Package spreadsheet implements the workbook agent.
package spreadsheet

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/gourav1211/officeagent/office/agents"
	"github.com/gourav1211/officeagent/office/drafter"
	"github.com/gourav1211/officeagent/office/tools"
)

const (
	// AgentName is the routing key for this agent.
	AgentName = "spreadsheet"

	defaultTitle = "Generated Sheet"

	systemPrompt = "Create simple, readable spreadsheets with headers and minimal rows."
)

var toolNames = []string{"create_workbook", "write_cell", "save_workbook"}

// Agent composes a workbook, drafted or deterministic.
type Agent struct {
	toolbox *agents.Toolbox
	drafter *drafter.Drafter
	logger  zerolog.Logger
}

// NewAgent creates a spreadsheet agent bound to the registry and drafter.
func NewAgent(registry *tools.Registry, d *drafter.Drafter, logger zerolog.Logger) *Agent {
	return &Agent{
		toolbox: agents.NewToolbox(registry),
		drafter: d,
		logger:  logger.With().Str("agent", AgentName).Logger(),
	}
}

func (a *Agent) Name() string         { return AgentName }
func (a *Agent) SystemPrompt() string { return systemPrompt }
func (a *Agent) ToolNames() []string  { return toolNames }

// Execute composes and saves a workbook: drafted headers on row 1 with data
// rows below, or the fixed 2x2 example table.
func (a *Agent) Execute(ctx context.Context, task *agents.Task) (map[string]any, error) {
	title := agents.ResolveTitle(task, defaultTitle)

	spec := a.draftTable(ctx, task.Text, title)

	created, err := a.toolbox.Call(ctx, "create_workbook", map[string]any{"title": title})
	if err != nil {
		return nil, err
	}
	wbID := created["workbook_id"].(string)

	if spec != nil {
		for c, header := range spec.Headers {
			if err := a.writeCell(ctx, wbID, 1, c+1, header); err != nil {
				return nil, err
			}
		}
		for r, row := range spec.Rows {
			for c, val := range row {
				if err := a.writeCell(ctx, wbID, r+2, c+1, val); err != nil {
					return nil, err
				}
			}
		}
	} else {
		if err := a.writeCell(ctx, wbID, 1, 1, "Item"); err != nil {
			return nil, err
		}
		if err := a.writeCell(ctx, wbID, 1, 2, "Value"); err != nil {
			return nil, err
		}
		if err := a.writeCell(ctx, wbID, 2, 1, "Example"); err != nil {
			return nil, err
		}
		if err := a.writeCell(ctx, wbID, 2, 2, 1); err != nil {
			return nil, err
		}
	}

	return a.toolbox.Call(ctx, "save_workbook", map[string]any{"workbook_id": wbID})
}

func (a *Agent) writeCell(ctx context.Context, wbID string, row, col int, value any) error {
	_, err := a.toolbox.Call(ctx, "write_cell", map[string]any{
		"workbook_id": wbID,
		"row":         row,
		"col":         col,
		"value":       value,
	})
	return err
}

// draftTable returns nil whenever drafting cannot supply a table; the caller
// then writes the fixed example table.
func (a *Agent) draftTable(ctx context.Context, taskText, title string) *drafter.TableSpec {
	if !a.drafter.Available() {
		return nil
	}
	spec, err := a.drafter.DraftTable(ctx, taskText, title)
	if err != nil {
		a.logger.Warn().Err(err).Msg("table drafting failed, using example table")
		return nil
	}
	return spec
}
