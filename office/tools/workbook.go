package tools

import (
	"context"

	"github.com/gourav1211/officeagent/office/files"
	"github.com/gourav1211/officeagent/office/sessions"
)

// CreateWorkbookTool opens a new spreadsheet composition session.
type CreateWorkbookTool struct {
	store *sessions.WorkbookStore
}

func NewCreateWorkbookTool(store *sessions.WorkbookStore) *CreateWorkbookTool {
	return &CreateWorkbookTool{store: store}
}

func (t *CreateWorkbookTool) Name() string        { return "create_workbook" }
func (t *CreateWorkbookTool) Description() string { return "Create a new spreadsheet session." }

func (t *CreateWorkbookTool) Schema() *ToolSchema {
	return &ToolSchema{
		Type: "object",
		Properties: map[string]any{
			"title": map[string]any{"type": "string"},
		},
		Required: []string{"title"},
	}
}

func (t *CreateWorkbookTool) Execute(_ context.Context, input *ToolInput) (*ToolResult, error) {
	title, ok := stringArg(input.Data, "title")
	if !ok {
		return missingArg("title"), nil
	}
	id := t.store.Create(title)
	return okResult(map[string]any{"status": "ok", "workbook_id": id}), nil
}

// WriteCellTool writes a cell value using 1-based row/col indexing.
type WriteCellTool struct {
	store *sessions.WorkbookStore
}

func NewWriteCellTool(store *sessions.WorkbookStore) *WriteCellTool {
	return &WriteCellTool{store: store}
}

func (t *WriteCellTool) Name() string        { return "write_cell" }
func (t *WriteCellTool) Description() string { return "Write a cell value using 1-based row/col indexing." }

func (t *WriteCellTool) Schema() *ToolSchema {
	return &ToolSchema{
		Type: "object",
		Properties: map[string]any{
			"workbook_id": map[string]any{"type": "string"},
			"row":         map[string]any{"type": "integer"},
			"col":         map[string]any{"type": "integer"},
			"value":       map[string]any{},
		},
		Required: []string{"workbook_id", "row", "col", "value"},
	}
}

func (t *WriteCellTool) Execute(_ context.Context, input *ToolInput) (*ToolResult, error) {
	id, ok := stringArg(input.Data, "workbook_id")
	if !ok {
		return missingArg("workbook_id"), nil
	}
	row, ok := intArg(input.Data, "row")
	if !ok {
		return missingArg("row"), nil
	}
	col, ok := intArg(input.Data, "col")
	if !ok {
		return missingArg("col"), nil
	}
	value, ok := input.Data["value"]
	if !ok {
		return missingArg("value"), nil
	}
	if err := t.store.WriteCell(id, row, col, value); err != nil {
		return errResult(err.Error()), nil
	}
	return okResult(map[string]any{"status": "ok", "workbook_id": id}), nil
}

// SaveWorkbookTool pops the session and persists its row grid.
type SaveWorkbookTool struct {
	store *sessions.WorkbookStore
	saver files.Saver
}

func NewSaveWorkbookTool(store *sessions.WorkbookStore, saver files.Saver) *SaveWorkbookTool {
	return &SaveWorkbookTool{store: store, saver: saver}
}

func (t *SaveWorkbookTool) Name() string        { return "save_workbook" }
func (t *SaveWorkbookTool) Description() string { return "Save a composed workbook to the workspace." }

func (t *SaveWorkbookTool) Schema() *ToolSchema {
	return &ToolSchema{
		Type: "object",
		Properties: map[string]any{
			"workbook_id": map[string]any{"type": "string"},
		},
		Required: []string{"workbook_id"},
	}
}

func (t *SaveWorkbookTool) Execute(_ context.Context, input *ToolInput) (*ToolResult, error) {
	id, ok := stringArg(input.Data, "workbook_id")
	if !ok {
		return missingArg("workbook_id"), nil
	}
	sess, err := t.store.Take(id)
	if err != nil {
		return errResult(err.Error()), nil
	}

	rows := sess.Rows
	if len(rows) == 0 {
		rows = [][]any{{"(empty)"}}
	}
	desc, err := t.saver.SaveWorkbook(sess.Title, rows)
	if err != nil {
		return nil, err
	}
	return okResult(descriptorData(desc)), nil
}
