package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gourav1211/officeagent/office/files"
)

func newTestRegistry(t *testing.T) (*Registry, *Stores, *files.Manager) {
	t.Helper()
	stores := NewStores()
	manager := files.NewManager(t.TempDir())
	return NewOfficeRegistry(stores, manager), stores, manager
}

func TestRegistryLookup(t *testing.T) {
	reg, _, _ := newTestRegistry(t)

	tool, err := reg.Get("create_document")
	require.NoError(t, err)
	assert.Equal(t, "create_document", tool.Name())

	_, err = reg.Get("teleport_file")
	assert.EqualError(t, err, "tool not found: teleport_file")

	_, ok := reg.Lookup("teleport_file")
	assert.False(t, ok)
}

func TestRegistryListsAllOfficeTools(t *testing.T) {
	reg, _, _ := newTestRegistry(t)

	names := make([]string, 0)
	for _, tool := range reg.List() {
		names = append(names, tool.Name())
		assert.NotEmpty(t, tool.Description())
		assert.NotNil(t, tool.Schema())
	}

	assert.Equal(t, []string{
		"create_document", "add_heading", "add_paragraph", "save_document",
		"create_presentation", "add_slide", "add_text_to_slide", "save_presentation",
		"create_workbook", "write_cell", "save_workbook",
		"list_files", "get_file_info", "create_folder",
	}, names)
}

func TestRegistryExecuteRecordsTiming(t *testing.T) {
	reg, _, _ := newTestRegistry(t)

	result, err := reg.Execute(context.Background(), &ToolInput{
		Name: "create_document",
		Data: map[string]any{"title": "Timed"},
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.GreaterOrEqual(t, result.Stats.ExecutionTime.Nanoseconds(), int64(0))
}

func TestDocumentToolFlow(t *testing.T) {
	reg, _, _ := newTestRegistry(t)
	ctx := context.Background()

	created, err := reg.Execute(ctx, &ToolInput{Name: "create_document", Data: map[string]any{"title": "Registry Test Doc"}})
	require.NoError(t, err)
	require.True(t, created.Success)
	docID := created.Data["doc_id"].(string)
	assert.Equal(t, "registry_test_doc", docID)

	for _, text := range []string{"Line 1", "Line 2"} {
		res, err := reg.Execute(ctx, &ToolInput{Name: "add_paragraph", Data: map[string]any{"doc_id": docID, "text": text}})
		require.NoError(t, err)
		assert.True(t, res.Success)
	}

	saved, err := reg.Execute(ctx, &ToolInput{Name: "save_document", Data: map[string]any{"doc_id": docID}})
	require.NoError(t, err)
	require.True(t, saved.Success)
	assert.Equal(t, "ok", saved.Data["status"])
	assert.FileExists(t, saved.Data["file_path"].(string))

	// pop semantics: a second save reports the unknown id
	again, err := reg.Execute(ctx, &ToolInput{Name: "save_document", Data: map[string]any{"doc_id": docID}})
	require.NoError(t, err)
	assert.False(t, again.Success)
	assert.Equal(t, "unknown doc_id: registry_test_doc", again.Error)
}

func TestSaveEmptyDocumentWritesPlaceholder(t *testing.T) {
	reg, _, _ := newTestRegistry(t)
	ctx := context.Background()

	created, err := reg.Execute(ctx, &ToolInput{Name: "create_document", Data: map[string]any{"title": "Blank"}})
	require.NoError(t, err)
	docID := created.Data["doc_id"].(string)

	saved, err := reg.Execute(ctx, &ToolInput{Name: "save_document", Data: map[string]any{"doc_id": docID}})
	require.NoError(t, err)
	require.True(t, saved.Success)
	assert.FileExists(t, saved.Data["file_path"].(string))
}

func TestWriteCellCoercesJSONNumbers(t *testing.T) {
	reg, stores, _ := newTestRegistry(t)
	ctx := context.Background()

	created, err := reg.Execute(ctx, &ToolInput{Name: "create_workbook", Data: map[string]any{"title": "numbers"}})
	require.NoError(t, err)
	wbID := created.Data["workbook_id"].(string)

	// row/col arrive as float64 from JSON decoding
	res, err := reg.Execute(ctx, &ToolInput{Name: "write_cell", Data: map[string]any{
		"workbook_id": wbID, "row": float64(2), "col": float64(1), "value": "x",
	}})
	require.NoError(t, err)
	assert.True(t, res.Success)

	sess, err := stores.Workbooks.Take(wbID)
	require.NoError(t, err)
	assert.Equal(t, "x", sess.Rows[1][0])
}

func TestToolReportsMissingArgs(t *testing.T) {
	reg, _, _ := newTestRegistry(t)

	res, err := reg.Execute(context.Background(), &ToolInput{Name: "create_document", Data: map[string]any{}})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "title is required", res.Error)
}

func TestInvalidSlideIndexSurfacesToolError(t *testing.T) {
	reg, _, _ := newTestRegistry(t)
	ctx := context.Background()

	created, err := reg.Execute(ctx, &ToolInput{Name: "create_presentation", Data: map[string]any{"title": "deck"}})
	require.NoError(t, err)
	pid := created.Data["presentation_id"].(string)

	res, err := reg.Execute(ctx, &ToolInput{Name: "add_text_to_slide", Data: map[string]any{
		"presentation_id": pid, "slide_index": 5, "text": "x",
	}})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "slide_index out of range: 5", res.Error)
}

func TestFSTools(t *testing.T) {
	reg, _, manager := newTestRegistry(t)
	ctx := context.Background()

	desc, err := manager.SaveDocument("seed", []string{"body"})
	require.NoError(t, err)

	listed, err := reg.Execute(ctx, &ToolInput{Name: "list_files", Data: map[string]any{"kind": "documents"}})
	require.NoError(t, err)
	require.True(t, listed.Success)
	assert.Equal(t, []string{desc.FilePath}, listed.Data["files"])

	info, err := reg.Execute(ctx, &ToolInput{Name: "get_file_info", Data: map[string]any{"file_path": desc.FilePath}})
	require.NoError(t, err)
	require.True(t, info.Success)
	assert.Greater(t, info.Data["size"].(int64), int64(0))

	folder, err := reg.Execute(ctx, &ToolInput{Name: "create_folder", Data: map[string]any{"kind": "exports", "name": "Q3 Deliverables"}})
	require.NoError(t, err)
	require.True(t, folder.Success)
	assert.DirExists(t, folder.Data["folder_path"].(string))
}
