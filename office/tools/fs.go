package tools

import (
	"context"

	"github.com/gourav1211/officeagent/office/files"
)

// ListFilesTool lists files within a workspace subfolder.
type ListFilesTool struct {
	manager *files.Manager
}

func NewListFilesTool(manager *files.Manager) *ListFilesTool {
	return &ListFilesTool{manager: manager}
}

func (t *ListFilesTool) Name() string        { return "list_files" }
func (t *ListFilesTool) Description() string { return "List files in a workspace subfolder." }

func (t *ListFilesTool) Schema() *ToolSchema {
	return &ToolSchema{
		Type: "object",
		Properties: map[string]any{
			"kind": map[string]any{"type": "string"},
		},
		Required: []string{"kind"},
	}
}

func (t *ListFilesTool) Execute(_ context.Context, input *ToolInput) (*ToolResult, error) {
	kind, ok := stringArg(input.Data, "kind")
	if !ok {
		return missingArg("kind"), nil
	}
	items, err := t.manager.List(kind)
	if err != nil {
		return errResult(err.Error()), nil
	}
	return okResult(map[string]any{"status": "ok", "files": items}), nil
}

// GetFileInfoTool returns metadata about a workspace file.
type GetFileInfoTool struct {
	manager *files.Manager
}

func NewGetFileInfoTool(manager *files.Manager) *GetFileInfoTool {
	return &GetFileInfoTool{manager: manager}
}

func (t *GetFileInfoTool) Name() string        { return "get_file_info" }
func (t *GetFileInfoTool) Description() string { return "Get information about a specific file." }

func (t *GetFileInfoTool) Schema() *ToolSchema {
	return &ToolSchema{
		Type: "object",
		Properties: map[string]any{
			"file_path": map[string]any{"type": "string"},
		},
		Required: []string{"file_path"},
	}
}

func (t *GetFileInfoTool) Execute(_ context.Context, input *ToolInput) (*ToolResult, error) {
	path, ok := stringArg(input.Data, "file_path")
	if !ok {
		return missingArg("file_path"), nil
	}
	info, err := t.manager.Stat(path)
	if err != nil {
		return errResult(err.Error()), nil
	}
	return okResult(map[string]any{
		"status":    "ok",
		"file_path": info.FilePath,
		"size":      info.Size,
		"modified":  info.Modified,
	}), nil
}

// CreateFolderTool creates a folder under a workspace subfolder.
type CreateFolderTool struct {
	manager *files.Manager
}

func NewCreateFolderTool(manager *files.Manager) *CreateFolderTool {
	return &CreateFolderTool{manager: manager}
}

func (t *CreateFolderTool) Name() string        { return "create_folder" }
func (t *CreateFolderTool) Description() string { return "Create a folder under a workspace subfolder." }

func (t *CreateFolderTool) Schema() *ToolSchema {
	return &ToolSchema{
		Type: "object",
		Properties: map[string]any{
			"kind": map[string]any{"type": "string"},
			"name": map[string]any{"type": "string"},
		},
		Required: []string{"kind", "name"},
	}
}

func (t *CreateFolderTool) Execute(_ context.Context, input *ToolInput) (*ToolResult, error) {
	kind, ok := stringArg(input.Data, "kind")
	if !ok {
		return missingArg("kind"), nil
	}
	name, ok := stringArg(input.Data, "name")
	if !ok {
		return missingArg("name"), nil
	}
	path, err := t.manager.CreateFolder(kind, name)
	if err != nil {
		return errResult(err.Error()), nil
	}
	return okResult(map[string]any{"status": "ok", "folder_path": path}), nil
}
