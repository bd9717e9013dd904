package tools

import (
	"context"

	"github.com/gourav1211/officeagent/office/files"
	"github.com/gourav1211/officeagent/office/sessions"
)

// CreateDocumentTool opens a new document composition session.
type CreateDocumentTool struct {
	store *sessions.DocumentStore
}

func NewCreateDocumentTool(store *sessions.DocumentStore) *CreateDocumentTool {
	return &CreateDocumentTool{store: store}
}

func (t *CreateDocumentTool) Name() string { return "create_document" }
func (t *CreateDocumentTool) Description() string {
	return "Create a new document composition session."
}

func (t *CreateDocumentTool) Schema() *ToolSchema {
	return &ToolSchema{
		Type: "object",
		Properties: map[string]any{
			"title": map[string]any{"type": "string"},
		},
		Required: []string{"title"},
	}
}

func (t *CreateDocumentTool) Execute(_ context.Context, input *ToolInput) (*ToolResult, error) {
	title, ok := stringArg(input.Data, "title")
	if !ok {
		return missingArg("title"), nil
	}
	id := t.store.Create(title)
	return okResult(map[string]any{"status": "ok", "doc_id": id}), nil
}

// AddHeadingTool adds heading text to a document session.
type AddHeadingTool struct {
	store *sessions.DocumentStore
}

func NewAddHeadingTool(store *sessions.DocumentStore) *AddHeadingTool {
	return &AddHeadingTool{store: store}
}

func (t *AddHeadingTool) Name() string { return "add_heading" }
func (t *AddHeadingTool) Description() string {
	return "Add a heading (or first paragraph) to a document."
}

func (t *AddHeadingTool) Schema() *ToolSchema {
	return documentMutationSchema()
}

func (t *AddHeadingTool) Execute(_ context.Context, input *ToolInput) (*ToolResult, error) {
	id, ok := stringArg(input.Data, "doc_id")
	if !ok {
		return missingArg("doc_id"), nil
	}
	text, ok := stringArg(input.Data, "text")
	if !ok {
		return missingArg("text"), nil
	}
	if err := t.store.AddHeading(id, text); err != nil {
		return errResult(err.Error()), nil
	}
	return okResult(map[string]any{"status": "ok", "doc_id": id}), nil
}

// AddParagraphTool appends a paragraph to a document session.
type AddParagraphTool struct {
	store *sessions.DocumentStore
}

func NewAddParagraphTool(store *sessions.DocumentStore) *AddParagraphTool {
	return &AddParagraphTool{store: store}
}

func (t *AddParagraphTool) Name() string        { return "add_paragraph" }
func (t *AddParagraphTool) Description() string { return "Add a paragraph to a document." }

func (t *AddParagraphTool) Schema() *ToolSchema {
	return documentMutationSchema()
}

func (t *AddParagraphTool) Execute(_ context.Context, input *ToolInput) (*ToolResult, error) {
	id, ok := stringArg(input.Data, "doc_id")
	if !ok {
		return missingArg("doc_id"), nil
	}
	text, ok := stringArg(input.Data, "text")
	if !ok {
		return missingArg("text"), nil
	}
	if err := t.store.AddParagraph(id, text); err != nil {
		return errResult(err.Error()), nil
	}
	return okResult(map[string]any{"status": "ok", "doc_id": id}), nil
}

// SaveDocumentTool pops the session and hands its content to the persistence
// collaborator.
type SaveDocumentTool struct {
	store *sessions.DocumentStore
	saver files.Saver
}

func NewSaveDocumentTool(store *sessions.DocumentStore, saver files.Saver) *SaveDocumentTool {
	return &SaveDocumentTool{store: store, saver: saver}
}

func (t *SaveDocumentTool) Name() string        { return "save_document" }
func (t *SaveDocumentTool) Description() string { return "Save a composed document to the workspace." }

func (t *SaveDocumentTool) Schema() *ToolSchema {
	return &ToolSchema{
		Type: "object",
		Properties: map[string]any{
			"doc_id": map[string]any{"type": "string"},
		},
		Required: []string{"doc_id"},
	}
}

func (t *SaveDocumentTool) Execute(_ context.Context, input *ToolInput) (*ToolResult, error) {
	id, ok := stringArg(input.Data, "doc_id")
	if !ok {
		return missingArg("doc_id"), nil
	}
	sess, err := t.store.Take(id)
	if err != nil {
		return errResult(err.Error()), nil
	}

	paragraphs := sess.Paragraphs
	if len(paragraphs) == 0 {
		paragraphs = []string{sess.Title, "(empty)"}
	}
	desc, err := t.saver.SaveDocument(sess.Title, paragraphs)
	if err != nil {
		return nil, err
	}
	return okResult(descriptorData(desc)), nil
}

func documentMutationSchema() *ToolSchema {
	return &ToolSchema{
		Type: "object",
		Properties: map[string]any{
			"doc_id": map[string]any{"type": "string"},
			"text":   map[string]any{"type": "string"},
		},
		Required: []string{"doc_id", "text"},
	}
}

func descriptorData(desc *files.Descriptor) map[string]any {
	return map[string]any{
		"status":    desc.Status,
		"file_path": desc.FilePath,
		"kind":      desc.Kind,
	}
}
