package tools

import (
	"context"

	"github.com/gourav1211/officeagent/office/files"
	"github.com/gourav1211/officeagent/office/sessions"
)

// CreatePresentationTool opens a new presentation composition session.
type CreatePresentationTool struct {
	store *sessions.PresentationStore
}

func NewCreatePresentationTool(store *sessions.PresentationStore) *CreatePresentationTool {
	return &CreatePresentationTool{store: store}
}

func (t *CreatePresentationTool) Name() string        { return "create_presentation" }
func (t *CreatePresentationTool) Description() string { return "Create a new presentation session." }

func (t *CreatePresentationTool) Schema() *ToolSchema {
	return &ToolSchema{
		Type: "object",
		Properties: map[string]any{
			"title": map[string]any{"type": "string"},
		},
		Required: []string{"title"},
	}
}

func (t *CreatePresentationTool) Execute(_ context.Context, input *ToolInput) (*ToolResult, error) {
	title, ok := stringArg(input.Data, "title")
	if !ok {
		return missingArg("title"), nil
	}
	id := t.store.Create(title)
	return okResult(map[string]any{"status": "ok", "presentation_id": id}), nil
}

// AddSlideTool appends a new slide to a presentation session.
type AddSlideTool struct {
	store *sessions.PresentationStore
}

func NewAddSlideTool(store *sessions.PresentationStore) *AddSlideTool {
	return &AddSlideTool{store: store}
}

func (t *AddSlideTool) Name() string        { return "add_slide" }
func (t *AddSlideTool) Description() string { return "Add a new slide with text content." }

func (t *AddSlideTool) Schema() *ToolSchema {
	return &ToolSchema{
		Type: "object",
		Properties: map[string]any{
			"presentation_id": map[string]any{"type": "string"},
			"text":            map[string]any{"type": "string"},
		},
		Required: []string{"presentation_id", "text"},
	}
}

func (t *AddSlideTool) Execute(_ context.Context, input *ToolInput) (*ToolResult, error) {
	id, ok := stringArg(input.Data, "presentation_id")
	if !ok {
		return missingArg("presentation_id"), nil
	}
	text, ok := stringArg(input.Data, "text")
	if !ok {
		return missingArg("text"), nil
	}
	if err := t.store.AddSlide(id, text); err != nil {
		return errResult(err.Error()), nil
	}
	return okResult(map[string]any{"status": "ok", "presentation_id": id}), nil
}

// AddTextToSlideTool appends text to an existing slide by 1-based index.
type AddTextToSlideTool struct {
	store *sessions.PresentationStore
}

func NewAddTextToSlideTool(store *sessions.PresentationStore) *AddTextToSlideTool {
	return &AddTextToSlideTool{store: store}
}

func (t *AddTextToSlideTool) Name() string        { return "add_text_to_slide" }
func (t *AddTextToSlideTool) Description() string { return "Append text to an existing slide." }

func (t *AddTextToSlideTool) Schema() *ToolSchema {
	return &ToolSchema{
		Type: "object",
		Properties: map[string]any{
			"presentation_id": map[string]any{"type": "string"},
			"slide_index":     map[string]any{"type": "integer"},
			"text":            map[string]any{"type": "string"},
		},
		Required: []string{"presentation_id", "slide_index", "text"},
	}
}

func (t *AddTextToSlideTool) Execute(_ context.Context, input *ToolInput) (*ToolResult, error) {
	id, ok := stringArg(input.Data, "presentation_id")
	if !ok {
		return missingArg("presentation_id"), nil
	}
	index, ok := intArg(input.Data, "slide_index")
	if !ok {
		return missingArg("slide_index"), nil
	}
	text, ok := stringArg(input.Data, "text")
	if !ok {
		return missingArg("text"), nil
	}
	if err := t.store.AddTextToSlide(id, index, text); err != nil {
		return errResult(err.Error()), nil
	}
	return okResult(map[string]any{"status": "ok", "presentation_id": id}), nil
}

// SavePresentationTool pops the session and persists its slides.
type SavePresentationTool struct {
	store *sessions.PresentationStore
	saver files.Saver
}

func NewSavePresentationTool(store *sessions.PresentationStore, saver files.Saver) *SavePresentationTool {
	return &SavePresentationTool{store: store, saver: saver}
}

func (t *SavePresentationTool) Name() string { return "save_presentation" }
func (t *SavePresentationTool) Description() string {
	return "Save a composed presentation to the workspace."
}

func (t *SavePresentationTool) Schema() *ToolSchema {
	return &ToolSchema{
		Type: "object",
		Properties: map[string]any{
			"presentation_id": map[string]any{"type": "string"},
		},
		Required: []string{"presentation_id"},
	}
}

func (t *SavePresentationTool) Execute(_ context.Context, input *ToolInput) (*ToolResult, error) {
	id, ok := stringArg(input.Data, "presentation_id")
	if !ok {
		return missingArg("presentation_id"), nil
	}
	sess, err := t.store.Take(id)
	if err != nil {
		return errResult(err.Error()), nil
	}

	slides := sess.Slides
	if len(slides) == 0 {
		slides = []string{"(empty)"}
	}
	desc, err := t.saver.SavePresentation(sess.Title, slides)
	if err != nil {
		return nil, err
	}
	data := descriptorData(desc)
	data["slide_count"] = len(slides)
	return okResult(data), nil
}
