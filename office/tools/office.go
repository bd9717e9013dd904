package tools

import (
	"github.com/gourav1211/officeagent/office/files"
	"github.com/gourav1211/officeagent/office/sessions"
)

// Stores groups the three composition session stores.
type Stores struct {
	Documents     *sessions.DocumentStore
	Presentations *sessions.PresentationStore
	Workbooks     *sessions.WorkbookStore
}

// NewStores creates empty stores for all three artifact types.
func NewStores() *Stores {
	return &Stores{
		Documents:     sessions.NewDocumentStore(),
		Presentations: sessions.NewPresentationStore(),
		Workbooks:     sessions.NewWorkbookStore(),
	}
}

// NewOfficeRegistry builds a registry with the full office tool set wired to
// the given stores and persistence manager.
func NewOfficeRegistry(stores *Stores, manager *files.Manager) *Registry {
	r := NewRegistry()

	// Documents
	r.Register(NewCreateDocumentTool(stores.Documents))
	r.Register(NewAddHeadingTool(stores.Documents))
	r.Register(NewAddParagraphTool(stores.Documents))
	r.Register(NewSaveDocumentTool(stores.Documents, manager))

	// Presentations
	r.Register(NewCreatePresentationTool(stores.Presentations))
	r.Register(NewAddSlideTool(stores.Presentations))
	r.Register(NewAddTextToSlideTool(stores.Presentations))
	r.Register(NewSavePresentationTool(stores.Presentations, manager))

	// Spreadsheets
	r.Register(NewCreateWorkbookTool(stores.Workbooks))
	r.Register(NewWriteCellTool(stores.Workbooks))
	r.Register(NewSaveWorkbookTool(stores.Workbooks, manager))

	// FS helpers
	r.Register(NewListFilesTool(manager))
	r.Register(NewGetFileInfoTool(manager))
	r.Register(NewCreateFolderTool(manager))

	return r
}
