package document

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gourav1211/officeagent/office/agents"
	"github.com/gourav1211/officeagent/office/files"
	"github.com/gourav1211/officeagent/office/tools"
)

func newTestAgent(t *testing.T) *Agent {
	t.Helper()
	registry := tools.NewOfficeRegistry(tools.NewStores(), files.NewManager(t.TempDir()))
	return NewAgent(registry, zerolog.Nop())
}

func TestExecuteWritesTaskAndTrailer(t *testing.T) {
	a := newTestAgent(t)

	result, err := a.Execute(context.Background(), &agents.Task{Text: "note"})
	require.NoError(t, err)
	assert.Equal(t, "ok", result["status"])

	content, err := os.ReadFile(result["file_path"].(string))
	require.NoError(t, err)
	paragraphs := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n\n")
	assert.Equal(t, []string{
		"Generated Document",
		"note",
		"This document was generated by DocumentAgent.",
	}, paragraphs)
}

func TestExecuteTitlePrecedence(t *testing.T) {
	t.Run("context title", func(t *testing.T) {
		a := newTestAgent(t)
		result, err := a.Execute(context.Background(), &agents.Task{
			Text:    "write about budgets",
			Context: map[string]any{"title": "Budget Memo"},
		})
		require.NoError(t, err)
		assert.Contains(t, result["file_path"].(string), "budget_memo")
	})

	t.Run("extracted title", func(t *testing.T) {
		a := newTestAgent(t)
		result, err := a.Execute(context.Background(), &agents.Task{Text: "write about budgets"})
		require.NoError(t, err)
		assert.Contains(t, result["file_path"].(string), "budgets")
	})
}

func TestMissingToolBindingIsFatal(t *testing.T) {
	// empty registry: the binding is absent, which is a wiring bug
	a := NewAgent(tools.NewRegistry(), zerolog.Nop())

	_, err := a.Execute(context.Background(), &agents.Task{Text: "note"})
	require.Error(t, err)
	assert.EqualError(t, err, "tool not found: create_document")
}

func TestAgentMetadata(t *testing.T) {
	a := newTestAgent(t)
	assert.Equal(t, "document", a.Name())
	assert.NotEmpty(t, a.SystemPrompt())
	assert.Equal(t, []string{"create_document", "add_heading", "add_paragraph", "save_document"}, a.ToolNames())
}
