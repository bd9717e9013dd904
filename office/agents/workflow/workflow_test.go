package workflow

import (
	"context"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gourav1211/officeagent/office/agents"
	"github.com/gourav1211/officeagent/office/files"
	"github.com/gourav1211/officeagent/office/tools"
)

func TestExecuteWritesPlanDocument(t *testing.T) {
	registry := tools.NewOfficeRegistry(tools.NewStores(), files.NewManager(t.TempDir()))
	a := NewAgent(registry, zerolog.Nop())

	result, err := a.Execute(context.Background(), &agents.Task{Text: "prepare the quarterly review"})
	require.NoError(t, err)
	assert.Equal(t, "ok", result["status"])
	assert.Contains(t, result["file_path"].(string), "workflow_plan")

	content, err := os.ReadFile(result["file_path"].(string))
	require.NoError(t, err)
	assert.Contains(t, string(content), "1) Prepare presentation")
	assert.Contains(t, string(content), "Task context: prepare the quarterly review")
}
