package orchestrator

import (
	"context"
	"encoding/json"
	"os"
	"regexp"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gourav1211/officeagent/office/agents"
	"github.com/gourav1211/officeagent/office/agents/communication"
	"github.com/gourav1211/officeagent/office/agents/document"
	"github.com/gourav1211/officeagent/office/agents/presentation"
	"github.com/gourav1211/officeagent/office/agents/spreadsheet"
	"github.com/gourav1211/officeagent/office/agents/workflow"
	"github.com/gourav1211/officeagent/office/drafter"
	"github.com/gourav1211/officeagent/office/files"
	"github.com/gourav1211/officeagent/office/metrics"
	"github.com/gourav1211/officeagent/office/tools"
)

func newTestOrchestrator(t *testing.T) *Orchestrator {
	t.Helper()
	registry := tools.NewOfficeRegistry(tools.NewStores(), files.NewManager(t.TempDir()))
	d := drafter.New(nil, "gpt-4o", 0.7, zerolog.Nop())

	agentRegistry := agents.NewAgentRegistry()
	agentRegistry.Register(document.NewAgent(registry, zerolog.Nop()))
	agentRegistry.Register(presentation.NewAgent(registry, d, zerolog.Nop()))
	agentRegistry.Register(spreadsheet.NewAgent(registry, d, zerolog.Nop()))
	agentRegistry.Register(communication.NewAgent(registry, zerolog.Nop()))
	agentRegistry.Register(workflow.NewAgent(registry, zerolog.Nop()))

	return New(agentRegistry, metrics.New(), zerolog.Nop())
}

func TestExecuteRoutesDeckTaskWithoutLLM(t *testing.T) {
	o := newTestOrchestrator(t)

	result := o.Execute(context.Background(), "Create a 3-slide deck about robotics", nil, "", "")
	require.Equal(t, StatusCompleted, result.Status)
	require.Empty(t, result.Error)
	assert.NotEmpty(t, result.TaskID)
	assert.Equal(t, 3, result.Result["slide_count"])

	content, err := os.ReadFile(result.Result["file_path"].(string))
	require.NoError(t, err)
	assert.Contains(t, string(content), "robotics — Slide 1")
	assert.Contains(t, string(content), "robotics — Slide 2")
	assert.Contains(t, string(content), "robotics — Slide 3")
	assert.NotContains(t, string(content), "Slide 4")
}

func TestExecuteExplicitAgentOverride(t *testing.T) {
	o := newTestOrchestrator(t)

	result := o.Execute(context.Background(), "note", map[string]any{"agent": "document"}, "", "")
	require.Equal(t, StatusCompleted, result.Status)

	content, err := os.ReadFile(result.Result["file_path"].(string))
	require.NoError(t, err)
	assert.Contains(t, string(content), "note")
}

func TestExecuteOverrideIsNormalized(t *testing.T) {
	o := newTestOrchestrator(t)

	result := o.Execute(context.Background(), "short memo", map[string]any{"agent": "  Workflow "}, "", "")
	require.Equal(t, StatusCompleted, result.Status)

	content, err := os.ReadFile(result.Result["file_path"].(string))
	require.NoError(t, err)
	assert.Contains(t, string(content), "1) Prepare presentation")
}

func TestExecuteUnknownOverrideFallsBackToKeywords(t *testing.T) {
	o := newTestOrchestrator(t)

	result := o.Execute(context.Background(), "build a budget spreadsheet", map[string]any{"agent": "nonexistent"}, "", "")
	require.Equal(t, StatusCompleted, result.Status)

	content, err := os.ReadFile(result.Result["file_path"].(string))
	require.NoError(t, err)
	assert.Contains(t, string(content), "Item\tValue")
}

func TestRoutingPrecedence(t *testing.T) {
	o := newTestOrchestrator(t)

	cases := []struct {
		name string
		text string
		want string
	}{
		{"presentation wins over spreadsheet", "a presentation with a spreadsheet appendix", presentation.AgentName},
		{"spreadsheet keywords", "an excel summary", spreadsheet.AgentName},
		{"default document", "meeting notes for monday", document.AgentName},
		{"ppt keyword", "quick ppt", presentation.AgentName},
		{"table keyword", "comparison table of vendors", spreadsheet.AgentName},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			agent, heuristic := o.route(tc.text, nil)
			assert.True(t, heuristic)
			assert.Equal(t, tc.want, agent.Name())
		})
	}
}

func TestExecuteMissingToolBindingYieldsErrorEnvelope(t *testing.T) {
	// an agent over an empty tool registry fails on its first call
	registry := tools.NewRegistry()
	agentRegistry := agents.NewAgentRegistry()
	agentRegistry.Register(document.NewAgent(registry, zerolog.Nop()))
	o := New(agentRegistry, metrics.New(), zerolog.Nop())

	result := o.Execute(context.Background(), "anything", map[string]any{"agent": "document"}, "", "")
	assert.Equal(t, StatusError, result.Status)
	assert.Equal(t, "tool not found: create_document", result.Error)
	assert.Nil(t, result.Result)

	snap := o.MetricsSnapshot()
	assert.Equal(t, int64(1), snap.Counters["execute.errors"])
}

func TestExecuteRecordsMetrics(t *testing.T) {
	o := newTestOrchestrator(t)

	o.Execute(context.Background(), "notes", nil, "", "")
	o.Execute(context.Background(), "more notes", nil, "", "")
	o.Execute(context.Background(), "a deck of slides", nil, "", "")

	snap := o.MetricsSnapshot()
	assert.Equal(t, int64(2), snap.Counters["execute.document"])
	assert.Equal(t, int64(1), snap.Counters["execute.presentation"])
	assert.Equal(t, 3, snap.Timers["execute_total"].Count)
}

func TestExecutePreservesCallerTaskID(t *testing.T) {
	o := newTestOrchestrator(t)

	result := o.Execute(context.Background(), "notes", nil, "user-1", "task_custom")
	assert.Equal(t, "task_custom", result.TaskID)
}

func mustParseTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339Nano, value)
	require.NoError(t, err)
	return parsed
}

func TestMakeTaskIDFormat(t *testing.T) {
	id := makeTaskID(mustParseTime(t, "2026-08-30T10:04:05.123456789Z"))
	assert.Equal(t, "task_20260830_100405_123456", id)
	assert.Regexp(t, regexp.MustCompile(`^task_\d{8}_\d{6}_\d{6}$`), id)
}

func TestListAgents(t *testing.T) {
	o := newTestOrchestrator(t)
	assert.Equal(t, []string{"document", "presentation", "spreadsheet", "communication", "workflow"}, o.ListAgents())
}

func TestExecuteStreamingEventSequence(t *testing.T) {
	o := newTestOrchestrator(t)

	events := o.ExecuteStreaming(context.Background(), "slide deck about cadence", nil, "", "")
	require.Len(t, events, 4)

	assert.Equal(t, EventStart, events[0].Event)
	assert.NotEmpty(t, events[0].TaskID)
	assert.Equal(t, EventPlanning, events[1].Event)
	assert.Equal(t, "Selecting agent based on task keywords", events[1].Message)
	assert.Equal(t, EventResult, events[2].Event)
	require.NotNil(t, events[2].Result)
	assert.Equal(t, StatusCompleted, events[2].Result.Status)
	assert.Equal(t, events[0].TaskID, events[2].Result.TaskID)
	assert.Equal(t, EventEnd, events[3].Event)
	assert.Equal(t, StatusCompleted, events[3].Status)
}

func TestExecuteStreamingSkipsPlanningOnOverride(t *testing.T) {
	o := newTestOrchestrator(t)

	events := o.ExecuteStreaming(context.Background(), "memo", map[string]any{"agent": "document"}, "", "")
	require.Len(t, events, 3)
	assert.Equal(t, EventStart, events[0].Event)
	assert.Equal(t, EventResult, events[1].Event)
	assert.Equal(t, EventEnd, events[2].Event)
}

func TestTaskResultJSONReportsSeconds(t *testing.T) {
	result := &TaskResult{
		TaskID:        "task_x",
		Status:        StatusCompleted,
		ExecutionTime: 1234567 * 1000, // 1.234567ms in nanoseconds
	}

	raw, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "task_x", decoded["task_id"])
	assert.InDelta(t, 0.001, decoded["execution_time"], 1e-9)
	_, hasError := decoded["error"]
	assert.False(t, hasError)
}
