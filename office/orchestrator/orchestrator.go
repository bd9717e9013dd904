// Package orchestrator routes tasks to specialized agents and wraps their
// execution in a uniform result envelope.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/gourav1211/officeagent/office/agents"
	"github.com/gourav1211/officeagent/office/agents/document"
	"github.com/gourav1211/officeagent/office/agents/presentation"
	"github.com/gourav1211/officeagent/office/agents/spreadsheet"
	"github.com/gourav1211/officeagent/office/metrics"
)

// Task statuses in the result envelope.
const (
	StatusCompleted = "completed"
	StatusError     = "error"
)

// Keyword groups for heuristic routing, in precedence order.
var (
	presentationKeywords = []string{"slide", "presentation", "ppt"}
	spreadsheetKeywords  = []string{"sheet", "spreadsheet", "excel", "table"}
)

// TaskResult is the envelope every execution path returns.
type TaskResult struct {
	TaskID        string         `json:"task_id"`
	Status        string         `json:"status"`
	Result        map[string]any `json:"result,omitempty"`
	Error         string         `json:"error,omitempty"`
	ExecutionTime time.Duration  `json:"-"`
}

// MarshalJSON reports execution_time in seconds, rounded to milliseconds.
func (r *TaskResult) MarshalJSON() ([]byte, error) {
	type alias TaskResult
	seconds := math.Round(r.ExecutionTime.Seconds()*1000) / 1000
	return json.Marshal(struct {
		*alias
		ExecutionTime float64 `json:"execution_time"`
	}{alias: (*alias)(r), ExecutionTime: seconds})
}

// Orchestrator owns routing and the execution envelope.
type Orchestrator struct {
	agents  *agents.Registry
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

// New creates an orchestrator over a populated agent registry.
func New(registry *agents.Registry, m *metrics.Metrics, logger zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		agents:  registry,
		metrics: m,
		logger:  logger.With().Str("component", "orchestrator").Logger(),
	}
}

// Execute routes the task and returns a result envelope. Failures of any
// kind are converted to an error envelope; this boundary never lets a
// failure escape to the caller.
func (o *Orchestrator) Execute(ctx context.Context, text string, taskContext map[string]any, userID, taskID string) (result *TaskResult) {
	start := time.Now()
	if taskID == "" {
		taskID = makeTaskID(time.Now())
	}
	o.logger.Info().Str("task_id", taskID).Str("task", text).Msg("execute")

	defer func() {
		if rec := recover(); rec != nil {
			o.logger.Error().Str("task_id", taskID).Interface("panic", rec).Msg("execute panicked")
			o.metrics.Inc("execute.errors", 1)
			result = &TaskResult{
				TaskID:        taskID,
				Status:        StatusError,
				Error:         fmt.Sprintf("%v", rec),
				ExecutionTime: time.Since(start),
			}
		}
	}()

	agent, _ := o.route(text, taskContext)

	var data map[string]any
	var err error
	o.metrics.Time("execute_total", func() {
		data, err = agent.Execute(ctx, &agents.Task{
			Text:    text,
			Context: taskContext,
			UserID:  userID,
			TaskID:  taskID,
		})
	})

	elapsed := time.Since(start)
	if err != nil {
		o.logger.Error().Str("task_id", taskID).Err(err).Msg("execute failed")
		o.metrics.Inc("execute.errors", 1)
		return &TaskResult{
			TaskID:        taskID,
			Status:        StatusError,
			Error:         err.Error(),
			ExecutionTime: elapsed,
		}
	}

	o.metrics.Inc("execute."+agent.Name(), 1)
	return &TaskResult{
		TaskID:        taskID,
		Status:        StatusCompleted,
		Result:        data,
		ExecutionTime: elapsed,
	}
}

// ListAgents returns the registered agent names.
func (o *Orchestrator) ListAgents() []string {
	return o.agents.Names()
}

// MetricsSnapshot returns the current telemetry counters and timers.
func (o *Orchestrator) MetricsSnapshot() metrics.Snapshot {
	return o.metrics.Snapshot()
}

// route picks the agent for a task: an explicit context override when it
// names a known agent, otherwise the ordered keyword heuristic. The second
// return reports whether the heuristic was used.
func (o *Orchestrator) route(text string, taskContext map[string]any) (agents.Agent, bool) {
	if name, ok := taskContext["agent"].(string); ok {
		name = strings.ToLower(strings.TrimSpace(name))
		if o.agents.Has(name) {
			agent, _ := o.agents.Get(name)
			return agent, false
		}
	}

	lowered := strings.ToLower(text)
	pick := document.AgentName
	if containsAny(lowered, presentationKeywords) {
		pick = presentation.AgentName
	} else if containsAny(lowered, spreadsheetKeywords) {
		pick = spreadsheet.AgentName
	}

	agent, err := o.agents.Get(pick)
	if err != nil {
		// registry is missing a default agent: a wiring bug worth a loud stop
		panic(err)
	}
	return agent, true
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// makeTaskID derives a practically unique id from a microsecond timestamp.
func makeTaskID(now time.Time) string {
	return fmt.Sprintf("task_%s_%06d", now.Format("20060102_150405"), now.Nanosecond()/1000)
}
