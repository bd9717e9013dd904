package orchestrator

import (
	"context"
	"time"
)

// Event kinds emitted by ExecuteStreaming.
const (
	EventStart    = "start"
	EventPlanning = "planning"
	EventResult   = "result"
	EventEnd      = "end"
)

// Event is one lifecycle notification of a streamed execution.
type Event struct {
	Event   string      `json:"event"`
	TaskID  string      `json:"task_id,omitempty"`
	Message string      `json:"message,omitempty"`
	Result  *TaskResult `json:"result,omitempty"`
	Status  string      `json:"status,omitempty"`
}

// ExecuteStreaming runs the task synchronously and returns the lifecycle
// events a streaming transport replays to the client: start, planning (only
// when the agent was picked by the keyword heuristic), result, end.
func (o *Orchestrator) ExecuteStreaming(ctx context.Context, text string, taskContext map[string]any, userID, taskID string) []Event {
	if taskID == "" {
		taskID = makeTaskID(time.Now())
	}

	events := make([]Event, 0, 4)
	events = append(events, Event{Event: EventStart, TaskID: taskID})

	if _, heuristic := o.route(text, taskContext); heuristic {
		events = append(events, Event{Event: EventPlanning, Message: "Selecting agent based on task keywords"})
	}

	envelope := o.Execute(ctx, text, taskContext, userID, taskID)
	events = append(events, Event{Event: EventResult, Result: envelope})
	events = append(events, Event{Event: EventEnd, Status: envelope.Status})
	return events
}
