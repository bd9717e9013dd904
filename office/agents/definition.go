// Package agents defines the specialized-agent contract and the helpers the
// agent implementations share.
//
// Agents are stateless across invocations; all state lives in the session
// stores reached through the tool registry.
package agents

import (
	"context"
	"fmt"
)

// Task is one unit of work handed to an agent.
type Task struct {
	Text    string
	Context map[string]any
	UserID  string
	TaskID  string
}

// ContextString reads a string option from the task context.
func (t *Task) ContextString(key string) string {
	if t == nil || t.Context == nil {
		return ""
	}
	val, _ := t.Context[key].(string)
	return val
}

// Agent is the uniform contract every specialized agent exposes.
type Agent interface {
	Name() string
	SystemPrompt() string
	ToolNames() []string
	Execute(ctx context.Context, task *Task) (map[string]any, error)
}

// Registry holds the closed set of specialized agents.
type Registry struct {
	agents map[string]Agent
	order  []string
}

// NewAgentRegistry creates an empty agent registry.
func NewAgentRegistry() *Registry {
	return &Registry{agents: make(map[string]Agent)}
}

// Register adds an agent keyed by its name.
func (r *Registry) Register(agent Agent) {
	if _, exists := r.agents[agent.Name()]; !exists {
		r.order = append(r.order, agent.Name())
	}
	r.agents[agent.Name()] = agent
}

// Get retrieves an agent by name.
func (r *Registry) Get(name string) (Agent, error) {
	agent, exists := r.agents[name]
	if !exists {
		return nil, fmt.Errorf("agent not found: %s", name)
	}
	return agent, nil
}

// Has reports whether an agent with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, exists := r.agents[name]
	return exists
}

// Names returns the registered agent names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
