// Package llmtest provides a scripted LLM provider for tests.
package llmtest

import (
	"context"
	"fmt"
	"sync"

	"github.com/gourav1211/officeagent/llm/providers/shared"
)

// FakeProvider is a scripted LLMProvider. Responses and failures are keyed by
// model name so tests can exercise the model fallback chain.
type FakeProvider struct {
	mu        sync.Mutex
	responses map[string]string
	failures  map[string]error
	calls     []string
}

// NewFakeProvider creates an empty fake provider.
func NewFakeProvider() *FakeProvider {
	return &FakeProvider{
		responses: make(map[string]string),
		failures:  make(map[string]error),
	}
}

// Name returns the provider name
func (f *FakeProvider) Name() string { return "fake" }

// Respond scripts a successful completion for the given model.
func (f *FakeProvider) Respond(model, content string) *FakeProvider {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[model] = content
	return f
}

// Fail scripts a failure for the given model.
func (f *FakeProvider) Fail(model string, err error) *FakeProvider {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[model] = err
	return f
}

// Calls returns the models requested so far, in order.
func (f *FakeProvider) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

// Complete returns the scripted response for the requested model.
func (f *FakeProvider) Complete(_ context.Context, req *shared.CompletionRequest) (*shared.CompletionResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, req.Model)
	if err, ok := f.failures[req.Model]; ok {
		return nil, err
	}
	content, ok := f.responses[req.Model]
	if !ok {
		return nil, fmt.Errorf("no scripted response for model %s", req.Model)
	}
	return &shared.CompletionResponse{
		Content: content,
		Usage:   shared.TokenUsage{PromptTokens: 10, CompletionTokens: 20, TotalTokens: 30},
		Model:   req.Model,
	}, nil
}
