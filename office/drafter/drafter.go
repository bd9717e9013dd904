// Package drafter asks the language-model collaborator for structured
// content (slide outlines, tables) ahead of composition.
//
// Drafting is strictly best-effort: every failure is reported as an error
// value so the calling agent can take its deterministic fallback branch.
package drafter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gourav1211/officeagent/llm/providers/shared"
)

// ErrUnavailable means no language-model collaborator is configured.
var ErrUnavailable = errors.New("no language model configured")

// fallbackModels is tried after the configured primary, in order.
var fallbackModels = []string{"gpt-4o", "gpt-4o-mini", "gpt-4-turbo", "gpt-3.5-turbo"}

// Slide is one drafted slide.
type Slide struct {
	Title   string   `json:"title"`
	Bullets []string `json:"bullets"`
}

// SlideOutline is a drafted slide outline.
type SlideOutline struct {
	Slides []Slide `json:"slides"`
}

// TableSpec is a drafted header/row table.
type TableSpec struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Drafter requests structured drafts from an LLM provider with a model
// fallback chain. A nil provider is the explicit "unavailable" state.
type Drafter struct {
	llm          shared.LLMProvider
	primaryModel string
	temperature  float32
	logger       zerolog.Logger
}

// New creates a drafter. llm may be nil when no credential is configured.
func New(llm shared.LLMProvider, primaryModel string, temperature float32, logger zerolog.Logger) *Drafter {
	return &Drafter{
		llm:          llm,
		primaryModel: primaryModel,
		temperature:  temperature,
		logger:       logger.With().Str("component", "drafter").Logger(),
	}
}

// Available reports whether a language-model collaborator is configured.
func (d *Drafter) Available() bool {
	return d != nil && d.llm != nil
}

// DraftSlides asks for an outline of up to n slides.
func (d *Drafter) DraftSlides(ctx context.Context, task string, n int, title string) (*SlideOutline, error) {
	prompt := fmt.Sprintf(
		"You are a presentation assistant. Create an outline with up to %d slides for a presentation titled '%s'.\n"+
			"Return ONLY valid JSON with this schema and no extra text:\n"+
			"{\n  \"slides\": [\n    { \"title\": \"Slide title\", \"bullets\": [\"point 1\", \"point 2\"] },\n    ...\n  ]\n}\n"+
			"Task: %s",
		n, title, task)

	raw, err := d.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	data, err := extractJSON(raw)
	if err != nil {
		return nil, err
	}
	return slidesFromJSON(data, title)
}

// DraftTable asks for a compact header/row table.
func (d *Drafter) DraftTable(ctx context.Context, task, title string) (*TableSpec, error) {
	prompt := fmt.Sprintf(
		"You are a data assistant. Create a compact table suitable for a spreadsheet titled '%s'. "+
			"Return ONLY valid JSON with this schema and no extra text:\n"+
			"{\n  \"headers\": [\"Header1\", \"Header2\"],\n  \"rows\": [ [\"r1c1\", \"r1c2\"], [\"r2c1\", \"r2c2\"] ]\n}\n"+
			"Task: %s",
		title, task)

	raw, err := d.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	data, err := extractJSON(raw)
	if err != nil {
		return nil, err
	}
	return tableFromJSON(data), nil
}

// complete tries each candidate model in order and returns the first
// response text.
func (d *Drafter) complete(ctx context.Context, prompt string) (string, error) {
	if !d.Available() {
		return "", ErrUnavailable
	}

	var lastErr error
	for _, model := range d.candidateModels() {
		resp, err := d.llm.Complete(ctx, &shared.CompletionRequest{
			Messages: []shared.Message{{Role: shared.RoleUser, Content: prompt}},
			Options: shared.CompletionOptions{
				MaxTokens:   1000,
				Temperature: d.temperature,
			},
			Model: model,
		})
		if err != nil {
			d.logger.Debug().Str("model", model).Err(err).Msg("draft attempt failed")
			lastErr = err
			continue
		}
		return resp.Content, nil
	}
	return "", fmt.Errorf("all candidate models failed: %w", lastErr)
}

// candidateModels returns the primary model followed by the fixed alternates,
// de-duplicated while preserving order.
func (d *Drafter) candidateModels() []string {
	candidates := append([]string{d.primaryModel}, fallbackModels...)
	seen := make(map[string]bool, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, m := range candidates {
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}

// extractJSON parses the response leniently: a direct parse first, then the
// first top-level {...} block found in the text.
func extractJSON(text string) (map[string]any, error) {
	var data map[string]any
	if err := json.Unmarshal([]byte(text), &data); err == nil {
		return data, nil
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("response contains no JSON object")
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), &data); err != nil {
		return nil, fmt.Errorf("response JSON block is invalid: %w", err)
	}
	return data, nil
}

func slidesFromJSON(data map[string]any, defaultTitle string) (*SlideOutline, error) {
	rawSlides, ok := data["slides"].([]any)
	if !ok {
		return nil, fmt.Errorf("draft response has no slides list")
	}

	outline := &SlideOutline{}
	for _, raw := range rawSlides {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		slide := Slide{Bullets: []string{}}
		if title, ok := entry["title"].(string); ok && title != "" {
			slide.Title = title
		} else {
			slide.Title = defaultTitle
		}
		switch bullets := entry["bullets"].(type) {
		case []any:
			for _, b := range bullets {
				slide.Bullets = append(slide.Bullets, fmt.Sprintf("%v", b))
			}
		case nil:
		default:
			slide.Bullets = append(slide.Bullets, fmt.Sprintf("%v", bullets))
		}
		outline.Slides = append(outline.Slides, slide)
	}
	if len(outline.Slides) == 0 {
		return nil, fmt.Errorf("draft response has no usable slides")
	}
	return outline, nil
}

func tableFromJSON(data map[string]any) *TableSpec {
	spec := &TableSpec{Headers: []string{}, Rows: [][]string{}}

	if headers, ok := data["headers"].([]any); ok {
		for _, h := range headers {
			spec.Headers = append(spec.Headers, fmt.Sprintf("%v", h))
		}
	}
	if rows, ok := data["rows"].([]any); ok {
		for _, raw := range rows {
			cells, ok := raw.([]any)
			if !ok {
				cells = []any{raw}
			}
			row := make([]string, 0, len(cells))
			for _, c := range cells {
				row = append(row, fmt.Sprintf("%v", c))
			}
			spec.Rows = append(spec.Rows, row)
		}
	}
	return spec
}
