// Package presentation implements the slide-deck agent.
//
// It drafts slide content through the content drafter when a language model
// is configured and falls back to a deterministic outline otherwise.
package presentation

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gourav1211/officeagent/office/agents"
	"github.com/gourav1211/officeagent/office/drafter"
	"github.com/gourav1211/officeagent/office/tools"
)

const (
	// AgentName is the routing key for this agent.
	AgentName = "presentation"

	defaultTitle      = "Generated Presentation"
	defaultSlideCount = 3

	systemPrompt = "Create clear, minimal slides with a short title and a single main point per slide."
)

var toolNames = []string{"create_presentation", "add_slide", "add_text_to_slide", "save_presentation"}

// Agent composes a presentation, drafted or deterministic.
type Agent struct {
	toolbox *agents.Toolbox
	drafter *drafter.Drafter
	logger  zerolog.Logger
}

// NewAgent creates a presentation agent bound to the registry and drafter.
func NewAgent(registry *tools.Registry, d *drafter.Drafter, logger zerolog.Logger) *Agent {
	return &Agent{
		toolbox: agents.NewToolbox(registry),
		drafter: d,
		logger:  logger.With().Str("agent", AgentName).Logger(),
	}
}

func (a *Agent) Name() string         { return AgentName }
func (a *Agent) SystemPrompt() string { return systemPrompt }
func (a *Agent) ToolNames() []string  { return toolNames }

// Execute composes and saves a presentation with up to N slides, N taken
// from the first integer in the task text.
func (a *Agent) Execute(ctx context.Context, task *agents.Task) (map[string]any, error) {
	title := agents.ResolveTitle(task, defaultTitle)
	n, ok := agents.ExtractInt(task.Text)
	if !ok {
		n = defaultSlideCount
	}

	outline := a.draftOutline(ctx, task.Text, n, title)

	created, err := a.toolbox.Call(ctx, "create_presentation", map[string]any{"title": title})
	if err != nil {
		return nil, err
	}
	presID := created["presentation_id"].(string)

	if outline != nil {
		slides := outline.Slides
		if len(slides) > n {
			slides = slides[:n]
		}
		for _, slide := range slides {
			lines := make([]string, 0, len(slide.Bullets))
			for _, b := range slide.Bullets {
				lines = append(lines, "- "+b)
			}
			text := slide.Title + "\n" + strings.Join(lines, "\n")
			if _, err := a.toolbox.Call(ctx, "add_slide", map[string]any{"presentation_id": presID, "text": text}); err != nil {
				return nil, err
			}
		}
	} else {
		for i := 1; i <= n; i++ {
			text := fmt.Sprintf("%s — Slide %d", title, i)
			if _, err := a.toolbox.Call(ctx, "add_slide", map[string]any{"presentation_id": presID, "text": text}); err != nil {
				return nil, err
			}
		}
	}

	return a.toolbox.Call(ctx, "save_presentation", map[string]any{"presentation_id": presID})
}

// draftOutline returns nil whenever drafting cannot supply usable slides;
// the caller then emits the deterministic outline.
func (a *Agent) draftOutline(ctx context.Context, taskText string, n int, title string) *drafter.SlideOutline {
	if !a.drafter.Available() {
		return nil
	}
	outline, err := a.drafter.DraftSlides(ctx, taskText, n, title)
	if err != nil {
		a.logger.Warn().Err(err).Msg("slide drafting failed, using deterministic outline")
		return nil
	}
	return outline
}
