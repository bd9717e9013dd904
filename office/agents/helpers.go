package agents

import (
	"regexp"
	"strconv"
	"strings"
)

// titlePattern picks up the phrase following "about" or "on". Deliberately
// loose, matching the heuristic the rest of the routing uses.
var titlePattern = regexp.MustCompile(`(?i)(?:about|on)\s+(.+)$`)

var intPattern = regexp.MustCompile(`(\d+)`)

// ExtractTitle pulls a title out of free task text; empty when no phrase
// matches.
func ExtractTitle(task string) string {
	m := titlePattern.FindStringSubmatch(task)
	if m == nil {
		return ""
	}
	title := strings.TrimSpace(m[1])
	return strings.TrimRight(title, ".")
}

// ExtractInt returns the first integer literal in the task text.
func ExtractInt(task string) (int, bool) {
	m := intPattern.FindStringSubmatch(task)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// ResolveTitle applies the title precedence shared by all agents: explicit
// context title, then a title extracted from the task text, then the
// per-agent default.
func ResolveTitle(task *Task, fallback string) string {
	if title := task.ContextString("title"); title != "" {
		return title
	}
	if title := ExtractTitle(task.Text); title != "" {
		return title
	}
	return fallback
}
