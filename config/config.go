// Package config loads service configuration from the environment.
//
// Lookup is injected (usually os.Getenv) so tests can feed their own values
// without mutating the process environment.
package config

import (
	"strconv"
	"strings"
)

// LLMConfig holds language-model collaborator settings.
type LLMConfig struct {
	APIKey      string
	Model       string
	Temperature float32
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Address string
}

// Config is the full service configuration.
type Config struct {
	LLM       LLMConfig
	Server    ServerConfig
	Workspace string
	LogLevel  string
}

// Load reads configuration through the given lookup function. A nil lookup
// yields the defaults.
func Load(lookup func(string) string) *Config {
	if lookup == nil {
		lookup = func(string) string { return "" }
	}

	cfg := &Config{
		LLM: LLMConfig{
			APIKey:      lookup("OPENAI_API_KEY"),
			Model:       withDefault(lookup("LLM_MODEL"), "gpt-4o"),
			Temperature: parseFloat(lookup("LLM_TEMPERATURE"), 0.7),
		},
		Server: ServerConfig{
			Address: withDefault(lookup("API_ADDR"), ":8765"),
		},
		Workspace: withDefault(lookup("OFFICE_WORKSPACE"), "office_ai_files"),
		LogLevel:  withDefault(lookup("LOG_LEVEL"), "info"),
	}
	return cfg
}

func withDefault(val, def string) string {
	if strings.TrimSpace(val) == "" {
		return def
	}
	return val
}

func parseFloat(val string, def float32) float32 {
	if val == "" {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(val), 32)
	if err != nil {
		return def
	}
	return float32(f)
}
