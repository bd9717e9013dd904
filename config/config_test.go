package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load(nil)

	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	assert.Equal(t, float32(0.7), cfg.LLM.Temperature)
	assert.Equal(t, "", cfg.LLM.APIKey)
	assert.Equal(t, ":8765", cfg.Server.Address)
	assert.Equal(t, "office_ai_files", cfg.Workspace)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnv(t *testing.T) {
	env := map[string]string{
		"OPENAI_API_KEY":  "sk-test",
		"LLM_MODEL":       "gpt-4o-mini",
		"LLM_TEMPERATURE": "0.25",
		"API_ADDR":        ":9000",
		"OFFICE_WORKSPACE": "/tmp/office",
		"LOG_LEVEL":       "debug",
	}
	cfg := Load(func(key string) string { return env[key] })

	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, float32(0.25), cfg.LLM.Temperature)
	assert.Equal(t, ":9000", cfg.Server.Address)
	assert.Equal(t, "/tmp/office", cfg.Workspace)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadToleratesJunk(t *testing.T) {
	env := map[string]string{
		"LLM_TEMPERATURE": "warm",
		"LLM_MODEL":       "   ",
	}
	cfg := Load(func(key string) string { return env[key] })

	assert.Equal(t, float32(0.7), cfg.LLM.Temperature)
	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
}
