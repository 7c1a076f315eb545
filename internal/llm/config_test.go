package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "gemini-2.5-flash", cfg.TextModel)
	assert.Equal(t, "gemini-2.5-flash-image", cfg.ImageModel)
	assert.Equal(t, 60000, cfg.TimeoutMs)
	assert.Empty(t, cfg.APIKey)
}

func TestTaskTimeout(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 60000, cfg.TaskTimeout(TaskPersonas))
	assert.Equal(t, 120000, cfg.TaskTimeout(TaskSalesLetter))
	assert.Equal(t, 120000, cfg.TaskTimeout(TaskImage))
	assert.Equal(t, 60000, cfg.TaskTimeout(Task("unknown")))
}

func TestTaskTemperature(t *testing.T) {
	cfg := DefaultConfig()

	temp, ok := cfg.TaskTemperature(TaskCompliance)
	require.True(t, ok)
	assert.Equal(t, float32(0.1), temp)

	temp, ok = cfg.TaskTemperature(TaskStories)
	require.True(t, ok)
	assert.Equal(t, float32(1.0), temp)

	_, ok = cfg.TaskTemperature(TaskImage)
	assert.False(t, ok)

	_, ok = cfg.TaskTemperature(Task("unknown"))
	assert.False(t, ok)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("ADMIND_TEXT_MODEL", "gemini-exp")
	t.Setenv("ADMIND_LLM_TIMEOUT_MS", "30000")

	cfg := LoadConfig()

	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "gemini-exp", cfg.TextModel)
	assert.Equal(t, "gemini-2.5-flash-image", cfg.ImageModel)
	assert.Equal(t, 30000, cfg.TimeoutMs)
}

func TestLoadConfig_IgnoresInvalidTimeout(t *testing.T) {
	t.Setenv("ADMIND_LLM_TIMEOUT_MS", "not-a-number")

	cfg := LoadConfig()
	assert.Equal(t, 60000, cfg.TimeoutMs)
}
