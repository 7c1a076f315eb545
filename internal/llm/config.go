package llm

import (
	"os"
	"strconv"
)

// Task identifies the kind of generation call being made. Temperatures and
// timeouts are tuned per task.
type Task string

const (
	TaskPersonas    Task = "personas"
	TaskAngles      Task = "angles"
	TaskStories     Task = "stories"
	TaskBigIdeas    Task = "big_ideas"
	TaskMechanisms  Task = "mechanisms"
	TaskHooks       Task = "hooks"
	TaskConcept     Task = "concept"
	TaskCopy        Task = "copy"
	TaskCompliance  Task = "compliance"
	TaskSalesLetter Task = "sales_letter"
	TaskAdScript    Task = "ad_script"
	TaskContext     Task = "context"
	TaskImage       Task = "image"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float32
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the generation subsystem.
type Config struct {
	APIKey     string
	TextModel  string
	ImageModel string
	TimeoutMs  int
	Tasks      map[Task]TaskConfig
}

// DefaultConfig returns a Config with the production model names and
// per-task defaults. The API key must be supplied by the caller.
func DefaultConfig() Config {
	return Config{
		TextModel:  "gemini-2.5-flash",
		ImageModel: "gemini-2.5-flash-image",
		TimeoutMs:  60000,
		Tasks: map[Task]TaskConfig{
			TaskPersonas:    {Temperature: 0.9},
			TaskAngles:      {Temperature: 0.9},
			TaskStories:     {Temperature: 1.0},
			TaskBigIdeas:    {Temperature: 0.9},
			TaskMechanisms:  {Temperature: 0.8},
			TaskHooks:       {Temperature: 1.0},
			TaskConcept:     {Temperature: 0.8},
			TaskCopy:        {Temperature: 0.8},
			TaskCompliance:  {Temperature: 0.1},
			TaskSalesLetter: {Temperature: 0.9, TimeoutMs: 120000},
			TaskAdScript:    {Temperature: 0.9},
			TaskContext:     {Temperature: 0.2},
			TaskImage:       {TimeoutMs: 120000},
		},
	}
}

// LoadConfig reads generation configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("ADMIND_TEXT_MODEL"); v != "" {
		cfg.TextModel = v
	}
	if v := os.Getenv("ADMIND_IMAGE_MODEL"); v != "" {
		cfg.ImageModel = v
	}
	if v := os.Getenv("ADMIND_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}

	return cfg
}

// TaskTimeout returns the effective timeout for a given task.
func (c Config) TaskTimeout(task Task) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

// TaskTemperature returns the configured temperature for a task, or zero
// when the task is unknown (the model default applies).
func (c Config) TaskTemperature(task Task) (float32, bool) {
	tc, ok := c.Tasks[task]
	if !ok || tc.Temperature == 0 {
		return 0, false
	}
	return tc.Temperature, true
}
