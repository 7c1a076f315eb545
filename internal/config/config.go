// Package config loads server configuration from a TOML file with
// environment overrides for secrets and per-deploy settings.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/alexanderramin/admind/internal/domain"
)

type ServerConfig struct {
	Addr string `toml:"addr"`
}

type ModelsConfig struct {
	Text      string `toml:"text"`
	Image     string `toml:"image"`
	TimeoutMs int    `toml:"timeout_ms"`
}

// ProjectConfig seeds the default campaign a new session starts with.
// Empty fields fall back to the built-in example project.
type ProjectConfig struct {
	ProductName        string `toml:"product_name"`
	ProductDescription string `toml:"product_description"`
	TargetAudience     string `toml:"target_audience"`
	TargetCountry      string `toml:"target_country"`
	BrandVoice         string `toml:"brand_voice"`
	Offer              string `toml:"offer"`
}

type Config struct {
	Server  ServerConfig  `toml:"server"`
	Models  ModelsConfig  `toml:"models"`
	Project ProjectConfig `toml:"project"`

	// APIKey comes from the environment only; it never lives in the file.
	APIKey string `toml:"-"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Addr: ":8823"},
		Models: ModelsConfig{
			Text:      "gemini-2.5-flash",
			Image:     "gemini-2.5-flash-image",
			TimeoutMs: 60000,
		},
	}
}

// Load reads configuration from an optional TOML file, then applies
// environment overrides. A missing file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
			}
		} else if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("ADMIND_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("ADMIND_TEXT_MODEL"); v != "" {
		c.Models.Text = v
	}
	if v := os.Getenv("ADMIND_IMAGE_MODEL"); v != "" {
		c.Models.Image = v
	}
	if v := os.Getenv("ADMIND_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Models.TimeoutMs = n
		}
	}
}

// SeedProject builds the project context a new session starts with:
// the built-in example overlaid with any configured fields.
func (c *Config) SeedProject() domain.ProjectContext {
	project := domain.DefaultProject()
	if c.Project.ProductName != "" {
		project.ProductName = c.Project.ProductName
	}
	if c.Project.ProductDescription != "" {
		project.ProductDescription = c.Project.ProductDescription
	}
	if c.Project.TargetAudience != "" {
		project.TargetAudience = c.Project.TargetAudience
	}
	if c.Project.TargetCountry != "" {
		project.TargetCountry = c.Project.TargetCountry
	}
	if c.Project.BrandVoice != "" {
		project.BrandVoice = c.Project.BrandVoice
	}
	if c.Project.Offer != "" {
		project.Offer = c.Project.Offer
	}
	return project
}
