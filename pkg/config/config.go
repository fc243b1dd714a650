package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings holds all runtime configuration. It is constructed once and
// passed explicitly into every component so tests can substitute stub
// endpoints without touching process state.
type Settings struct {
	// Provider selects the LLM backend: "ollama" (default, local) or "claude".
	Provider string `yaml:"provider"`

	// Ollama configuration (default local LLM).
	OllamaBaseURL string `yaml:"ollama_base_url"`
	OllamaModel   string `yaml:"ollama_model"`

	// Anthropic configuration (optional alternative).
	AnthropicAPIKey string `yaml:"anthropic_api_key"`
	AnthropicModel  string `yaml:"anthropic_model"`

	// WarehousePath is the sqlite database queried by the SQL assistant.
	WarehousePath string `yaml:"warehouse_path"`

	// Generation timeouts. Diagnosis runs longer prompts than SQL or
	// quality-check generation, so it gets its own bound.
	QueryTimeout time.Duration `yaml:"query_timeout"`
	DebugTimeout time.Duration `yaml:"debug_timeout"`
}

// Default returns settings matching a stock local setup.
func Default() Settings {
	return Settings{
		Provider:       "ollama",
		OllamaBaseURL:  "http://localhost:11434",
		OllamaModel:    "llama3.1",
		AnthropicModel: "claude-sonnet-4-20250514",
		WarehousePath:  "data/sample_warehouse.db",
		QueryTimeout:   60 * time.Second,
		DebugTimeout:   120 * time.Second,
	}
}

// UnmarshalYAML overlays file values onto the settings already present,
// so unset keys keep their defaults. Timeouts are written as duration
// strings ("30s", "2m").
func (s *Settings) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Provider        string `yaml:"provider"`
		OllamaBaseURL   string `yaml:"ollama_base_url"`
		OllamaModel     string `yaml:"ollama_model"`
		AnthropicAPIKey string `yaml:"anthropic_api_key"`
		AnthropicModel  string `yaml:"anthropic_model"`
		WarehousePath   string `yaml:"warehouse_path"`
		QueryTimeout    string `yaml:"query_timeout"`
		DebugTimeout    string `yaml:"debug_timeout"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	setIf(&s.Provider, raw.Provider)
	setIf(&s.OllamaBaseURL, raw.OllamaBaseURL)
	setIf(&s.OllamaModel, raw.OllamaModel)
	setIf(&s.AnthropicAPIKey, raw.AnthropicAPIKey)
	setIf(&s.AnthropicModel, raw.AnthropicModel)
	setIf(&s.WarehousePath, raw.WarehousePath)

	if raw.QueryTimeout != "" {
		d, err := time.ParseDuration(raw.QueryTimeout)
		if err != nil {
			return fmt.Errorf("query_timeout: %w", err)
		}
		s.QueryTimeout = d
	}
	if raw.DebugTimeout != "" {
		d, err := time.ParseDuration(raw.DebugTimeout)
		if err != nil {
			return fmt.Errorf("debug_timeout: %w", err)
		}
		s.DebugTimeout = d
	}
	return nil
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// Load builds Settings from defaults, an optional YAML file, and
// environment variables, in that precedence order. A missing file is not
// an error; a malformed one is.
func Load(path string) (Settings, error) {
	s := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return s, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	s.applyEnv()

	if s.QueryTimeout <= 0 {
		s.QueryTimeout = 60 * time.Second
	}
	if s.DebugTimeout <= 0 {
		s.DebugTimeout = 120 * time.Second
	}

	return s, nil
}

func (s *Settings) applyEnv() {
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		s.Provider = v
	}
	if v := os.Getenv("OLLAMA_BASE_URL"); v != "" {
		s.OllamaBaseURL = v
	}
	if v := os.Getenv("OLLAMA_MODEL"); v != "" {
		s.OllamaModel = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		s.AnthropicAPIKey = v
	}
	if v := os.Getenv("CLAUDE_MODEL"); v != "" {
		s.AnthropicModel = v
	}
	if v := os.Getenv("WAREHOUSE_PATH"); v != "" {
		s.WarehousePath = v
	}
}
