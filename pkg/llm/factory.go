package llm

import (
	"fmt"
	"strings"
	"time"

	"github.com/datapilot-io/datapilot/pkg/config"
)

// Provider identifies an LLM backend.
type Provider string

const (
	ProviderOllama Provider = "ollama"
	ProviderClaude Provider = "claude"
)

// New creates an LLM for the configured provider with the given timeout.
// Ollama is the default when the provider is unset.
func New(settings config.Settings, timeout time.Duration) (LLM, error) {
	switch Provider(strings.ToLower(settings.Provider)) {
	case ProviderOllama, "":
		return NewOllama(settings.OllamaBaseURL, settings.OllamaModel, timeout), nil

	case ProviderClaude:
		if settings.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY not set (required for provider claude)")
		}
		return NewClaude(settings.AnthropicAPIKey, settings.AnthropicModel, timeout), nil

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s (supported: ollama, claude)", settings.Provider)
	}
}

// NewQueryLLM creates a client with the short timeout used for SQL and
// quality-check generation.
func NewQueryLLM(settings config.Settings) (LLM, error) {
	return New(settings, settings.QueryTimeout)
}

// NewDebugLLM creates a client with the extended timeout used by the
// diagnosis pipeline.
func NewDebugLLM(settings config.Settings) (LLM, error) {
	return New(settings, settings.DebugTimeout)
}
