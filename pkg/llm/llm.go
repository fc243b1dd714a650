package llm

import "fmt"

// LLM is the minimal interface every provider implements: one blocking
// generation round-trip per prompt.
type LLM interface {
	Chat(prompt string) (string, error)
}

// GenerationError wraps any failure of a generation call: transport errors,
// non-success statuses, and malformed payloads. Callers check for it with
// errors.As and convert it into a structured failure result at their own
// boundary.
type GenerationError struct {
	Provider string
	Cause    error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Provider, e.Cause)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

func generationErr(provider, format string, args ...interface{}) error {
	return &GenerationError{Provider: provider, Cause: fmt.Errorf(format, args...)}
}
