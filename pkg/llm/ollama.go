package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Ollama talks to a local Ollama server via its generate API.
type Ollama struct {
	baseURL string
	model   string
	client  *http.Client
}

// NewOllama creates a client for the given server and model. The timeout
// bounds each whole generation round-trip; there is no retry.
func NewOllama(baseURL, model string, timeout time.Duration) *Ollama {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "llama3.1"
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Ollama{
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

type ollamaGenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type ollamaGenerateResponse struct {
	Response string `json:"response"`
}

// Chat sends one non-streaming generation request and returns the response
// text verbatim. An absent "response" key decodes to an empty string, which
// is a valid success.
func (o *Ollama) Chat(prompt string) (string, error) {
	body, err := json.Marshal(ollamaGenerateRequest{
		Model:  o.model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return "", generationErr("ollama", "marshal request: %v", err)
	}

	resp, err := o.client.Post(o.baseURL+"/api/generate", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", generationErr("ollama", "request failed: %v", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", generationErr("ollama", "read response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", generationErr("ollama", "status %d: %s", resp.StatusCode, string(respBytes))
	}

	var result ollamaGenerateResponse
	if err := json.Unmarshal(respBytes, &result); err != nil {
		return "", generationErr("ollama", "decode response: %v", err)
	}
	return result.Response, nil
}

// Ping checks server reachability via the tags endpoint.
func (o *Ollama) Ping() error {
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(o.baseURL + "/api/tags")
	if err != nil {
		return fmt.Errorf("ollama not reachable at %s: %w", o.baseURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ollama at %s returned status %d", o.baseURL, resp.StatusCode)
	}
	return nil
}

// GetModel returns the model this client generates with.
func (o *Ollama) GetModel() string {
	return o.model
}
