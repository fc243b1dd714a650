package llm

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"
)

// Claude talks to the Anthropic messages API. It is the hosted alternative
// to the local Ollama default.
type Claude struct {
	apiKey string
	model  string
	client *http.Client
}

// NewClaude creates an Anthropic client with the given model and timeout.
func NewClaude(apiKey, model string, timeout time.Duration) *Claude {
	if model == "" {
		model = "claude-sonnet-4-20250514"
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Claude{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{Timeout: timeout},
	}
}

// Chat sends one message and returns the first content block's text.
func (c *Claude) Chat(prompt string) (string, error) {
	body := map[string]interface{}{
		"model": c.model,
		"messages": []map[string]string{{
			"role":    "user",
			"content": prompt,
		}},
		"max_tokens":  4000,
		"temperature": 0,
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", generationErr("claude", "marshal request: %v", err)
	}

	req, err := http.NewRequest("POST", "https://api.anthropic.com/v1/messages", bytes.NewReader(jsonBody))
	if err != nil {
		return "", generationErr("claude", "create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", generationErr("claude", "request failed: %v", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", generationErr("claude", "read response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", generationErr("claude", "status %d: %s", resp.StatusCode, string(respBytes))
	}

	// Minimal struct to pull out the content text.
	var claudeResp struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(respBytes, &claudeResp); err != nil {
		return "", generationErr("claude", "decode response: %v", err)
	}
	if claudeResp.Error.Message != "" {
		return "", generationErr("claude", "API error: %s", claudeResp.Error.Message)
	}
	if len(claudeResp.Content) == 0 {
		return "", generationErr("claude", "empty response")
	}
	return claudeResp.Content[0].Text, nil
}

// GetModel returns the model this client generates with.
func (c *Claude) GetModel() string {
	return c.model
}
