package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"lcintel/internal/config"
	"lcintel/internal/domain"
)

// ChatModel implements port.ChatModel using the OpenAI Chat Completions API.
type ChatModel struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewChatModel creates an OpenAI-based chat model from a provider config.
func NewChatModel(cfg *config.ExtractProviderConfig) *ChatModel {
	return newChatModel(cfg, apiURL)
}

// NewChatModelWithEndpoint creates a chat model pointing at a custom API endpoint (for testing).
func NewChatModelWithEndpoint(cfg *config.ExtractProviderConfig, endpoint string) *ChatModel {
	return newChatModel(cfg, endpoint)
}

func newChatModel(cfg *config.ExtractProviderConfig, endpoint string) *ChatModel {
	model := cfg.DefaultModel
	if model == "" {
		model = "gpt-4o"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &ChatModel{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (c *ChatModel) Complete(ctx context.Context, system string, history []domain.ChatMessage) (string, error) {
	messages := make([]map[string]interface{}, 0, len(history)+1)
	if system != "" {
		messages = append(messages, map[string]interface{}{
			"role":    "system",
			"content": system,
		})
	}
	for _, m := range history {
		messages = append(messages, map[string]interface{}{
			"role":    string(m.Role),
			"content": m.Content,
		})
	}

	reqBody := map[string]interface{}{
		"model":                 c.model,
		"max_completion_tokens": 4096,
		"messages":              messages,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling openai API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var parsed openaiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("empty response from API: no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
