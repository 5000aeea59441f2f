// Package ai implements the embedding and generative-model providers over
// authenticated HTTP (OpenAI-compatible endpoints, with xAI as the primary
// chat backend when configured).
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/fairyhunter13/internship-recommender/internal/adapter/observability"
	"github.com/fairyhunter13/internship-recommender/internal/config"
	"github.com/fairyhunter13/internship-recommender/internal/domain"
)

const chatTemperature = 0.4

// Client implements domain.AIClient. Missing credentials are a handled
// configuration state: calls fail fast with domain.ErrProviderUnavailable and
// the owning pipeline stage degrades.
type Client struct {
	cfg     config.Config
	chatHC  *http.Client
	embedHC *http.Client
}

// New constructs a provider client with the configured timeouts.
func New(cfg config.Config) *Client {
	return &Client{
		cfg:     cfg,
		chatHC:  &http.Client{Timeout: cfg.ChatTimeout},
		embedHC: &http.Client{Timeout: cfg.EmbedTimeout},
	}
}

// Embed calls the OpenAI-compatible embeddings endpoint and returns one
// vector per input text, in input order.
func (c *Client) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if !c.cfg.EmbeddingsEnabled() {
		return nil, fmt.Errorf("%w: OPENAI_API_KEY or EMBEDDINGS_MODEL missing", domain.ErrProviderUnavailable)
	}
	slog.Debug("calling embeddings endpoint",
		slog.String("provider", "openai"),
		slog.String("model", c.cfg.EmbeddingsModel),
		slog.Int("text_count", len(texts)))

	body, _ := json.Marshal(map[string]any{
		"model": c.cfg.EmbeddingsModel,
		"input": texts,
	})
	start := time.Now()
	r, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.OpenAIBaseURL+"/embeddings", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	r.Header.Set("Authorization", "Bearer "+c.cfg.OpenAIAPIKey)
	r.Header.Set("Content-Type", "application/json")
	resp, err := c.embedHC.Do(r)
	observability.AIRequestsTotal.WithLabelValues("openai", "embed").Inc()
	observability.AIRequestDuration.WithLabelValues("openai", "embed").Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet := readSnippet(resp.Body, 512)
		slog.Warn("embedding provider non-2xx",
			slog.String("provider", "openai"),
			slog.Int("status", resp.StatusCode),
			slog.String("body", snippet))
		return nil, fmt.Errorf("embed status %d", resp.StatusCode)
	}
	var out struct {
		Data []struct {
			Embedding []float64 `json:"embedding"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("embed decode: %w", err)
	}
	if len(out.Data) == 0 {
		return nil, errors.New("empty embedding data")
	}
	vecs := make([][]float32, len(out.Data))
	for i := range out.Data {
		v := make([]float32, len(out.Data[i].Embedding))
		for j := range out.Data[i].Embedding {
			v[j] = float32(out.Data[i].Embedding[j])
		}
		vecs[i] = v
	}
	return vecs, nil
}

// chatProvider is one named strategy for the chat completion call.
type chatProvider struct {
	name    string
	baseURL string
	apiKey  string
	model   string
}

// chatProviders lists the configured backends in precedence order:
// xAI first, then OpenAI.
func (c *Client) chatProviders() []chatProvider {
	var ps []chatProvider
	if c.cfg.XAIAPIKey != "" {
		ps = append(ps, chatProvider{name: "xai", baseURL: c.cfg.XAIBaseURL, apiKey: c.cfg.XAIAPIKey, model: c.cfg.XAIModel})
	}
	if c.cfg.OpenAIAPIKey != "" {
		ps = append(ps, chatProvider{name: "openai", baseURL: c.cfg.OpenAIBaseURL, apiKey: c.cfg.OpenAIAPIKey, model: c.cfg.ChatModel})
	}
	return ps
}

// ChatJSON issues one chat completion, trying each configured provider in
// order; the first success short-circuits. With no provider configured it
// fails immediately with domain.ErrProviderUnavailable.
func (c *Client) ChatJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	providers := c.chatProviders()
	if len(providers) == 0 {
		return "", fmt.Errorf("%w: no generative-model provider configured", domain.ErrProviderUnavailable)
	}
	slog.Debug("chat prompt prepared",
		slog.Int("prompt_tokens_estimate", estimateTokens(systemPrompt)+estimateTokens(userPrompt)))

	var lastErr error
	for _, p := range providers {
		content, err := c.callChat(ctx, p, systemPrompt, userPrompt)
		if err == nil {
			return content, nil
		}
		slog.Warn("chat provider failed",
			slog.String("provider", p.name),
			slog.String("model", p.model),
			slog.Any("error", err))
		lastErr = err
	}
	return "", fmt.Errorf("all chat providers failed: %w", lastErr)
}

func (c *Client) callChat(ctx context.Context, p chatProvider, systemPrompt, userPrompt string) (string, error) {
	body, _ := json.Marshal(map[string]any{
		"model":       p.model,
		"temperature": chatTemperature,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": userPrompt},
		},
	})
	start := time.Now()
	r, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	r.Header.Set("Authorization", "Bearer "+p.apiKey)
	r.Header.Set("Content-Type", "application/json")
	resp, err := c.chatHC.Do(r)
	observability.AIRequestsTotal.WithLabelValues(p.name, "chat").Inc()
	observability.AIRequestDuration.WithLabelValues(p.name, "chat").Observe(time.Since(start).Seconds())
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet := readSnippet(resp.Body, 512)
		slog.Warn("chat provider non-2xx",
			slog.String("provider", p.name),
			slog.Int("status", resp.StatusCode),
			slog.String("body", snippet))
		return "", fmt.Errorf("chat status %d", resp.StatusCode)
	}
	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("chat decode: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", errors.New("empty choices from chat provider")
	}
	return out.Choices[0].Message.Content, nil
}

func readSnippet(r io.Reader, n int) string {
	b, _ := io.ReadAll(io.LimitReader(r, int64(n)))
	return string(b)
}
