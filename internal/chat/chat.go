// Package chat answers free-form budgeting questions through a
// pluggable text-completion service. A network-backed completer is
// selected when an API key is configured; otherwise, and on any remote
// failure, a local rule-based responder answers. The engine never
// depends on the remote variant being available.
package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pennywise-app/pennywise/internal/model"
	"github.com/pennywise-app/pennywise/internal/service"
)

// Config holds configuration for the remote completer.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// New selects the completer variant from configuration presence.
func New(cfg Config, logger *slog.Logger) service.ChatCompleter {
	if cfg.APIKey == "" {
		return NewOffline()
	}
	return newRemote(cfg, logger)
}

// Offline is the always-available responder: keyword-matched canned
// guidance, no network.
type Offline struct{}

// NewOffline creates the local responder.
func NewOffline() *Offline {
	return &Offline{}
}

// Complete implements service.ChatCompleter.
func (o *Offline) Complete(_ context.Context, prompt string) string {
	lower := strings.ToLower(prompt)

	switch {
	case strings.Contains(lower, "save") || strings.Contains(lower, "saving"):
		return "A solid starting point is saving 20% of your income. Automate a transfer on payday and treat the rest as your spending budget."
	case strings.Contains(lower, "budget"):
		return "Set limits for your top spending categories first. Check how you're tracking mid-month so there's still time to adjust."
	case strings.Contains(lower, "debt"):
		return "List your debts by interest rate and pay the most expensive one down first while making minimums on the rest."
	case strings.Contains(lower, "subscription"):
		return "Go through your " + model.CategorySubscriptions.DisplayName() + " expenses and cancel anything you haven't used in the last month."
	case strings.Contains(lower, "goal"):
		return "Break big savings goals into monthly amounts with a deadline. Small, regular contributions beat occasional big ones."
	default:
		return "I can help with saving, budgeting, debt, subscriptions, and savings goals. Ask me about any of those, or check your monthly report for specifics."
	}
}

type remote struct {
	httpClient *http.Client
	fallback   *Offline
	logger     *slog.Logger
	apiKey     string
	baseURL    string
	model      string
}

func newRemote(cfg Config, logger *slog.Logger) *remote {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &remote{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		fallback:   NewOffline(),
		logger:     logger,
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
	}
}

const systemPrompt = "You are a concise personal-finance assistant for a budgeting app. " +
	"Give practical, non-judgmental advice in a few sentences. Never recommend specific financial products."

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete implements service.ChatCompleter. Remote failures degrade to
// the offline responder; the caller never sees an error.
func (r *remote) Complete(ctx context.Context, prompt string) string {
	answer, err := r.complete(ctx, prompt)
	if err != nil {
		r.logger.Debug("remote completion failed, using offline responder", "error", err)
		return r.fallback.Complete(ctx, prompt)
	}
	return answer
}

func (r *remote) complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(map[string]any{
		"model": r.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": prompt},
		},
		"temperature": 0.3,
		"max_tokens":  300,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/chat/completions", strings.NewReader(string(body)))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.apiKey)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion API returned %d", resp.StatusCode)
	}

	var result completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("completion API returned no choices")
	}
	return result.Choices[0].Message.Content, nil
}
