package categorize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/pennywise-app/pennywise/internal/common"
	"github.com/pennywise-app/pennywise/internal/model"
	"github.com/pennywise-app/pennywise/internal/service"
)

// Config holds configuration for the remote classifier.
type Config struct {
	Endpoint string
	APIToken string
	Timeout  time.Duration
}

// ZeroShot classifies descriptions through a hosted zero-shot
// text-classification model, using the ten category display names as
// candidate labels. Any failure falls back to the keyword table, so
// Classify never fails from the caller's point of view.
type ZeroShot struct {
	client   *http.Client
	logger   *slog.Logger
	endpoint string
	apiToken string
}

// NewZeroShot creates a remote classifier for the given endpoint.
func NewZeroShot(cfg Config, logger *slog.Logger) (*ZeroShot, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("%w: classifier endpoint", common.ErrMissingConfig)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ZeroShot{
		client:   &http.Client{Timeout: cfg.Timeout},
		logger:   logger,
		endpoint: cfg.Endpoint,
		apiToken: cfg.APIToken,
	}, nil
}

// New selects the classifier variant from configuration presence: the
// remote zero-shot classifier when an endpoint is configured, the
// keyword table otherwise. The engine is fully functional with only
// the local variant.
func New(cfg Config, logger *slog.Logger) service.TextClassifier {
	if cfg.Endpoint == "" {
		return NewKeyword()
	}
	zs, err := NewZeroShot(cfg, logger)
	if err != nil {
		return NewKeyword()
	}
	return zs
}

type zeroShotRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters zeroShotParameters `json:"parameters"`
}

type zeroShotParameters struct {
	CandidateLabels []string `json:"candidate_labels"`
}

type zeroShotResponse struct {
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`
}

// Classify implements service.TextClassifier.
func (z *ZeroShot) Classify(ctx context.Context, description string) model.Category {
	category, err := z.classifyRemote(ctx, description)
	if err != nil {
		z.logger.Debug("remote classification failed, using keyword fallback",
			"error", err)
		return Local(description)
	}
	return category
}

func (z *ZeroShot) classifyRemote(ctx context.Context, description string) (model.Category, error) {
	labels := make([]string, 0, len(model.Categories()))
	byLabel := make(map[string]model.Category, len(model.Categories()))
	for _, c := range model.Categories() {
		labels = append(labels, c.DisplayName())
		byLabel[c.DisplayName()] = c
	}

	body, err := json.Marshal(zeroShotRequest{
		Inputs:     description,
		Parameters: zeroShotParameters{CandidateLabels: labels},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	var result zeroShotResponse
	err = common.WithRetry(ctx, func() error {
		req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, z.endpoint, bytes.NewReader(body))
		if reqErr != nil {
			return &common.RetryableError{Err: reqErr, Retryable: false}
		}
		req.Header.Set("Content-Type", "application/json")
		if z.apiToken != "" {
			req.Header.Set("Authorization", "Bearer "+z.apiToken)
		}

		resp, doErr := z.client.Do(req)
		if doErr != nil {
			return doErr
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode != http.StatusOK {
			payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return fmt.Errorf("classifier returned %d: %s", resp.StatusCode, payload)
		}

		return json.NewDecoder(resp.Body).Decode(&result)
	}, service.RetryOptions{MaxAttempts: 2, InitialDelay: 200 * time.Millisecond})
	if err != nil {
		return "", err
	}

	if len(result.Labels) == 0 {
		return "", fmt.Errorf("classifier returned no labels")
	}

	category, ok := byLabel[result.Labels[0]]
	if !ok {
		return "", fmt.Errorf("classifier returned unknown label %q", result.Labels[0])
	}
	return category, nil
}
