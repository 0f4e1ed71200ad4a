// Package sync pushes and pulls the record collections to and from a
// remote store, best effort. A single attempt per user action, no
// retry, no merge: a pull replaces local collections wholesale.
package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/pennywise-app/pennywise/internal/model"
	"github.com/pennywise-app/pennywise/internal/service"
)

// Payload is the wire shape shared by push and pull. Insights never
// sync; they are regenerated locally from the records.
type Payload struct {
	Profile  *model.UserProfile  `json:"profile"`
	UserID   string              `json:"userId"`
	Expenses []model.Expense     `json:"expenses"`
	Incomes  []model.Income      `json:"incomes"`
	Budgets  []model.Budget      `json:"budgets"`
	Goals    []model.SavingsGoal `json:"goals"`
}

type pushResponse struct {
	Error   string `json:"error,omitempty"`
	Success bool   `json:"success"`
}

type pullResponse struct {
	Data Payload `json:"data"`
}

// Client talks to the sync endpoint for one user.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	baseURL    string
	userID     string
}

// NewClient creates a sync client. An empty userID is allowed; sync
// calls will then report a structured failure without going remote.
func NewClient(baseURL, userID string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
		baseURL:    baseURL,
		userID:     userID,
	}
}

// Push serializes the collections to the remote store. Remote and
// precondition failures are reported in the result, never as a panic or
// error into the caller's event path.
func (c *Client) Push(ctx context.Context, payload Payload) service.SyncResult {
	if c.userID == "" {
		return service.SyncResult{Success: false, Error: "sign in to enable sync"}
	}
	if c.baseURL == "" {
		return service.SyncResult{Success: false, Error: "no sync endpoint configured"}
	}

	payload.UserID = c.userID
	body, err := json.Marshal(payload)
	if err != nil {
		return service.SyncResult{Success: false, Error: fmt.Sprintf("failed to encode data: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/sync", bytes.NewReader(body))
	if err != nil {
		return service.SyncResult{Success: false, Error: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return service.SyncResult{Success: false, Error: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return service.SyncResult{Success: false, Error: fmt.Sprintf("sync server returned %d: %s", resp.StatusCode, msg)}
	}

	var result pushResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return service.SyncResult{Success: false, Error: fmt.Sprintf("bad sync response: %v", err)}
	}
	if !result.Success {
		return service.SyncResult{Success: false, Error: result.Error}
	}

	c.logger.Info("pushed records to cloud", "user", c.userID)
	return service.SyncResult{Success: true}
}

// Pull fetches the remote snapshot. On success the returned payload is
// meant to replace the local collections wholesale; local edits made
// since the last push do not survive a pull.
func (c *Client) Pull(ctx context.Context) (*Payload, service.SyncResult) {
	if c.userID == "" {
		return nil, service.SyncResult{Success: false, Error: "sign in to enable sync"}
	}
	if c.baseURL == "" {
		return nil, service.SyncResult{Success: false, Error: "no sync endpoint configured"}
	}

	endpoint := c.baseURL + "/sync?userId=" + url.QueryEscape(c.userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, service.SyncResult{Success: false, Error: err.Error()}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, service.SyncResult{Success: false, Error: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, service.SyncResult{Success: false, Error: fmt.Sprintf("sync server returned %d: %s", resp.StatusCode, msg)}
	}

	var result pullResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, service.SyncResult{Success: false, Error: fmt.Sprintf("bad sync response: %v", err)}
	}

	c.logger.Info("pulled records from cloud", "user", c.userID)
	return &result.Data, service.SyncResult{Success: true}
}
