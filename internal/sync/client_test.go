package sync

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-app/pennywise/internal/model"
)

func TestPushWithoutUser(t *testing.T) {
	// No network call happens; a structured failure comes back.
	c := NewClient("http://localhost:1", "", nil)
	result := c.Push(context.Background(), Payload{})
	assert.False(t, result.Success)
	assert.Equal(t, "sign in to enable sync", result.Error)
}

func TestPushWithoutEndpoint(t *testing.T) {
	c := NewClient("", "user-1", nil)
	result := c.Push(context.Background(), Payload{})
	assert.False(t, result.Success)
	assert.Equal(t, "no sync endpoint configured", result.Error)
}

func TestPush(t *testing.T) {
	var received Payload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/sync", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer server.Close()

	c := NewClient(server.URL, "user-1", nil)
	result := c.Push(context.Background(), Payload{
		Expenses: []model.Expense{{ID: "e1", Amount: 10, Description: "lunch", Category: model.CategoryFood}},
		Incomes:  []model.Income{{ID: "i1", Amount: 1000, Source: "salary"}},
	})

	assert.True(t, result.Success)
	assert.Empty(t, result.Error)
	assert.Equal(t, "user-1", received.UserID, "client stamps the user id")
	require.Len(t, received.Expenses, 1)
	require.Len(t, received.Incomes, 1)
}

func TestPushServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClient(server.URL, "user-1", nil)
	result := c.Push(context.Background(), Payload{})
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "500")
}

func TestPushApplicationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "quota exceeded"})
	}))
	defer server.Close()

	c := NewClient(server.URL, "user-1", nil)
	result := c.Push(context.Background(), Payload{})
	assert.False(t, result.Success)
	assert.Equal(t, "quota exceeded", result.Error)
}

func TestPull(t *testing.T) {
	deadline := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "user-1", r.URL.Query().Get("userId"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": Payload{
				UserID:   "user-1",
				Expenses: []model.Expense{{ID: "e1", Amount: 42, Description: "remote", Category: model.CategoryTravel}},
				Goals:    []model.SavingsGoal{{ID: "g1", Name: "Trip", TargetAmount: 500, Deadline: &deadline}},
				Profile:  &model.UserProfile{ID: "p1", Name: "Sam", Currency: "USD"},
			},
		})
	}))
	defer server.Close()

	c := NewClient(server.URL, "user-1", nil)
	payload, result := c.Pull(context.Background())

	require.True(t, result.Success)
	require.NotNil(t, payload)
	require.Len(t, payload.Expenses, 1)
	assert.Equal(t, "e1", payload.Expenses[0].ID)
	require.Len(t, payload.Goals, 1)
	require.NotNil(t, payload.Goals[0].Deadline)
	require.NotNil(t, payload.Profile)
	assert.Equal(t, "Sam", payload.Profile.Name)
}

func TestPullWithoutUser(t *testing.T) {
	c := NewClient("http://localhost:1", "", nil)
	payload, result := c.Pull(context.Background())
	assert.Nil(t, payload)
	assert.False(t, result.Success)
}

func TestPullNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "no snapshot for user", http.StatusNotFound)
	}))
	defer server.Close()

	c := NewClient(server.URL, "user-1", nil)
	payload, result := c.Pull(context.Background())
	assert.Nil(t, payload)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "404")
}
