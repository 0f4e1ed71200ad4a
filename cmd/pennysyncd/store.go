package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	syncpkg "github.com/pennywise-app/pennywise/internal/sync"
)

var userIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// snapshotStore persists one JSON snapshot per user under dataDir.
// Writes go through a temp file and rename so a crash mid-write never
// corrupts the previous snapshot.
type snapshotStore struct {
	dataDir string
	mu      sync.Mutex
}

func newSnapshotStore(dataDir string) (*snapshotStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &snapshotStore{dataDir: dataDir}, nil
}

func (s *snapshotStore) path(userID string) (string, error) {
	if !userIDPattern.MatchString(userID) {
		return "", fmt.Errorf("invalid user id %q", userID)
	}
	return filepath.Join(s.dataDir, userID+".json"), nil
}

func (s *snapshotStore) Save(userID string, payload syncpkg.Payload) error {
	path, err := s.path(userID)
	if err != nil {
		return err
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

func (s *snapshotStore) Load(userID string) (syncpkg.Payload, bool, error) {
	var payload syncpkg.Payload

	path, err := s.path(userID)
	if err != nil {
		return payload, false, err
	}

	s.mu.Lock()
	data, err := os.ReadFile(path)
	s.mu.Unlock()

	if os.IsNotExist(err) {
		return payload, false, nil
	}
	if err != nil {
		return payload, false, fmt.Errorf("failed to read snapshot: %w", err)
	}

	if err := json.Unmarshal(data, &payload); err != nil {
		return payload, false, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return payload, true, nil
}
