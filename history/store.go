// Package history records completed comparison runs in a JSON file so past
// results can be listed later. The file is guarded by a file lock for
// cross-process safety and an RWMutex for in-process safety. History is a
// convenience of the CLI wrapper: it never influences comparison results.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

// Run is one recorded comparison.
type Run struct {
	ID        string        `json:"id"`
	SourceA   string        `json:"source_a"`
	SourceB   string        `json:"source_b"`
	Length    int           `json:"length"`
	Text      string        `json:"text"`
	Elapsed   time.Duration `json:"elapsed_ns"`
	CreatedAt time.Time     `json:"created_at"`
}

// storeData represents the JSON file structure
type storeData struct {
	Runs     []Run    `json:"runs"`
	Metadata metadata `json:"metadata"`
}

// metadata contains store metadata
type metadata struct {
	Version   string    `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const storeVersion = "1.0"

// Store is a JSON file-backed run log.
type Store struct {
	filePath string
	fileLock *flock.Flock
	mu       sync.RWMutex
}

// New creates a store for the given file path. The file and its parent
// directory are created lazily on the first append.
func New(filePath string) *Store {
	return &Store{
		filePath: filePath,
		fileLock: flock.New(filePath + ".lock"),
	}
}

// List returns all recorded runs, oldest first. A store whose file does not
// exist yet is empty, not an error.
func (s *Store) List() ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	unlock, err := s.acquireFileLock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}
	return data.Runs, nil
}

// Append records a run. A run without an ID is assigned a fresh UUID.
func (s *Store) Append(run Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.acquireFileLock()
	if err != nil {
		return err
	}
	defer unlock()

	data, err := s.load()
	if err != nil {
		return err
	}

	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	now := time.Now().UTC()
	if data.Metadata.Version == "" {
		data.Metadata.Version = storeVersion
		data.Metadata.CreatedAt = now
	}
	data.Metadata.UpdatedAt = now
	data.Runs = append(data.Runs, run)

	return s.save(data)
}

// acquireFileLock takes the cross-process lock with a bounded wait.
func (s *Store) acquireFileLock() (func(), error) {
	if err := os.MkdirAll(filepath.Dir(s.filePath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	locked, err := s.fileLock.TryLockContext(ctx, 100*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire history lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("could not acquire history lock")
	}
	return func() { _ = s.fileLock.Unlock() }, nil
}

// load reads the store file. Missing or empty files yield an empty store.
func (s *Store) load() (*storeData, error) {
	raw, err := os.ReadFile(s.filePath)
	if os.IsNotExist(err) {
		return &storeData{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}
	if len(raw) == 0 {
		return &storeData{}, nil
	}

	var data storeData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse history file: %w", err)
	}
	return &data, nil
}

func (s *Store) save(data *storeData) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	if err := os.WriteFile(s.filePath, raw, 0644); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}
	return nil
}
