package kvstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

// FileStore persists each key as a JSON file inside a single directory.
// Writes go through a temp file plus rename so a crash never leaves a
// half-written collection behind.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	log.Info().Str("dir", dir).Msg("Initialized file store")

	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		log.Error().Err(err).Str("key", key).Str("FileStore", "Get").Msg("failed to read store entry")

		return nil, false, fmt.Errorf("failed to read store entry: %w", err)
	}

	return value, true, nil
}

func (s *FileStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(key)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		log.Error().Err(err).Str("key", key).Str("FileStore", "Set").Msg("failed to write store entry")

		return fmt.Errorf("failed to write store entry: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		log.Error().Err(err).Str("key", key).Str("FileStore", "Set").Msg("failed to commit store entry")

		return fmt.Errorf("failed to commit store entry: %w", err)
	}

	return nil
}

func (s *FileStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		log.Error().Err(err).Str("key", key).Str("FileStore", "Delete").Msg("failed to delete store entry")

		return fmt.Errorf("failed to delete store entry: %w", err)
	}

	return nil
}

func (s *FileStore) path(key string) string {
	name := strings.ReplaceAll(key, ":", "_") + ".json"

	return filepath.Join(s.dir, name)
}
