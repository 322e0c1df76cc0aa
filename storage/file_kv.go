package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
)

// FileKV keeps every key in one JSON document, rewritten atomically on each
// mutation. A document that does not decode to an object is treated as empty.
type FileKV struct {
	filePath string
	mu       sync.RWMutex
	entries  map[string]string
}

func NewFileKV(filePath string) (*FileKV, error) {
	s := &FileKV{
		filePath: filePath,
		entries:  make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileKV) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.entries[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (s *FileKV) Set(_ context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	return s.persistLocked()
}

func (s *FileKV) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[key]; !ok {
		return nil
	}
	delete(s.entries, key)
	return s.persistLocked()
}

func (s *FileKV) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(data) == 0 {
		return nil
	}
	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Warn().Err(err).Str("path", s.filePath).Msg("unreadable kv document, starting empty")
		return nil
	}
	if entries != nil {
		s.entries = entries
	}
	return nil
}

func (s *FileKV) persistLocked() error {
	if err := os.MkdirAll(filepath.Dir(s.filePath), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return err
	}
	tmpPath := s.filePath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpPath, s.filePath)
}
