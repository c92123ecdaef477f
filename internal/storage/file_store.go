package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

const sessionsFileName = "sessions.yaml"

// FileStore is a YAML-backed key-value store satisfying session.Store. Keys
// that were never written read as zero values; the file and its directory are
// created on first write. Reads and writes are serialized so the tracker can
// be touched from the ticker goroutine and the UI thread.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewSessionStore opens the session record store under the user config dir.
func NewSessionStore(appName string) (*FileStore, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve user config dir: %w", err)
	}
	return NewFileStore(filepath.Join(configDir, appName, sessionsFileName)), nil
}

// NewFileStore creates a store backed by the given YAML file.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// GetString returns the stored string for key, or "" when absent.
func (store *FileStore) GetString(key string) (string, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	values, err := store.load()
	if err != nil {
		return "", err
	}
	if value, ok := values[key].(string); ok {
		return value, nil
	}
	return "", nil
}

// SetString stores value under key.
func (store *FileStore) SetString(key, value string) error {
	return store.set(key, value)
}

// GetInt returns the stored integer for key, or 0 when absent.
func (store *FileStore) GetInt(key string) (int, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	values, err := store.load()
	if err != nil {
		return 0, err
	}
	switch value := values[key].(type) {
	case int:
		return value, nil
	case int64:
		return int(value), nil
	}
	return 0, nil
}

// SetInt stores value under key.
func (store *FileStore) SetInt(key string, value int) error {
	return store.set(key, value)
}

func (store *FileStore) set(key string, value any) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	values, err := store.load()
	if err != nil {
		return err
	}
	values[key] = value

	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}
	serialized, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("marshal store yaml: %w", err)
	}
	if err := os.WriteFile(store.path, serialized, 0o644); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	return nil
}

func (store *FileStore) load() (map[string]any, error) {
	rawData, err := os.ReadFile(store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	values := map[string]any{}
	if err := yaml.Unmarshal(rawData, &values); err != nil {
		return nil, fmt.Errorf("parse store yaml: %w", err)
	}
	return values, nil
}
