// Package storage persists save slots as opaque byte blobs.
// Three backends share one interface: SQLite (pure-Go modernc driver via
// sqlx), LevelDB and an in-memory map.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Backend names accepted by Open.
const (
	BackendSQLite  = "sqlite"
	BackendLevelDB = "leveldb"
	BackendMemory  = "memory"
)

var (
	// ErrNotFound is returned when a slot holds no data.
	ErrNotFound = errors.New("storage: slot not found")
	// ErrUnknownBackend is returned by Open for an unsupported backend name.
	ErrUnknownBackend = errors.New("storage: unknown backend")
)

// SlotInfo describes one stored slot.
type SlotInfo struct {
	Slot      string
	Size      int
	Writes    int64
	UpdatedAt time.Time
}

// Backend stores one blob per slot. Implementations are safe for concurrent use.
type Backend interface {
	Has(slot string) (bool, error)
	Load(slot string) ([]byte, error)
	Save(slot string, data []byte) error
	Delete(slot string) error
	List() ([]SlotInfo, error)
	Close() error
}

// Open creates the named backend. path is ignored by the memory backend.
func Open(backend, path string) (Backend, error) {
	switch backend {
	case BackendSQLite:
		return OpenSQLite(path)
	case BackendLevelDB:
		return OpenLevelDB(path)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// ExpandPath resolves a leading ~ to the home directory.
func ExpandPath(path string) (string, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return path, nil
}

// preparePath expands path and creates its parent directory.
func preparePath(path string) (string, error) {
	path, err := ExpandPath(path)
	if err != nil {
		return "", err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return path, nil
}
