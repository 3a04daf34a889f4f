package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/giftly/giftcart/internal/domain"
)

// Store persists the anonymous cart as a single JSON array of cart lines
// under a fixed device key, mirroring a browser's local storage blob.
// Writes go through a temp file and rename so a crash never leaves a
// half-written cart.
type Store struct {
	dir string
	key string

	mu sync.Mutex
}

func New(dir, deviceKey string) (*Store, error) {
	if deviceKey == "" {
		deviceKey = "guest"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cart dir: %w", err)
	}
	return &Store{dir: dir, key: deviceKey}, nil
}

func (s *Store) path() string {
	return filepath.Join(s.dir, s.key+".json")
}

// Load reads the persisted cart. A missing or unreadable blob yields an
// empty cart, never an error the caller must handle as fatal.
func (s *Store) Load() ([]domain.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read cart blob: %w", err)
	}

	var items []domain.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse cart blob: %w", err)
	}
	return items, nil
}

func (s *Store) Save(items []domain.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if items == nil {
		items = []domain.CartItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart blob: %w", err)
	}

	tmp := s.path() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write cart blob: %w", err)
	}
	if err := os.Rename(tmp, s.path()); err != nil {
		return fmt.Errorf("replace cart blob: %w", err)
	}
	return nil
}

func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove cart blob: %w", err)
	}
	return nil
}

// PurgeStale removes cart blobs not touched for olderThan and returns how
// many were deleted. Abandoned guest carts accumulate otherwise.
func (s *Store) PurgeStale(ctx context.Context, olderThan time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("read cart dir: %w", err)
	}

	cutoff := time.Now().Add(-olderThan)
	purged := 0
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return purged, err
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			return purged, fmt.Errorf("remove stale blob %s: %w", entry.Name(), err)
		}
		purged++
	}
	return purged, nil
}
