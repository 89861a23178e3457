package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/mosaicterm/mosaic/internal/errors"
	"github.com/mosaicterm/mosaic/internal/workspace"
)

// LayoutStore persists the workspace layout and focus history as JSON files
// next to the config. It satisfies the workspace store contract.
type LayoutStore struct {
	mu  sync.Mutex
	dir string
}

// NewLayoutStore returns a store rooted at the config directory.
func NewLayoutStore() (*LayoutStore, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return NewLayoutStoreAt(dir), nil
}

// NewLayoutStoreAt returns a store rooted at an explicit directory.
func NewLayoutStoreAt(dir string) *LayoutStore {
	return &LayoutStore{dir: dir}
}

func (s *LayoutStore) layoutPath() string  { return filepath.Join(s.dir, "layout.json") }
func (s *LayoutStore) historyPath() string { return filepath.Join(s.dir, "history.json") }

// SaveLayout writes the persisted layout.
func (s *LayoutStore) SaveLayout(p workspace.PersistedLayout) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return errors.LayoutSaveFailed(s.layoutPath(), err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return errors.LayoutSaveFailed(s.layoutPath(), err)
	}
	if err := os.WriteFile(s.layoutPath(), data, 0644); err != nil {
		return errors.LayoutSaveFailed(s.layoutPath(), err)
	}
	return nil
}

// LoadLayout reads the persisted layout. The second return is false when no
// layout has been saved yet.
func (s *LayoutStore) LoadLayout() (workspace.PersistedLayout, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.layoutPath())
	if os.IsNotExist(err) {
		return workspace.PersistedLayout{}, false, nil
	}
	if err != nil {
		return workspace.PersistedLayout{}, false, errors.LayoutLoadFailed(s.layoutPath(), err)
	}
	var p workspace.PersistedLayout
	if err := json.Unmarshal(data, &p); err != nil {
		return workspace.PersistedLayout{}, false, errors.LayoutLoadFailed(s.layoutPath(), err)
	}
	return p, true, nil
}

// SaveHistory writes the focus history.
func (s *LayoutStore) SaveHistory(ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return errors.LayoutSaveFailed(s.historyPath(), err)
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return errors.LayoutSaveFailed(s.historyPath(), err)
	}
	if err := os.WriteFile(s.historyPath(), data, 0644); err != nil {
		return errors.LayoutSaveFailed(s.historyPath(), err)
	}
	return nil
}

// LoadHistory reads the focus history. A missing file is an empty history.
func (s *LayoutStore) LoadHistory() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.historyPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.LayoutLoadFailed(s.historyPath(), err)
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, errors.LayoutLoadFailed(s.historyPath(), err)
	}
	return ids, nil
}

// Reset deletes the stored layout and history.
func (s *LayoutStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range []string{s.layoutPath(), s.historyPath()} {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}
