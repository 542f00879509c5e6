package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/hawkins/vecbind/internal/codec"
	"github.com/hawkins/vecbind/internal/keymap"
)

// FileStore keeps one document per profile in a directory
type FileStore struct {
	dir    string
	format codec.Format
	mu     sync.Mutex
}

// NewFileStore returns a store writing documents of the given format to dir
func NewFileStore(dir string, format codec.Format) *FileStore {
	return &FileStore{dir: dir, format: format}
}

func (s *FileStore) path(profile string) string {
	return filepath.Join(s.dir, profile+s.format.Ext())
}

// Load reads and validates a profile
func (s *FileStore) Load(ctx context.Context, profile string) (*keymap.Keymap, error) {
	if err := ValidateProfile(profile); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(profile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, profile)
		}
		return nil, err
	}
	doc, err := codec.Unmarshal(data, s.format)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", profile, err)
	}
	km, err := keymap.FromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", profile, err)
	}
	return km, nil
}

// Save writes a profile atomically
func (s *FileStore) Save(ctx context.Context, profile string, km *keymap.Keymap) error {
	if err := ValidateProfile(profile); err != nil {
		return err
	}
	if km == nil {
		return errors.New("keymap is required")
	}
	data, err := codec.Marshal(km.Document(), s.format)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create profile dir %s: %w", s.dir, err)
	}
	tmp, err := os.CreateTemp(s.dir, "."+profile+"-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path(profile))
}

// List returns the stored profile names, sorted
func (s *FileStore) List(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if name, ok := strings.CutSuffix(e.Name(), s.format.Ext()); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes a profile
func (s *FileStore) Delete(ctx context.Context, profile string) error {
	if err := ValidateProfile(profile); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(profile))
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, profile)
	}
	return err
}

// Close is a no-op
func (s *FileStore) Close() error { return nil }
