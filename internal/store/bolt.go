package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hawkins/vecbind/internal/keymap"
	"github.com/hawkins/vecbind/internal/util"
	bolt "go.etcd.io/bbolt"
)

var bucketProfiles = []byte("profiles")

// BoltStore keeps every profile in one bbolt database file
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens or creates the database at path
func NewBoltStore(path string) (*BoltStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("profile db path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open profile db %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketProfiles)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &BoltStore{db: db}, nil
}

// Load reads and validates a profile
func (s *BoltStore) Load(ctx context.Context, profile string) (*keymap.Keymap, error) {
	if err := ValidateProfile(profile); err != nil {
		return nil, err
	}
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		// bytes are only valid inside the transaction
		if v := tx.Bucket(bucketProfiles).Get([]byte(profile)); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, profile)
	}

	var doc keymap.Document
	if err := util.JsonUnmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("profile %s: %w", profile, err)
	}
	km, err := keymap.FromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", profile, err)
	}
	return km, nil
}

// Save writes a profile
func (s *BoltStore) Save(ctx context.Context, profile string, km *keymap.Keymap) error {
	if err := ValidateProfile(profile); err != nil {
		return err
	}
	if km == nil {
		return errors.New("keymap is required")
	}
	data, err := util.JsonMarshal(km.Document())
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketProfiles).Put([]byte(profile), data)
	})
}

// List returns the stored profile names, sorted
func (s *BoltStore) List(ctx context.Context) ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketProfiles).ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	return names, err
}

// Delete removes a profile
func (s *BoltStore) Delete(ctx context.Context, profile string) error {
	if err := ValidateProfile(profile); err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketProfiles)
		if b.Get([]byte(profile)) == nil {
			return fmt.Errorf("%w: %s", ErrProfileNotFound, profile)
		}
		return b.Delete([]byte(profile))
	})
}

// Close releases the database file lock
func (s *BoltStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
