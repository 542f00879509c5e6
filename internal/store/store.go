// Package store persists keymap profiles
package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/hawkins/vecbind/internal/codec"
	"github.com/hawkins/vecbind/internal/config"
	"github.com/hawkins/vecbind/internal/keymap"
	"github.com/hawkins/vecbind/internal/logging"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidProfile  = errors.New("invalid profile name")
)

// Store loads and saves named keymap profiles
type Store interface {
	Load(ctx context.Context, profile string) (*keymap.Keymap, error)
	Save(ctx context.Context, profile string, km *keymap.Keymap) error
	List(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, profile string) error
	Close() error
}

var profileName = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

// ValidateProfile rejects names that cannot be used as a file name or key
func ValidateProfile(name string) error {
	if !profileName.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidProfile, name)
	}
	return nil
}

// Open returns the store selected by cfg.Store
func Open(cfg config.Config) (Store, error) {
	switch cfg.Store {
	case "", "file":
		format, err := codec.ParseFormat(cfg.Format)
		if err != nil {
			return nil, err
		}
		return NewFileStore(cfg.Dir, format), nil
	case "bolt":
		return NewBoltStore(cfg.DBPath)
	case "redis":
		rdb, err := NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, err
		}
		return NewRedisStore(rdb, cfg.Redis.Prefix), nil
	}
	return nil, fmt.Errorf("unknown store %q", cfg.Store)
}

// Resolve loads a profile, falls back to the built-in profile of the same
// name when the store has none, and applies the overrides.
func Resolve(ctx context.Context, s Store, profile string, overrides []keymap.Override) (*keymap.Keymap, error) {
	km, err := s.Load(ctx, profile)
	switch {
	case errors.Is(err, ErrProfileNotFound) && keymap.IsBuiltin(profile):
		logging.Debugf("profile %s not stored, using built-in", profile)
		km, err = keymap.Builtin(profile)
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	}

	if len(overrides) == 0 {
		return km, nil
	}
	logging.Debugf("applying %d overrides to %s", len(overrides), profile)
	return km.Rebind(overrides...)
}
