package store

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/go-redis/redis/v8"
	"github.com/hawkins/vecbind/internal/config"
	"github.com/hawkins/vecbind/internal/constant"
	"github.com/hawkins/vecbind/internal/keymap"
	"github.com/hawkins/vecbind/internal/util"
)

// NewRedisClient connects to standalone, sentinel or cluster redis
func NewRedisClient(cfg config.Redis) (redis.UniversalClient, error) {
	rdb := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:        cfg.Addrs,
		DB:           cfg.DB,
		Username:     cfg.Username,
		Password:     cfg.Password,
		MaxRetries:   constant.MaxRetries,
		MaxRedirects: constant.MaxRedirects,
		MasterName:   cfg.MasterName,
	})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("connect to redis failed: %w", err)
	}
	return rdb, nil
}

// RedisStore shares profiles through redis. Each profile is a JSON document
// under {<prefix>}:profile:<name>; {<prefix>}:profiles is the set of names.
// The hash tag keeps every key in one cluster slot so MULTI works on clusters.
type RedisStore struct {
	rdb    redis.UniversalClient
	prefix string
}

// NewRedisStore wraps a connected client
func NewRedisStore(rdb redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = constant.DefaultKeyPrefix
	}
	return &RedisStore{rdb: rdb, prefix: "{" + prefix + "}"}
}

func (s *RedisStore) profileKey(profile string) string {
	return s.prefix + ":profile:" + profile
}

func (s *RedisStore) indexKey() string {
	return s.prefix + ":profiles"
}

// Load fetches and validates a profile
func (s *RedisStore) Load(ctx context.Context, profile string) (*keymap.Keymap, error) {
	if err := ValidateProfile(profile); err != nil {
		return nil, err
	}
	data, err := s.rdb.Get(ctx, s.profileKey(profile)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, profile)
		}
		return nil, err
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

// Save stores a profile and indexes its name in one transaction
func (s *RedisStore) Save(ctx context.Context, profile string, km *keymap.Keymap) error {
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
	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.profileKey(profile), data, 0)
		pipe.SAdd(ctx, s.indexKey(), profile)
		return nil
	})
	return err
}

// List returns the indexed profile names, sorted
func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	names, err := s.rdb.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes a profile and its index entry
func (s *RedisStore) Delete(ctx context.Context, profile string) error {
	if err := ValidateProfile(profile); err != nil {
		return err
	}
	var del *redis.IntCmd
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, s.profileKey(profile))
		pipe.SRem(ctx, s.indexKey(), profile)
		return nil
	})
	if err != nil {
		return err
	}
	if del.Val() == 0 {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, profile)
	}
	return nil
}

// Close releases the client
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
