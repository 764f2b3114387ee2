package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"vibestudio/internal/middleware"

	"github.com/redis/go-redis/v9"
)

const (
	// FeedVersionKey is bumped on every mutation that can change a listing.
	FeedVersionKey   = "feed:version"
	feedKeyFormat    = "feed:v%d:user:%d"
	exploreKeyFormat = "explore:v%d"
)

// FeedKey is the cache key of viewerID's feed at the given version.
func FeedKey(version int64, viewerID uint) string {
	return fmt.Sprintf(feedKeyFormat, version, viewerID)
}

// ExploreKey is the cache key of the explore grid at the given version.
func ExploreKey(version int64) string {
	return fmt.Sprintf(exploreKeyFormat, version)
}

// Store is a best-effort JSON cache. A Store with a nil client caches nothing.
type Store struct {
	rdb *redis.Client
}

// NewStore wraps rdb, which may be nil.
func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// Enabled reports whether a Redis client is attached.
func (s *Store) Enabled() bool {
	return s != nil && s.rdb != nil
}

// GetJSON attempts to get the key from Redis and unmarshal into dest.
// Returns (true, nil) if found and unmarshaled, (false, nil) if not found.
func (s *Store) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if !s.Enabled() {
		return false, nil
	}
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON marshals v and sets the key with TTL.
func (s *Store) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	if !s.Enabled() {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key, b, ttl).Err()
}

// Version returns the current listing version. A missing key is version 0.
func (s *Store) Version(ctx context.Context) (int64, error) {
	if !s.Enabled() {
		return 0, nil
	}
	v, err := s.rdb.Get(ctx, FeedVersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

// InvalidateFeeds bumps the listing version so every cached feed and explore page goes stale.
// Failures are logged; stale entries expire with their TTL.
func (s *Store) InvalidateFeeds(ctx context.Context) {
	if !s.Enabled() {
		return
	}
	if err := s.rdb.Incr(ctx, FeedVersionKey).Err(); err != nil {
		middleware.Logger.WarnContext(ctx, "failed to bump feed version", slog.String("error", err.Error()))
	}
}

// Aside tries Redis first and, on a miss, calls fetch which must populate dest,
// then stores dest with ttl. Cache errors never fail the read; fetch errors are returned.
// It reports whether the value came from the cache.
func (s *Store) Aside(ctx context.Context, key string, dest any, ttl time.Duration, fetch func() error) (bool, error) {
	found, err := s.GetJSON(ctx, key, dest)
	if err != nil {
		middleware.Logger.WarnContext(ctx, "cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	if found {
		return true, nil
	}

	if err := fetch(); err != nil {
		return false, err
	}

	if err := s.SetJSON(ctx, key, dest, ttl); err != nil {
		middleware.Logger.WarnContext(ctx, "cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	return false, nil
}
