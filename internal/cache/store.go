package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	userKeyPrefix = "user:%d"
	// SitemapKey holds the rendered sitemap XML document.
	SitemapKey = "sitemap:xml"
)

const (
	// UserTTL bounds staleness of cached user lookups.
	UserTTL = 5 * time.Minute
	// SitemapTTL bounds staleness of the cached sitemap between rebuilds.
	SitemapTTL = 30 * time.Minute
)

// UserKey returns the cache key for a user id.
func UserKey(userID uint) string {
	return fmt.Sprintf(userKeyPrefix, userID)
}

// Store is a thin cache-aside layer over an optional Redis client.
// A nil client degrades every operation to a no-op pass-through.
type Store struct {
	client *redis.Client
}

// NewStore wraps the given Redis client. client may be nil.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Available reports whether a Redis backend is connected.
func (s *Store) Available() bool {
	return s != nil && s.client != nil
}

// GetJSON attempts to get the key from Redis and unmarshal into dest.
// Returns (true, nil) if found and unmarshaled, (false, nil) if not found.
func (s *Store) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if !s.Available() {
		return false, nil
	}
	v, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(v), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON marshals v and sets the key with TTL.
func (s *Store) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	if !s.Available() {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, ttl).Err()
}

// Aside tries Redis first; on miss it calls fetch (which must populate dest)
// and stores the result with ttl. Cache writes are best-effort.
func (s *Store) Aside(ctx context.Context, key string, dest any, ttl time.Duration, fetch func() error) error {
	found, err := s.GetJSON(ctx, key, dest)
	if err != nil {
		return err
	}
	if found {
		return nil
	}

	if err := fetch(); err != nil {
		return err
	}

	_ = s.SetJSON(ctx, key, dest, ttl)
	return nil
}

// SetString stores a raw string value with TTL.
func (s *Store) SetString(ctx context.Context, key, v string, ttl time.Duration) error {
	if !s.Available() {
		return nil
	}
	return s.client.Set(ctx, key, v, ttl).Err()
}

// GetString fetches a raw string value. Returns ("", false, nil) on miss.
func (s *Store) GetString(ctx context.Context, key string) (string, bool, error) {
	if !s.Available() {
		return "", false, nil
	}
	v, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Invalidate removes a key, best-effort.
func (s *Store) Invalidate(ctx context.Context, key string) {
	if s.Available() {
		s.client.Del(ctx, key)
	}
}

// InvalidateUser removes the cached entry for a user id.
func (s *Store) InvalidateUser(ctx context.Context, userID uint) {
	s.Invalidate(ctx, UserKey(userID))
}
