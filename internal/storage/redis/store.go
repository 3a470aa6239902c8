// Package redis provides a Redis-backed best-score record store, so a
// server fleet can share records.
package redis

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// RecordStore is a Redis implementation of core.RecordStore.
type RecordStore struct {
	client *redis.Client
	cfg    Config
}

// Record is one stored best score.
type Record struct {
	Key   string
	Value int
}

// New connects to Redis and verifies the connection.
func New(cfg Config) (*RecordStore, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("redis: parse url: %w", err)
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", opts.Addr, err)
	}

	return &RecordStore{client: client, cfg: cfg}, nil
}

// NewWithClient creates a record store with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *RecordStore {
	return &RecordStore{client: client, cfg: cfg}
}

// Close closes the Redis connection
func (s *RecordStore) Close() error {
	return s.client.Close()
}

var _ core.RecordStore = (*RecordStore)(nil)

// Get returns the record stored under key.
func (s *RecordStore) Get(ctx context.Context, key string) (int, bool, error) {
	v, err := s.client.Get(ctx, s.key(key)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("redis: get %s: %w", key, err)
	}
	return v, true, nil
}

// Set stores value under key with no expiry.
func (s *RecordStore) Set(ctx context.Context, key string, value int) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis: set %s: %w", key, err)
	}
	return nil
}

// Records lists every best-score record under the namespace, ordered by key.
func (s *RecordStore) Records(ctx context.Context) ([]Record, error) {
	var keys []string
	iter := s.client.Scan(ctx, 0, s.key("*:best:*"), 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis: scan records: %w", err)
	}
	if len(keys) == 0 {
		return nil, nil
	}
	sort.Strings(keys)

	vals, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("redis: mget records: %w", err)
	}

	out := make([]Record, 0, len(keys))
	for i, raw := range vals {
		str, ok := raw.(string)
		if !ok {
			continue // deleted between SCAN and MGET
		}
		var v int
		if _, err := fmt.Sscan(str, &v); err != nil {
			return nil, fmt.Errorf("redis: record %s: %w", keys[i], err)
		}
		out = append(out, Record{Key: s.unkey(keys[i]), Value: v})
	}
	return out, nil
}

func (s *RecordStore) key(k string) string {
	if s.cfg.Namespace == "" {
		return k
	}
	return s.cfg.Namespace + ":" + k
}

func (s *RecordStore) unkey(k string) string {
	if s.cfg.Namespace == "" {
		return k
	}
	return strings.TrimPrefix(k, s.cfg.Namespace+":")
}
