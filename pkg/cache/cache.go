// Package cache stores rendered chart artifacts so repeated renders of an
// unchanged chart skip Graphviz.
//
// # Backends
//
//   - [FileCache]: hash-sharded JSON files under a directory, for the CLI
//   - [RedisCache]: a shared Redis instance, for servers
//   - [NewNullCache]: stores nothing, for --no-cache and tests
//
// [Open] builds one of these from a [Config]. [Observe] wraps any backend so
// hits, misses, and writes are reported to the cache hooks in
// [github.com/matzehuels/orgchart/pkg/observability].
//
// # Keys
//
// Keys are built with [ArtifactKey] from the hash of the chart document and
// the render options, so any change to the tree produces a new key and stale
// entries simply expire.
package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. The boolean is false on a miss,
	// including for expired entries.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// NewNullCache returns a cache that stores nothing. Every Get is a miss.
func NewNullCache() Cache { return nullCache{} }

type nullCache struct{}

func (nullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (nullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (nullCache) Delete(context.Context, string) error { return nil }

func (nullCache) Close() error { return nil }

// Clearer is implemented by caches that can drop every entry at once.
type Clearer interface {
	Clear(ctx context.Context) error
}

// Clear removes all entries from c if its backend supports it.
func Clear(ctx context.Context, c Cache) error {
	if o, ok := c.(*observed); ok {
		c = o.inner
	}
	cl, ok := c.(Clearer)
	if !ok {
		return fmt.Errorf("cache backend %T cannot be cleared", c)
	}
	return cl.Clear(ctx)
}

// Backend names accepted by [Open].
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config selects and configures a cache backend.
type Config struct {
	Backend string        `toml:"backend"`
	Dir     string        `toml:"dir"`
	TTL     Duration      `toml:"ttl"`
	Redis   RedisSettings `toml:"redis"`
}

// RedisSettings holds connection settings for [BackendRedis].
type RedisSettings struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

// Duration is a time.Duration that decodes from strings like "24h".
type Duration struct{ time.Duration }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Open creates the backend named by cfg.Backend, wrapped with [Observe].
// An empty backend selects [BackendFile].
func Open(ctx context.Context, cfg Config) (Cache, error) {
	var (
		c   Cache
		err error
	)
	switch cfg.Backend {
	case "", BackendFile:
		if cfg.Dir == "" {
			return nil, fmt.Errorf("file cache: no directory configured")
		}
		c, err = NewFileCache(cfg.Dir)
	case BackendRedis:
		c, err = NewRedisCache(ctx, cfg.Redis)
	case BackendNone:
		c = NewNullCache()
	default:
		return nil, fmt.Errorf("unknown cache backend %q (want %s, %s or %s)", cfg.Backend, BackendFile, BackendRedis, BackendNone)
	}
	if err != nil {
		return nil, err
	}
	return Observe(c), nil
}
