package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
)

func newMiniRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	return mr
}

func TestRedisCache(t *testing.T) {
	mr := newMiniRedis(t)
	ctx := context.Background()

	c, err := NewRedisCache(ctx, RedisSettings{Addr: mr.Addr()})
	if err != nil {
		t.Fatalf("NewRedisCache: %v", err)
	}
	defer c.Close()

	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("empty cache: hit=%v err=%v, want miss", hit, err)
	}
	if err := c.Set(ctx, "k", []byte("svg"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if !mr.Exists(DefaultRedisPrefix + "k") {
		t.Errorf("key should be stored under the %q prefix", DefaultRedisPrefix)
	}
	data, hit, err := c.Get(ctx, "k")
	if err != nil || !hit || string(data) != "svg" {
		t.Errorf("Get() = %q, %v, %v; want svg, true, nil", data, hit, err)
	}

	mr.FastForward(2 * time.Minute)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired key should miss")
	}

	_ = c.Set(ctx, "k", []byte("v"), 0)
	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("deleted key should miss")
	}
}

func TestRedisCacheClear(t *testing.T) {
	mr := newMiniRedis(t)
	ctx := context.Background()

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	c := NewRedisCacheFromClient(client, "test:")
	defer c.Close()

	_ = mr.Set("other:keep", "x")
	for _, k := range []string{"a", "b"} {
		_ = c.Set(ctx, k, []byte(k), 0)
	}
	if err := Clear(ctx, Observe(c)); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if mr.Exists("test:a") || mr.Exists("test:b") {
		t.Error("Clear should delete prefixed keys")
	}
	if !mr.Exists("other:keep") {
		t.Error("Clear should not touch keys outside the prefix")
	}
}

func TestRedisCacheUnavailable(t *testing.T) {
	defer func(d time.Duration) { pingBackoff = d }(pingBackoff)
	pingBackoff = time.Millisecond

	mr := newMiniRedis(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisCache(context.Background(), RedisSettings{Addr: addr})
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("NewRedisCache() error = %v, want ErrUnavailable", err)
	}
}

func TestOpenRedis(t *testing.T) {
	mr := newMiniRedis(t)
	c, err := Open(context.Background(), Config{
		Backend: BackendRedis,
		Redis:   RedisSettings{Addr: mr.Addr(), Prefix: "oc:"},
	})
	if err != nil {
		t.Fatalf("Open(redis): %v", err)
	}
	defer c.Close()

	_ = c.Set(context.Background(), "k", []byte("v"), 0)
	if !mr.Exists("oc:k") {
		t.Error("Open should honor the configured prefix")
	}
}
