package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/orgchart/pkg/observability"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	if _, hit, _ = c.Get(ctx, "key"); hit {
		t.Error("NullCache should not store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "nested", "cache"))
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("empty cache should miss")
	}
	if err := c.Set(ctx, "k", []byte("svg"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "k")
	if err != nil || !hit || string(data) != "svg" {
		t.Errorf("Get() = %q, %v, %v; want svg, true, nil", data, hit, err)
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("deleted key should miss")
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(time.Millisecond)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry should miss")
	}
	if _, err := os.Stat(c.path("k")); !os.IsNotExist(err) {
		t.Error("expired entry should be removed from disk")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	path := c.path("k")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("corrupt entry: hit=%v err=%v, want miss without error", hit, err)
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	fc, _ := NewFileCache(t.TempDir())
	c := Observe(fc)

	for _, k := range []string{"a", "b", "c"} {
		_ = c.Set(ctx, k, []byte(k), 0)
	}
	if err := Clear(ctx, c); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	for _, k := range []string{"a", "b", "c"} {
		if _, hit, _ := c.Get(ctx, k); hit {
			t.Errorf("key %q survived Clear", k)
		}
	}
	if _, err := os.Stat(fc.Dir()); err != nil {
		t.Errorf("cache dir should exist after Clear: %v", err)
	}

	if err := Clear(ctx, NewNullCache()); err == nil {
		t.Error("Clear(NullCache) should report that it cannot clear")
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestArtifactKey(t *testing.T) {
	base := ArtifactKey("abc", ArtifactKeyOpts{Format: "svg"})

	if KeyType(base) != "artifact:svg" {
		t.Errorf("KeyType(%q) = %q, want artifact:svg", base, KeyType(base))
	}
	if base == ArtifactKey("abd", ArtifactKeyOpts{Format: "svg"}) {
		t.Error("different chart hashes should produce different keys")
	}
	if base == ArtifactKey("abc", ArtifactKeyOpts{Format: "svg", Detailed: true}) {
		t.Error("different options should produce different keys")
	}
	a := ArtifactKey("abc", ArtifactKeyOpts{Format: "dot", Highlight: []int{3, 12}})
	b := ArtifactKey("abc", ArtifactKeyOpts{Format: "dot", Highlight: []int{12, 3}})
	if a != b {
		t.Error("highlight order should not change the key")
	}
}

func TestKeyType(t *testing.T) {
	tests := []struct {
		key, want string
	}{
		{"artifact:svg:deadbeef", "artifact:svg"},
		{"x:y", "x"},
		{"plain", "other"},
		{":leading", "other"},
	}
	for _, tt := range tests {
		if got := KeyType(tt.key); got != tt.want {
			t.Errorf("KeyType(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

type cacheRecorder struct {
	mu     sync.Mutex
	events []string
}

func (r *cacheRecorder) add(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, s)
}

func (r *cacheRecorder) OnCacheHit(_ context.Context, k string)       { r.add("hit " + k) }
func (r *cacheRecorder) OnCacheMiss(_ context.Context, k string)      { r.add("miss " + k) }
func (r *cacheRecorder) OnCacheSet(_ context.Context, k string, _ int) { r.add("set " + k) }

func TestObserve(t *testing.T) {
	rec := &cacheRecorder{}
	observability.SetCacheHooks(rec)
	defer observability.Reset()

	ctx := context.Background()
	fc, _ := NewFileCache(t.TempDir())
	c := Observe(Observe(fc))

	key := ArtifactKey("abc", ArtifactKeyOpts{Format: "svg"})
	_, _, _ = c.Get(ctx, key)
	_ = c.Set(ctx, key, []byte("<svg/>"), 0)
	_, _, _ = c.Get(ctx, key)

	want := []string{"miss artifact:svg", "set artifact:svg", "hit artifact:svg"}
	if len(rec.events) != len(want) {
		t.Fatalf("events = %v, want %v", rec.events, want)
	}
	for i := range want {
		if rec.events[i] != want[i] {
			t.Errorf("event %d = %q, want %q", i, rec.events[i], want[i])
		}
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	c, err := Open(ctx, Config{Backend: BackendFile, Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("Open(file): %v", err)
	}
	c.Close()

	c, err = Open(ctx, Config{Backend: BackendNone})
	if err != nil {
		t.Fatalf("Open(none): %v", err)
	}
	c.Close()

	if _, err := Open(ctx, Config{Backend: "memcached"}); err == nil {
		t.Error("Open should reject unknown backends")
	}
	if _, err := Open(ctx, Config{}); err == nil {
		t.Error("Open(file) without a directory should fail")
	}
	if _, err := Open(ctx, Config{Backend: BackendRedis}); err == nil {
		t.Error("Open(redis) without an address should fail")
	}
}

func TestDurationUnmarshalText(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("36h")); err != nil {
		t.Fatal(err)
	}
	if d.Duration != 36*time.Hour {
		t.Errorf("Duration = %v, want 36h", d.Duration)
	}
	if err := d.UnmarshalText([]byte("soon")); err == nil {
		t.Error("UnmarshalText should reject invalid durations")
	}
}

func TestRetry(t *testing.T) {
	defer func(d time.Duration) { pingBackoff = d }(pingBackoff)
	pingBackoff = time.Millisecond
	ctx := context.Background()

	tests := []struct {
		name      string
		failures  int
		transient bool
		wantCalls int
		wantErr   bool
	}{
		{"succeeds first time", 0, true, 1, false},
		{"permanent failure", 5, false, 1, true},
		{"recovers", 1, true, 2, false},
		{"exhausted", 5, true, 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := retry(ctx, func() error {
				calls++
				if calls > tt.failures {
					return nil
				}
				if tt.transient {
					return transient{ErrUnavailable}
				}
				return ErrUnavailable
			})
			if calls != tt.wantCalls {
				t.Errorf("calls = %d, want %d", calls, tt.wantCalls)
			}
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnavailable) {
				t.Errorf("err = %v, want it to wrap ErrUnavailable", err)
			}
			if err != nil && isTransient(err) != tt.transient {
				t.Errorf("isTransient(%v) = %v, want %v", err, isTransient(err), tt.transient)
			}
		})
	}
}

func TestRetryContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := retry(ctx, func() error { return transient{ErrUnavailable} })
	if err != context.Canceled {
		t.Errorf("retry() error = %v, want context.Canceled", err)
	}
}
