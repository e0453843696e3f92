package cache

import (
	"context"
	"strings"
	"time"

	"github.com/matzehuels/orgchart/pkg/observability"
)

type observed struct {
	inner Cache
}

// Observe wraps c so every lookup and write is reported through
// [observability.Cache]. Wrapping an already observed cache returns it as is.
func Observe(c Cache) Cache {
	if _, ok := c.(*observed); ok {
		return c
	}
	return &observed{inner: c}
}

// KeyType returns the namespace of a key: everything before its last colon.
// Keys without a colon have type "other".
func KeyType(key string) string {
	if i := strings.LastIndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return "other"
}

func (o *observed) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, ok, err := o.inner.Get(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if ok {
		observability.Cache().OnCacheHit(ctx, KeyType(key))
	} else {
		observability.Cache().OnCacheMiss(ctx, KeyType(key))
	}
	return data, ok, nil
}

func (o *observed) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := o.inner.Set(ctx, key, data, ttl); err != nil {
		return err
	}
	observability.Cache().OnCacheSet(ctx, KeyType(key), len(data))
	return nil
}

func (o *observed) Delete(ctx context.Context, key string) error {
	return o.inner.Delete(ctx, key)
}

func (o *observed) Close() error {
	return o.inner.Close()
}

var _ Cache = (*observed)(nil)
