package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

// Policy controls entry expiration. Absolute is a hard deadline from write
// time; Sliding resets on every successful read. Either or both may be set.
type Policy struct {
	Absolute time.Duration
	Sliding  time.Duration
}

// envelope wraps the stored value so the absolute deadline survives sliding
// refreshes: the redis TTL carries the sliding window, the deadline rides
// inside the payload.
type envelope struct {
	Deadline int64           `json:"deadline,omitempty"`
	Sliding  int64           `json:"sliding,omitempty"`
	Value    json.RawMessage `json:"value"`
}

// Cache is a typed view over the shared redis client. The cache is advisory:
// every failure (connectivity, serialization) is logged and degrades to a
// miss or a dropped write, never an error for the caller. The source store
// stays authoritative and every entry is rebuildable from it.
type Cache[T any] struct {
	rds *redis.Redis
}

func New[T any](rds *redis.Redis) *Cache[T] {
	return &Cache[T]{rds: rds}
}

// Get returns the cached value and refreshes the sliding window on a hit.
// A miss, an expired deadline, or any redis failure yields (zero, false).
func (c *Cache[T]) Get(ctx context.Context, key string) (T, bool) {
	var zero T
	env, ok := c.load(ctx, key)
	if !ok {
		return zero, false
	}
	var v T
	if err := json.Unmarshal(env.Value, &v); err != nil {
		logx.WithContext(ctx).Errorf("cache: decode %s failed: %v", key, err)
		return zero, false
	}
	c.touch(ctx, key, env)
	return v, true
}

// GetList is Get for a stored ordered sequence.
func (c *Cache[T]) GetList(ctx context.Context, key string) ([]T, bool) {
	env, ok := c.load(ctx, key)
	if !ok {
		return nil, false
	}
	var vs []T
	if err := json.Unmarshal(env.Value, &vs); err != nil {
		logx.WithContext(ctx).Errorf("cache: decode list %s failed: %v", key, err)
		return nil, false
	}
	c.touch(ctx, key, env)
	return vs, true
}

// Set unconditionally overwrites the entry under the given policy.
func (c *Cache[T]) Set(ctx context.Context, key string, v T, p Policy) {
	raw, err := json.Marshal(v)
	if err != nil {
		logx.WithContext(ctx).Errorf("cache: encode %s failed: %v", key, err)
		return
	}
	c.store(ctx, key, raw, p)
}

func (c *Cache[T]) SetList(ctx context.Context, key string, vs []T, p Policy) {
	raw, err := json.Marshal(vs)
	if err != nil {
		logx.WithContext(ctx).Errorf("cache: encode list %s failed: %v", key, err)
		return
	}
	c.store(ctx, key, raw, p)
}

// Remove drops the entry. Removing an absent key is a no-op.
func (c *Cache[T]) Remove(ctx context.Context, key string) {
	if _, err := c.rds.DelCtx(ctx, key); err != nil {
		logx.WithContext(ctx).Errorf("cache: del %s failed: %v", key, err)
	}
}

func (c *Cache[T]) load(ctx context.Context, key string) (envelope, bool) {
	s, err := c.rds.GetCtx(ctx, key)
	if err != nil {
		logx.WithContext(ctx).Errorf("cache: get %s failed: %v", key, err)
		return envelope{}, false
	}
	if s == "" {
		return envelope{}, false
	}
	var env envelope
	if err := json.Unmarshal([]byte(s), &env); err != nil {
		logx.WithContext(ctx).Errorf("cache: decode envelope %s failed: %v", key, err)
		return envelope{}, false
	}
	if env.Deadline > 0 && time.Now().Unix() >= env.Deadline {
		c.Remove(ctx, key)
		return envelope{}, false
	}
	return env, true
}

func (c *Cache[T]) store(ctx context.Context, key string, raw json.RawMessage, p Policy) {
	env := envelope{Value: raw}
	now := time.Now()
	if p.Absolute > 0 {
		env.Deadline = now.Add(p.Absolute).Unix()
	}
	if p.Sliding > 0 {
		env.Sliding = int64(p.Sliding / time.Second)
	}
	data, err := json.Marshal(env)
	if err != nil {
		logx.WithContext(ctx).Errorf("cache: encode envelope %s failed: %v", key, err)
		return
	}
	ttl := c.ttlSeconds(env, now)
	if ttl > 0 {
		err = c.rds.SetexCtx(ctx, key, string(data), ttl)
	} else {
		err = c.rds.SetCtx(ctx, key, string(data))
	}
	if err != nil {
		logx.WithContext(ctx).Errorf("cache: set %s failed: %v", key, err)
	}
}

// touch refreshes the sliding window after a successful read. Entries with
// only an absolute policy are left alone: refreshing must never extend a
// hard deadline.
func (c *Cache[T]) touch(ctx context.Context, key string, env envelope) {
	if env.Sliding <= 0 {
		return
	}
	ttl := c.ttlSeconds(env, time.Now())
	if ttl <= 0 {
		return
	}
	if err := c.rds.ExpireCtx(ctx, key, ttl); err != nil {
		logx.WithContext(ctx).Errorf("cache: expire %s failed: %v", key, err)
	}
}

func (c *Cache[T]) ttlSeconds(env envelope, now time.Time) int {
	var ttl int64
	if env.Sliding > 0 {
		ttl = env.Sliding
	}
	if env.Deadline > 0 {
		remain := env.Deadline - now.Unix()
		if remain <= 0 {
			return 1
		}
		if ttl == 0 || remain < ttl {
			ttl = remain
		}
	}
	return int(ttl)
}
