// Package cache keeps read-through copies of actor listings in Redis.
//
// Entries are grouped into named buckets, one per submission type. A bucket
// is invalidated by bumping its generation counter, which makes every key
// written under the previous generation unreachable; stale keys then age out
// through their TTL. Invalidation also notifies the bucket's subscribers.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/samarpantrust/outreach/internal/pkg/logger"
)

// Bucket names a group of cached entries that are invalidated together.
type Bucket string

const (
	BucketVolunteerInterests Bucket = "volunteerInterests"
	BucketContactMessages    Bucket = "contactMessages"
	BucketDonationPledges    Bucket = "donationPledges"
)

// KeyAll is the entry key for a bucket's full listing.
const KeyAll = "all"

const defaultTTL = 5 * time.Minute

// ListCache is a Redis-backed read-through cache. One built without a Redis
// client caches nothing but still notifies subscribers; a nil *ListCache
// passes Fetch straight to load. Safe for concurrent use.
type ListCache struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
	log    logger.Logger

	mu     sync.RWMutex
	nextID int
	subs   map[Bucket]map[int]func(Bucket)
}

// New returns a ListCache over rdb. rdb may be nil.
func New(rdb *redis.Client, prefix string, ttl time.Duration, log logger.Logger) *ListCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	prefix = strings.TrimSuffix(prefix, ":")
	if prefix == "" {
		prefix = "outreach"
	}
	return &ListCache{
		rdb:    rdb,
		prefix: prefix,
		ttl:    ttl,
		log:    log,
		subs:   make(map[Bucket]map[int]func(Bucket)),
	}
}

// Enabled reports whether entries are actually stored.
func (c *ListCache) Enabled() bool {
	return c != nil && c.rdb != nil
}

// Ping checks the Redis connection.
func (c *ListCache) Ping(ctx context.Context) error {
	if !c.Enabled() {
		return errors.New("cache disabled")
	}
	return c.rdb.Ping(ctx).Err()
}

// Subscribe registers fn to run after every invalidation of b. The returned
// function removes the subscription.
func (c *ListCache) Subscribe(b Bucket, fn func(Bucket)) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	if c.subs[b] == nil {
		c.subs[b] = make(map[int]func(Bucket))
	}
	c.subs[b][id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs[b], id)
	}
}

// Invalidate drops every cached entry of b and notifies its subscribers.
// Subscribers are notified even when the Redis update fails.
func (c *ListCache) Invalidate(ctx context.Context, b Bucket) error {
	if c == nil {
		return nil
	}
	var err error
	if c.rdb != nil {
		if e := c.rdb.Incr(ctx, c.genKey(b)).Err(); e != nil {
			err = fmt.Errorf("invalidating %s: %w", b, e)
		}
	}
	c.notify(b)
	return err
}

func (c *ListCache) notify(b Bucket) {
	c.mu.RLock()
	fns := make([]func(Bucket), 0, len(c.subs[b]))
	for _, fn := range c.subs[b] {
		fns = append(fns, fn)
	}
	c.mu.RUnlock()

	for _, fn := range fns {
		fn(b)
	}
}

// Fetch returns the entry key of bucket b, calling load and storing its
// result on a miss. Redis failures are logged and fall back to load; errors
// from load are returned as is and never cached.
func Fetch[T any](ctx context.Context, c *ListCache, b Bucket, key string, load func(context.Context) (T, error)) (T, error) {
	if !c.Enabled() {
		return load(ctx)
	}

	gen, err := c.generation(ctx, b)
	if err != nil {
		c.log.Warn().Err(err).Str("bucket", string(b)).Msg("cache generation lookup failed")
		return load(ctx)
	}
	k := c.entryKey(b, gen, key)

	raw, err := c.rdb.Get(ctx, k).Bytes()
	switch {
	case err == nil:
		var v T
		if jerr := json.Unmarshal(raw, &v); jerr == nil {
			return v, nil
		}
		c.log.Warn().Str("key", k).Msg("discarding undecodable cache entry")
	case !errors.Is(err, redis.Nil):
		c.log.Warn().Err(err).Str("key", k).Msg("cache read failed")
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}
	if data, merr := json.Marshal(v); merr == nil {
		if serr := c.rdb.Set(ctx, k, data, c.ttl).Err(); serr != nil {
			c.log.Warn().Err(serr).Str("key", k).Msg("cache write failed")
		}
	}
	return v, nil
}

func (c *ListCache) generation(ctx context.Context, b Bucket) (int64, error) {
	gen, err := c.rdb.Get(ctx, c.genKey(b)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (c *ListCache) genKey(b Bucket) string {
	return c.prefix + ":gen:" + string(b)
}

func (c *ListCache) entryKey(b Bucket, gen int64, key string) string {
	return fmt.Sprintf("%s:%s:%d:%s", c.prefix, b, gen, key)
}

// EmailKey returns the entry key for a by-email lookup. The address is
// hashed exactly as given, since matching is up to the actor; key names
// never carry PII.
func EmailKey(email string) string {
	sum := sha256.Sum256([]byte(email))
	return "email:" + hex.EncodeToString(sum[:])
}
