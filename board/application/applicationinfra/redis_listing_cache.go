package applicationinfra

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jobdeck/jobdeck/board/application"
	"github.com/jobdeck/jobdeck/pkg/kernel"
	"github.com/jobdeck/jobdeck/pkg/logx"
)

const listingTTL = 5 * time.Minute

// RedisListingCache implements application.ListingCache using Redis.
// Entries expire on their own; review mutations invalidate eagerly so
// admins never triage against a stale listing.
type RedisListingCache struct {
	client *redis.Client
}

// NewRedisListingCache creates a new Redis-backed listing cache
func NewRedisListingCache(client *redis.Client) *RedisListingCache {
	return &RedisListingCache{client: client}
}

// GetList returns a cached listing, if present
func (c *RedisListingCache) GetList(ctx context.Context, key string) (*application.PaginatedApplicationsResponse, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logx.Warnf("listing cache read failed for %s: %v", key, err)
		}
		return nil, false
	}

	var listing application.PaginatedApplicationsResponse
	if err := json.Unmarshal(data, &listing); err != nil {
		logx.Warnf("listing cache entry corrupt for %s: %v", key, err)
		return nil, false
	}

	return &listing, true
}

// SetList stores a listing under key. Cache write failures are logged
// and swallowed; the caller already has the listing.
func (c *RedisListingCache) SetList(ctx context.Context, key string, listing *application.PaginatedApplicationsResponse) {
	data, err := json.Marshal(listing)
	if err != nil {
		logx.Warnf("listing cache marshal failed for %s: %v", key, err)
		return
	}

	if err := c.client.Set(ctx, key, data, listingTTL).Err(); err != nil {
		logx.Warnf("listing cache write failed for %s: %v", key, err)
	}
}

// Invalidate drops all cached listings of a job
func (c *RedisListingCache) Invalidate(ctx context.Context, jobID kernel.JobID) {
	pattern := fmt.Sprintf("applications:job:%s:*", jobID.String())

	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			logx.Warnf("listing cache invalidation scan failed for %s: %v", pattern, err)
			return
		}

		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				logx.Warnf("listing cache invalidation delete failed: %v", err)
				return
			}
		}

		cursor = next
		if cursor == 0 {
			return
		}
	}
}
