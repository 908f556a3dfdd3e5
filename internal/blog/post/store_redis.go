// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/inkwell/internal/platform/constants"
	"github.com/taibuivan/inkwell/pkg/slice"
)

// RedisViewCounter implements [ViewCounter] with one INCR key per post.
type RedisViewCounter struct {
	client redis.Cmdable
}

// NewViewCounter creates a Redis-backed view counter.
func NewViewCounter(client redis.Cmdable) *RedisViewCounter {
	return &RedisViewCounter{client: client}
}

// Increment adds one view and returns the new total.
func (counter *RedisViewCounter) Increment(ctx context.Context, postID string) (int64, error) {
	views, err := counter.client.Incr(ctx, viewKey(postID)).Result()
	if err != nil {
		return 0, fmt.Errorf("redis_view_counter_incr_failed: %w", err)
	}
	return views, nil
}

// Get returns view totals for the given posts with a single MGET.
func (counter *RedisViewCounter) Get(ctx context.Context, postIDs []string) (map[string]int64, error) {
	views := make(map[string]int64, len(postIDs))
	if len(postIDs) == 0 {
		return views, nil
	}

	values, err := counter.client.MGet(ctx, slice.Map(postIDs, viewKey)...).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("redis_view_counter_mget_failed: %w", err)
	}

	for index, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}
		count, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("redis_view_counter_parse_failed for %q: %w", postIDs[index], err)
		}
		views[postIDs[index]] = count
	}

	return views, nil
}

func viewKey(postID string) string {
	return constants.RedisPrefixPostViews + postID
}
