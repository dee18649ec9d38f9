package utils

import (
	"context"
	"strconv"
	"sync"
	"time"
)

var (
	viewCounts   = map[uint]int64{}
	viewCountsMu sync.Mutex
)

func postViewsKey(postID uint) string {
	return "post:views:" + strconv.FormatUint(uint64(postID), 10)
}

// IncrPostViews bumps the read counter for one post. Redis is preferred so
// counts survive restarts; a process-local map is the fallback.
func IncrPostViews(postID uint) {
	if rc := GetRedis(); rc != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = rc.Incr(ctx, postViewsKey(postID)).Err()
		return
	}

	viewCountsMu.Lock()
	viewCounts[postID]++
	viewCountsMu.Unlock()
}

// PostViewCount returns the recorded reads for one post.
func PostViewCount(postID uint) int64 {
	if rc := GetRedis(); rc != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		n, err := rc.Get(ctx, postViewsKey(postID)).Int64()
		if err != nil {
			return 0
		}
		return n
	}

	viewCountsMu.Lock()
	defer viewCountsMu.Unlock()
	return viewCounts[postID]
}
