package ratelimit

import (
	"context"
	"time"
)

// Store counts requests per key inside a sliding window. Record adds one
// request and returns how many fall inside the window ending now, the new
// one included. Implementations prune on every call, so the count is exact
// rather than a fixed-bucket approximation.
type Store interface {
	Record(ctx context.Context, key string, window time.Duration) (int64, error)
}
