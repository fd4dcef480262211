package ratelimit

import (
	"context"
	"time"
)

// Counter counts hits per key inside a fixed window that starts with the
// first hit.
type Counter interface {
	// Hit records one request for key and returns the count in the current
	// window, including this one.
	Hit(ctx context.Context, key string, window time.Duration) (int64, error)
}
