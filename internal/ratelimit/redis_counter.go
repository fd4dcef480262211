package ratelimit

import (
	"context"
	"time"

	"github.com/redis/rueidis"
)

type RedisCounter struct {
	client rueidis.Client
	prefix string
}

func NewRedisCounter(client rueidis.Client, prefix string) *RedisCounter {
	return &RedisCounter{
		client: client,
		prefix: prefix,
	}
}

// Hit pipelines INCR with PEXPIRE NX. The expiry is sent on every hit and
// only applies while the key has none, so a window whose TTL was lost gets
// one on the next request instead of counting forever.
func (r *RedisCounter) Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	redisKey := r.prefix + ":" + key

	results := r.client.DoMulti(ctx,
		r.client.B().Incr().Key(redisKey).Build(),
		r.client.B().Pexpire().Key(redisKey).Milliseconds(window.Milliseconds()).Nx().Build(),
	)

	count, err := results[0].AsInt64()
	if err != nil {
		return 0, err
	}

	if err := results[1].Error(); err != nil {
		return 0, err
	}

	return count, nil
}
