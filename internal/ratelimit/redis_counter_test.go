package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/rueidis"
	"github.com/redis/rueidis/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRedisCounter_Hit(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)
	counter := NewRedisCounter(client, "rl")

	client.EXPECT().
		DoMulti(gomock.Any(),
			mock.Match("INCR", "rl:10.0.0.1"),
			mock.Match("PEXPIRE", "rl:10.0.0.1", "60000", "NX"),
		).
		Return([]rueidis.RedisResult{
			mock.Result(mock.RedisInt64(3)),
			mock.Result(mock.RedisInt64(0)),
		})

	n, err := counter.Hit(context.Background(), "10.0.0.1", time.Minute)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}

func TestRedisCounter_ExpirySentOnEveryHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)
	counter := NewRedisCounter(client, "rl")
	ctx := context.Background()

	// the first hit fails to set the expiry; the next one must retry it
	gomock.InOrder(
		client.EXPECT().
			DoMulti(gomock.Any(),
				mock.Match("INCR", "rl:k"),
				mock.Match("PEXPIRE", "rl:k", "60000", "NX"),
			).
			Return([]rueidis.RedisResult{
				mock.Result(mock.RedisInt64(1)),
				mock.ErrorResult(errors.New("READONLY")),
			}),
		client.EXPECT().
			DoMulti(gomock.Any(),
				mock.Match("INCR", "rl:k"),
				mock.Match("PEXPIRE", "rl:k", "60000", "NX"),
			).
			Return([]rueidis.RedisResult{
				mock.Result(mock.RedisInt64(2)),
				mock.Result(mock.RedisInt64(1)),
			}),
	)

	_, err := counter.Hit(ctx, "k", time.Minute)
	assert.Error(t, err)

	n, err := counter.Hit(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestRedisCounter_IncrFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)
	counter := NewRedisCounter(client, "rl")

	client.EXPECT().
		DoMulti(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]rueidis.RedisResult{
			mock.ErrorResult(errors.New("connection refused")),
			mock.ErrorResult(errors.New("connection refused")),
		})

	_, err := counter.Hit(context.Background(), "k", time.Minute)
	assert.ErrorContains(t, err, "connection refused")
}
