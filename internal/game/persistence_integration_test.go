//go:build integration

package game

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newRedisClient(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	require.NoError(t, rdb.Ping(ctx).Err(), "redis is not reachable")
	return rdb
}

func TestRedisPersistence_SaveLoadDelete(t *testing.T) {
	ctx := context.Background()
	rdb := newRedisClient(t)

	// Чистим Redis, чтобы тест был детерминированный
	require.NoError(t, rdb.FlushDB(ctx).Err())

	persist := NewRedisSessionStore(rdb, 1*time.Hour)

	s := NewSession("s_test_1", Code{0, 0, 1, 1})
	_ = s.Step("0101")

	require.NoError(t, persist.Save(ctx, "current", s.Snapshot()))

	// Симулируем рестарт: грузим snapshot и продолжаем партию
	snap, found, err := persist.Load(ctx, "current")
	require.NoError(t, err)
	require.True(t, found)

	s2, err := RestoreSession(snap)
	require.NoError(t, err)
	require.Equal(t, 1, s2.Attempts())
	require.Equal(t, Playing, s2.State())

	out := s2.Step("0011")
	require.Equal(t, EventWon, out.Event)
	require.Equal(t, 2, out.Attempts)

	require.NoError(t, persist.Delete(ctx, "current"))

	_, found, err = persist.Load(ctx, "current")
	require.NoError(t, err)
	require.False(t, found)
}
