package game

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionPersistence — абстракция "положить/достать/удалить snapshot".
// Реализуем Redis-ом; in-memory версия — для тестов.
type SessionPersistence interface {
	Save(ctx context.Context, key string, snap SessionSnapshot) error
	Load(ctx context.Context, key string) (SessionSnapshot, bool, error)
	Delete(ctx context.Context, key string) error
}

type RedisSessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisSessionStore(rdb *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb, ttl: ttl}
}

func (s *RedisSessionStore) key(key string) string {
	return fmt.Sprintf("session:%s:snapshot", key)
}

func (s *RedisSessionStore) Save(ctx context.Context, key string, snap SessionSnapshot) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.key(key), b, s.ttl).Err()
}

func (s *RedisSessionStore) Load(ctx context.Context, key string) (SessionSnapshot, bool, error) {
	val, err := s.rdb.Get(ctx, s.key(key)).Bytes()
	if err == redis.Nil {
		return SessionSnapshot{}, false, nil
	}
	if err != nil {
		return SessionSnapshot{}, false, err
	}

	var snap SessionSnapshot
	if err := json.Unmarshal(val, &snap); err != nil {
		return SessionSnapshot{}, false, err
	}
	return snap, true, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, s.key(key)).Err()
}
