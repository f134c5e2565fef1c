package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrNoSession 会话不存在或已过期
var ErrNoSession = errors.New("session not found")

// Store 表单登录的服务端会话。只存会话 id → 用户名的映射，
// 不缓存任何业务记录（读请求始终打到 store）。
type Store interface {
	Create(ctx context.Context, username string) (string, error)
	Get(ctx context.Context, id string) (string, error)
	Destroy(ctx context.Context, id string) error
}

const keyPrefix = "session:"

type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedis(addr, password string, db int, ttl time.Duration) *RedisStore {
	return &RedisStore{
		rdb: redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db}),
		ttl: ttl,
	}
}

func (s *RedisStore) Create(ctx context.Context, username string) (string, error) {
	id := uuid.NewString()
	if err := s.rdb.Set(ctx, keyPrefix+id, username, s.ttl).Err(); err != nil {
		return "", err
	}
	return id, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (string, error) {
	username, err := s.rdb.Get(ctx, keyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNoSession
	}
	if err != nil {
		return "", err
	}
	// 滑动过期：命中即续期
	_ = s.rdb.Expire(ctx, keyPrefix+id, s.ttl).Err()
	return username, nil
}

func (s *RedisStore) Destroy(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, keyPrefix+id).Err()
}
