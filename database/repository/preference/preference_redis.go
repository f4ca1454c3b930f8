package preferenceRepo

import (
	"context"
	"time"

	"nepwork/models"

	"github.com/go-redis/redis/v8"
)

const (
	rolePrefix  = "npw:role:"
	tokenPrefix = "npw:token:"
)

// RedisStore keeps preferences in Redis with a sliding TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) GetRole(ctx context.Context, identity string) (models.Role, bool, error) {
	if identity == "" {
		return "", false, nil
	}
	raw, err := s.client.Get(ctx, rolePrefix+identity).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	role, ok := models.ParseRole(raw)
	return role, ok, nil
}

func (s *RedisStore) SetRole(ctx context.Context, identity string, role models.Role) error {
	if identity == "" {
		return nil
	}
	return s.client.Set(ctx, rolePrefix+identity, string(role), s.ttl).Err()
}

func (s *RedisStore) GetToken(ctx context.Context, identity string) (string, bool, error) {
	if identity == "" {
		return "", false, nil
	}
	token, err := s.client.Get(ctx, tokenPrefix+identity).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return token, token != "", nil
}

func (s *RedisStore) SetToken(ctx context.Context, identity string, token string) error {
	if identity == "" || token == "" {
		return nil
	}
	return s.client.Set(ctx, tokenPrefix+identity, token, s.ttl).Err()
}

func (s *RedisStore) ClearToken(ctx context.Context, identity string) error {
	if identity == "" {
		return nil
	}
	return s.client.Del(ctx, tokenPrefix+identity).Err()
}
