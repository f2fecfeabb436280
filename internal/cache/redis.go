package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Domenick1991/fitbooking/config"
	"github.com/Domenick1991/fitbooking/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client      *redis.Client
	sessionsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, sessionsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:      redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		sessionsTTL: sessionsTTL,
	}
}

func (c *RedisCache) GetUpcoming(ctx context.Context) ([]domain.SessionWithType, error) {
	data, err := c.client.Get(ctx, upcomingKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var sessions []domain.SessionWithType
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (c *RedisCache) SetUpcoming(ctx context.Context, sessions []domain.SessionWithType) error {
	payload, err := json.Marshal(sessions)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, upcomingKey(), payload, c.sessionsTTL).Err()
}

func (c *RedisCache) InvalidateUpcoming(ctx context.Context) error {
	return c.client.Del(ctx, upcomingKey()).Err()
}

// The type catalog is immutable after seeding, so it is cached without a TTL.
func (c *RedisCache) GetTypes(ctx context.Context) ([]domain.SessionType, error) {
	data, err := c.client.Get(ctx, typesKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var types []domain.SessionType
	if err := json.Unmarshal(data, &types); err != nil {
		return nil, err
	}
	return types, nil
}

func (c *RedisCache) SetTypes(ctx context.Context, types []domain.SessionType) error {
	payload, err := json.Marshal(types)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, typesKey(), payload, 0).Err()
}

func upcomingKey() string {
	return "cache:sessions:upcoming"
}

func typesKey() string {
	return "cache:session_types"
}
