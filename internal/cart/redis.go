package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/infinity-lifestyle/storefront/internal/models"
)

// RedisStore keeps session carts as JSON blobs with a TTL, for deployments
// that run more than one storefront instance behind a balancer.
type RedisStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisStore{Client: client, TTL: ttl}
}

func cartKey(sessionID string) string { return "cart:" + sessionID }

func (s *RedisStore) Get(ctx context.Context, sessionID string) (models.Cart, error) {
	val, err := s.Client.Get(ctx, cartKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.Cart{}, nil
		}
		return models.Cart{}, fmt.Errorf("redis get cart: %w", err)
	}

	var c models.Cart
	if err := json.Unmarshal([]byte(val), &c); err != nil {
		return models.Cart{}, fmt.Errorf("unmarshal cart: %w", err)
	}
	return c, nil
}

func (s *RedisStore) Put(ctx context.Context, sessionID string, c models.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	if err := s.Client.Set(ctx, cartKey(sessionID), data, s.TTL).Err(); err != nil {
		return fmt.Errorf("redis set cart: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, cartKey(sessionID)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("redis del cart: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	if s.Client != nil {
		return s.Client.Close()
	}
	return nil
}
