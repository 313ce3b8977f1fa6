package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const redisKeyPrefix = "nhl:game:"

// RedisStore keeps team sides in Redis so they survive restarts and are shared across replicas.
type RedisStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisStore wraps a Redis client. A non-positive ttl uses DefaultTTL.
func NewRedisStore(client redis.Cmdable, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

// NewRedisClient parses a redis:// URL into a client.
func NewRedisClient(rawURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	return redis.NewClient(opts), nil
}

func sidesKey(gameID string) string {
	return redisKeyPrefix + gameID + ":sides"
}

// GetSides reads the sides for a game. A missing key is not an error.
func (s *RedisStore) GetSides(ctx context.Context, gameID string) (TeamSides, bool, error) {
	data, err := s.client.Get(ctx, sidesKey(gameID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return TeamSides{}, false, nil
	}
	if err != nil {
		return TeamSides{}, false, fmt.Errorf("reading sides: %w", err)
	}

	var sides TeamSides
	if err := json.Unmarshal(data, &sides); err != nil {
		return TeamSides{}, false, fmt.Errorf("decoding sides: %w", err)
	}
	return sides, true, nil
}

// SetSides writes the sides for a game with the store's TTL.
func (s *RedisStore) SetSides(ctx context.Context, gameID string, sides TeamSides) error {
	data, err := json.Marshal(sides)
	if err != nil {
		return fmt.Errorf("encoding sides: %w", err)
	}
	if err := s.client.Set(ctx, sidesKey(gameID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("writing sides: %w", err)
	}
	return nil
}
