package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/i474232898/flight-duration-estimator/internal/flight"
)

const redisKeyPrefix = "weather:"

// RedisStore caches readings in Redis so several instances share them.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Ping verifies the connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, key string) (flight.WeatherReading, error) {
	raw, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return flight.WeatherReading{}, ErrNotFound
	}
	if err != nil {
		return flight.WeatherReading{}, fmt.Errorf("redis get: %w", err)
	}

	var r flight.WeatherReading
	if err := json.Unmarshal(raw, &r); err != nil {
		return flight.WeatherReading{}, fmt.Errorf("decode cached reading: %w", err)
	}
	return r, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, reading flight.WeatherReading) error {
	raw, err := json.Marshal(reading)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, redisKeyPrefix+key, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
