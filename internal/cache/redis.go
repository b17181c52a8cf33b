package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Domenick1991/airreserve/config"
	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache is an advisory mirror of the in-memory core: SetNX seat-hold
// locks plus a JSON snapshot of flights for the list endpoint. The inventory
// stays authoritative; losing a cache entry only widens the window for a
// seat-unavailable error.
type RedisCache struct {
	client     *redis.Client
	flightsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsTTL: flightsTTL,
	}
}

func (c *RedisCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, flightsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey(), payload, c.flightsTTL).Err()
}

func (c *RedisCache) AcquireSeatLock(ctx context.Context, flightNumber, seatNumber int, ttl time.Duration) (bool, error) {
	key := seatLockKey(flightNumber, seatNumber)
	return c.client.SetNX(ctx, key, "held", ttl).Result()
}

func (c *RedisCache) ReleaseSeatLock(ctx context.Context, flightNumber, seatNumber int) error {
	return c.client.Del(ctx, seatLockKey(flightNumber, seatNumber)).Err()
}

func flightsKey() string {
	return "cache:flights"
}

func seatLockKey(flightNumber, seatNumber int) string {
	return fmt.Sprintf("hold:flight:%d:seat:%d", flightNumber, seatNumber)
}
