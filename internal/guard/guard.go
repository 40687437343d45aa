package guard

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	relayKeyPrefix  = "mondo:relay:"
	defaultRelayTTL = 10 * time.Minute
)

// RedisGuard marks vote transactions as in-flight so concurrent requests
// for the same hash are turned away before any on-chain work happens.
type RedisGuard struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisGuard(addr string, ttl time.Duration) (*RedisGuard, error) {
	if strings.TrimSpace(addr) == "" {
		return nil, errors.New("redis address is required")
	}
	if ttl <= 0 {
		ttl = defaultRelayTTL
	}
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &RedisGuard{client: client, ttl: ttl}, nil
}

// Acquire claims the vote transaction hash for this request. It returns
// false when another request already holds the claim.
func (g *RedisGuard) Acquire(ctx context.Context, txHash string) (bool, error) {
	return g.client.SetNX(ctx, relayKeyPrefix+txHash, 1, g.ttl).Result()
}

// Release drops the claim so the hash can be retried after a failure.
func (g *RedisGuard) Release(ctx context.Context, txHash string) error {
	return g.client.Del(ctx, relayKeyPrefix+txHash).Err()
}

func (g *RedisGuard) Close() error {
	return g.client.Close()
}

// NoopGuard admits every request. It stands in when no redis address
// is configured, leaving deduplication to the database record.
type NoopGuard struct{}

func (NoopGuard) Acquire(ctx context.Context, txHash string) (bool, error) {
	return true, nil
}

func (NoopGuard) Release(ctx context.Context, txHash string) error {
	return nil
}
