package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/mdayat/qaza-tracker-service/internal/tracker"
	"github.com/redis/go-redis/v9"
)

// QazaCache keeps computed summaries per user, one entry per observer timezone.
type QazaCache interface {
	Get(ctx context.Context, userId, zone string) (tracker.QazaSummary, bool, error)
	Set(ctx context.Context, userId, zone string, summary tracker.QazaSummary) error
	Invalidate(ctx context.Context, userId string) error
}

type redisQazaCache struct {
	client *redis.Client
}

func NewRedisQazaCache(client *redis.Client) QazaCache {
	return &redisQazaCache{
		client: client,
	}
}

func qazaCacheKey(userId string) string {
	return "qaza:" + userId
}

func (c redisQazaCache) Get(ctx context.Context, userId, zone string) (tracker.QazaSummary, bool, error) {
	value, err := c.client.HGet(ctx, qazaCacheKey(userId), zone).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return tracker.QazaSummary{}, false, nil
		}
		return tracker.QazaSummary{}, false, fmt.Errorf("failed to get cached qaza summary: %w", err)
	}

	var summary tracker.QazaSummary
	if err := json.Unmarshal(value, &summary); err != nil {
		return tracker.QazaSummary{}, false, fmt.Errorf("failed to decode cached qaza summary: %w", err)
	}

	return summary, true, nil
}

// Set stores summary and restarts the TTL of the user's entries, so that no entry
// outlives one recompute interval.
func (c redisQazaCache) Set(ctx context.Context, userId, zone string, summary tracker.QazaSummary) error {
	value, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to encode qaza summary: %w", err)
	}

	key := qazaCacheKey(userId)
	if err := c.client.HSet(ctx, key, zone, value).Err(); err != nil {
		return fmt.Errorf("failed to cache qaza summary: %w", err)
	}

	if err := c.client.Expire(ctx, key, tracker.RecomputeInterval).Err(); err != nil {
		return fmt.Errorf("failed to set qaza summary ttl: %w", err)
	}

	return nil
}

func (c redisQazaCache) Invalidate(ctx context.Context, userId string) error {
	if err := c.client.Del(ctx, qazaCacheKey(userId)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate qaza summary: %w", err)
	}
	return nil
}
