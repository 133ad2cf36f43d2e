// Package cache provides a Redis read-through cache for score reports so
// repeated scoring of an identical claim skips the full pipeline.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/factline/credo/internal/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "credo:report:"

// Connect parses a redis:// URL and verifies the connection.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

type ReportCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewReportCache(rdb *redis.Client, ttl time.Duration) *ReportCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &ReportCache{rdb: rdb, ttl: ttl}
}

func key(tenantID uuid.UUID, claimHash string) string {
	return keyPrefix + tenantID.String() + ":" + claimHash
}

// Get returns the cached report, or (nil, nil) on a miss.
func (c *ReportCache) Get(ctx context.Context, tenantID uuid.UUID, claimHash string) (*domain.ScoreReport, error) {
	raw, err := c.rdb.Get(ctx, key(tenantID, claimHash)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	report := &domain.ScoreReport{}
	if err := json.Unmarshal(raw, report); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return report, nil
}

func (c *ReportCache) Set(ctx context.Context, tenantID uuid.UUID, report *domain.ScoreReport) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.rdb.Set(ctx, key(tenantID, report.ClaimHash), raw, c.ttl).Err()
}
