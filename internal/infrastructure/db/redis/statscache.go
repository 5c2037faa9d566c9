package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/forefront/clientplus/internal/api/metrics"
	"github.com/forefront/clientplus/internal/core/ports"
)

const statsTTL = time.Minute

// StatsCache caches the dashboard figure block per consultant and month.
// Key format: stats:<consultant>:<year>:<month>
type StatsCache struct {
	client *redis.Client
}

// NewStatsCache creates a StatsCache wrapping the given Redis client.
func NewStatsCache(client *redis.Client) *StatsCache {
	return &StatsCache{client: client}
}

// Get returns the cached stats, or (nil, nil) on a miss.
func (c *StatsCache) Get(ctx context.Context, consultant string, year, month int) (*ports.DashboardStats, error) {
	raw, err := c.client.Get(ctx, c.key(consultant, year, month)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.StatsCacheTotal.WithLabelValues("miss").Inc()
			return nil, nil
		}
		return nil, fmt.Errorf("stats cache get: %w", err)
	}

	var stats ports.DashboardStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("stats cache decode: %w", err)
	}
	metrics.StatsCacheTotal.WithLabelValues("hit").Inc()
	return &stats, nil
}

// Set stores the stats block (expires after statsTTL).
func (c *StatsCache) Set(ctx context.Context, consultant string, year, month int, stats *ports.DashboardStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("stats cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(consultant, year, month), raw, statsTTL).Err()
}

// Invalidate drops the cached block after an entry write.
func (c *StatsCache) Invalidate(ctx context.Context, consultant string, year, month int) error {
	return c.client.Del(ctx, c.key(consultant, year, month)).Err()
}

func (c *StatsCache) key(consultant string, year, month int) string {
	return fmt.Sprintf("stats:%s:%d:%d", consultant, year, month)
}
