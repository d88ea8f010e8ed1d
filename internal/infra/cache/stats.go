package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/RBM-DashboardService/internal/domain"
	"github.com/m04kA/RBM-DashboardService/internal/filterengine"
)

// StatsCache кэш агрегированной статистики по гостям поверх Redis.
// Ключ включает идентификатор франшизы, чтобы статистика разных
// франшиз не пересекалась
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache создает новый экземпляр кэша статистики
func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{
		client: client,
		ttl:    ttl,
	}
}

func statsKey(franchiseID string) string {
	return fmt.Sprintf("dashboard:guest-stats:%s", franchiseID)
}

// Get читает статистику из кэша. Возвращает ErrCacheMiss, если значения нет
func (c *StatsCache) Get(ctx context.Context, franchiseID string) (*filterengine.Stats, error) {
	payload, err := c.client.Get(ctx, statsKey(franchiseID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - redis get: %v", ErrInternal, err)
	}

	var stats filterengine.Stats
	if err := json.Unmarshal(payload, &stats); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal stats: %v", ErrInternal, err)
	}

	return &stats, nil
}

// Set сохраняет статистику в кэш с TTL
func (c *StatsCache) Set(ctx context.Context, franchiseID string, stats *filterengine.Stats) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("%w: Set - marshal stats: %v", ErrInternal, err)
	}

	if err := c.client.Set(ctx, statsKey(franchiseID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set - redis set: %v", ErrInternal, err)
	}

	return nil
}

// Invalidate сбрасывает статистику франшизы и общую статистику.
// Вызывается при изменении данных гостей
func (c *StatsCache) Invalidate(ctx context.Context, franchiseID string) error {
	keys := []string{statsKey(franchiseID)}
	if franchiseID != domain.FranchiseAll {
		keys = append(keys, statsKey(domain.FranchiseAll))
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("%w: Invalidate - redis del: %v", ErrInternal, err)
	}

	return nil
}
