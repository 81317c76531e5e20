package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Windows the dashboard UI offers; invalidation covers all of them.
var ReportWindows = []int{7, 30, 90}

// ReportCache keeps rendered dashboard reports per tenant and window so
// the aggregation does not rerun on every page load. A successful
// submission invalidates the tenant's entries.
type ReportCache interface {
	Get(ctx context.Context, tenantID uuid.UUID, windowDays int, out interface{}) (bool, error)
	Set(ctx context.Context, tenantID uuid.UUID, windowDays int, report interface{}, ttl time.Duration) error
	InvalidateTenant(ctx context.Context, tenantID uuid.UUID) error
}

type RedisReportCache struct {
	client *redis.Client
}

func NewRedisReportCache(client *redis.Client) *RedisReportCache {
	return &RedisReportCache{client: client}
}

func reportKey(tenantID uuid.UUID, windowDays int) string {
	return fmt.Sprintf("dashboard:%s:%d", tenantID, windowDays)
}

func (c *RedisReportCache) Get(ctx context.Context, tenantID uuid.UUID, windowDays int, out interface{}) (bool, error) {
	val, err := c.client.Get(ctx, reportKey(tenantID, windowDays)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		return false, err
	}
	return true, nil
}

func (c *RedisReportCache) Set(ctx context.Context, tenantID uuid.UUID, windowDays int, report interface{}, ttl time.Duration) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, reportKey(tenantID, windowDays), payload, ttl).Err()
}

func (c *RedisReportCache) InvalidateTenant(ctx context.Context, tenantID uuid.UUID) error {
	keys := make([]string, 0, len(ReportWindows))
	for _, days := range ReportWindows {
		keys = append(keys, reportKey(tenantID, days))
	}
	return c.client.Del(ctx, keys...).Err()
}
