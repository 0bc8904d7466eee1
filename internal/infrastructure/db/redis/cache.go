package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/guitarworld/guitar-store/internal/core/domain"
)

const (
	cacheTTL       = 5 * time.Minute
	cacheKeyPrefix = "catalog:"
)

// CatalogCache caches style-filtered catalog listings in Redis.
// Key format: catalog:<style>. Writes to the catalog invalidate every key.
type CatalogCache struct {
	client *redis.Client
}

// NewCatalogCache creates a CatalogCache wrapping the given Redis client.
func NewCatalogCache(client *redis.Client) *CatalogCache {
	return &CatalogCache{client: client}
}

// GetList returns the cached listing for a style. A miss is (nil, false, nil).
func (c *CatalogCache) GetList(ctx context.Context, style string) ([]domain.Guitar, bool, error) {
	raw, err := c.client.Get(ctx, cacheKeyPrefix+style).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("catalog cache get: %w", err)
	}

	var guitars []domain.Guitar
	if err := json.Unmarshal(raw, &guitars); err != nil {
		return nil, false, fmt.Errorf("catalog cache decode: %w", err)
	}
	return guitars, true, nil
}

// SetList stores the listing for a style (expires after cacheTTL).
func (c *CatalogCache) SetList(ctx context.Context, style string, guitars []domain.Guitar) error {
	raw, err := json.Marshal(guitars)
	if err != nil {
		return fmt.Errorf("catalog cache encode: %w", err)
	}
	return c.client.Set(ctx, cacheKeyPrefix+style, raw, cacheTTL).Err()
}

// Invalidate drops every cached listing. Called after any catalog write.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	keys := []string{
		cacheKeyPrefix + string(domain.StyleAll),
		cacheKeyPrefix + string(domain.StyleElectric),
		cacheKeyPrefix + string(domain.StyleAcoustic),
	}
	return c.client.Del(ctx, keys...).Err()
}
