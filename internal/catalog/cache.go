// internal/catalog/cache.go
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"signcraft/internal/pkg/logger"
	"signcraft/internal/pkg/redis"
)

const productCacheTTL = 5 * time.Minute

// CachedRepository 在底层仓储外加一层 Redis 读穿缓存。
// 商品只被管理后台改写，短 TTL 足以消化不一致窗口。
type CachedRepository struct {
	inner Repository
	redis *redis.Client
}

// NewCachedRepository 包装一个仓储实例。
func NewCachedRepository(inner Repository, redisClient *redis.Client) *CachedRepository {
	return &CachedRepository{inner: inner, redis: redisClient}
}

func productCacheKey(id string) string {
	return fmt.Sprintf("catalog:product:%s", id)
}

// FindProductByID 先查缓存，未命中时回源并写回。
// 缓存层任何故障都只降级为回源，不影响业务结果。
func (r *CachedRepository) FindProductByID(ctx context.Context, id string) (*Product, error) {
	key := productCacheKey(id)

	cached, err := r.redis.GetClient().Get(ctx, key).Result()
	if err == nil {
		var p Product
		if err := json.Unmarshal([]byte(cached), &p); err == nil {
			return &p, nil
		}
		// 缓存内容坏了就当未命中，回源覆盖
		logger.Ctx(ctx).Warn().Str("key", key).Msg("corrupt product cache entry, falling through")
	} else if err != goredis.Nil {
		logger.Ctx(ctx).Warn().Err(err).Msg("product cache read failed, falling through")
	}

	p, err := r.inner.FindProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(p); err == nil {
		if err := r.redis.GetClient().Set(ctx, key, data, productCacheTTL).Err(); err != nil {
			logger.Ctx(ctx).Warn().Err(err).Msg("product cache write failed")
		}
	}
	return p, nil
}

var _ Repository = (*CachedRepository)(nil)
var _ Repository = (*GormRepository)(nil)
