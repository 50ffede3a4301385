package cache

import (
	"context"
	"dashboard-service/internal/models"
	"dashboard-service/internal/repository"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	notFoundMarker = "notfound"
	notFoundTTL    = time.Minute
)

// CachedProductRepository is a read-through Redis cache in front of a
// ProductRepository. Redis failures are logged and the call falls back to
// the wrapped repository.
//
// Keys carry a prefix generated per instance: the wrapped store lives only
// as long as the process, so entries written by another process (or an
// earlier run) must never be read back.
type CachedProductRepository struct {
	realRepo repository.ProductRepository
	redis    *redis.Client
	ttl      time.Duration
	prefix   string
	logger   *zap.Logger
}

var _ repository.ProductRepository = (*CachedProductRepository)(nil)

func NewCachedProductRepository(realRepo repository.ProductRepository, redis *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedProductRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedProductRepository{
		realRepo: realRepo,
		redis:    redis,
		ttl:      ttl,
		prefix:   "dashboard:" + uuid.NewString() + ":",
		logger:   logger,
	}
}

func (c *CachedProductRepository) productKey(id int) string {
	return fmt.Sprintf("%sproduct:%d", c.prefix, id)
}

func (c *CachedProductRepository) allProductsKey() string {
	return c.prefix + "products:all"
}

func (c *CachedProductRepository) categoryKey(category string) string {
	return fmt.Sprintf("%sproducts:category:%s", c.prefix, category)
}

func (c *CachedProductRepository) GetByID(ctx context.Context, id int) (models.Product, bool) {
	key := c.productKey(id)

	data, err := c.redis.Get(ctx, key).Bytes()

	switch {
	case err == nil:
		if string(data) == notFoundMarker {
			return models.Product{}, false
		}

		var product models.Product
		if err := json.Unmarshal(data, &product); err != nil {
			c.logger.Warn("failed to unmarshal cached product", zap.String("key", key), zap.Error(err))
			break
		}

		return product, true

	case errors.Is(err, redis.Nil):

	default:
		c.logger.Warn("redis get failed", zap.String("key", key), zap.Error(err))
	}

	product, ok := c.realRepo.GetByID(ctx, id)
	if !ok {
		if err := c.redis.Set(ctx, key, notFoundMarker, notFoundTTL).Err(); err != nil {
			c.logger.Warn("failed to cache missing product", zap.String("key", key), zap.Error(err))
		}
		return models.Product{}, false
	}

	c.store(ctx, key, product)
	return product, true
}

func (c *CachedProductRepository) GetAll(ctx context.Context) []models.Product {
	if products, ok := c.loadList(ctx, c.allProductsKey()); ok {
		return products
	}

	products := c.realRepo.GetAll(ctx)
	c.store(ctx, c.allProductsKey(), products)
	return products
}

func (c *CachedProductRepository) GetByCategory(ctx context.Context, category string) []models.Product {
	key := c.categoryKey(category)
	if products, ok := c.loadList(ctx, key); ok {
		return products
	}

	products := c.realRepo.GetByCategory(ctx, category)
	c.store(ctx, key, products)
	return products
}

func (c *CachedProductRepository) Count(ctx context.Context) int {
	return c.realRepo.Count(ctx)
}

func (c *CachedProductRepository) Create(ctx context.Context, in models.ProductInput) models.Product {
	product := c.realRepo.Create(ctx, in)

	// The new id may have been cached as missing before it existed.
	c.invalidate(ctx, c.productKey(product.ID), c.allProductsKey(), c.categoryKey(product.Category))
	return product
}

func (c *CachedProductRepository) Update(ctx context.Context, id int, patch models.ProductPatch) (models.Product, bool) {
	old, found := c.realRepo.GetByID(ctx, id)

	product, ok := c.realRepo.Update(ctx, id, patch)
	if !ok {
		c.invalidate(ctx, c.productKey(id))
		return models.Product{}, false
	}

	keys := []string{c.productKey(id), c.allProductsKey(), c.categoryKey(product.Category)}
	if found && old.Category != product.Category {
		keys = append(keys, c.categoryKey(old.Category))
	}
	c.invalidate(ctx, keys...)

	return product, true
}

func (c *CachedProductRepository) Delete(ctx context.Context, id int) bool {
	product, found := c.realRepo.GetByID(ctx, id)

	deleted := c.realRepo.Delete(ctx, id)

	keys := []string{c.productKey(id)}
	if found {
		keys = append(keys, c.allProductsKey(), c.categoryKey(product.Category))
	}
	c.invalidate(ctx, keys...)

	return deleted
}

func (c *CachedProductRepository) loadList(ctx context.Context, key string) ([]models.Product, bool) {
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("redis get failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		c.logger.Warn("failed to unmarshal cached products", zap.String("key", key), zap.Error(err))
		return nil, false
	}

	return products, true
}

func (c *CachedProductRepository) store(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		c.logger.Warn("failed to marshal products", zap.String("key", key), zap.Error(err))
		return
	}

	if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("failed to cache products", zap.String("key", key), zap.Error(err))
	}
}

func (c *CachedProductRepository) invalidate(ctx context.Context, keys ...string) {
	if err := c.redis.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("failed to invalidate product cache", zap.Strings("keys", keys), zap.Error(err))
	}
}
