package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/matbakh-tech/go-backend/internal/cfg"
	"github.com/matbakh-tech/go-backend/internal/domain"
	"github.com/matbakh-tech/go-backend/internal/repository/redis/converter"
	"github.com/matbakh-tech/go-backend/pkg/clients"
	"github.com/matbakh-tech/go-backend/pkg/e"
	"github.com/matbakh-tech/go-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.ProductConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.ProductConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetProduct возвращает закэшированный продукт или nil при промахе.
// Повреждённое значение удаляется и трактуется как промах.
func (c *CacheRepo) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	key := c.productKey(id)

	data, err := c.client.Client.Get(ctx, key).Bytes()
	if err != nil {
		if err == r.Nil {
			return nil, nil // cache miss
		}

		c.logger.Warnf("Redis GET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.ProductRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		c.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		if err := c.client.Client.Del(context.Background(), key).Err(); err != nil {
			c.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, nil // cache miss
	}

	if model.ID != id {
		c.logger.Warnf("Cache ID mismatch: key_id: %d, model_id: %d", id, model.ID)
		if err := c.client.Client.Del(context.Background(), key).Err(); err != nil {
			c.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, nil // cache miss
	}

	return c.conv.ToEntity(&model), nil
}

// SetProduct кэширует продукт с заданным TTL.
// Ошибки сериализации и записи только логируются.
func (c *CacheRepo) SetProduct(ctx context.Context, product *domain.Product) error {
	model := c.conv.ToRedisModel(product)

	data, err := json.Marshal(model)
	if err != nil {
		c.logger.Warnf("Failed to marshal product for caching (Product ID: %d): %v",
			model.ID, e.Wrap(whereami.WhereAmI(), err))
		return nil
	}

	if err := c.client.Client.Set(ctx, c.productKey(model.ID), data, c.cfg.ProductTTL).Err(); err != nil {
		c.logger.Warnf("Redis SET failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// DeleteProducts удаляет продукты из кэша по ID.
func (c *CacheRepo) DeleteProducts(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = c.productKey(id)
	}

	if err := c.client.Client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// productKey возвращает Redis-ключ для одного продукта.
func (c *CacheRepo) productKey(id int64) string {
	return fmt.Sprintf("product:%d", id)
}
