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

// CartRepo хранит снимки корзин в Redis, по одному JSON-массиву на сессию.
type CartRepo struct {
	client *clients.RedisClient
	conv   converter.CartItemConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCartRepo(client *clients.RedisClient, conv converter.CartItemConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CartRepo {
	return &CartRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// Load возвращает сохранённый снимок корзины сессии.
// Отсутствующий или повреждённый снимок читается как пустая корзина:
// покупатель теряет содержимое, но не получает ошибку.
func (c *CartRepo) Load(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
	key := c.cartKey(sessionID)

	data, err := c.client.Client.Get(ctx, key).Bytes()
	if err != nil {
		if err == r.Nil {
			return []domain.CartItem{}, nil
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var models []converter.CartItemRedisModel
	if err := json.Unmarshal(data, &models); err != nil {
		c.logger.Warnf("Cart snapshot corrupted, resetting (session: %s): %v",
			sessionID, e.Wrap(whereami.WhereAmI(), err))
		if err := c.client.Client.Del(context.Background(), key).Err(); err != nil {
			c.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return []domain.CartItem{}, nil
	}

	return c.conv.ToArrEntity(models), nil
}

// Save заменяет снимок корзины сессии и продлевает его TTL.
func (c *CartRepo) Save(ctx context.Context, sessionID string, items []domain.CartItem) error {
	models := c.conv.ToArrRedisModel(items)

	data, err := json.Marshal(models)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := c.client.Client.Set(ctx, c.cartKey(sessionID), data, c.cfg.CartTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// Delete удаляет снимок корзины сессии.
func (c *CartRepo) Delete(ctx context.Context, sessionID string) error {
	if err := c.client.Client.Del(ctx, c.cartKey(sessionID)).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// cartKey возвращает Redis-ключ снимка корзины сессии.
func (c *CartRepo) cartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}
