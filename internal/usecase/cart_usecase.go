package usecase

import (
	"context"
	"encoding/json"
	"time"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/matbakh-tech/go-backend/internal/cfg"
	"github.com/matbakh-tech/go-backend/internal/domain"
	"github.com/matbakh-tech/go-backend/pkg/e"
	"github.com/matbakh-tech/go-backend/pkg/logger"
	"github.com/matbakh-tech/go-backend/pkg/tr"
)

// CartUseCase реализует движок корзины: слияние позиций, производные суммы,
// сохранение снимка после каждой мутации и оформление заказа.
type CartUseCase struct {
	cartRepo    CartRepository
	productRepo ProductRepository
	zoneRepo    DeliveryZoneRepository
	outboxRepo  OutboxRepository
	cacheRepo   CacheRepository
	dbPool      transaction.Transactional
	dispatcher  OrderDispatcher
	dispatchCfg *cfg.DispatchCfg
	logger      logger.Logger
}

func NewCartUC(
	cartRepo CartRepository,
	productRepo ProductRepository,
	zoneRepo DeliveryZoneRepository,
	outboxRepo OutboxRepository,
	cacheRepo CacheRepository,
	dbPool transaction.Transactional,
	dispatcher OrderDispatcher,
	dispatchCfg *cfg.DispatchCfg,
	logger logger.Logger,
) *CartUseCase {
	return &CartUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		zoneRepo:    zoneRepo,
		outboxRepo:  outboxRepo,
		cacheRepo:   cacheRepo,
		dbPool:      dbPool,
		dispatcher:  dispatcher,
		dispatchCfg: dispatchCfg,
		logger:      logger,
	}
}

// orderEventPayload — тело события order_dispatched в outbox.
type orderEventPayload struct {
	SessionID  string    `json:"session_id"`
	Lines      []string  `json:"lines"`
	Total      int64     `json:"total"`
	ItemCount  int64     `json:"item_count"`
	ComposedAt time.Time `json:"composed_at"`
}

// GetCart возвращает текущее состояние корзины сессии.
// Отсутствующий или повреждённый снимок даёт пустую корзину.
func (c *CartUseCase) GetCart(ctx context.Context, sessionID string) (*CartView, error) {
	const op = "CartUseCase.GetCart"

	cart, err := c.restore(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCartView(cart), nil
}

// AddItem добавляет продукт в корзину, фиксируя снимок его полей на момент
// добавления. Повторное добавление того же продукта увеличивает количество.
func (c *CartUseCase) AddItem(ctx context.Context, sessionID string, productID int64) (*CartView, error) {
	const op = "CartUseCase.AddItem"

	cart, err := c.restore(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	product, err := c.product(ctx, productID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	cart.AddItem(*product)

	if err := c.cartRepo.Save(ctx, sessionID, cart.Items()); err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCartView(cart), nil
}

// UpdateQuantity устанавливает количество позиции. Отрицательные значения
// приводятся к нулю, нулевое количество удаляет позицию.
func (c *CartUseCase) UpdateQuantity(ctx context.Context, sessionID string, productID, quantity int64) (*CartView, error) {
	const op = "CartUseCase.UpdateQuantity"

	cart, err := c.restore(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	cart.UpdateQuantity(productID, quantity)

	if err := c.cartRepo.Save(ctx, sessionID, cart.Items()); err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCartView(cart), nil
}

// RemoveItem удаляет позицию. Отсутствие позиции не является ошибкой.
func (c *CartUseCase) RemoveItem(ctx context.Context, sessionID string, productID int64) (*CartView, error) {
	const op = "CartUseCase.RemoveItem"

	cart, err := c.restore(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	cart.RemoveItem(productID)

	if err := c.cartRepo.Save(ctx, sessionID, cart.Items()); err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCartView(cart), nil
}

// ClearCart безусловно опустошает корзину и записывает пустой снимок.
func (c *CartUseCase) ClearCart(ctx context.Context, sessionID string) error {
	const op = "CartUseCase.ClearCart"

	if err := c.cartRepo.Save(ctx, sessionID, nil); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// Checkout оформляет заказ: составляет текст, собирает исходящую ссылку и
// фиксирует событие order_dispatched в outbox. Корзина очищается только после
// фиксации события; при сбое фиксации корзина остаётся нетронутой.
func (c *CartUseCase) Checkout(ctx context.Context, req *CheckoutReq) (*CheckoutRes, error) {
	const op = "CartUseCase.Checkout"

	cart, err := c.restore(ctx, req.SessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if cart.IsEmpty() {
		return nil, e.ErrEmptyCart
	}

	var zone *domain.DeliveryZone
	if req.DeliveryZoneID != nil {
		zone, err = c.zoneRepo.GetByID(ctx, *req.DeliveryZoneID)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	summary := domain.ComposeOrderSummary(cart, zone,
		c.dispatchCfg.Header, c.dispatchCfg.TotalLabel, c.dispatchCfg.Footer)
	orderURL := c.dispatcher.OrderLink(summary.Text())

	payload, err := json.Marshal(orderEventPayload{
		SessionID:  req.SessionID,
		Lines:      summary.Lines,
		Total:      summary.Total,
		ItemCount:  cart.ItemCount(),
		ComposedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, tr.CtxKey, tx.Transaction())

	// Подтверждение передачи заказа: без зафиксированного события
	// очистка корзины не выполняется.
	if _, err = c.outboxRepo.Create(ctx, NewOutboxEvent(uuid.NewString(), OrderDispatched, req.SessionID, payload)); err != nil {
		return nil, e.Wrap(op, e.Wrap(err.Error(), e.ErrDispatchFailed))
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, e.Wrap(err.Error(), e.ErrDispatchFailed))
	}

	if err := c.cartRepo.Delete(ctx, req.SessionID); err != nil {
		// Заказ уже передан, поэтому ошибка очистки не отменяет оформление.
		c.logger.Warnf("Failed to clear cart after checkout, session: %s: %v", req.SessionID, err)
	}

	return &CheckoutRes{
		OrderURL: orderURL,
		Summary:  summary.Text(),
		Total:    summary.Total,
	}, nil
}

// restore загружает снимок корзины и восстанавливает из него состояние.
func (c *CartUseCase) restore(ctx context.Context, sessionID string) (*domain.Cart, error) {
	items, err := c.cartRepo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return domain.RestoreCart(items), nil
}

// product возвращает продукт из кэша или из базы, кэшируя промах в фоне.
func (c *CartUseCase) product(ctx context.Context, id int64) (*domain.Product, error) {
	if product, err := c.cacheRepo.GetProduct(ctx, id); err == nil && product != nil {
		return product, nil
	}

	product, err := c.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := c.cacheRepo.SetProduct(bgCtx, product); err != nil {
			c.logger.Warnf("Failed to cache product in background: %v", err)
		}
	}()

	return product, nil
}
