package usecase

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/matbakh-tech/go-backend/internal/domain"
	"github.com/matbakh-tech/go-backend/pkg/e"
	"github.com/matbakh-tech/go-backend/pkg/logger"
	"github.com/matbakh-tech/go-backend/pkg/tr"
)

// CatalogUseCase реализует чтение каталога и административные мутации
// продуктов, цен и зон доставки.
type CatalogUseCase struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
	zoneRepo     DeliveryZoneRepository
	outboxRepo   OutboxRepository
	cacheRepo    CacheRepository
	imagesInfra  ImagesInfra
	dbPool       transaction.Transactional
	logger       logger.Logger
}

func NewCatalogUC(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	zoneRepo DeliveryZoneRepository,
	outboxRepo OutboxRepository,
	cacheRepo CacheRepository,
	imagesInfra ImagesInfra,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		zoneRepo:     zoneRepo,
		outboxRepo:   outboxRepo,
		cacheRepo:    cacheRepo,
		imagesInfra:  imagesInfra,
		dbPool:       dbPool,
		logger:       logger,
	}
}

// productEventPayload — тело события product_changed в outbox.
type productEventPayload struct {
	ProductID int64     `json:"product_id"`
	Action    string    `json:"action"`
	ChangedAt time.Time `json:"changed_at"`
}

// ListCategories возвращает все категории каталога.
func (c *CatalogUseCase) ListCategories(ctx context.Context) ([]domain.Category, error) {
	const op = "CatalogUseCase.ListCategories"

	categories, err := c.categoryRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return categories, nil
}

// GetCategory возвращает категорию по идентификатору.
func (c *CatalogUseCase) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	const op = "CatalogUseCase.GetCategory"

	category, err := c.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return category, nil
}

// ListProducts возвращает продукты с необязательными фильтрами по категории
// и признаку популярности.
func (c *CatalogUseCase) ListProducts(ctx context.Context, filter ProductFilter) ([]domain.Product, error) {
	const op = "CatalogUseCase.ListProducts"

	products, err := c.productRepo.List(ctx, filter)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// GetProduct возвращает продукт из кэша или из базы, кэшируя промах в фоне.
func (c *CatalogUseCase) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	const op = "CatalogUseCase.GetProduct"

	if product, err := c.cacheRepo.GetProduct(ctx, id); err == nil && product != nil {
		return product, nil
	}

	product, err := c.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
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

// ListDeliveryZones возвращает все зоны доставки.
func (c *CatalogUseCase) ListDeliveryZones(ctx context.Context) ([]domain.DeliveryZone, error) {
	const op = "CatalogUseCase.ListDeliveryZones"

	zones, err := c.zoneRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return zones, nil
}

// CreateProduct создаёт продукт и фиксирует событие product_changed
// в одной транзакции с записью.
func (c *CatalogUseCase) CreateProduct(ctx context.Context, req *CreateProductReq) (*domain.Product, error) {
	const op = "CatalogUseCase.CreateProduct"

	if err := validateProductFields(req.Name, req.Price, req.PriceUnit, req.PriceUnitAmount); err != nil {
		return nil, e.Wrap(op, err)
	}

	product := domain.NewProduct(strings.TrimSpace(req.Name), req.Description, req.Price, req.CategoryID)
	product.PriceUnit = req.PriceUnit
	product.PriceUnitAmount = req.PriceUnitAmount
	product.IsPopular = req.IsPopular

	var created *domain.Product
	err := c.inTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = c.productRepo.Create(txCtx, product)
		if err != nil {
			return err
		}

		return c.recordProductEvent(txCtx, created.ID, "created")
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return created, nil
}

// UpdateProduct полностью обновляет продукт.
func (c *CatalogUseCase) UpdateProduct(ctx context.Context, req *UpdateProductReq) (*domain.Product, error) {
	const op = "CatalogUseCase.UpdateProduct"

	if err := validateProductFields(req.Name, req.Price, req.PriceUnit, req.PriceUnitAmount); err != nil {
		return nil, e.Wrap(op, err)
	}

	product := domain.NewProduct(strings.TrimSpace(req.Name), req.Description, req.Price, req.CategoryID)
	product.ID = req.ID
	product.PriceUnit = req.PriceUnit
	product.PriceUnitAmount = req.PriceUnitAmount
	product.IsPopular = req.IsPopular

	var updated *domain.Product
	err := c.inTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = c.productRepo.Update(txCtx, product)
		if err != nil {
			return err
		}

		return c.recordProductEvent(txCtx, updated.ID, "updated")
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	c.invalidateProducts(req.ID)
	return updated, nil
}

// UpdateProductPrice меняет цену и, опционально, единицу измерения
// и её множитель.
func (c *CatalogUseCase) UpdateProductPrice(ctx context.Context, req *UpdatePriceReq) (*domain.Product, error) {
	const op = "CatalogUseCase.UpdateProductPrice"

	if req.Price < 0 {
		return nil, e.Wrap(op, e.ErrNegativePrice)
	}
	if req.PriceUnit != nil && !domain.ValidPriceUnit(*req.PriceUnit) {
		return nil, e.Wrap(op, e.ErrInvalidPriceUnit)
	}
	if req.PriceUnitAmount != nil && !req.PriceUnitAmount.IsPositive() {
		return nil, e.Wrap(op, e.ErrInvalidUnitAmount)
	}

	var updated *domain.Product
	err := c.inTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = c.productRepo.UpdatePrice(txCtx, req)
		if err != nil {
			return err
		}

		return c.recordProductEvent(txCtx, updated.ID, "price_updated")
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	c.invalidateProducts(req.ID)
	return updated, nil
}

// DeleteProduct удаляет продукт.
func (c *CatalogUseCase) DeleteProduct(ctx context.Context, id int64) error {
	const op = "CatalogUseCase.DeleteProduct"

	err := c.inTx(ctx, func(txCtx context.Context) error {
		if err := c.productRepo.Delete(txCtx, id); err != nil {
			return err
		}

		return c.recordProductEvent(txCtx, id, "deleted")
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	c.invalidateProducts(id)
	return nil
}

// UploadProductImage сохраняет изображение в объектное хранилище и записывает
// ключ объекта на самой записи продукта. Ключ никогда не выводится из
// отображаемого имени. При сбое записи загруженный объект убирается в фоне.
func (c *CatalogUseCase) UploadProductImage(ctx context.Context, id int64, image *ProductImage) (*domain.Product, error) {
	const op = "CatalogUseCase.UploadProductImage"

	product, err := c.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	key, err := c.imagesInfra.UploadImage(ctx, product.Name, image)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := c.productRepo.SetImageKey(ctx, id, key); err != nil {
		c.logger.Warnf("Cleaning up orphaned image after failed key update. product_id: %d, key: %s", id, key)
		c.imagesInfra.CleanupImage(key)
		return nil, e.Wrap(op, err)
	}

	product.ImageKey = key
	c.invalidateProducts(id)
	return product, nil
}

// CreateDeliveryZone создаёт зону доставки.
func (c *CatalogUseCase) CreateDeliveryZone(ctx context.Context, req *UpsertZoneReq) (*domain.DeliveryZone, error) {
	const op = "CatalogUseCase.CreateDeliveryZone"

	if err := validateZoneFields(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	zone, err := c.zoneRepo.Create(ctx, domain.NewDeliveryZone(strings.TrimSpace(req.Name), req.Price))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return zone, nil
}

// UpdateDeliveryZone обновляет зону доставки.
func (c *CatalogUseCase) UpdateDeliveryZone(ctx context.Context, req *UpsertZoneReq) (*domain.DeliveryZone, error) {
	const op = "CatalogUseCase.UpdateDeliveryZone"

	if err := validateZoneFields(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	zone := domain.NewDeliveryZone(strings.TrimSpace(req.Name), req.Price)
	zone.ID = req.ID

	updated, err := c.zoneRepo.Update(ctx, zone)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return updated, nil
}

// DeleteDeliveryZone удаляет зону доставки.
func (c *CatalogUseCase) DeleteDeliveryZone(ctx context.Context, id int64) error {
	const op = "CatalogUseCase.DeleteDeliveryZone"

	if err := c.zoneRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// inTx выполняет fn в транзакции PostgreSQL, пробрасывая её через контекст.
func (c *CatalogUseCase) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, tr.CtxKey, tx.Transaction())

	if err = fn(ctx); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// recordProductEvent фиксирует событие product_changed в рамках текущей транзакции.
func (c *CatalogUseCase) recordProductEvent(ctx context.Context, productID int64, action string) error {
	payload, err := json.Marshal(productEventPayload{
		ProductID: productID,
		Action:    action,
		ChangedAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	_, err = c.outboxRepo.Create(ctx, NewOutboxEvent(
		uuid.NewString(), ProductChanged, strconv.FormatInt(productID, 10), payload,
	))
	return err
}

// invalidateProducts удаляет продукты из кэша, логируя ошибку без прерывания.
func (c *CatalogUseCase) invalidateProducts(ids ...int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	if err := c.cacheRepo.DeleteProducts(ctx, ids); err != nil {
		c.logger.Warnf("Failed to invalidate product cache: %v", err)
	}
}

// validateProductFields проверяет корректность полей продукта перед мутацией.
func validateProductFields(name string, price int64, unit domain.PriceUnit, unitAmount decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return e.ErrProductNameRequired
	}

	if price < 0 {
		return e.ErrNegativePrice
	}

	if !domain.ValidPriceUnit(unit) {
		return e.ErrInvalidPriceUnit
	}

	if !unitAmount.IsPositive() {
		return e.ErrInvalidUnitAmount
	}

	return nil
}

// validateZoneFields проверяет корректность полей зоны доставки.
func validateZoneFields(req *UpsertZoneReq) error {
	if strings.TrimSpace(req.Name) == "" {
		return e.ErrZoneNameRequired
	}

	if req.Price < 0 {
		return e.ErrNegativePrice
	}

	return nil
}
