package usecase

import (
	"context"

	"github.com/matbakh-tech/go-backend/internal/domain"
)

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdatePrice(ctx context.Context, req *UpdatePriceReq) (*domain.Product, error)
	SetImageKey(ctx context.Context, id int64, imageKey string) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
}

type CategoryRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
}

type DeliveryZoneRepository interface {
	Create(ctx context.Context, zone *domain.DeliveryZone) (*domain.DeliveryZone, error)
	Update(ctx context.Context, zone *domain.DeliveryZone) (*domain.DeliveryZone, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.DeliveryZone, error)
	List(ctx context.Context) ([]domain.DeliveryZone, error)
}

// CartRepository хранит снимок корзины сессии.
// Load обязан возвращать пустой срез для отсутствующего или повреждённого
// снимка, никогда не поднимая это как ошибку движка корзины.
type CartRepository interface {
	Load(ctx context.Context, sessionID string) ([]domain.CartItem, error)
	Save(ctx context.Context, sessionID string, items []domain.CartItem) error
	Delete(ctx context.Context, sessionID string) error
}

type CacheRepository interface {
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	SetProduct(ctx context.Context, product *domain.Product) error
	DeleteProducts(ctx context.Context, ids []int64) error
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}
