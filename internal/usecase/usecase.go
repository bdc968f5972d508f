package usecase

import (
	"context"

	"github.com/matbakh-tech/go-backend/internal/domain"
)

type CatalogUC interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	ListProducts(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ListDeliveryZones(ctx context.Context) ([]domain.DeliveryZone, error)

	CreateProduct(ctx context.Context, req *CreateProductReq) (*domain.Product, error)
	UpdateProduct(ctx context.Context, req *UpdateProductReq) (*domain.Product, error)
	UpdateProductPrice(ctx context.Context, req *UpdatePriceReq) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	UploadProductImage(ctx context.Context, id int64, image *ProductImage) (*domain.Product, error)

	CreateDeliveryZone(ctx context.Context, req *UpsertZoneReq) (*domain.DeliveryZone, error)
	UpdateDeliveryZone(ctx context.Context, req *UpsertZoneReq) (*domain.DeliveryZone, error)
	DeleteDeliveryZone(ctx context.Context, id int64) error
}

type CartUC interface {
	GetCart(ctx context.Context, sessionID string) (*CartView, error)
	AddItem(ctx context.Context, sessionID string, productID int64) (*CartView, error)
	UpdateQuantity(ctx context.Context, sessionID string, productID, quantity int64) (*CartView, error)
	RemoveItem(ctx context.Context, sessionID string, productID int64) (*CartView, error)
	ClearCart(ctx context.Context, sessionID string) error
	Checkout(ctx context.Context, req *CheckoutReq) (*CheckoutRes, error)
}
