package converter

import (
	"github.com/matbakh-tech/go-backend/internal/domain"
)

// ProductConverter преобразует продукты между domain и кэш-моделью Redis.
type ProductConverter struct{}

func NewProductConverter() ProductConverter { return ProductConverter{} }

func (ProductConverter) ToRedisModel(entity *domain.Product) *ProductRedisModel {
	return &ProductRedisModel{
		ID:              entity.ID,
		CategoryID:      entity.CategoryID,
		Name:            entity.Name,
		Description:     entity.Description,
		Price:           entity.Price,
		PriceUnit:       string(entity.PriceUnit),
		PriceUnitAmount: entity.PriceUnitAmount,
		ImageKey:        entity.ImageKey,
		IsPopular:       entity.IsPopular,
		CreatedAt:       entity.CreatedAt,
		UpdatedAt:       entity.UpdatedAt,
	}
}

func (ProductConverter) ToEntity(model *ProductRedisModel) *domain.Product {
	return &domain.Product{
		ID:              model.ID,
		CategoryID:      model.CategoryID,
		Name:            model.Name,
		Description:     model.Description,
		Price:           model.Price,
		PriceUnit:       domain.PriceUnit(model.PriceUnit),
		PriceUnitAmount: model.PriceUnitAmount,
		ImageKey:        model.ImageKey,
		IsPopular:       model.IsPopular,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

// CartItemConverter преобразует позиции корзины между domain и снимком Redis.
type CartItemConverter struct {
	products ProductConverter
}

func NewCartItemConverter(products ProductConverter) CartItemConverter {
	return CartItemConverter{products: products}
}

func (c CartItemConverter) ToArrRedisModel(items []domain.CartItem) []CartItemRedisModel {
	result := make([]CartItemRedisModel, 0, len(items))
	for _, item := range items {
		result = append(result, CartItemRedisModel{
			Product:  *c.products.ToRedisModel(&item.Product),
			Quantity: item.Quantity,
		})
	}

	return result
}

func (c CartItemConverter) ToArrEntity(models []CartItemRedisModel) []domain.CartItem {
	result := make([]domain.CartItem, 0, len(models))
	for _, model := range models {
		result = append(result, domain.CartItem{
			Product:  *c.products.ToEntity(&model.Product),
			Quantity: model.Quantity,
		})
	}

	return result
}
