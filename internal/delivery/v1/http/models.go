package http

import (
	"github.com/matbakh-tech/go-backend/internal/domain"
	"github.com/matbakh-tech/go-backend/internal/usecase"
	"github.com/shopspring/decimal"
)

// Ответные модели API. Цены отдаются в минорных единицах вместе
// с отформатированным значением в мажорных единицах.

type ProductResponse struct {
	ID              int64           `json:"id"`
	CategoryID      *int64          `json:"category_id,omitempty"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Price           int64           `json:"price"`
	PriceFormatted  string          `json:"price_formatted"`
	PriceUnit       string          `json:"price_unit"`
	PriceUnitAmount decimal.Decimal `json:"price_unit_amount"`
	ImageKey        string          `json:"image_key,omitempty"`
	IsPopular       bool            `json:"is_popular"`
}

type CategoryResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	ImageKey string `json:"image_key,omitempty"`
}

type DeliveryZoneResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Price          int64  `json:"price"`
	PriceFormatted string `json:"price_formatted"`
}

type CartItemResponse struct {
	Product   ProductResponse `json:"product"`
	Quantity  int64           `json:"quantity"`
	LineTotal int64           `json:"line_total"`
}

type CartResponse struct {
	Items          []CartItemResponse `json:"items"`
	Total          int64              `json:"total"`
	TotalFormatted string             `json:"total_formatted"`
	ItemCount      int64              `json:"item_count"`
}

type CheckoutResponse struct {
	OrderURL       string `json:"order_url"`
	Summary        string `json:"summary"`
	Total          int64  `json:"total"`
	TotalFormatted string `json:"total_formatted"`
}

type LoginRequest struct {
	Secret string `json:"secret"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type ProductRequest struct {
	CategoryID      *int64  `json:"category_id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           string  `json:"price"` // мажорные единицы, например "599.99"
	PriceUnit       *string `json:"price_unit"`
	PriceUnitAmount *string `json:"price_unit_amount"`
	IsPopular       bool    `json:"is_popular"`
}

type PriceRequest struct {
	Price           string  `json:"price"`
	PriceUnit       *string `json:"price_unit"`
	PriceUnitAmount *string `json:"price_unit_amount"`
}

type ZoneRequest struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

type CheckoutRequest struct {
	DeliveryZoneID *int64 `json:"delivery_zone_id"`
}

func NewProductResponse(product *domain.Product) ProductResponse {
	return ProductResponse{
		ID:              product.ID,
		CategoryID:      product.CategoryID,
		Name:            product.Name,
		Description:     product.Description,
		Price:           product.Price,
		PriceFormatted:  domain.FormatMinorUnits(product.Price),
		PriceUnit:       string(product.PriceUnit),
		PriceUnitAmount: product.PriceUnitAmount,
		ImageKey:        product.ImageKey,
		IsPopular:       product.IsPopular,
	}
}

func NewArrProductResponse(products []domain.Product) []ProductResponse {
	result := make([]ProductResponse, 0, len(products))
	for i := range products {
		result = append(result, NewProductResponse(&products[i]))
	}

	return result
}

func NewCategoryResponse(category *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:       category.ID,
		Name:     category.Name,
		Slug:     category.Slug,
		ImageKey: category.ImageKey,
	}
}

func NewArrCategoryResponse(categories []domain.Category) []CategoryResponse {
	result := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		result = append(result, NewCategoryResponse(&categories[i]))
	}

	return result
}

func NewDeliveryZoneResponse(zone *domain.DeliveryZone) DeliveryZoneResponse {
	return DeliveryZoneResponse{
		ID:             zone.ID,
		Name:           zone.Name,
		Price:          zone.Price,
		PriceFormatted: domain.FormatMinorUnits(zone.Price),
	}
}

func NewArrDeliveryZoneResponse(zones []domain.DeliveryZone) []DeliveryZoneResponse {
	result := make([]DeliveryZoneResponse, 0, len(zones))
	for i := range zones {
		result = append(result, NewDeliveryZoneResponse(&zones[i]))
	}

	return result
}

func NewCartResponse(view *usecase.CartView) CartResponse {
	items := make([]CartItemResponse, 0, len(view.Items))
	for i := range view.Items {
		items = append(items, CartItemResponse{
			Product:   NewProductResponse(&view.Items[i].Product),
			Quantity:  view.Items[i].Quantity,
			LineTotal: view.Items[i].LineTotal,
		})
	}

	return CartResponse{
		Items:          items,
		Total:          view.Total,
		TotalFormatted: domain.FormatMinorUnits(view.Total),
		ItemCount:      view.ItemCount,
	}
}

func NewCheckoutResponse(res *usecase.CheckoutRes) CheckoutResponse {
	return CheckoutResponse{
		OrderURL:       res.OrderURL,
		Summary:        res.Summary,
		Total:          res.Total,
		TotalFormatted: domain.FormatMinorUnits(res.Total),
	}
}
