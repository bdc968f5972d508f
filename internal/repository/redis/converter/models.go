package converter

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRedisModel — JSON-представление продукта в кэше.
type ProductRedisModel struct {
	ID              int64           `json:"id"`
	CategoryID      *int64          `json:"category_id,omitempty"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Price           int64           `json:"price"`
	PriceUnit       string          `json:"price_unit"`
	PriceUnitAmount decimal.Decimal `json:"price_unit_amount"`
	ImageKey        string          `json:"image_key,omitempty"`
	IsPopular       bool            `json:"is_popular"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       *time.Time      `json:"updated_at,omitempty"`
}

// CartItemRedisModel — JSON-представление позиции в снимке корзины.
// Снимок хранит продукт целиком, чтобы корзина переживала рестарты
// без обращения к каталогу при чтении.
type CartItemRedisModel struct {
	Product  ProductRedisModel `json:"product"`
	Quantity int64             `json:"quantity"`
}
