package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceUnit — единица измерения, за которую указана цена продукта.
type PriceUnit string

const (
	UnitPiece PriceUnit = "piece" // за штуку
	UnitDozen PriceUnit = "dozen" // за дюжину
	UnitKilo  PriceUnit = "kg"    // за килограмм
)

// ValidPriceUnit проверяет, что значение входит в перечисление единиц.
func ValidPriceUnit(u PriceUnit) bool {
	switch u {
	case UnitPiece, UnitDozen, UnitKilo:
		return true
	default:
		return false
	}
}

// Product описывает продукт каталога
type Product struct {
	ID              int64
	CategoryID      *int64
	Name            string
	Description     string
	Price           int64 // Цена хранится в минимальных единицах валюты
	PriceUnit       PriceUnit
	PriceUnitAmount decimal.Decimal // множитель единицы, например 0.5 = полкило
	ImageKey        string          // ключ объекта в S3, хранится на самой записи
	IsPopular       bool
	CreatedAt       time.Time
	UpdatedAt       *time.Time
	IsArchived      bool
}

func NewProduct(name, description string, price int64, categoryID *int64) *Product {
	return &Product{
		CategoryID:      categoryID,
		Name:            name,
		Description:     description,
		Price:           price,
		PriceUnit:       UnitPiece,
		PriceUnitAmount: decimal.NewFromInt(1),
	}
}
