package converter

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID              int64           `db:"id"`
	CategoryID      *int64          `db:"category_id"`
	Name            string          `db:"name"`
	Description     string          `db:"description"`
	Price           int64           `db:"price"`
	PriceUnit       string          `db:"price_unit"`
	PriceUnitAmount decimal.Decimal `db:"price_unit_amount"`
	ImageKey        string          `db:"image_key"`
	IsPopular       bool            `db:"is_popular"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       *time.Time      `db:"updated_at"`
	IsArchived      bool            `db:"is_archived"`
}

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	Slug      string     `db:"slug"`
	ImageKey  string     `db:"image_key"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
	IsActive  bool       `db:"is_active"`
}

// DeliveryZoneModel представляет запись таблицы delivery_zones в PostgreSQL.
type DeliveryZoneModel struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	Price     int64      `db:"price"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	Key         string     `db:"partition_key"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
