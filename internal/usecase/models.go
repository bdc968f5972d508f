package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/matbakh-tech/go-backend/internal/domain"
)

// CATALOG USECASE

// ProductFilter — необязательные фильтры списка продуктов.
type ProductFilter struct {
	CategoryID *int64
	IsPopular  *bool
}

// CreateProductReq — запрос на создание продукта.
type CreateProductReq struct {
	Name            string
	Description     string
	Price           int64
	PriceUnit       domain.PriceUnit
	PriceUnitAmount decimal.Decimal
	CategoryID      *int64
	IsPopular       bool
}

// UpdateProductReq — запрос на полное обновление продукта.
type UpdateProductReq struct {
	ID              int64
	Name            string
	Description     string
	Price           int64
	PriceUnit       domain.PriceUnit
	PriceUnitAmount decimal.Decimal
	CategoryID      *int64
	IsPopular       bool
}

// UpdatePriceReq — запрос на изменение цены и единицы измерения.
// Нулевые указатели оставляют единицу и множитель без изменений.
type UpdatePriceReq struct {
	ID              int64
	Price           int64
	PriceUnit       *domain.PriceUnit
	PriceUnitAmount *decimal.Decimal
}

// UpsertZoneReq — запрос на создание или обновление зоны доставки.
type UpsertZoneReq struct {
	ID    int64 // игнорируется при создании
	Name  string
	Price int64
}

// ProductImage представляет изображение, загруженное через multipart/form-data.
type ProductImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type из multipart (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// CART USECASE

// CartItemView — позиция корзины в ответе API.
type CartItemView struct {
	Product   domain.Product
	Quantity  int64
	LineTotal int64
}

// CartView — снимок корзины с производными суммами.
type CartView struct {
	Items     []CartItemView
	Total     int64
	ItemCount int64
}

// CheckoutReq — запрос на оформление заказа.
type CheckoutReq struct {
	SessionID      string
	DeliveryZoneID *int64
}

// CheckoutRes — результат оформления: текст заказа и ссылка внешнего канала.
type CheckoutRes struct {
	OrderURL string
	Summary  string
	Total    int64
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	OrderDispatched OutboxEventType = "order_dispatched"
	ProductChanged  OutboxEventType = "product_changed"
)

// OutboxEvent — запись таблицы outbox_events, доставляемая в Kafka воркером.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	Key         string // партиционный ключ Kafka
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// WriteRawMessageReq — запрос на отправку готового сообщения в Kafka.
type WriteRawMessageReq struct {
	Key     string
	Payload []byte
}

// MAPPERS

func NewCartView(cart *domain.Cart) *CartView {
	items := cart.Items()
	views := make([]CartItemView, 0, len(items))
	for _, item := range items {
		views = append(views, CartItemView{
			Product:   item.Product,
			Quantity:  item.Quantity,
			LineTotal: item.Product.Price * item.Quantity,
		})
	}

	return &CartView{
		Items:     views,
		Total:     cart.Total(),
		ItemCount: cart.ItemCount(),
	}
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, key string, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		Key:       key,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now().UTC(),
	}
}

func NewWriteRawMessageReq(key string, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		Key:     key,
		Payload: payload,
	}
}

func NewProductImage(data []byte, mimeType string, size int64, name string) *ProductImage {
	return &ProductImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewCheckoutReq(sessionID string, zoneID *int64) *CheckoutReq {
	return &CheckoutReq{
		SessionID:      sessionID,
		DeliveryZoneID: zoneID,
	}
}
