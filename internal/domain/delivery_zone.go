package domain

import "time"

// DeliveryZone описывает зону доставки с фиксированной ценой
type DeliveryZone struct {
	ID        int64
	Name      string
	Price     int64 // Цена доставки в минимальных единицах валюты
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewDeliveryZone(name string, price int64) *DeliveryZone {
	return &DeliveryZone{
		Name:  name,
		Price: price,
	}
}
