package domain

// CartItem — снимок продукта в корзине плюс количество.
// Цена фиксируется в момент добавления: последующие изменения каталога
// не затрагивают уже добавленные позиции.
type CartItem struct {
	Product  Product
	Quantity int64
}

// Cart хранит выбранные позиции одной сессии в порядке добавления.
// Инварианты: количество каждой позиции >= 1, идентификатор продукта уникален.
type Cart struct {
	items []CartItem
}

// NewCart создаёт пустую корзину.
func NewCart() *Cart {
	return &Cart{}
}

// RestoreCart восстанавливает корзину из сохранённого снимка,
// отбрасывая позиции, нарушающие инварианты.
func RestoreCart(items []CartItem) *Cart {
	c := &Cart{items: make([]CartItem, 0, len(items))}
	for _, item := range items {
		if item.Quantity < 1 {
			continue
		}
		if c.find(item.Product.ID) != -1 {
			continue // дубликат идентификатора в снимке
		}
		c.items = append(c.items, item)
	}
	return c
}

// AddItem добавляет продукт в корзину. Если позиция с тем же идентификатором
// уже есть, её количество увеличивается на единицу, новая запись не создаётся.
func (c *Cart) AddItem(p Product) {
	if i := c.find(p.ID); i != -1 {
		c.items[i].Quantity++
		return
	}
	c.items = append(c.items, CartItem{Product: p, Quantity: 1})
}

// RemoveItem удаляет позицию по идентификатору продукта.
// Отсутствие позиции не является ошибкой.
func (c *Cart) RemoveItem(productID int64) {
	if i := c.find(productID); i != -1 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
}

// UpdateQuantity устанавливает количество позиции. Отрицательные значения
// приводятся к нулю, нулевое количество удаляет позицию целиком.
func (c *Cart) UpdateQuantity(productID, quantity int64) {
	if quantity < 0 {
		quantity = 0
	}
	if quantity == 0 {
		c.RemoveItem(productID)
		return
	}
	if i := c.find(productID); i != -1 {
		c.items[i].Quantity = quantity
	}
}

// Clear безусловно опустошает корзину.
func (c *Cart) Clear() {
	c.items = nil
}

// Items возвращает копию позиций в порядке добавления.
func (c *Cart) Items() []CartItem {
	items := make([]CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// Total вычисляет сумму корзины в минимальных единицах валюты.
func (c *Cart) Total() int64 {
	var total int64
	for _, item := range c.items {
		total += item.Product.Price * item.Quantity
	}
	return total
}

// ItemCount вычисляет суммарное количество единиц товара.
func (c *Cart) ItemCount() int64 {
	var count int64
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// IsEmpty сообщает, пуста ли корзина.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) find(productID int64) int {
	for i, item := range c.items {
		if item.Product.ID == productID {
			return i
		}
	}
	return -1
}
