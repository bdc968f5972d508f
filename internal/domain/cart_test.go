package domain

import (
	"testing"
)

func product(id int64, price int64) Product {
	return Product{ID: id, Name: "product", Price: price, PriceUnit: UnitPiece}
}

func TestNewCart_Empty(t *testing.T) {
	cart := NewCart()

	if !cart.IsEmpty() {
		t.Error("expected new cart to be empty")
	}
	if cart.Total() != 0 {
		t.Errorf("expected zero total, got %d", cart.Total())
	}
	if cart.ItemCount() != 0 {
		t.Errorf("expected zero item count, got %d", cart.ItemCount())
	}
}

func TestAddItem_NewProduct(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product(1, 500))

	items := cart.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Quantity != 1 {
		t.Errorf("expected quantity 1, got %d", items[0].Quantity)
	}
}

func TestAddItem_MergesByProductID(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product(1, 500))
	cart.AddItem(product(1, 500))
	cart.AddItem(product(1, 500))

	items := cart.Items()
	if len(items) != 1 {
		t.Fatalf("expected single merged line, got %d lines", len(items))
	}
	if items[0].Quantity != 3 {
		t.Errorf("expected quantity 3, got %d", items[0].Quantity)
	}
}

func TestAddItem_DistinctProductsKeepOrder(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product(2, 100))
	cart.AddItem(product(7, 200))
	cart.AddItem(product(2, 100))

	items := cart.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(items))
	}
	if items[0].Product.ID != 2 || items[1].Product.ID != 7 {
		t.Errorf("expected insertion order [2 7], got [%d %d]", items[0].Product.ID, items[1].Product.ID)
	}
	if items[0].Quantity != 2 {
		t.Errorf("expected first line quantity 2, got %d", items[0].Quantity)
	}
}

func TestUpdateQuantity_ClampsNegativeToZero(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product(1, 500))

	cart.UpdateQuantity(1, -5)

	if !cart.IsEmpty() {
		t.Error("expected cart to be empty after clamping to zero")
	}
}

func TestUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product(1, 500))
	cart.AddItem(product(2, 300))

	cart.UpdateQuantity(1, 0)

	items := cart.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(items))
	}
	if items[0].Product.ID != 2 {
		t.Errorf("expected remaining line for product 2, got %d", items[0].Product.ID)
	}
}

func TestUpdateQuantity_SetsExactValue(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product(1, 500))

	cart.UpdateQuantity(1, 12)

	if cart.ItemCount() != 12 {
		t.Errorf("expected item count 12, got %d", cart.ItemCount())
	}
}

func TestUpdateQuantity_UnknownProductIsNoop(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product(1, 500))

	cart.UpdateQuantity(99, 3)

	if cart.ItemCount() != 1 {
		t.Errorf("expected unchanged cart, got item count %d", cart.ItemCount())
	}
}

func TestRemoveItem_AbsentProductIsNoop(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product(1, 500))

	cart.RemoveItem(42)

	if len(cart.Items()) != 1 {
		t.Error("expected removal of absent product to leave cart unchanged")
	}
}

func TestTotal_SumOfPriceTimesQuantity(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product(1, 500))
	cart.AddItem(product(1, 500))
	cart.AddItem(product(2, 250))

	// 2*500 + 1*250
	if cart.Total() != 1250 {
		t.Errorf("expected total 1250, got %d", cart.Total())
	}
	if cart.ItemCount() != 3 {
		t.Errorf("expected item count 3, got %d", cart.ItemCount())
	}
}

func TestClear_EmptiesCart(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product(1, 500))
	cart.AddItem(product(2, 300))

	cart.Clear()

	if !cart.IsEmpty() {
		t.Error("expected empty cart after clear")
	}
	if cart.Total() != 0 {
		t.Errorf("expected zero total after clear, got %d", cart.Total())
	}
}

func TestRestoreCart_DropsInvalidLines(t *testing.T) {
	cart := RestoreCart([]CartItem{
		{Product: product(1, 500), Quantity: 2},
		{Product: product(2, 300), Quantity: 0},
		{Product: product(3, 100), Quantity: -4},
		{Product: product(1, 500), Quantity: 7}, // дубликат по ID
	})

	items := cart.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 valid line, got %d", len(items))
	}
	if items[0].Product.ID != 1 || items[0].Quantity != 2 {
		t.Errorf("expected first occurrence kept as-is, got id=%d qty=%d", items[0].Product.ID, items[0].Quantity)
	}
}

func TestItems_ReturnsCopy(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product(1, 500))

	items := cart.Items()
	items[0].Quantity = 99

	if cart.ItemCount() != 1 {
		t.Error("mutating returned slice must not affect the cart")
	}
}
