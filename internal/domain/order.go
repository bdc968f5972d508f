package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// OrderSummary — человекочитаемый текст заказа, передаваемый во внешний
// мессенджер вместо полноценного бэкенда обработки заказов.
type OrderSummary struct {
	Lines []string
	Total int64 // итог в минимальных единицах валюты, включая доставку
}

// ComposeOrderSummary формирует текст заказа: заголовок, строка на каждую
// позицию вида "название (количество×) - сумма", опциональная строка доставки,
// итоговая строка и закрывающая просьба. Все суммы выводятся в основных
// единицах валюты с двумя знаками после запятой.
func ComposeOrderSummary(cart *Cart, zone *DeliveryZone, header, totalLabel, footer string) *OrderSummary {
	items := cart.Items()
	lines := make([]string, 0, len(items)+4)
	lines = append(lines, header)

	for _, item := range items {
		lineTotal := item.Product.Price * item.Quantity
		lines = append(lines, fmt.Sprintf("%s (%d×) - %s", item.Product.Name, item.Quantity, FormatMinorUnits(lineTotal)))
	}

	total := cart.Total()
	if zone != nil {
		lines = append(lines, fmt.Sprintf("%s - %s", zone.Name, FormatMinorUnits(zone.Price)))
		total += zone.Price
	}

	lines = append(lines, fmt.Sprintf("%s: %s", totalLabel, FormatMinorUnits(total)))
	lines = append(lines, footer)

	return &OrderSummary{Lines: lines, Total: total}
}

// Text возвращает итоговый многострочный текст заказа.
func (s *OrderSummary) Text() string {
	return strings.Join(s.Lines, "\n")
}

// FormatMinorUnits переводит сумму из минимальных единиц в основные
// и выводит строку с двумя знаками после запятой, например 1300 -> "13.00".
func FormatMinorUnits(amount int64) string {
	return decimal.NewFromInt(amount).Div(decimal.NewFromInt(100)).StringFixed(2)
}
