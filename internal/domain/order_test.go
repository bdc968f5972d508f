package domain

import (
	"strings"
	"testing"
)

func TestFormatMinorUnits(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{1300, "13.00"},
		{99999, "999.99"},
		{100050, "1000.50"},
	}

	for _, tc := range cases {
		if got := FormatMinorUnits(tc.amount); got != tc.want {
			t.Errorf("FormatMinorUnits(%d) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestComposeOrderSummary_LineFormat(t *testing.T) {
	cart := NewCart()
	bread := Product{ID: 1, Name: "Sourdough", Price: 650}
	cart.AddItem(bread)
	cart.AddItem(bread)

	summary := ComposeOrderSummary(cart, nil, "New order:", "Total", "Please confirm the order. Thank you!")

	want := []string{
		"New order:",
		"Sourdough (2×) - 13.00",
		"Total: 13.00",
		"Please confirm the order. Thank you!",
	}

	if len(summary.Lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %v", len(want), len(summary.Lines), summary.Lines)
	}
	for i := range want {
		if summary.Lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, summary.Lines[i], want[i])
		}
	}
	if summary.Total != 1300 {
		t.Errorf("expected total 1300, got %d", summary.Total)
	}
}

func TestComposeOrderSummary_WithDeliveryZone(t *testing.T) {
	cart := NewCart()
	cart.AddItem(Product{ID: 1, Name: "Cake", Price: 2000})

	zone := &DeliveryZone{ID: 3, Name: "Old Town", Price: 500}
	summary := ComposeOrderSummary(cart, zone, "New order:", "Total", "Thanks!")

	text := summary.Text()
	if !strings.Contains(text, "Old Town - 5.00") {
		t.Errorf("expected zone line in summary, got:\n%s", text)
	}
	if !strings.Contains(text, "Total: 25.00") {
		t.Errorf("expected delivery included in total, got:\n%s", text)
	}
	if summary.Total != 2500 {
		t.Errorf("expected total 2500, got %d", summary.Total)
	}
}

func TestOrderSummaryText_JoinsWithNewlines(t *testing.T) {
	summary := &OrderSummary{Lines: []string{"a", "b", "c"}}

	if summary.Text() != "a\nb\nc" {
		t.Errorf("unexpected text: %q", summary.Text())
	}
}
