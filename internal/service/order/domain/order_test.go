// internal/service/order/domain/order_test.go
package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"signcraft/internal/apperr"
)

func validItems() []Item {
	return []Item{
		{ID: "item-1", ProductID: "prod-banner", Quantity: 2, CalculatedPrice: 100.50},
		{ID: "item-2", ProductID: "prod-decal", Quantity: 10, CalculatedPrice: 3.33},
	}
}

func validAddress() Address {
	return Address{Name: "Dana Ortiz", Street: "500 Elm St", City: "Austin", State: "TX", Zip: "73301"}
}

func TestNewOrderValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(id, userID *string, items *[]Item, shipping *Address)
		wantErr bool
	}{
		{"valid", func(id, userID *string, items *[]Item, shipping *Address) {}, false},
		{"missing id", func(id, _ *string, _ *[]Item, _ *Address) { *id = "" }, true},
		{"missing user", func(_, userID *string, _ *[]Item, _ *Address) { *userID = "" }, true},
		{"no items", func(_, _ *string, items *[]Item, _ *Address) { *items = nil }, true},
		{"zero quantity", func(_, _ *string, items *[]Item, _ *Address) { (*items)[0].Quantity = 0 }, true},
		{"missing product id", func(_, _ *string, items *[]Item, _ *Address) { (*items)[1].ProductID = "" }, true},
		{"missing street", func(_, _ *string, _ *[]Item, shipping *Address) { shipping.Street = "" }, true},
		{"missing zip", func(_, _ *string, _ *[]Item, shipping *Address) { shipping.Zip = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, userID := "order-1", "user-1"
			items := validItems()
			shipping := validAddress()
			tt.mutate(&id, &userID, &items, &shipping)

			order, err := NewOrder(id, "SC-20260831-0001", userID, items, shipping, Address{}, "ground", false, "")
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, StatePending, order.State)
			assert.Equal(t, PaymentPending, order.PaymentState)
		})
	}
}

func TestRecalculateTotalMatchesLineItems(t *testing.T) {
	order, err := NewOrder("order-1", "SC-20260831-0001", "user-1", validItems(), validAddress(), Address{}, "", false, "")
	require.NoError(t, err)

	order.RecalculateTotal()
	// 2*100.50 + 10*3.33
	assert.InDelta(t, 234.30, order.TotalAmount, 1e-9)

	var sum float64
	for i := range order.Items {
		sum += order.Items[i].LineTotal()
	}
	assert.InDelta(t, sum, order.TotalAmount, 1e-9)
}

func TestReservedQuantitiesMergesDuplicateProducts(t *testing.T) {
	items := []Item{
		{ID: "a", ProductID: "prod-banner", Quantity: 2},
		{ID: "b", ProductID: "prod-decal", Quantity: 5},
		{ID: "c", ProductID: "prod-banner", Quantity: 3},
	}
	order, err := NewOrder("order-1", "SC-20260831-0001", "user-1", items, validAddress(), Address{}, "", false, "")
	require.NoError(t, err)

	reserved := order.ReservedQuantities()
	assert.Equal(t, map[string]int{"prod-banner": 5, "prod-decal": 5}, reserved)
}

func TestFormatOrderNumber(t *testing.T) {
	day := time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "SC-20260831-0007", FormatOrderNumber(day, 7))
	assert.Equal(t, "SC-20260831-1234", FormatOrderNumber(day, 1234))
	// 超过四位不截断
	assert.Equal(t, "SC-20260831-10001", FormatOrderNumber(day, 10001))
}

func TestFallbackOrderNumberShape(t *testing.T) {
	day := time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)
	number := FallbackOrderNumber(day)
	assert.True(t, strings.HasPrefix(number, "SC-20260831-"), number)

	suffix := strings.TrimPrefix(number, "SC-20260831-")
	assert.Len(t, suffix, 8)
	assert.NotEqual(t, FallbackOrderNumber(day), number)
}
