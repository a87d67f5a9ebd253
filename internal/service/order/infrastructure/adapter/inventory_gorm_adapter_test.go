// internal/service/order/infrastructure/adapter/inventory_gorm_adapter_test.go
package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTakeFromStock(t *testing.T) {
	tests := []struct {
		name      string
		stock     int
		qty       int
		wantStock int
		wantTaken int
	}{
		{"enough stock", 10, 3, 7, 3},
		{"exact stock", 5, 5, 0, 5},
		{"clamped at zero", 3, 10, 0, 3},
		{"already empty", 0, 4, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			newStock, taken := takeFromStock(tt.stock, tt.qty)
			assert.Equal(t, tt.wantStock, newStock)
			assert.Equal(t, tt.wantTaken, taken)
			// 扣掉的加回去必须恢复原库存
			assert.Equal(t, tt.stock, newStock+taken)
		})
	}
}
