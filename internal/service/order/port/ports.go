// internal/service/order/port/ports.go
package port

import (
	"context"
	"time"

	"signcraft/internal/service/order/domain"
)

// InventoryService 是库存操作的出站端口。
type InventoryService interface {
	// ReserveStock 为给定订单逐商品扣减库存，返回实际扣掉的数量。
	// 库存不足时只扣到 0，返回值可能小于请求量；中途失败时返回
	// 失败前已扣掉的部分。补偿必须以返回值为准，而不是请求量。
	ReserveStock(ctx context.Context, orderID string, items map[string]int) (reserved map[string]int, err error)

	// ReleaseStock 是 ReserveStock 的补偿操作，归还已扣库存。
	ReleaseStock(ctx context.Context, orderID string, items map[string]int) error
}

// NotificationProducer 是订单通知的出站端口。
type NotificationProducer interface {
	SendOrderPlaced(ctx context.Context, event *domain.OrderPlaced) error
}

// OrderNumberSequence 是订单号序号发生器的出站端口。
type OrderNumberSequence interface {
	// Next 返回 t 所在自然日内单调递增的序号。
	Next(ctx context.Context, t time.Time) (int64, error)
}

// ShippingQuoter 是运费报价的出站端口，订单落库时记录一次运费快照。
type ShippingQuoter interface {
	Quote(ctx context.Context, productID, methodID, zip string, quantity int) (float64, error)
}
