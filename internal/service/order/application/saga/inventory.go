// internal/service/order/application/saga/inventory.go
package saga

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"signcraft/internal/pkg/logger"
)

// InventoryHandler 负责库存扣减步骤。
// 扣减可能被钳到 0（缺货不阻塞下单），所以补偿登记的是
// 库存侧返回的实际扣减量，而不是订单的请求量。
type InventoryHandler struct {
	NextHandler
}

func (h *InventoryHandler) Handle(orderCtx *OrderContext) error {
	ctx, span := orderCtx.Tracer.Start(orderCtx.Ctx, "saga.InventoryReserve")
	defer span.End()

	order := orderCtx.Order
	items := order.ReservedQuantities()
	span.SetAttributes(attribute.Int("inventory.products", len(items)))

	reserved, err := orderCtx.Inventory.ReserveStock(ctx, order.ID, items)

	// 失败与成功两条路径归还的都只是真正扣掉的部分
	if len(reserved) > 0 {
		orderCtx.AddCompensation(func(compCtx context.Context) {
			compCtx, compSpan := orderCtx.Tracer.Start(compCtx, "saga.compensation.ReleaseStock")
			defer compSpan.End()
			if err := orderCtx.Inventory.ReleaseStock(compCtx, order.ID, reserved); err != nil {
				compSpan.RecordError(err)
				logger.Ctx(compCtx).Error().Err(err).
					Str("order_id", order.ID).
					Msg("CRITICAL: stock release compensation failed, manual intervention required")
			}
		})
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "inventory reservation failed")
		return err
	}

	span.AddEvent("All items reserved")
	return h.executeNext(orderCtx)
}
