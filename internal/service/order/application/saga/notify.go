// internal/service/order/application/saga/notify.go
package saga

import (
	"signcraft/internal/pkg/logger"
	"signcraft/internal/service/order/domain"
)

// NotifyHandler 发布 OrderPlaced 事件。
// 订单此时已经落库，通知失败只记录，不回滚主流程。
type NotifyHandler struct {
	NextHandler
}

func (h *NotifyHandler) Handle(orderCtx *OrderContext) error {
	ctx, span := orderCtx.Tracer.Start(orderCtx.Ctx, "saga.NotifyOrderPlaced")
	defer span.End()

	order := orderCtx.Order
	event := &domain.OrderPlaced{
		OrderID:           order.ID,
		OrderNumber:       order.Number,
		UserID:            order.UserID,
		TotalAmount:       order.TotalAmount,
		EstimatedDelivery: order.EstimatedDelivery,
		PlacedAt:          order.CreatedAt,
	}

	if err := orderCtx.Notifier.SendOrderPlaced(ctx, event); err != nil {
		span.RecordError(err)
		logger.Ctx(ctx).Warn().Err(err).
			Str("order_id", order.ID).
			Msg("order placed notification failed")
	} else {
		span.AddEvent("Order placed notification sent")
	}

	return h.executeNext(orderCtx)
}
