// internal/service/order/application/saga/shipping.go
package saga

import (
	"go.opentelemetry.io/otel/attribute"

	"signcraft/internal/pkg/logger"
)

// ShippingHandler 在落库前向运费服务要一次报价快照记在订单上。
// 报价失败不阻断下单：运费可以在履约阶段补算，这里只是快照。
type ShippingHandler struct {
	NextHandler
}

func (h *ShippingHandler) Handle(orderCtx *OrderContext) error {
	ctx, span := orderCtx.Tracer.Start(orderCtx.Ctx, "saga.ShippingQuote")
	defer span.End()

	order := orderCtx.Order
	if orderCtx.Shipping == nil || order.ShippingMethodID == "" || len(order.Items) == 0 {
		return h.executeNext(orderCtx)
	}

	cost, err := orderCtx.Shipping.Quote(ctx,
		order.Items[0].ProductID,
		order.ShippingMethodID,
		order.ShippingAddr.Zip,
		order.Items[0].Quantity,
	)
	if err != nil {
		span.RecordError(err)
		logger.Ctx(ctx).Warn().Err(err).
			Str("order_id", order.ID).
			Msg("shipping quote unavailable, order proceeds without snapshot")
		return h.executeNext(orderCtx)
	}

	order.ShippingCost = cost
	span.SetAttributes(attribute.Float64("shipping.cost", cost))

	return h.executeNext(orderCtx)
}
