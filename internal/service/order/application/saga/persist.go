// internal/service/order/application/saga/persist.go
package saga

import (
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/codes"

	"signcraft/internal/pkg/logger"
)

// PersistHandler 把订单以 pending 状态落库。
type PersistHandler struct {
	NextHandler
}

func (h *PersistHandler) Handle(orderCtx *OrderContext) error {
	ctx, span := orderCtx.Tracer.Start(orderCtx.Ctx, "saga.PersistOrder")
	defer span.End()

	if err := orderCtx.Repo.Save(ctx, orderCtx.Order); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "order persistence failed")
		return errors.Wrap(err, "failed to save order")
	}

	logger.Ctx(ctx).Info().
		Str("order_id", orderCtx.Order.ID).
		Str("order_number", orderCtx.Order.Number).
		Msg("order persisted")
	span.AddEvent("Order saved with pending state")

	return h.executeNext(orderCtx)
}
