// internal/service/order/application/saga/reprice.go
package saga

import (
	"math"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"signcraft/internal/apperr"
	"signcraft/internal/pkg/logger"
	"signcraft/internal/pkg/workdays"
	pricingdomain "signcraft/internal/service/pricing/domain"
)

// RepriceHandler 在服务端用同一套纯定价函数重算每个行项目的价格。
// 客户端报价只作为交叉校验：偏差超出容差直接拒单，
// 落库的永远是服务端算出的金额。
type RepriceHandler struct {
	NextHandler
}

func (h *RepriceHandler) Handle(orderCtx *OrderContext) error {
	ctx, span := orderCtx.Tracer.Start(orderCtx.Ctx, "saga.Reprice")
	defer span.End()

	order := orderCtx.Order
	span.SetAttributes(attribute.Int("order.items", len(order.Items)))

	// 每个行项目独立重算，互不影响，按行并发
	deliveryDays := make([]int, len(order.Items))
	g, gctx := errgroup.WithContext(ctx)
	for i := range order.Items {
		i := i
		g.Go(func() error {
			item := &order.Items[i]

			product, err := orderCtx.Products.FindProductByID(gctx, item.ProductID)
			if err != nil {
				return err
			}

			breakdown := pricingdomain.Calculate(product, &pricingdomain.Request{
				Quantity:    item.Quantity,
				Size:        item.Size,
				LetterCount: item.LetterCount,
				Options:     item.Options,
				Rush:        order.Rush,
			})
			serverUnit := math.Round(breakdown.Total/float64(item.Quantity)*100) / 100

			if item.CalculatedPrice > 0 && math.Abs(item.CalculatedPrice-serverUnit) > orderCtx.PriceTolerance {
				return apperr.InvalidArgumentf(
					"price mismatch for product %s: submitted %.2f, expected %.2f",
					item.ProductID, item.CalculatedPrice, serverUnit)
			}
			item.CalculatedPrice = serverUnit

			if order.Rush && product.Turnaround.AllowRush {
				deliveryDays[i] = product.RushDays()
			} else {
				deliveryDays[i] = product.Turnaround.StandardDays
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repricing failed")
		return err
	}

	order.RecalculateTotal()

	// 整单交期取所有行项目中最长的一个，和交期服务走同一套工作日推算
	maxDays := 0
	for _, d := range deliveryDays {
		if d > maxDays {
			maxDays = d
		}
	}
	now := orderCtx.Now()
	order.EstimatedDelivery = workdays.AddBusinessDays(workdays.NextBusinessDay(now), maxDays)

	logger.Ctx(ctx).Info().
		Str("order_id", order.ID).
		Float64("total", order.TotalAmount).
		Time("estimated_delivery", order.EstimatedDelivery).
		Msg("order repriced")
	span.AddEvent("All line items repriced server-side")

	return h.executeNext(orderCtx)
}
