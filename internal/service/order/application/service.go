// internal/service/order/application/service.go
package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"signcraft/internal/apperr"
	"signcraft/internal/catalog"
	"signcraft/internal/pkg/logger"
	"signcraft/internal/service/order/application/saga"
	"signcraft/internal/service/order/domain"
	"signcraft/internal/service/order/port"
)

// OrderApplicationService 只负责订单创建流程的编排。
type OrderApplicationService struct {
	orderRepo domain.OrderRepository
	products  catalog.Repository
	inventory port.InventoryService
	notifier  port.NotificationProducer
	sequence  port.OrderNumberSequence
	shipping  port.ShippingQuoter

	tracer         trace.Tracer
	priceTolerance float64
	now            func() time.Time
}

// NewOrderApplicationService 创建订单应用服务。
func NewOrderApplicationService(
	orderRepo domain.OrderRepository,
	products catalog.Repository,
	inventory port.InventoryService,
	notifier port.NotificationProducer,
	sequence port.OrderNumberSequence,
	shipping port.ShippingQuoter,
	tracer trace.Tracer,
	priceTolerance float64,
) *OrderApplicationService {
	return &OrderApplicationService{
		orderRepo: orderRepo, products: products, inventory: inventory,
		notifier: notifier, sequence: sequence, shipping: shipping,
		tracer: tracer, priceTolerance: priceTolerance, now: time.Now,
	}
}

// ProcessOrder 处理一次下单请求：鉴权、重算价格、扣库存、落库、发通知。
// 任何一步失败都会触发已注册补偿，调用方拿到的是结构化失败而不是半成品订单。
func (s *OrderApplicationService) ProcessOrder(ctx context.Context, req *ProcessOrderRequest) (*ProcessOrderResponse, error) {
	ctx, span := s.tracer.Start(ctx, "order.ProcessOrder")
	defer span.End()

	// 鉴权先于一切写操作
	if req.CallerID == "" {
		return nil, apperr.Unauthorizedf("authentication required")
	}
	if req.CallerID != req.UserID {
		span.SetAttributes(attribute.String("auth.caller", req.CallerID))
		return nil, apperr.Unauthorizedf("caller is not allowed to order on behalf of user %s", req.UserID)
	}

	orderID := uuid.New().String()
	span.SetAttributes(
		attribute.String("order.id", orderID),
		attribute.String("user.id", req.UserID),
		attribute.Int("order.items", len(req.Items)),
	)

	items := toDomainItems(req.Items)
	for i := range items {
		items[i].ID = uuid.New().String()
	}

	orderEntity, err := domain.NewOrder(orderID, s.nextOrderNumber(ctx), req.UserID, items,
		req.ShippingAddress, req.BillingAddress, req.ShippingMethodID, req.Rush, req.Instructions)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	orderCtx := &saga.OrderContext{
		Ctx:            ctx,
		Order:          orderEntity,
		Tracer:         s.tracer,
		Now:            s.now,
		Products:       s.products,
		Inventory:      s.inventory,
		Notifier:       s.notifier,
		Shipping:       s.shipping,
		Repo:           s.orderRepo,
		PriceTolerance: s.priceTolerance,
	}

	if err := s.buildChain().Handle(orderCtx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "order processing chain failed")
		logger.Ctx(ctx).Error().Err(err).
			Str("order_id", orderEntity.ID).
			Msg("order processing failed, triggering compensation")
		orderCtx.TriggerCompensation(ctx)
		return nil, err
	}

	logger.Ctx(ctx).Info().
		Str("order_id", orderEntity.ID).
		Str("order_number", orderEntity.Number).
		Float64("total", orderEntity.TotalAmount).
		Msg("order processed")
	span.AddEvent("Order successfully processed")

	return &ProcessOrderResponse{
		OrderID:               orderEntity.ID,
		OrderNumber:           orderEntity.Number,
		TotalAmount:           orderEntity.TotalAmount,
		EstimatedDeliveryDate: orderEntity.EstimatedDelivery,
	}, nil
}

// GetOrder 返回已存在的订单，调用方只能查自己的。
func (s *OrderApplicationService) GetOrder(ctx context.Context, callerID, orderID string) (*domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "order.GetOrder")
	defer span.End()

	if callerID == "" {
		return nil, apperr.Unauthorizedf("authentication required")
	}
	if orderID == "" {
		return nil, apperr.InvalidArgumentf("orderId is required")
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if order.UserID != callerID {
		return nil, apperr.Unauthorizedf("order %s does not belong to caller", orderID)
	}
	return order, nil
}

// nextOrderNumber 从序号服务取号；序号服务不可用时退化为 uuid 兜底号。
func (s *OrderApplicationService) nextOrderNumber(ctx context.Context) string {
	now := s.now()
	seq, err := s.sequence.Next(ctx, now)
	if err != nil {
		logger.Ctx(ctx).Warn().Err(err).Msg("order number sequence unavailable, using fallback")
		return domain.FallbackOrderNumber(now)
	}
	return domain.FormatOrderNumber(now, seq)
}

func (s *OrderApplicationService) buildChain() saga.Handler {
	chain := new(saga.RepriceHandler)
	chain.
		SetNext(new(saga.ShippingHandler)).
		SetNext(new(saga.InventoryHandler)).
		SetNext(new(saga.PersistHandler)).
		SetNext(new(saga.NotifyHandler))
	return chain
}
