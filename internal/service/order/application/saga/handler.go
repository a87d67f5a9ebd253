// internal/service/order/application/saga/handler.go
package saga

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/trace"

	"signcraft/internal/catalog"
	"signcraft/internal/pkg/logger"
	"signcraft/internal/service/order/domain"
	"signcraft/internal/service/order/port"
)

// OrderContext 在订单处理链中传递上下文数据。
// 所有外部依赖都是抽象接口，处理器不感知具体实现。
type OrderContext struct {
	Ctx    context.Context
	Order  *domain.Order
	Tracer trace.Tracer
	Now    func() time.Time

	// 出站端口
	Products  catalog.Repository
	Inventory port.InventoryService
	Notifier  port.NotificationProducer
	Shipping  port.ShippingQuoter
	Repo      domain.OrderRepository

	// 服务端重算价与客户端报价的允许偏差（元）
	PriceTolerance float64

	compensations []func(ctx context.Context)
	compLock      sync.Mutex
}

// AddCompensation 注册一个补偿操作。后注册的先执行。
func (c *OrderContext) AddCompensation(comp func(ctx context.Context)) {
	c.compLock.Lock()
	defer c.compLock.Unlock()
	c.compensations = append([]func(context.Context){comp}, c.compensations...)
}

// TriggerCompensation 逆序执行所有已注册的补偿操作。
func (c *OrderContext) TriggerCompensation(ctx context.Context) {
	c.compLock.Lock()
	defer c.compLock.Unlock()
	logger.Ctx(ctx).Info().
		Str("order_id", c.Order.ID).
		Int("compensations", len(c.compensations)).
		Msg("executing saga compensation")
	for _, comp := range c.compensations {
		comp(ctx)
	}
	c.compensations = nil
}

// Handler 是订单处理链的节点接口。
type Handler interface {
	SetNext(handler Handler) Handler
	Handle(orderCtx *OrderContext) error
}

// NextHandler 提供链式调用的公共骨架。
type NextHandler struct {
	next Handler
}

func (h *NextHandler) SetNext(handler Handler) Handler {
	h.next = handler
	return handler
}

func (h *NextHandler) executeNext(orderCtx *OrderContext) error {
	if h.next != nil {
		return h.next.Handle(orderCtx)
	}
	return nil
}
