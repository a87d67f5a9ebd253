// internal/service/turnaround/application/service.go
package application

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"signcraft/internal/apperr"
	"signcraft/internal/catalog"
	"signcraft/internal/pkg/logger"
	"signcraft/internal/service/turnaround/domain"
)

// CalculateTurnaroundRequest 是交期接口的请求体。
// OrderTime 缺省为当前时刻。
type CalculateTurnaroundRequest struct {
	ProductID     string     `json:"productId"`
	RushRequested bool       `json:"rushRequested,omitempty"`
	OrderTime     *time.Time `json:"orderTime,omitempty"`
}

// TurnaroundService 编排一次交期计算。
type TurnaroundService struct {
	products catalog.Repository
	tracer   trace.Tracer
	now      func() time.Time
}

// NewTurnaroundService 创建交期服务实例。
func NewTurnaroundService(products catalog.Repository, tracer trace.Tracer) *TurnaroundService {
	return &TurnaroundService{products: products, tracer: tracer, now: time.Now}
}

// CalculateTurnaround 计算标准与加急交付日期。
func (s *TurnaroundService) CalculateTurnaround(ctx context.Context, req *CalculateTurnaroundRequest) (*domain.Estimate, error) {
	ctx, span := s.tracer.Start(ctx, "turnaround.CalculateTurnaround")
	defer span.End()

	if req.ProductID == "" {
		return nil, apperr.InvalidArgumentf("productId is required")
	}

	orderTime := s.now()
	if req.OrderTime != nil {
		orderTime = *req.OrderTime
	}

	span.SetAttributes(
		attribute.String("product.id", req.ProductID),
		attribute.Bool("rush", req.RushRequested),
	)

	product, err := s.products.FindProductByID(ctx, req.ProductID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "product lookup failed")
		return nil, err
	}

	est := domain.EstimateFor(product, orderTime, req.RushRequested)

	logger.Ctx(ctx).Info().
		Str("product_id", req.ProductID).
		Time("standard_delivery", est.StandardDelivery).
		Msg("turnaround estimated")
	span.AddEvent("Turnaround estimated")

	return est, nil
}
