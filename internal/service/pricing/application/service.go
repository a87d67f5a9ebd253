// internal/service/pricing/application/service.go
package application

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"signcraft/internal/apperr"
	"signcraft/internal/catalog"
	"signcraft/internal/pkg/logger"
	"signcraft/internal/service/pricing/domain"
)

// PricingService 编排一次报价计算：校验请求、读商品、调用纯计算。
type PricingService struct {
	products catalog.Repository
	tracer   trace.Tracer
}

// NewPricingService 创建报价服务实例。
func NewPricingService(products catalog.Repository, tracer trace.Tracer) *PricingService {
	return &PricingService{products: products, tracer: tracer}
}

// CalculatePrice 计算一份完整的报价拆解。
// 只在商品不存在或必填字段缺失时失败，合法数值输入永远成功。
func (s *PricingService) CalculatePrice(ctx context.Context, req *CalculatePriceRequest) (*domain.Breakdown, error) {
	ctx, span := s.tracer.Start(ctx, "pricing.CalculatePrice")
	defer span.End()

	if req.ProductID == "" {
		return nil, apperr.InvalidArgumentf("productId is required")
	}
	if req.Quantity < 1 {
		return nil, apperr.InvalidArgumentf("quantity must be at least 1")
	}

	span.SetAttributes(
		attribute.String("product.id", req.ProductID),
		attribute.Int("quantity", req.Quantity),
		attribute.Bool("rush", req.RushRequested),
	)

	product, err := s.products.FindProductByID(ctx, req.ProductID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "product lookup failed")
		return nil, err
	}

	breakdown := domain.Calculate(product, req.ToDomainRequest())

	logger.Ctx(ctx).Info().
		Str("product_id", req.ProductID).
		Int("quantity", req.Quantity).
		Float64("total", breakdown.Total).
		Msg("price calculated")
	span.AddEvent("Price breakdown calculated")

	return breakdown, nil
}
