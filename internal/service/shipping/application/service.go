// internal/service/shipping/application/service.go
package application

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"signcraft/internal/apperr"
	"signcraft/internal/catalog"
	"signcraft/internal/pkg/logger"
	"signcraft/internal/service/shipping/domain"
)

// CalculateShippingRequest 是运费接口的请求体。
type CalculateShippingRequest struct {
	ProductID  string             `json:"productId"`
	MethodID   string             `json:"methodId"`
	Zip        string             `json:"zip,omitempty"`
	Weight     float64            `json:"weight,omitempty"`
	Dimensions *domain.Dimensions `json:"dimensions,omitempty"`
	Quantity   int                `json:"quantity,omitempty"`
}

// ShippingService 编排一次运费计算。
type ShippingService struct {
	products catalog.Repository
	tracer   trace.Tracer
}

// NewShippingService 创建运费服务实例。
func NewShippingService(products catalog.Repository, tracer trace.Tracer) *ShippingService {
	return &ShippingService{products: products, tracer: tracer}
}

// CalculateShipping 计算一次运费报价。
// 商品或配送方式不存在时返回 NotFound。
func (s *ShippingService) CalculateShipping(ctx context.Context, req *CalculateShippingRequest) (*domain.Quote, error) {
	ctx, span := s.tracer.Start(ctx, "shipping.CalculateShipping")
	defer span.End()

	if req.ProductID == "" {
		return nil, apperr.InvalidArgumentf("productId is required")
	}
	if req.MethodID == "" {
		return nil, apperr.InvalidArgumentf("methodId is required")
	}

	span.SetAttributes(
		attribute.String("product.id", req.ProductID),
		attribute.String("shipping.method", req.MethodID),
		attribute.String("shipping.zip", req.Zip),
	)

	product, err := s.products.FindProductByID(ctx, req.ProductID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "product lookup failed")
		return nil, err
	}

	method, ok := product.FindShippingMethod(req.MethodID)
	if !ok {
		err := apperr.NotFoundf("shipping method %s for product %s", req.MethodID, req.ProductID)
		span.RecordError(err)
		return nil, err
	}

	// 未提供重量时按商品单件重量估算
	weight := req.Weight
	if weight <= 0 && product.UnitWeight > 0 {
		qty := req.Quantity
		if qty < 1 {
			qty = 1
		}
		weight = product.UnitWeight * float64(qty)
	}

	quote := domain.QuoteFor(method, &domain.Request{
		Zip:        req.Zip,
		Weight:     weight,
		Dimensions: req.Dimensions,
	})

	logger.Ctx(ctx).Info().
		Str("product_id", req.ProductID).
		Str("method", req.MethodID).
		Float64("cost", quote.Cost).
		Msg("shipping quote calculated")
	span.AddEvent("Shipping quote calculated")

	return quote, nil
}
