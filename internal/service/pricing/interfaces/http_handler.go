// internal/service/pricing/interfaces/http_handler.go
package interfaces

import (
	"encoding/json"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"signcraft/internal/apperr"
	"signcraft/internal/pkg/httpapi"
	"signcraft/internal/service/pricing/application"
)

var priceCalculations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "signcraft_price_calculations_total",
	Help: "Price calculations served, by result.",
}, []string{"result"})

// PricingHandler 封装报价服务的 HTTP 处理器。
type PricingHandler struct {
	service *application.PricingService
}

// NewPricingHandler 创建一个新的 HTTP 处理器实例。
func NewPricingHandler(service *application.PricingService) *PricingHandler {
	return &PricingHandler{service: service}
}

// RegisterRoutes 在 ServeMux 上注册所有路由。
func (h *PricingHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/calculate_price", httpapi.Wrap(h.calculatePrice))
}

func (h *PricingHandler) calculatePrice(w http.ResponseWriter, r *http.Request) {
	var req application.CalculatePriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		priceCalculations.WithLabelValues("invalid").Inc()
		httpapi.Fail(w, apperr.InvalidArgumentf("malformed request body"))
		return
	}

	breakdown, err := h.service.CalculatePrice(r.Context(), &req)
	if err != nil {
		priceCalculations.WithLabelValues("error").Inc()
		httpapi.Fail(w, err)
		return
	}

	priceCalculations.WithLabelValues("ok").Inc()
	httpapi.OK(w, breakdown)
}
