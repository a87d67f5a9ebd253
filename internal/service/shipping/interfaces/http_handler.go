// internal/service/shipping/interfaces/http_handler.go
package interfaces

import (
	"encoding/json"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"signcraft/internal/apperr"
	"signcraft/internal/pkg/httpapi"
	"signcraft/internal/service/shipping/application"
)

var shippingQuotes = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "signcraft_shipping_quotes_total",
	Help: "Shipping quotes served, by result.",
}, []string{"result"})

// ShippingHandler 封装运费服务的 HTTP 处理器。
type ShippingHandler struct {
	service *application.ShippingService
}

func NewShippingHandler(service *application.ShippingService) *ShippingHandler {
	return &ShippingHandler{service: service}
}

// RegisterRoutes 在 ServeMux 上注册所有路由。
func (h *ShippingHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/calculate_shipping", httpapi.Wrap(h.calculateShipping))
}

func (h *ShippingHandler) calculateShipping(w http.ResponseWriter, r *http.Request) {
	var req application.CalculateShippingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shippingQuotes.WithLabelValues("invalid").Inc()
		httpapi.Fail(w, apperr.InvalidArgumentf("malformed request body"))
		return
	}

	quote, err := h.service.CalculateShipping(r.Context(), &req)
	if err != nil {
		shippingQuotes.WithLabelValues("error").Inc()
		httpapi.Fail(w, err)
		return
	}

	shippingQuotes.WithLabelValues("ok").Inc()
	httpapi.OK(w, quote)
}
