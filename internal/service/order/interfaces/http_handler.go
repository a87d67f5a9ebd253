// internal/service/order/interfaces/http_handler.go
package interfaces

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"signcraft/internal/apperr"
	"signcraft/internal/pkg/httpapi"
	"signcraft/internal/service/order/application"
)

var ordersProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "signcraft_orders_processed_total",
	Help: "Order intake attempts, by result.",
}, []string{"result"})

// OrderHandler 封装订单服务的 HTTP 处理器。
type OrderHandler struct {
	service *application.OrderApplicationService
}

// NewOrderHandler 创建一个新的 HTTP 处理器实例。
func NewOrderHandler(service *application.OrderApplicationService) *OrderHandler {
	return &OrderHandler{service: service}
}

// RegisterRoutes 在 ServeMux 上注册所有路由。
func (h *OrderHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/process_order", httpapi.Wrap(h.processOrder))
	mux.HandleFunc("/orders/", httpapi.Wrap(h.getOrder))
}

func (h *OrderHandler) processOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httpapi.Fail(w, apperr.InvalidArgumentf("method not allowed"))
		return
	}

	var req application.ProcessOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ordersProcessed.WithLabelValues("invalid").Inc()
		httpapi.Fail(w, apperr.InvalidArgumentf("malformed request body"))
		return
	}
	// 调用方身份来自网关注入的请求头，绝不信任请求体里的 userId
	req.CallerID = r.Header.Get("X-User-ID")

	resp, err := h.service.ProcessOrder(r.Context(), &req)
	if err != nil {
		ordersProcessed.WithLabelValues("error").Inc()
		httpapi.Fail(w, err)
		return
	}

	ordersProcessed.WithLabelValues("ok").Inc()
	httpapi.OK(w, resp)
}

func (h *OrderHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httpapi.Fail(w, apperr.InvalidArgumentf("method not allowed"))
		return
	}

	orderID := strings.TrimPrefix(r.URL.Path, "/orders/")
	callerID := r.Header.Get("X-User-ID")

	order, err := h.service.GetOrder(r.Context(), callerID, orderID)
	if err != nil {
		httpapi.Fail(w, err)
		return
	}
	httpapi.OK(w, order)
}
