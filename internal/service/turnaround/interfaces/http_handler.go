// internal/service/turnaround/interfaces/http_handler.go
package interfaces

import (
	"encoding/json"
	"net/http"

	"signcraft/internal/apperr"
	"signcraft/internal/pkg/httpapi"
	"signcraft/internal/service/turnaround/application"
)

// TurnaroundHandler 封装交期服务的 HTTP 处理器。
type TurnaroundHandler struct {
	service *application.TurnaroundService
}

func NewTurnaroundHandler(service *application.TurnaroundService) *TurnaroundHandler {
	return &TurnaroundHandler{service: service}
}

// RegisterRoutes 在 ServeMux 上注册所有路由。
func (h *TurnaroundHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/calculate_turnaround", httpapi.Wrap(h.calculateTurnaround))
}

func (h *TurnaroundHandler) calculateTurnaround(w http.ResponseWriter, r *http.Request) {
	var req application.CalculateTurnaroundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.Fail(w, apperr.InvalidArgumentf("malformed request body"))
		return
	}

	est, err := h.service.CalculateTurnaround(r.Context(), &req)
	if err != nil {
		httpapi.Fail(w, err)
		return
	}

	httpapi.OK(w, est)
}
