// internal/pkg/httpapi/respond.go
package httpapi

import (
	"encoding/json"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"signcraft/internal/apperr"
	"signcraft/internal/pkg/logger"
)

// Response 是所有 RPC 风格端点统一的响应信封。
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// OK 写出成功响应。
func OK(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(Response{Success: true, Data: data})
}

// Fail 按错误分类写出失败响应。调用方永远拿到响应对象，而不是裸错误。
func Fail(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch apperr.Classify(err) {
	case apperr.ErrInvalidArgument:
		status = http.StatusBadRequest
	case apperr.ErrNotFound:
		status = http.StatusNotFound
	case apperr.ErrUnauthorized:
		status = http.StatusForbidden
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{Success: false, Error: err.Error()})
}

// Wrap 是所有业务端点共用的中间件：
// 提取上游链路上下文，注入带 trace_id 的请求级 logger，
// 并把未捕获的 panic 收敛为 Internal 失败响应。
func Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
		ctx = logger.WithTrace(ctx)

		defer func() {
			if rec := recover(); rec != nil {
				logger.Ctx(ctx).Error().Interface("panic", rec).Msg("handler panicked")
				Fail(w, apperr.ErrInternal)
			}
		}()

		next(w, r.WithContext(ctx))
	}
}
