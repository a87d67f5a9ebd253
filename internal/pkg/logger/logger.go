// internal/pkg/logger/logger.go
package logger

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"signcraft/internal/pkg/tracing"
)

// Init 配置全局 zerolog，并为当前服务打上 service 字段。
func Init(serviceName string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zlog.Logger = zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", serviceName).
		Logger()
	// context 里没有请求级 logger 时（HTTP 中间件之外的路径，
	// 如补偿、后台消费）zerolog.Ctx 默认返回静默 logger，这里让它回退到全局
	zerolog.DefaultContextLogger = &zlog.Logger
}

// WithTrace 返回一个注入了 trace_id 的 logger，并把它存入 context。
// HTTP 中间件在提取完链路上下文之后调用。
func WithTrace(ctx context.Context) context.Context {
	traceID := tracing.GetTraceIDFromContext(ctx)
	l := zlog.With().Str("trace_id", traceID).Logger()
	return l.WithContext(ctx)
}

// Ctx 从 context 中取出请求级 logger；没有时回退到全局 logger。
func Ctx(ctx context.Context) *zerolog.Logger {
	return zlog.Ctx(ctx)
}
