// internal/pkg/logger/logger_test.go
package logger

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCtxFallsBackToGlobalLogger(t *testing.T) {
	Init("logger-test")

	// 没有经过 HTTP 中间件的 context 也要能打日志
	l := Ctx(context.Background())
	require.NotNil(t, l)
	assert.NotEqual(t, zerolog.Disabled, l.GetLevel())
}

func TestCtxReturnsRequestLogger(t *testing.T) {
	Init("logger-test")

	ctx := WithTrace(context.Background())
	l := Ctx(ctx)
	require.NotNil(t, l)
	assert.NotEqual(t, zerolog.Disabled, l.GetLevel())
}
