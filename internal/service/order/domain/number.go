// internal/service/order/domain/number.go
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// FormatOrderNumber 生成对客服友好的订单号，形如 SC-20260901-0042。
// 序号来自按天递增的计数器，同一天内保证唯一。
func FormatOrderNumber(t time.Time, seq int64) string {
	return fmt.Sprintf("SC-%s-%04d", t.Format("20060102"), seq)
}

// FallbackOrderNumber 在序号服务不可用时生成兜底订单号。
// 用 uuid 片段替代序号，牺牲可读性换取唯一性。
func FallbackOrderNumber(t time.Time) string {
	return fmt.Sprintf("SC-%s-%s", t.Format("20060102"), uuid.New().String()[:8])
}
