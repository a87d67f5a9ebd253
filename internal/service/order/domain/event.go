// internal/service/order/domain/event.go
package domain

import "time"

// OrderPlaced 是订单成功落库后发布的事件，推送网关消费它通知用户。
type OrderPlaced struct {
	OrderID           string    `json:"orderId"`
	OrderNumber       string    `json:"orderNumber"`
	UserID            string    `json:"userId"`
	TotalAmount       float64   `json:"totalAmount"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
	PlacedAt          time.Time `json:"placedAt"`
}
