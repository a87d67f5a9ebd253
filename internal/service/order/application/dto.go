// internal/service/order/application/dto.go
package application

import (
	"time"

	"signcraft/internal/service/order/domain"
	pricingdomain "signcraft/internal/service/pricing/domain"
)

// OrderItemRequest 是下单请求中的一个行项目。
// CalculatedPrice 是客户端页面展示过的单价，服务端会重算并校验。
type OrderItemRequest struct {
	ProductID       string                         `json:"productId"`
	Quantity        int                            `json:"quantity"`
	Size            *pricingdomain.Size            `json:"size,omitempty"`
	Options         []pricingdomain.SelectedOption `json:"options,omitempty"`
	LetterCount     int                            `json:"letterCount,omitempty"`
	CalculatedPrice float64                        `json:"calculatedPrice"`
}

// ProcessOrderRequest 是下单接口的请求体。
// CallerID 不走请求体，由接口层从已认证身份注入。
type ProcessOrderRequest struct {
	CallerID string `json:"-"`

	UserID           string             `json:"userId"`
	Items            []OrderItemRequest `json:"items"`
	ShippingAddress  domain.Address     `json:"shippingAddress"`
	BillingAddress   domain.Address     `json:"billingAddress"`
	ShippingMethodID string             `json:"shippingMethodId,omitempty"`
	Rush             bool               `json:"rush,omitempty"`
	Instructions     string             `json:"instructions,omitempty"`
}

// ProcessOrderResponse 是下单接口的成功响应。
type ProcessOrderResponse struct {
	OrderID               string    `json:"orderId"`
	OrderNumber           string    `json:"orderNumber"`
	TotalAmount           float64   `json:"totalAmount"`
	EstimatedDeliveryDate time.Time `json:"estimatedDeliveryDate"`
}

func toDomainItems(items []OrderItemRequest) []domain.Item {
	out := make([]domain.Item, 0, len(items))
	for _, it := range items {
		out = append(out, domain.Item{
			ProductID:       it.ProductID,
			Quantity:        it.Quantity,
			Size:            it.Size,
			Options:         it.Options,
			LetterCount:     it.LetterCount,
			CalculatedPrice: it.CalculatedPrice,
		})
	}
	return out
}
