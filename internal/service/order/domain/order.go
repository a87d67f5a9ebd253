// internal/service/order/domain/order.go
package domain

import (
	"math"
	"time"

	"signcraft/internal/apperr"
	pricingdomain "signcraft/internal/service/pricing/domain"
)

// Address 是收货/账单地址值对象。
type Address struct {
	Name   string `json:"name"`
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// Item 是订单中的一个行项目。
// CalculatedPrice 是单价；落库前一定会被服务端重算值覆盖。
type Item struct {
	ID              string                         `json:"id"`
	ProductID       string                         `json:"productId"`
	Quantity        int                            `json:"quantity"`
	Size            *pricingdomain.Size            `json:"size,omitempty"`
	Options         []pricingdomain.SelectedOption `json:"options,omitempty"`
	LetterCount     int                            `json:"letterCount,omitempty"`
	CalculatedPrice float64                        `json:"calculatedPrice"`
}

// LineTotal 返回该行合计。
func (i *Item) LineTotal() float64 {
	return math.Round(i.CalculatedPrice*float64(i.Quantity)*100) / 100
}

// Order 是订单聚合根。
type Order struct {
	ID           string
	Number       string
	UserID       string
	Items        []Item
	ShippingAddr Address
	BillingAddr  Address

	ShippingMethodID string
	ShippingCost     float64
	Rush             bool
	Instructions     string

	TotalAmount       float64
	EstimatedDelivery time.Time

	State        State
	PaymentState PaymentState
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewOrder 是订单聚合的工厂函数，校验必填字段。
func NewOrder(id, number, userID string, items []Item, shipping, billing Address, methodID string, rush bool, instructions string) (*Order, error) {
	if id == "" || userID == "" {
		return nil, apperr.InvalidArgumentf("order id and userId are required")
	}
	if len(items) == 0 {
		return nil, apperr.InvalidArgumentf("order must contain at least one item")
	}
	for _, item := range items {
		if item.ProductID == "" {
			return nil, apperr.InvalidArgumentf("order item is missing productId")
		}
		if item.Quantity < 1 {
			return nil, apperr.InvalidArgumentf("order item quantity must be at least 1")
		}
	}
	if shipping.Street == "" || shipping.Zip == "" {
		return nil, apperr.InvalidArgumentf("shipping address is required")
	}

	now := time.Now()
	return &Order{
		ID:               id,
		Number:           number,
		UserID:           userID,
		Items:            items,
		ShippingAddr:     shipping,
		BillingAddr:      billing,
		ShippingMethodID: methodID,
		Rush:             rush,
		Instructions:     instructions,
		State:            StatePending,
		PaymentState:     PaymentPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// RecalculateTotal 用各行项目的合计刷新订单总额。
// 不变式：TotalAmount 恒等于所有行合计之和。
func (o *Order) RecalculateTotal() {
	var total float64
	for i := range o.Items {
		total += o.Items[i].LineTotal()
	}
	o.TotalAmount = math.Round(total*100) / 100
	o.UpdatedAt = time.Now()
}

// MarkAsFailed 将订单标记为失败。
func (o *Order) MarkAsFailed() {
	o.State = StateFailed
	o.UpdatedAt = time.Now()
}

// ReservedQuantities 返回按商品聚合的预占数量。
// 同一商品出现在多行时合并，库存侧每个商品只锁一次。
func (o *Order) ReservedQuantities() map[string]int {
	m := make(map[string]int, len(o.Items))
	for _, item := range o.Items {
		m[item.ProductID] += item.Quantity
	}
	return m
}
