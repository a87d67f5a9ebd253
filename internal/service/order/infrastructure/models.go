// internal/service/order/infrastructure/models.go
package infrastructure

import "time"

// OrderModel 是 Order 聚合在 MySQL 中的表示。
type OrderModel struct {
	ID     string `gorm:"primaryKey;size:64"`
	Number string `gorm:"uniqueIndex;size:32"`
	UserID string `gorm:"index;size:64"`

	ShippingAddressJSON string `gorm:"column:shipping_address;type:json"`
	BillingAddressJSON  string `gorm:"column:billing_address;type:json"`

	ShippingMethodID string `gorm:"size:64"`
	ShippingCost     float64
	Rush             bool
	Instructions     string

	TotalAmount       float64
	EstimatedDelivery time.Time

	State        string `gorm:"size:32;index"`
	PaymentState string `gorm:"size:32"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel 是订单行项目的数据库表示。
// 尺寸、选项、字数这些配置快照整体存 JSON 列。
type OrderItemModel struct {
	ID              string `gorm:"primaryKey;size:64"`
	OrderID         string `gorm:"index;size:64"`
	ProductID       string `gorm:"size:64"`
	Quantity        int
	ConfigJSON      string `gorm:"column:config;type:json"`
	CalculatedPrice float64
	CreatedAt       time.Time
}

func (OrderItemModel) TableName() string {
	return "order_items"
}

// InventoryModel 是每个商品的库存行。
type InventoryModel struct {
	ProductID string `gorm:"primaryKey;size:64"`
	Stock     int
	InStock   bool
	UpdatedAt time.Time
}

func (InventoryModel) TableName() string {
	return "inventory"
}
