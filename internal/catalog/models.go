// internal/catalog/models.go
package catalog

import "time"

// ProductModel 是 Product 聚合在 MySQL 中的表示。
// 选项、折扣档、配送方式、交期这些结构化参数存 JSON 列，
// 由管理后台整体写入，这里只读。
type ProductModel struct {
	ID       string `gorm:"primaryKey;size:64"`
	Name     string
	Category string `gorm:"index"`

	BasePrice    float64
	PricingModel string `gorm:"size:32"`
	UnitRate     float64

	AllowCustomSize bool
	MinWidth        float64
	MaxWidth        float64
	MinHeight       float64
	MaxHeight       float64
	SizeUnit        string `gorm:"size:8"`

	UnitWeight float64

	OptionsJSON         string `gorm:"column:options;type:json"`
	DiscountTiersJSON   string `gorm:"column:discount_tiers;type:json"`
	ShippingMethodsJSON string `gorm:"column:shipping_methods;type:json"`
	TurnaroundJSON      string `gorm:"column:turnaround;type:json"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ProductModel) TableName() string {
	return "products"
}
