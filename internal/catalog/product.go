// internal/catalog/product.go

// Package catalog 是商品数据的唯一读取入口。
// 定价、运费、交期、订单四个服务都通过这里的仓储读取商品，
// 不允许在展示层或处理器里内嵌商品数据副本。
package catalog

import "context"

// PricingModel 标记商品的计价模型。
type PricingModel string

const (
	ModelFixed         PricingModel = "fixed"
	ModelPerSquareFoot PricingModel = "per_sqft"
	ModelPerLinearFoot PricingModel = "per_linear_ft"
	ModelPerLetter     PricingModel = "per_letter"
)

// OptionValue 是可定制选项的一个取值及其价格增量。
type OptionValue struct {
	Value      string  `json:"value"`
	PriceDelta float64 `json:"priceDelta"`
}

// Option 是商品的一个可定制选项，如材质、覆膜。
type Option struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Values []OptionValue `json:"values"`
}

// DiscountTier 是一个数量折扣档位。折扣二选一：
// Percent 按折前小计打百分比，AmountPerUnit 按件减固定金额。
type DiscountTier struct {
	MinQuantity   int     `json:"minQuantity"`
	MaxQuantity   int     `json:"maxQuantity"` // 0 表示不封顶
	Percent       float64 `json:"percent,omitempty"`
	AmountPerUnit float64 `json:"amountPerUnit,omitempty"`
	// 可选的 CEL 表达式，变量为 quantity / subtotal / rush。
	// 为空表示仅按数量区间匹配。
	Condition string `json:"condition,omitempty"`
}

// ZipRange 是一段按邮编字典序界定的加价区间。
type ZipRange struct {
	Start     string  `json:"start"`
	End       string  `json:"end"`
	Surcharge float64 `json:"surcharge"`
}

// ShippingMethod 是商品可用的一种配送方式。
type ShippingMethod struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	BaseCost      float64 `json:"baseCost"`
	EstimatedDays int     `json:"estimatedDays"`

	ZipPricing bool       `json:"zipPricing"`
	ZipRanges  []ZipRange `json:"zipRanges,omitempty"`

	// 重量阶梯加价。Threshold 为 0 表示未配置。
	WeightThreshold  float64 `json:"weightThreshold,omitempty"`
	WeightIncrement  float64 `json:"weightIncrement,omitempty"`
	CostPerIncrement float64 `json:"costPerIncrement,omitempty"`
}

// Turnaround 是商品的交期参数。
type Turnaround struct {
	StandardDays   int     `json:"standardDays"`
	AllowRush      bool    `json:"allowRush"`
	RushDays       int     `json:"rushDays,omitempty"` // 0 表示取标准天数的一半（向上取整）
	RushMultiplier float64 `json:"rushMultiplier,omitempty"`
	CutoffTime     string  `json:"cutoffTime,omitempty"` // "HH:MM"
}

// Product 是商品聚合，对计算服务只读。
type Product struct {
	ID       string
	Name     string
	Category string

	BasePrice    float64
	PricingModel PricingModel
	UnitRate     float64 // 按模型解释：每平方英尺 / 每延英尺 / 每字母的单价

	AllowCustomSize bool
	MinWidth        float64
	MaxWidth        float64
	MinHeight       float64
	MaxHeight       float64
	SizeUnit        string // "in"

	UnitWeight float64 // 单件重量（磅），运费兜底用

	Options         []Option
	DiscountTiers   []DiscountTier
	ShippingMethods []ShippingMethod
	Turnaround      Turnaround
}

// FindShippingMethod 按 ID 查找配送方式。
func (p *Product) FindShippingMethod(id string) (*ShippingMethod, bool) {
	for i := range p.ShippingMethods {
		if p.ShippingMethods[i].ID == id {
			return &p.ShippingMethods[i], true
		}
	}
	return nil, false
}

// RushDays 返回加急交期天数，未配置时取标准天数的一半向上取整。
func (p *Product) RushDays() int {
	if p.Turnaround.RushDays > 0 {
		return p.Turnaround.RushDays
	}
	return (p.Turnaround.StandardDays + 1) / 2
}

// Repository 是商品仓储的读取接口，由基础设施层实现。
type Repository interface {
	FindProductByID(ctx context.Context, id string) (*Product, error)
}
