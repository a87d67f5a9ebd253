package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"signcraft/internal/catalog"
)

func bannerProduct() *catalog.Product {
	return &catalog.Product{
		ID:              "prod-banner",
		Name:            "Vinyl Banner",
		BasePrice:       299.99,
		PricingModel:    catalog.ModelPerSquareFoot,
		UnitRate:        12.50,
		AllowCustomSize: true,
		Options: []catalog.Option{
			{ID: "finish", Name: "Finish", Values: []catalog.OptionValue{
				{Value: "matte", PriceDelta: 0},
				{Value: "premium", PriceDelta: 50},
			}},
		},
		Turnaround: catalog.Turnaround{
			StandardDays:   5,
			AllowRush:      true,
			RushMultiplier: 1.5,
		},
	}
}

func TestCalculatePerSquareFoot(t *testing.T) {
	// 18x36 英寸 @ $12.50/sqft => 4.5 sqft => $56.25
	b := Calculate(bannerProduct(), &Request{
		Quantity: 1,
		Size:     &Size{Width: 18, Height: 36},
	})
	assert.InDelta(t, 56.25, b.SizePrice, 1e-9)
}

func TestCalculateFullScenarioNoRush(t *testing.T) {
	// 规格场景：基础价 299.99，18x36，数量 2，一个 +$50 的选项，无加急无折扣
	b := Calculate(bannerProduct(), &Request{
		Quantity: 2,
		Size:     &Size{Width: 18, Height: 36},
		Options:  []SelectedOption{{OptionID: "finish", Value: "premium"}},
	})

	assert.InDelta(t, 56.25, b.SizePrice, 1e-9)
	assert.InDelta(t, 50.0, b.OptionsPrice, 1e-9)
	assert.InDelta(t, 812.48, b.SubtotalBeforeDiscount, 1e-9)
	assert.InDelta(t, 0.0, b.QuantityDiscount, 1e-9)
	assert.InDelta(t, 0.0, b.RushFee, 1e-9)
	assert.InDelta(t, 812.48, b.Total, 1e-9)
}

func TestCalculateFullScenarioRush(t *testing.T) {
	// 同一场景加急，倍率 1.5 => rushFee = 812.48 * 0.5
	b := Calculate(bannerProduct(), &Request{
		Quantity: 2,
		Size:     &Size{Width: 18, Height: 36},
		Options:  []SelectedOption{{OptionID: "finish", Value: "premium"}},
		Rush:     true,
	})

	assert.InDelta(t, 406.24, b.RushFee, 1e-9)
	assert.InDelta(t, 1218.72, b.Total, 1e-9)
}

func TestFixedModelIgnoresSize(t *testing.T) {
	p := bannerProduct()
	p.PricingModel = catalog.ModelFixed

	b := Calculate(p, &Request{
		Quantity: 1,
		Size:     &Size{Width: 1000, Height: 1000},
	})
	assert.Zero(t, b.SizePrice)
}

func TestSizeIgnoredWhenCustomSizeDisallowed(t *testing.T) {
	p := bannerProduct()
	p.AllowCustomSize = false

	b := Calculate(p, &Request{Quantity: 1, Size: &Size{Width: 18, Height: 36}})
	assert.Zero(t, b.SizePrice)
}

func TestPerLinearFootUsesPerimeter(t *testing.T) {
	p := bannerProduct()
	p.PricingModel = catalog.ModelPerLinearFoot
	p.UnitRate = 3.0

	// 周长 = 2*(24+12)/12 = 6 英尺 => $18
	b := Calculate(p, &Request{Quantity: 1, Size: &Size{Width: 24, Height: 12}})
	assert.InDelta(t, 18.0, b.SizePrice, 1e-9)
}

func TestPerLetterModel(t *testing.T) {
	p := bannerProduct()
	p.PricingModel = catalog.ModelPerLetter
	p.UnitRate = 8.0

	b := Calculate(p, &Request{Quantity: 1, LetterCount: 12})
	assert.InDelta(t, 96.0, b.SizePrice, 1e-9)
}

func TestFeetUnitConverted(t *testing.T) {
	// 1.5ft x 3ft 与 18in x 36in 等价
	b := Calculate(bannerProduct(), &Request{
		Quantity: 1,
		Size:     &Size{Width: 1.5, Height: 3, Unit: "ft"},
	})
	assert.InDelta(t, 56.25, b.SizePrice, 1e-9)
}

func TestUnmatchedOptionsSilentlyIgnored(t *testing.T) {
	b := Calculate(bannerProduct(), &Request{
		Quantity: 1,
		Options: []SelectedOption{
			{OptionID: "finish", Value: "premium"},
			{OptionID: "finish", Value: "no-such-value"},
			{OptionID: "no-such-option", Value: "x"},
		},
	})
	assert.InDelta(t, 50.0, b.OptionsPrice, 1e-9)
}

func TestQuantityDiscountFirstMatchWins(t *testing.T) {
	p := bannerProduct()
	p.PricingModel = catalog.ModelFixed
	p.BasePrice = 100
	p.DiscountTiers = []catalog.DiscountTier{
		{MinQuantity: 10, MaxQuantity: 24, Percent: 10},
		{MinQuantity: 25, MaxQuantity: 0, Percent: 20},
		// 永远不该被触到：与第一档重叠，但声明顺序靠后
		{MinQuantity: 10, MaxQuantity: 100, Percent: 50},
	}

	tests := []struct {
		quantity int
		discount float64
	}{
		{9, 0},
		{10, 100.0},  // 1000 * 10%，恰在下边界只命中第一档
		{24, 240.0},  // 2400 * 10%，恰在上边界仍是第一档
		{25, 500.0},  // 2500 * 20%，越界进第二档
		{100, 2000.0},
	}
	for _, tt := range tests {
		b := Calculate(p, &Request{Quantity: tt.quantity})
		assert.InDeltaf(t, tt.discount, b.QuantityDiscount, 1e-9, "quantity %d", tt.quantity)
	}
}

func TestPerUnitAmountDiscount(t *testing.T) {
	p := bannerProduct()
	p.PricingModel = catalog.ModelFixed
	p.BasePrice = 100
	p.DiscountTiers = []catalog.DiscountTier{
		{MinQuantity: 5, MaxQuantity: 0, AmountPerUnit: 7.5},
	}

	b := Calculate(p, &Request{Quantity: 6})
	assert.InDelta(t, 45.0, b.QuantityDiscount, 1e-9)
}

func TestTierCELCondition(t *testing.T) {
	p := bannerProduct()
	p.PricingModel = catalog.ModelFixed
	p.BasePrice = 100
	p.DiscountTiers = []catalog.DiscountTier{
		{MinQuantity: 1, MaxQuantity: 0, Percent: 15, Condition: "subtotal >= 500.0 && !rush"},
	}

	assert.Zero(t, Calculate(p, &Request{Quantity: 2}).QuantityDiscount)
	assert.InDelta(t, 90.0, Calculate(p, &Request{Quantity: 6}).QuantityDiscount, 1e-9)
	// 加急时条件不成立
	assert.Zero(t, Calculate(p, &Request{Quantity: 6, Rush: true}).QuantityDiscount)
}

func TestBrokenTierConditionNeverErrors(t *testing.T) {
	p := bannerProduct()
	p.DiscountTiers = []catalog.DiscountTier{
		{MinQuantity: 1, Percent: 50, Condition: "this is (not valid CEL"},
	}

	b := Calculate(p, &Request{Quantity: 5, Size: &Size{Width: 18, Height: 36}})
	// 坏规则只让档位失效
	assert.Zero(t, b.QuantityDiscount)
	assert.Greater(t, b.Total, 0.0)
}

func TestRushFeeRequiresProductAllowance(t *testing.T) {
	p := bannerProduct()
	p.Turnaround.AllowRush = false

	b := Calculate(p, &Request{Quantity: 1, Rush: true})
	assert.Zero(t, b.RushFee)
}

func TestRushFeeComputedOnPreDiscountSubtotal(t *testing.T) {
	p := bannerProduct()
	p.PricingModel = catalog.ModelFixed
	p.BasePrice = 100
	p.DiscountTiers = []catalog.DiscountTier{{MinQuantity: 1, MaxQuantity: 0, Percent: 10}}

	b := Calculate(p, &Request{Quantity: 10, Rush: true})
	// 折扣 100，加急费 = 1000 * 0.5（不在折后金额上复合）
	assert.InDelta(t, 100.0, b.QuantityDiscount, 1e-9)
	assert.InDelta(t, 500.0, b.RushFee, 1e-9)
	assert.InDelta(t, 1400.0, b.Total, 1e-9)
}

func TestBreakdownInvariants(t *testing.T) {
	requests := []*Request{
		{Quantity: 1},
		{Quantity: 3, Size: &Size{Width: 48, Height: 96}},
		{Quantity: 25, Size: &Size{Width: 18, Height: 36}, Rush: true},
		{Quantity: 7, Options: []SelectedOption{{OptionID: "finish", Value: "premium"}}},
	}
	p := bannerProduct()
	p.DiscountTiers = []catalog.DiscountTier{{MinQuantity: 20, MaxQuantity: 0, Percent: 12}}

	for _, req := range requests {
		b := Calculate(p, req)
		require.InDelta(t, b.Subtotal+b.RushFee, b.Total, 1e-9)
		require.InDelta(t, b.SubtotalBeforeDiscount-b.QuantityDiscount, b.Subtotal, 1e-9)
	}
}
