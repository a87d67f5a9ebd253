package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"signcraft/internal/catalog"
)

func groundMethod() *catalog.ShippingMethod {
	return &catalog.ShippingMethod{
		ID:            "ground",
		Name:          "Ground",
		Description:   "Standard ground shipping",
		BaseCost:      15.0,
		EstimatedDays: 5,
		ZipPricing:    true,
		ZipRanges: []catalog.ZipRange{
			{Start: "00000", End: "19999", Surcharge: 5},
			{Start: "90000", End: "99999", Surcharge: 12},
			// 与第一段重叠，声明顺序靠后，永远不该命中
			{Start: "10000", End: "29999", Surcharge: 100},
		},
		WeightThreshold:  20,
		WeightIncrement:  5,
		CostPerIncrement: 4,
	}
}

func TestQuoteBaseCostOnly(t *testing.T) {
	m := groundMethod()
	q := QuoteFor(m, &Request{Zip: "50000", Weight: 10})
	assert.InDelta(t, 15.0, q.Cost, 1e-9)
	assert.Equal(t, "Ground", q.MethodName)
	assert.Equal(t, 5, q.EstimatedDays)
}

func TestZipSurchargeFirstMatchWins(t *testing.T) {
	m := groundMethod()
	assert.InDelta(t, 20.0, QuoteFor(m, &Request{Zip: "12345"}).Cost, 1e-9)
	assert.InDelta(t, 27.0, QuoteFor(m, &Request{Zip: "94103"}).Cost, 1e-9)
	// 区间外不加价
	assert.InDelta(t, 15.0, QuoteFor(m, &Request{Zip: "45678"}).Cost, 1e-9)
}

func TestZipPricingDisabled(t *testing.T) {
	m := groundMethod()
	m.ZipPricing = false
	assert.InDelta(t, 15.0, QuoteFor(m, &Request{Zip: "12345"}).Cost, 1e-9)
}

func TestWeightSurcharge(t *testing.T) {
	m := groundMethod()
	m.ZipPricing = false

	tests := []struct {
		weight float64
		cost   float64
	}{
		{20, 15},    // 恰在阈值，不加价
		{21, 19},    // 超 1 磅，1 个增量
		{25, 19},    // 超 5 磅，仍是 1 个增量
		{25.1, 23},  // 超 5.1 磅，进位到 2 个增量
		{45, 35},    // 超 25 磅，5 个增量
	}
	for _, tt := range tests {
		q := QuoteFor(m, &Request{Weight: tt.weight})
		assert.InDeltaf(t, tt.cost, q.Cost, 1e-9, "weight %.1f", tt.weight)
	}
}

func TestCostMonotonicInWeight(t *testing.T) {
	m := groundMethod()
	m.ZipPricing = false

	prev := 0.0
	for w := 20.0; w <= 100; w += 0.5 {
		cost := QuoteFor(m, &Request{Weight: w}).Cost
		require.GreaterOrEqualf(t, cost, prev, "cost decreased at weight %.1f", w)
		prev = cost
	}
}

func TestDimensionalWeightSurcharge(t *testing.T) {
	m := groundMethod()
	m.ZipPricing = false

	// 48x24x12 = 13824 in^3 / 166 ≈ 83.3 磅体积重，实际 10 磅
	// 超出 73.3 磅 => ceil(73.3/5)=15 个增量 => +60
	q := QuoteFor(m, &Request{
		Weight:     10,
		Dimensions: &Dimensions{Length: 48, Width: 24, Height: 12},
	})
	assert.InDelta(t, 75.0, q.Cost, 1e-9)

	// 体积重不超过实际重量时不加价
	q = QuoteFor(m, &Request{
		Weight:     10,
		Dimensions: &Dimensions{Length: 10, Width: 10, Height: 10},
	})
	assert.InDelta(t, 15.0, q.Cost, 1e-9)
}

func TestCostFlooredAtZero(t *testing.T) {
	m := groundMethod()
	m.BaseCost = 3
	m.ZipRanges = []catalog.ZipRange{{Start: "00000", End: "99999", Surcharge: -10}}

	q := QuoteFor(m, &Request{Zip: "12345"})
	assert.Zero(t, q.Cost)
}
