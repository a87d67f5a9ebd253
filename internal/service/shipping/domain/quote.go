// internal/service/shipping/domain/quote.go
package domain

import (
	"math"

	"signcraft/internal/catalog"
)

// Dimensions 是包裹外形尺寸（英寸）。
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Request 是一次运费计算的输入。重量与尺寸可选。
type Request struct {
	Zip        string
	Weight     float64 // 磅
	Dimensions *Dimensions
}

// Quote 是一次运费报价结果。
type Quote struct {
	Cost          float64 `json:"cost"`
	MethodID      string  `json:"methodId"`
	MethodName    string  `json:"methodName"`
	Description   string  `json:"description"`
	EstimatedDays int     `json:"estimatedDays"`
}

// 体积重换算系数：长*宽*高（立方英寸）除以 166 得到磅。
const dimensionalDivisor = 166.0

// QuoteFor 对给定配送方式计算运费。纯函数，结果下限为 0。
func QuoteFor(m *catalog.ShippingMethod, req *Request) *Quote {
	cost := m.BaseCost

	cost += zipSurcharge(m, req.Zip)
	cost += weightSurcharge(m, req.Weight)
	cost += dimensionalSurcharge(m, req)

	if cost < 0 {
		cost = 0
	}

	return &Quote{
		Cost:          math.Round(cost*100) / 100,
		MethodID:      m.ID,
		MethodName:    m.Name,
		Description:   m.Description,
		EstimatedDays: m.EstimatedDays,
	}
}

// zipSurcharge 找到第一个字典序包含目的邮编的区间并返回其加价。
// 没有命中区间就没有加价。
func zipSurcharge(m *catalog.ShippingMethod, zip string) float64 {
	if !m.ZipPricing || zip == "" {
		return 0
	}
	for _, r := range m.ZipRanges {
		if r.Start <= zip && zip <= r.End {
			return r.Surcharge
		}
	}
	return 0
}

// weightSurcharge 按重量阶梯加价：超过阈值的部分按增量向上取整计费。
func weightSurcharge(m *catalog.ShippingMethod, weight float64) float64 {
	if m.WeightThreshold <= 0 || weight <= m.WeightThreshold {
		return 0
	}
	return incrementCharge(m, weight-m.WeightThreshold)
}

// dimensionalSurcharge 在体积重超过实际重量时，对超出部分按同一阶梯加价。
func dimensionalSurcharge(m *catalog.ShippingMethod, req *Request) float64 {
	if req.Dimensions == nil {
		return 0
	}
	d := req.Dimensions
	dimWeight := d.Length * d.Width * d.Height / dimensionalDivisor
	if dimWeight <= req.Weight {
		return 0
	}
	return incrementCharge(m, dimWeight-req.Weight)
}

func incrementCharge(m *catalog.ShippingMethod, extra float64) float64 {
	if m.CostPerIncrement <= 0 || extra <= 0 {
		return 0
	}
	increment := m.WeightIncrement
	if increment <= 0 {
		increment = 1
	}
	return math.Ceil(extra/increment) * m.CostPerIncrement
}
