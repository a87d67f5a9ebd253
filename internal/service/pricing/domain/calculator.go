// internal/service/pricing/domain/calculator.go
package domain

import (
	"math"

	"signcraft/internal/catalog"
)

// Size 是请求中的定制尺寸。
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Unit   string  `json:"unit,omitempty"` // "in"（默认）或 "ft"
}

// SelectedOption 是客户选中的一个选项取值。
type SelectedOption struct {
	OptionID string `json:"optionId"`
	Value    string `json:"value"`
}

// Request 是一次报价计算的全部输入。
type Request struct {
	Quantity    int
	Size        *Size
	LetterCount int
	Options     []SelectedOption
	Rush        bool
}

// Breakdown 是报价的完整拆解。
// 不变式：Subtotal == SubtotalBeforeDiscount - QuantityDiscount，
// Total == Subtotal + RushFee。折扣与加急费互相独立，均以折前小计为基数。
type Breakdown struct {
	Quantity               int     `json:"quantity"`
	BasePrice              float64 `json:"basePrice"`
	SizePrice              float64 `json:"sizePrice"`
	OptionsPrice           float64 `json:"optionsPrice"`
	SubtotalBeforeDiscount float64 `json:"subtotalBeforeDiscount"`
	QuantityDiscount       float64 `json:"quantityDiscount"`
	RushFee                float64 `json:"rushFee"`
	Subtotal               float64 `json:"subtotal"`
	Total                  float64 `json:"total"`
}

// Calculate 对给定商品和请求计算报价拆解。
// 它是纯函数：对合法的数值输入永不出错，校验由应用层完成。
func Calculate(p *catalog.Product, req *Request) *Breakdown {
	sizePrice := sizePrice(p, req)
	optionsPrice := optionsPrice(p, req.Options)

	perUnit := p.BasePrice + sizePrice + optionsPrice
	subtotalBeforeDiscount := round2(perUnit * float64(req.Quantity))

	discount := round2(quantityDiscount(p, req.Quantity, subtotalBeforeDiscount, req.Rush))

	var rushFee float64
	if req.Rush && p.Turnaround.AllowRush && p.Turnaround.RushMultiplier > 1 {
		rushFee = round2(subtotalBeforeDiscount * (p.Turnaround.RushMultiplier - 1))
	}

	subtotal := round2(subtotalBeforeDiscount - discount)

	return &Breakdown{
		Quantity:               req.Quantity,
		BasePrice:              round2(p.BasePrice),
		SizePrice:              round2(sizePrice),
		OptionsPrice:           round2(optionsPrice),
		SubtotalBeforeDiscount: subtotalBeforeDiscount,
		QuantityDiscount:       discount,
		RushFee:                rushFee,
		Subtotal:               subtotal,
		Total:                  round2(subtotal + rushFee),
	}
}

// sizePrice 按商品的计价模型计算尺寸加价。
// 固定价商品恒为 0；其余模型只在商品允许定制尺寸时生效。
func sizePrice(p *catalog.Product, req *Request) float64 {
	if p.PricingModel == catalog.ModelFixed || !p.AllowCustomSize {
		return 0
	}

	switch p.PricingModel {
	case catalog.ModelPerSquareFoot:
		if req.Size == nil {
			return 0
		}
		w, h := toInches(req.Size)
		return (w * h) / 144 * p.UnitRate
	case catalog.ModelPerLinearFoot:
		if req.Size == nil {
			return 0
		}
		w, h := toInches(req.Size)
		perimeterFeet := 2 * (w + h) / 12
		return perimeterFeet * p.UnitRate
	case catalog.ModelPerLetter:
		return float64(req.LetterCount) * p.UnitRate
	default:
		return 0
	}
}

func toInches(s *Size) (w, h float64) {
	if s.Unit == "ft" {
		return s.Width * 12, s.Height * 12
	}
	return s.Width, s.Height
}

// optionsPrice 累加所有能在商品选项表里匹配到的取值加价。
// 匹配不上的选项对直接忽略，不报错。
func optionsPrice(p *catalog.Product, selected []SelectedOption) float64 {
	var sum float64
	for _, sel := range selected {
		for _, opt := range p.Options {
			if opt.ID != sel.OptionID {
				continue
			}
			for _, v := range opt.Values {
				if v.Value == sel.Value {
					sum += v.PriceDelta
					break
				}
			}
			break
		}
	}
	return sum
}

// quantityDiscount 按档位声明顺序找到第一个命中的折扣档并计算减免额。
// 命中即停，档位互斥，边界数量只会落进一个档。
func quantityDiscount(p *catalog.Product, quantity int, subtotalBeforeDiscount float64, rush bool) float64 {
	for _, tier := range p.DiscountTiers {
		if quantity < tier.MinQuantity {
			continue
		}
		if tier.MaxQuantity > 0 && quantity > tier.MaxQuantity {
			continue
		}
		if tier.Condition != "" && !EvalTierCondition(tier.Condition, quantity, subtotalBeforeDiscount, rush) {
			continue
		}
		if tier.Percent > 0 {
			return subtotalBeforeDiscount * tier.Percent / 100
		}
		return tier.AmountPerUnit * float64(quantity)
	}
	return 0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
