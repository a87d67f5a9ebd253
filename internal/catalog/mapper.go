// internal/catalog/mapper.go
package catalog

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// ToDomainProduct 把数据库模型转换为领域模型。
func ToDomainProduct(m *ProductModel) (*Product, error) {
	p := &Product{
		ID:              m.ID,
		Name:            m.Name,
		Category:        m.Category,
		BasePrice:       m.BasePrice,
		PricingModel:    PricingModel(m.PricingModel),
		UnitRate:        m.UnitRate,
		AllowCustomSize: m.AllowCustomSize,
		MinWidth:        m.MinWidth,
		MaxWidth:        m.MaxWidth,
		MinHeight:       m.MinHeight,
		MaxHeight:       m.MaxHeight,
		SizeUnit:        m.SizeUnit,
		UnitWeight:      m.UnitWeight,
	}

	if m.OptionsJSON != "" {
		if err := json.Unmarshal([]byte(m.OptionsJSON), &p.Options); err != nil {
			return nil, errors.Wrapf(err, "product %s: malformed options", m.ID)
		}
	}
	if m.DiscountTiersJSON != "" {
		if err := json.Unmarshal([]byte(m.DiscountTiersJSON), &p.DiscountTiers); err != nil {
			return nil, errors.Wrapf(err, "product %s: malformed discount tiers", m.ID)
		}
	}
	if m.ShippingMethodsJSON != "" {
		if err := json.Unmarshal([]byte(m.ShippingMethodsJSON), &p.ShippingMethods); err != nil {
			return nil, errors.Wrapf(err, "product %s: malformed shipping methods", m.ID)
		}
	}
	if m.TurnaroundJSON != "" {
		if err := json.Unmarshal([]byte(m.TurnaroundJSON), &p.Turnaround); err != nil {
			return nil, errors.Wrapf(err, "product %s: malformed turnaround", m.ID)
		}
	}
	return p, nil
}
