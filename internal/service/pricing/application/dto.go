// internal/service/pricing/application/dto.go
package application

import (
	"signcraft/internal/service/pricing/domain"
)

// CalculatePriceRequest 是报价接口的请求体。
type CalculatePriceRequest struct {
	ProductID     string                  `json:"productId"`
	Quantity      int                     `json:"quantity"`
	Size          *domain.Size            `json:"size,omitempty"`
	LetterCount   int                     `json:"letterCount,omitempty"`
	Options       []domain.SelectedOption `json:"options,omitempty"`
	RushRequested bool                    `json:"rushRequested,omitempty"`
}

// ToDomainRequest 把接口请求转换为领域计算输入。
func (r *CalculatePriceRequest) ToDomainRequest() *domain.Request {
	return &domain.Request{
		Quantity:    r.Quantity,
		Size:        r.Size,
		LetterCount: r.LetterCount,
		Options:     r.Options,
		Rush:        r.RushRequested,
	}
}
