// internal/service/turnaround/domain/estimate.go
package domain

import (
	"time"

	"signcraft/internal/catalog"
	"signcraft/internal/pkg/workdays"
)

// Estimate 是一次交期计算的结果。
type Estimate struct {
	StandardDays     int        `json:"standardDays"`
	RushAvailable    bool       `json:"rushAvailable"`
	RushDays         int        `json:"rushDays,omitempty"`
	RushFeePercent   float64    `json:"rushFeePercent,omitempty"`
	CutoffTime       string     `json:"cutoffTime,omitempty"`
	BeatsCutoff      bool       `json:"beatsCutoff"`
	NextShipDate     time.Time  `json:"nextShipDate"`
	StandardDelivery time.Time  `json:"standardDelivery"`
	RushDelivery     *time.Time `json:"rushDelivery,omitempty"`
}

// EstimateFor 计算标准与加急交付日期。纯函数，完全建立在共享的工作日推算上，
// 订单处理流程用的是同一套函数，两边的日期永远一致。
func EstimateFor(p *catalog.Product, orderTime time.Time, rushRequested bool) *Estimate {
	ta := p.Turnaround

	// 交期从订单时刻之后的第一个工作日起算
	start := workdays.NextBusinessDay(orderTime)

	est := &Estimate{
		StandardDays:     ta.StandardDays,
		RushAvailable:    ta.AllowRush,
		CutoffTime:       ta.CutoffTime,
		BeatsCutoff:      workdays.BeatsCutoff(orderTime, ta.CutoffTime),
		NextShipDate:     workdays.NextShipDate(orderTime, ta.CutoffTime),
		StandardDelivery: workdays.AddBusinessDays(start, ta.StandardDays),
	}

	if ta.AllowRush {
		est.RushDays = p.RushDays()
		if ta.RushMultiplier > 1 {
			est.RushFeePercent = (ta.RushMultiplier - 1) * 100
		}
		if rushRequested {
			rush := workdays.AddBusinessDays(start, est.RushDays)
			est.RushDelivery = &rush
		}
	}

	return est
}
