package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"signcraft/internal/catalog"
	"signcraft/internal/pkg/workdays"
)

func turnaroundProduct() *catalog.Product {
	return &catalog.Product{
		ID: "prod-banner",
		Turnaround: catalog.Turnaround{
			StandardDays:   5,
			AllowRush:      true,
			RushMultiplier: 1.5,
			CutoffTime:     "14:00",
		},
	}
}

func TestEstimateStandardDelivery(t *testing.T) {
	// 2026-08-31 是周一
	orderTime := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	est := EstimateFor(turnaroundProduct(), orderTime, false)

	// 周二起算 + 5 个工作日 = 下周二
	assert.Equal(t, time.Date(2026, 9, 8, 9, 0, 0, 0, time.UTC), est.StandardDelivery)
	assert.Equal(t, 5, est.StandardDays)
	assert.Nil(t, est.RushDelivery)
}

func TestEstimateRushDelivery(t *testing.T) {
	orderTime := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	est := EstimateFor(turnaroundProduct(), orderTime, true)

	require.NotNil(t, est.RushDelivery)
	// rushDays 未配置时取 ceil(5/2)=3：周二 + 3 个工作日 = 周五
	assert.Equal(t, 3, est.RushDays)
	assert.Equal(t, time.Friday, est.RushDelivery.Weekday())
	assert.InDelta(t, 50.0, est.RushFeePercent, 1e-9)
}

func TestEstimateRushIgnoredWhenDisallowed(t *testing.T) {
	p := turnaroundProduct()
	p.Turnaround.AllowRush = false

	est := EstimateFor(p, time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC), true)
	assert.Nil(t, est.RushDelivery)
	assert.False(t, est.RushAvailable)
	assert.Zero(t, est.RushDays)
}

func TestEstimateCutoffRollsShipDate(t *testing.T) {
	early := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	late := time.Date(2026, 8, 31, 16, 0, 0, 0, time.UTC)

	p := turnaroundProduct()
	assert.True(t, EstimateFor(p, early, false).BeatsCutoff)
	assert.Equal(t, time.Tuesday, EstimateFor(p, early, false).NextShipDate.Weekday())

	assert.False(t, EstimateFor(p, late, false).BeatsCutoff)
	assert.Equal(t, time.Wednesday, EstimateFor(p, late, false).NextShipDate.Weekday())
}

func TestDeliveryDatesNeverOnWeekend(t *testing.T) {
	p := turnaroundProduct()
	base := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	for offset := 0; offset < 14; offset++ {
		est := EstimateFor(p, base.AddDate(0, 0, offset), true)
		require.True(t, workdays.IsBusinessDay(est.StandardDelivery))
		require.True(t, workdays.IsBusinessDay(est.NextShipDate))
		if est.RushDelivery != nil {
			require.True(t, workdays.IsBusinessDay(*est.RushDelivery))
		}
	}
}
