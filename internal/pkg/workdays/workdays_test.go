package workdays

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-08-31 是周一
var monday = time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

func TestNextBusinessDay(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		want time.Weekday
		days int
	}{
		{"monday to tuesday", monday, time.Tuesday, 1},
		{"friday skips weekend", monday.AddDate(0, 0, 4), time.Monday, 3},
		{"saturday to monday", monday.AddDate(0, 0, 5), time.Monday, 2},
		{"sunday to monday", monday.AddDate(0, 0, 6), time.Monday, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextBusinessDay(tt.from)
			assert.Equal(t, tt.want, got.Weekday())
			assert.Equal(t, tt.from.AddDate(0, 0, tt.days).Day(), got.Day())
		})
	}
}

func TestAddBusinessDaysSkipsWeekends(t *testing.T) {
	// 周一 + 5 个工作日 = 下周一
	got := AddBusinessDays(monday, 5)
	assert.Equal(t, time.Monday, got.Weekday())
	assert.Equal(t, monday.AddDate(0, 0, 7), got)

	assert.Equal(t, monday, AddBusinessDays(monday, 0))
}

func TestDeliveryDateNeverOnWeekend(t *testing.T) {
	// 任意起点、任意天数，落点都必须是工作日
	for offset := 0; offset < 7; offset++ {
		for days := 1; days <= 15; days++ {
			got := AddBusinessDays(NextBusinessDay(monday.AddDate(0, 0, offset)), days)
			require.True(t, IsBusinessDay(got), "start offset %d plus %d days landed on %s", offset, days, got.Weekday())
		}
	}
}

func TestBeatsCutoff(t *testing.T) {
	at := func(h, m int) time.Time {
		return time.Date(2026, 8, 31, h, m, 0, 0, time.UTC)
	}

	assert.True(t, BeatsCutoff(at(13, 59), "14:00"))
	assert.False(t, BeatsCutoff(at(14, 0), "14:00"))
	assert.False(t, BeatsCutoff(at(15, 30), "14:00"))
	// 非法配置视为未设置截单时间
	assert.True(t, BeatsCutoff(at(23, 59), ""))
	assert.True(t, BeatsCutoff(at(23, 59), "25:99"))
}

func TestNextShipDateRollsAfterCutoff(t *testing.T) {
	beforeCutoff := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)  // 周一上午
	afterCutoff := time.Date(2026, 8, 31, 16, 0, 0, 0, time.UTC) // 周一下午

	assert.Equal(t, time.Tuesday, NextShipDate(beforeCutoff, "14:00").Weekday())
	assert.Equal(t, time.Wednesday, NextShipDate(afterCutoff, "14:00").Weekday())

	// 周五错过截单，顺延要跨过整个周末
	friday := time.Date(2026, 9, 4, 16, 0, 0, 0, time.UTC)
	ship := NextShipDate(friday, "14:00")
	assert.Equal(t, time.Tuesday, ship.Weekday())
}
