// internal/pkg/workdays/workdays.go

// Package workdays 提供共享的工作日推算逻辑。
// 交期计算服务和订单处理流程都使用这里的同一套纯函数，
// 避免两处各自实现后产生不一致的交付日期。
package workdays

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// IsBusinessDay 判断给定日期是否是工作日（周一至周五）。
func IsBusinessDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// NextBusinessDay 返回严格晚于 t 的下一个工作日，时刻部分保留。
func NextBusinessDay(t time.Time) time.Time {
	next := t.AddDate(0, 0, 1)
	for !IsBusinessDay(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// AddBusinessDays 从 start 起向后走 days 个工作日，周末不计入。
// days 为 0 时原样返回 start。
func AddBusinessDays(start time.Time, days int) time.Time {
	t := start
	for i := 0; i < days; i++ {
		t = t.AddDate(0, 0, 1)
		for !IsBusinessDay(t) {
			t = t.AddDate(0, 0, 1)
		}
	}
	return t
}

// BeatsCutoff 判断订单时刻是否赶上了当天的截单时间。
// cutoff 形如 "14:00"；格式非法时视为未配置，一律算赶上。
func BeatsCutoff(orderTime time.Time, cutoff string) bool {
	hour, minute, err := parseCutoff(cutoff)
	if err != nil {
		return true
	}
	if orderTime.Hour() != hour {
		return orderTime.Hour() < hour
	}
	return orderTime.Minute() < minute
}

// NextShipDate 计算订单的下一个发货日：
// 订单时刻之后的第一个工作日；错过截单时间则再顺延一个工作日。
func NextShipDate(orderTime time.Time, cutoff string) time.Time {
	ship := NextBusinessDay(orderTime)
	if !BeatsCutoff(orderTime, cutoff) {
		ship = NextBusinessDay(ship)
	}
	return ship
}

func parseCutoff(cutoff string) (hour, minute int, err error) {
	parts := strings.Split(cutoff, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid cutoff time: %q", cutoff)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid cutoff hour: %q", cutoff)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid cutoff minute: %q", cutoff)
	}
	return hour, minute, nil
}
