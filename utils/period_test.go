package utils_test

import (
	"testing"
	"time"

	"github.com/cashflowhq/cashflow-commander/models"
	"github.com/cashflowhq/cashflow-commander/utils"
)

func TestPeriodBoundsWeekly(t *testing.T) {
	// Wednesday, 2024-05-15
	now := time.Date(2024, 5, 15, 10, 30, 0, 0, time.Local)

	start, end := utils.PeriodBounds(models.PeriodWeekly, now)

	startTime := time.UnixMilli(start)
	if startTime.Weekday() != time.Sunday {
		t.Errorf("weekly start is %v, want Sunday", startTime.Weekday())
	}
	if startTime.Hour() != 0 || startTime.Minute() != 0 || startTime.Second() != 0 {
		t.Errorf("weekly start is not midnight: %v", startTime)
	}
	if startTime.Day() != 12 || startTime.Month() != time.May {
		t.Errorf("weekly start = %v, want May 12", startTime)
	}

	if got := end - start; got != 7*24*60*60*1000-1 {
		t.Errorf("weekly window length = %dms, want 7 days minus 1ms", got)
	}
}

func TestPeriodBoundsWeeklyOnSunday(t *testing.T) {
	// Already a Sunday: the window starts that same day.
	now := time.Date(2024, 5, 12, 23, 0, 0, 0, time.Local)

	start, _ := utils.PeriodBounds(models.PeriodWeekly, now)
	startTime := time.UnixMilli(start)
	if startTime.Day() != 12 || startTime.Month() != time.May {
		t.Errorf("weekly start = %v, want May 12", startTime)
	}
}

func TestPeriodBoundsMonthly(t *testing.T) {
	now := time.Date(2024, 2, 10, 12, 0, 0, 0, time.Local)

	start, end := utils.PeriodBounds(models.PeriodMonthly, now)

	wantStart := time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local).UnixMilli()
	wantEnd := time.Date(2024, 2, 29, 23, 59, 59, 0, time.Local).UnixMilli() // leap year
	if start != wantStart {
		t.Errorf("monthly start = %d, want %d", start, wantStart)
	}
	if end != wantEnd {
		t.Errorf("monthly end = %d, want %d", end, wantEnd)
	}
}

func TestPeriodBoundsYearly(t *testing.T) {
	now := time.Date(2024, 8, 20, 9, 0, 0, 0, time.Local)

	start, end := utils.PeriodBounds(models.PeriodYearly, now)

	wantStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local).UnixMilli()
	wantEnd := time.Date(2024, 12, 31, 23, 59, 59, 0, time.Local).UnixMilli()
	if start != wantStart {
		t.Errorf("yearly start = %d, want %d", start, wantStart)
	}
	if end != wantEnd {
		t.Errorf("yearly end = %d, want %d", end, wantEnd)
	}
}
