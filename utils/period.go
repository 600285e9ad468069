package utils

import (
	"time"

	"github.com/cashflowhq/cashflow-commander/models"
)

const dayMillis = int64(24 * 60 * 60 * 1000)

// PeriodBounds computes the fixed budget window for a period containing
// now, in local time, as epoch milliseconds:
//
//	weekly:  most recent Sunday 00:00 through start+7d-1ms
//	monthly: first of the month 00:00 through last day 23:59:59
//	yearly:  Jan 1 00:00 through Dec 31 23:59:59
//
// The window is computed once at budget creation and never moves.
func PeriodBounds(period string, now time.Time) (int64, int64) {
	loc := now.Location()

	switch period {
	case models.PeriodWeekly:
		start := time.Date(now.Year(), now.Month(), now.Day()-int(now.Weekday()), 0, 0, 0, 0, loc)
		startMillis := start.UnixMilli()
		return startMillis, startMillis + 7*dayMillis - 1
	case models.PeriodYearly:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, loc)
		end := time.Date(now.Year(), time.December, 31, 23, 59, 59, 0, loc)
		return start.UnixMilli(), end.UnixMilli()
	default: // monthly
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		end := time.Date(now.Year(), now.Month()+1, 0, 23, 59, 59, 0, loc)
		return start.UnixMilli(), end.UnixMilli()
	}
}
