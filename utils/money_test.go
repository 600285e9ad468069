package utils_test

import (
	"testing"

	"github.com/cashflowhq/cashflow-commander/utils"
)

func TestFormatUSD(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "$0.00"},
		{5, "$5.00"},
		{80, "$80.00"},
		{999, "$999.00"},
		{1000, "$1,000.00"},
		{1234.5, "$1,234.50"},
		{1234567.891, "$1,234,567.89"},
		{-45.678, "-$45.68"},
		{0.1 + 0.2, "$0.30"},
	}

	for _, tc := range cases {
		if got := utils.FormatUSD(tc.amount); got != tc.want {
			t.Errorf("FormatUSD(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}
