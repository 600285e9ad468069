package models

const (
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
	PeriodYearly  = "yearly"
)

type Budget struct {
	ID        int     `json:"id" db:"id"`
	UserID    int     `json:"user_id" db:"user_id"`
	Category  string  `json:"category" db:"category"`
	Amount    float64 `json:"amount" db:"amount"`
	Period    string  `json:"period" db:"period"`
	StartDate int64   `json:"start_date" db:"start_date"` // epoch milliseconds
	EndDate   int64   `json:"end_date" db:"end_date"`
	IsActive  bool    `json:"is_active" db:"is_active"`
}

// BudgetSummary decorates a budget with spend figures derived from the
// matching transactions at read time. Nothing here is stored.
type BudgetSummary struct {
	Budget
	Spent      float64 `json:"spent"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
}

func ValidBudgetPeriod(p string) bool {
	switch p {
	case PeriodWeekly, PeriodMonthly, PeriodYearly:
		return true
	}
	return false
}
