package models

const (
	AccountChecking   = "checking"
	AccountSavings    = "savings"
	AccountCredit     = "credit"
	AccountInvestment = "investment"
)

type Account struct {
	ID       int     `json:"id" db:"id"`
	UserID   int     `json:"user_id" db:"user_id"`
	Name     string  `json:"name" db:"name"`
	Type     string  `json:"type" db:"type"`
	Currency string  `json:"currency" db:"currency"`
	Balance  float64 `json:"balance" db:"balance"`
	Color    string  `json:"color" db:"color"`
	IsActive bool    `json:"is_active" db:"is_active"`
}

func ValidAccountType(t string) bool {
	switch t {
	case AccountChecking, AccountSavings, AccountCredit, AccountInvestment:
		return true
	}
	return false
}
