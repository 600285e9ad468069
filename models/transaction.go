package models

const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

type Transaction struct {
	ID          int      `json:"id" db:"id"`
	UserID      int      `json:"user_id" db:"user_id"`
	AccountID   int      `json:"account_id" db:"account_id"`
	Type        string   `json:"type" db:"type"`
	Amount      float64  `json:"amount" db:"amount"`
	Category    string   `json:"category" db:"category"`
	Description string   `json:"description" db:"description"`
	Date        int64    `json:"date" db:"date"` // epoch milliseconds
	Tags        []string `json:"tags,omitempty" db:"tags"`
}

// TransactionWithAccount is what the transaction list returns: each row
// joined with the account it was booked against.
type TransactionWithAccount struct {
	Transaction
	Account Account `json:"account"`
}

type MonthlyStats struct {
	Income       float64       `json:"income"`
	Expenses     float64       `json:"expenses"`
	Transactions []Transaction `json:"transactions"`
}

type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

func ValidTransactionType(t string) bool {
	return t == TransactionIncome || t == TransactionExpense
}
