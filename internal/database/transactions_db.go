package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/cashflowhq/cashflow-commander/models"
)

// CreateTransaction inserts the transaction and applies its signed
// amount to the owning account's balance. The account must belong to
// the same user; transaction creation is the only balance mutator
// besides direct account edits.
func CreateTransaction(pool *pgxpool.Pool, tx *models.Transaction) error {
	account, err := GetAccountByID(pool, tx.UserID, tx.AccountID)
	if err != nil {
		return err
	}

	if tx.Date == 0 {
		tx.Date = time.Now().UnixMilli()
	}

	query := `
		INSERT INTO transactions (user_id, account_id, type, amount, category, description, date, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	err = pool.QueryRow(context.Background(), query,
		tx.UserID,
		tx.AccountID,
		tx.Type,
		tx.Amount,
		tx.Category,
		tx.Description,
		tx.Date,
		tx.Tags).Scan(&tx.ID)
	if err != nil {
		return fmt.Errorf("creating transaction: %v", err)
	}

	delta := tx.Amount
	if tx.Type == models.TransactionExpense {
		delta = -tx.Amount
	}

	_, err = pool.Exec(context.Background(),
		`UPDATE accounts SET balance = balance + $1 WHERE id = $2`,
		delta, account.ID)
	if err != nil {
		return fmt.Errorf("applying balance change: %v", err)
	}

	return nil
}

// GetTransactionsByUser returns the caller's latest transactions, newest
// first, each joined with its account. accountID of 0 means all accounts.
func GetTransactionsByUser(pool *pgxpool.Pool, userID, limit, accountID int) ([]models.TransactionWithAccount, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT t.id, t.user_id, t.account_id, t.type, t.amount, t.category, t.description, t.date, t.tags,
		       a.id, a.user_id, a.name, a.type, a.currency, a.balance, a.color, a.is_active
		FROM transactions t
		JOIN accounts a ON a.id = t.account_id
		WHERE t.user_id = $1 AND ($2 = 0 OR t.account_id = $2)
		ORDER BY t.date DESC, t.id DESC
		LIMIT $3`

	rows, err := pool.Query(context.Background(), query, userID, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %v", err)
	}
	defer rows.Close()

	transactions := []models.TransactionWithAccount{}
	for rows.Next() {
		var t models.TransactionWithAccount
		err := rows.Scan(
			&t.ID, &t.UserID, &t.AccountID, &t.Type, &t.Amount, &t.Category, &t.Description, &t.Date, &t.Tags,
			&t.Account.ID, &t.Account.UserID, &t.Account.Name, &t.Account.Type,
			&t.Account.Currency, &t.Account.Balance, &t.Account.Color, &t.Account.IsActive,
		)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

// GetTransactionsInRange returns the caller's transactions with
// from <= date <= to, oldest first.
func GetTransactionsInRange(pool *pgxpool.Pool, userID int, from, to int64) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, account_id, type, amount, category, description, date, tags
		FROM transactions
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date`

	rows, err := pool.Query(context.Background(), query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing transactions in range: %v", err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		err := rows.Scan(&t.ID, &t.UserID, &t.AccountID, &t.Type, &t.Amount, &t.Category, &t.Description, &t.Date, &t.Tags)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

// GetMonthlyStats sums income and expenses over a calendar month in
// local time. month is 0-based (January = 0), mirroring the client.
func GetMonthlyStats(pool *pgxpool.Pool, userID, month, year int) (*models.MonthlyStats, error) {
	start := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.Local)
	end := time.Date(year, time.Month(month+2), 0, 23, 59, 59, 0, time.Local)

	transactions, err := GetTransactionsInRange(pool, userID, start.UnixMilli(), end.UnixMilli())
	if err != nil {
		return nil, err
	}

	income := decimal.Zero
	expenses := decimal.Zero
	for _, t := range transactions {
		amount := decimal.NewFromFloat(t.Amount)
		if t.Type == models.TransactionIncome {
			income = income.Add(amount)
		} else {
			expenses = expenses.Add(amount)
		}
	}

	return &models.MonthlyStats{
		Income:       income.InexactFloat64(),
		Expenses:     expenses.InexactFloat64(),
		Transactions: transactions,
	}, nil
}

// GetCategoryBreakdown groups the caller's transactions of one type over
// the trailing number of days and sums per category, largest first.
func GetCategoryBreakdown(pool *pgxpool.Pool, userID int, txType string, days int) ([]models.CategoryTotal, error) {
	if days <= 0 {
		days = 30
	}
	since := time.Now().UnixMilli() - int64(days)*24*60*60*1000

	query := `
		SELECT category, SUM(amount)
		FROM transactions
		WHERE user_id = $1 AND type = $2 AND date >= $3
		GROUP BY category
		ORDER BY SUM(amount) DESC`

	rows, err := pool.Query(context.Background(), query, userID, txType, since)
	if err != nil {
		return nil, fmt.Errorf("computing category breakdown: %v", err)
	}
	defer rows.Close()

	totals := []models.CategoryTotal{}
	for rows.Next() {
		var ct models.CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Amount); err != nil {
			return nil, err
		}
		totals = append(totals, ct)
	}
	return totals, rows.Err()
}

// SumExpensesInRange totals the caller's expense transactions for one
// category inside a budget window.
func SumExpensesInRange(pool *pgxpool.Pool, userID int, category string, from, to int64) (float64, error) {
	var spent float64
	err := pool.QueryRow(context.Background(), `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_id = $1 AND type = 'expense' AND category = $2 AND date >= $3 AND date <= $4`,
		userID, category, from, to).Scan(&spent)
	if err != nil {
		return 0, fmt.Errorf("summing expenses: %v", err)
	}
	return spent, nil
}
