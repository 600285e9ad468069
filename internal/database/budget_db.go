package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/cashflowhq/cashflow-commander/models"
)

func CreateBudget(pool *pgxpool.Pool, budget *models.Budget) error {
	query := `
		INSERT INTO budgets (user_id, category, amount, period, start_date, end_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE)
		RETURNING id`

	budget.IsActive = true
	err := pool.QueryRow(context.Background(), query,
		budget.UserID,
		budget.Category,
		budget.Amount,
		budget.Period,
		budget.StartDate,
		budget.EndDate).Scan(&budget.ID)
	if err != nil {
		return fmt.Errorf("creating budget: %v", err)
	}
	return nil
}

// GetBudgetSummariesByUser lists the caller's active budgets, each
// decorated with spent/remaining/percentage derived from the matching
// expense transactions. Recomputed on every call; nothing is cached.
func GetBudgetSummariesByUser(pool *pgxpool.Pool, userID int) ([]models.BudgetSummary, error) {
	query := `
		SELECT id, user_id, category, amount, period, start_date, end_date, is_active
		FROM budgets
		WHERE user_id = $1 AND is_active
		ORDER BY id`

	rows, err := pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing budgets: %v", err)
	}

	budgets := []models.Budget{}
	for rows.Next() {
		var b models.Budget
		if err := rows.Scan(&b.ID, &b.UserID, &b.Category, &b.Amount, &b.Period, &b.StartDate, &b.EndDate, &b.IsActive); err != nil {
			rows.Close()
			return nil, err
		}
		budgets = append(budgets, b)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	summaries := []models.BudgetSummary{}
	for _, b := range budgets {
		spent, err := SumExpensesInRange(pool, userID, b.Category, b.StartDate, b.EndDate)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, SummarizeBudget(b, spent))
	}
	return summaries, nil
}

// SummarizeBudget derives the spend figures for one budget. Percentage
// is clamped to [0, 100] even when spending exceeds the cap.
func SummarizeBudget(b models.Budget, spent float64) models.BudgetSummary {
	amount := decimal.NewFromFloat(b.Amount)
	spentDec := decimal.NewFromFloat(spent)

	percentage := 0.0
	if amount.IsPositive() {
		percentage = spentDec.Div(amount).Mul(decimal.NewFromInt(100)).InexactFloat64()
		if percentage > 100 {
			percentage = 100
		}
	}

	return models.BudgetSummary{
		Budget:     b,
		Spent:      spent,
		Remaining:  amount.Sub(spentDec).InexactFloat64(),
		Percentage: percentage,
	}
}

// UpdateBudget patches amount and/or active flag; nil pointers leave the
// column untouched.
func UpdateBudget(pool *pgxpool.Pool, userID, budgetID int, amount *float64, isActive *bool) (*models.Budget, error) {
	query := `
		UPDATE budgets
		SET amount = COALESCE($1, amount),
		    is_active = COALESCE($2, is_active)
		WHERE id = $3 AND user_id = $4
		RETURNING id, user_id, category, amount, period, start_date, end_date, is_active`

	budget := &models.Budget{}
	err := pool.QueryRow(context.Background(), query, amount, isActive, budgetID, userID).Scan(
		&budget.ID,
		&budget.UserID,
		&budget.Category,
		&budget.Amount,
		&budget.Period,
		&budget.StartDate,
		&budget.EndDate,
		&budget.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("updating budget: %v", err)
	}

	return budget, nil
}

// DeactivateExpiredBudgets flips is_active off for budgets whose window
// has ended. Run nightly.
func DeactivateExpiredBudgets(pool *pgxpool.Pool, nowMillis int64) (int64, error) {
	tag, err := pool.Exec(context.Background(),
		`UPDATE budgets SET is_active = FALSE WHERE is_active AND end_date < $1`, nowMillis)
	if err != nil {
		return 0, fmt.Errorf("deactivating expired budgets: %v", err)
	}
	return tag.RowsAffected(), nil
}
