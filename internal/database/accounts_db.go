package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cashflowhq/cashflow-commander/models"
)

func CreateAccount(pool *pgxpool.Pool, account *models.Account) error {
	query := `
		INSERT INTO accounts (user_id, name, type, currency, balance, color, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE)
		RETURNING id`

	account.IsActive = true
	err := pool.QueryRow(context.Background(), query,
		account.UserID,
		account.Name,
		account.Type,
		account.Currency,
		account.Balance,
		account.Color).Scan(&account.ID)
	if err != nil {
		return fmt.Errorf("creating account: %v", err)
	}
	return nil
}

// GetActiveAccountsByUser returns the caller's active accounts only;
// deactivated accounts stay out of every listing and total.
func GetActiveAccountsByUser(pool *pgxpool.Pool, userID int) ([]models.Account, error) {
	query := `
		SELECT id, user_id, name, type, currency, balance, color, is_active
		FROM accounts
		WHERE user_id = $1 AND is_active
		ORDER BY id`

	rows, err := pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %v", err)
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.Type, &a.Currency, &a.Balance, &a.Color, &a.IsActive); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// GetAccountByID scopes the lookup to the owner; a foreign account looks
// exactly like a missing one.
func GetAccountByID(pool *pgxpool.Pool, userID, accountID int) (*models.Account, error) {
	query := `
		SELECT id, user_id, name, type, currency, balance, color, is_active
		FROM accounts
		WHERE id = $1 AND user_id = $2`

	account := &models.Account{}
	err := pool.QueryRow(context.Background(), query, accountID, userID).Scan(
		&account.ID,
		&account.UserID,
		&account.Name,
		&account.Type,
		&account.Currency,
		&account.Balance,
		&account.Color,
		&account.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("looking up account: %v", err)
	}

	return account, nil
}

// UpdateAccount patches the given fields; nil pointers leave the column
// untouched. Returns the updated record.
func UpdateAccount(pool *pgxpool.Pool, userID, accountID int, name *string, balance *float64, color *string) (*models.Account, error) {
	query := `
		UPDATE accounts
		SET name = COALESCE($1, name),
		    balance = COALESCE($2, balance),
		    color = COALESCE($3, color)
		WHERE id = $4 AND user_id = $5
		RETURNING id, user_id, name, type, currency, balance, color, is_active`

	account := &models.Account{}
	err := pool.QueryRow(context.Background(), query, name, balance, color, accountID, userID).Scan(
		&account.ID,
		&account.UserID,
		&account.Name,
		&account.Type,
		&account.Currency,
		&account.Balance,
		&account.Color,
		&account.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("updating account: %v", err)
	}

	return account, nil
}

func GetTotalBalance(pool *pgxpool.Pool, userID int) (float64, error) {
	var total float64
	err := pool.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(balance), 0) FROM accounts WHERE user_id = $1 AND is_active`,
		userID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("summing balances: %v", err)
	}
	return total, nil
}
