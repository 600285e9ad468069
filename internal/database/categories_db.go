package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cashflowhq/cashflow-commander/models"
)

// defaultCategories is the fixed starter set every user gets on first
// use: 8 expense and 5 income categories.
var defaultCategories = []models.Category{
	{Name: "Food & Dining", Icon: "🍽️", Color: "#FF6B6B", Type: models.TransactionExpense},
	{Name: "Transportation", Icon: "🚗", Color: "#4ECDC4", Type: models.TransactionExpense},
	{Name: "Shopping", Icon: "🛍️", Color: "#45B7D1", Type: models.TransactionExpense},
	{Name: "Entertainment", Icon: "🎬", Color: "#96CEB4", Type: models.TransactionExpense},
	{Name: "Bills & Utilities", Icon: "⚡", Color: "#FFEAA7", Type: models.TransactionExpense},
	{Name: "Healthcare", Icon: "🏥", Color: "#DDA0DD", Type: models.TransactionExpense},
	{Name: "Education", Icon: "📚", Color: "#98D8C8", Type: models.TransactionExpense},
	{Name: "Travel", Icon: "✈️", Color: "#F7DC6F", Type: models.TransactionExpense},

	{Name: "Salary", Icon: "💼", Color: "#2ECC71", Type: models.TransactionIncome},
	{Name: "Freelance", Icon: "💻", Color: "#3498DB", Type: models.TransactionIncome},
	{Name: "Investment", Icon: "📈", Color: "#9B59B6", Type: models.TransactionIncome},
	{Name: "Gift", Icon: "🎁", Color: "#E74C3C", Type: models.TransactionIncome},
	{Name: "Other", Icon: "💰", Color: "#34495E", Type: models.TransactionIncome},
}

func CreateCategory(pool *pgxpool.Pool, category *models.Category) error {
	query := `
		INSERT INTO categories (user_id, name, icon, color, type, is_default)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := pool.QueryRow(context.Background(), query,
		category.UserID,
		category.Name,
		category.Icon,
		category.Color,
		category.Type,
		category.IsDefault).Scan(&category.ID)
	if err != nil {
		return fmt.Errorf("creating category: %v", err)
	}
	return nil
}

// GetCategoriesByUser lists the caller's categories; ctype of "" means
// both income and expense.
func GetCategoriesByUser(pool *pgxpool.Pool, userID int, ctype string) ([]models.Category, error) {
	query := `
		SELECT id, user_id, name, icon, color, type, is_default
		FROM categories
		WHERE user_id = $1 AND ($2 = '' OR type = $2)
		ORDER BY id`

	rows, err := pool.Query(context.Background(), query, userID, ctype)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %v", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Icon, &c.Color, &c.Type, &c.IsDefault); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// InitializeDefaultCategories seeds the starter set once per user.
// A no-op when the user already has any category, so calling it on every
// app load is harmless.
func InitializeDefaultCategories(pool *pgxpool.Pool, userID int) error {
	var count int
	err := pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM categories WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return fmt.Errorf("counting categories: %v", err)
	}
	if count > 0 {
		return nil
	}

	for _, c := range defaultCategories {
		c.UserID = userID
		c.IsDefault = true
		if err := CreateCategory(pool, &c); err != nil {
			return err
		}
	}
	return nil
}
