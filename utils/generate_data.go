package utils

import (
	"log"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cashflowhq/cashflow-commander/internal/database"
	"github.com/cashflowhq/cashflow-commander/models"
)

var demoExpenseCategories = []string{
	"Food & Dining", "Transportation", "Shopping", "Entertainment",
	"Bills & Utilities", "Healthcare", "Education", "Travel",
}

var demoIncomeCategories = []string{"Salary", "Freelance", "Investment", "Gift", "Other"}

// SeedDemoData registers a demo user with accounts, the default
// categories, and two months of fake transactions. Meant for local
// development databases only.
func SeedDemoData(pool *pgxpool.Pool) error {
	user := &models.User{
		Email:    gofakeit.Email(),
		Password: gofakeit.Password(true, true, true, false, false, 12),
	}
	if err := database.RegisterUser(pool, user, ""); err != nil {
		return err
	}
	log.Printf("seeded demo user %s (id %d)", user.Email, user.ID)

	if err := database.InitializeDefaultCategories(pool, user.ID); err != nil {
		return err
	}

	checking := &models.Account{
		UserID:   user.ID,
		Name:     "Everyday Checking",
		Type:     models.AccountChecking,
		Currency: "USD",
		Balance:  gofakeit.Price(500, 5000),
		Color:    gofakeit.HexColor(),
	}
	savings := &models.Account{
		UserID:   user.ID,
		Name:     "Rainy Day Savings",
		Type:     models.AccountSavings,
		Currency: "USD",
		Balance:  gofakeit.Price(1000, 20000),
		Color:    gofakeit.HexColor(),
	}
	for _, a := range []*models.Account{checking, savings} {
		if err := database.CreateAccount(pool, a); err != nil {
			return err
		}
	}

	now := time.Now()
	for i := 0; i < 120; i++ {
		tx := &models.Transaction{
			UserID:      user.ID,
			AccountID:   checking.ID,
			Type:        models.TransactionExpense,
			Amount:      gofakeit.Price(5, 300),
			Category:    demoExpenseCategories[rand.Intn(len(demoExpenseCategories))],
			Description: gofakeit.ProductName(),
			Date:        now.AddDate(0, 0, -rand.Intn(60)).UnixMilli(),
		}
		if err := database.CreateTransaction(pool, tx); err != nil {
			return err
		}
	}

	for i := 0; i < 4; i++ {
		tx := &models.Transaction{
			UserID:      user.ID,
			AccountID:   checking.ID,
			Type:        models.TransactionIncome,
			Amount:      gofakeit.Price(2000, 4000),
			Category:    demoIncomeCategories[rand.Intn(len(demoIncomeCategories))],
			Description: "Payday",
			Date:        now.AddDate(0, 0, -14*i).UnixMilli(),
		}
		if err := database.CreateTransaction(pool, tx); err != nil {
			return err
		}
	}

	log.Printf("seeded demo data for user %d", user.ID)
	return nil
}
