package database_test

import (
	"context"
	"os"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/cashflowhq/cashflow-commander/internal/database"
	"github.com/cashflowhq/cashflow-commander/models"
)

// testPool connects to the database configured in the environment.
// Tests that need a live database skip when none is configured, so the
// pure-logic tests still run everywhere.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	_ = godotenv.Load()
	if os.Getenv("DB_HOST") == "" {
		t.Skip("DB_HOST not set; skipping database test")
	}

	pool, err := database.ConnectPool(context.Background())
	if err != nil {
		t.Fatalf("connecting to database: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := database.RunMigrations(context.Background(), pool); err != nil {
		t.Fatalf("running migrations: %v", err)
	}
	return pool
}

func registerTestUser(t *testing.T, pool *pgxpool.Pool) *models.User {
	t.Helper()

	user := &models.User{
		Email:    gofakeit.Email(),
		Password: gofakeit.Password(true, true, true, false, false, 12),
	}
	if err := database.RegisterUser(pool, user, ""); err != nil {
		t.Fatalf("registering test user: %v", err)
	}
	return user
}

func createTestAccount(t *testing.T, pool *pgxpool.Pool, userID int, balance float64) *models.Account {
	t.Helper()

	account := &models.Account{
		UserID:   userID,
		Name:     gofakeit.Company(),
		Type:     models.AccountChecking,
		Currency: "USD",
		Balance:  balance,
		Color:    "#4ECDC4",
	}
	if err := database.CreateAccount(pool, account); err != nil {
		t.Fatalf("creating test account: %v", err)
	}
	return account
}
