package database_test

import (
	"errors"
	"testing"
	"time"

	"github.com/cashflowhq/cashflow-commander/internal/database"
	"github.com/cashflowhq/cashflow-commander/models"
)

func TestCreateTransactionAppliesBalanceDelta(t *testing.T) {
	pool := testPool(t)
	user := registerTestUser(t, pool)
	account := createTestAccount(t, pool, user.ID, 100)

	incomeTx := &models.Transaction{
		UserID:    user.ID,
		AccountID: account.ID,
		Type:      models.TransactionIncome,
		Amount:    40,
		Category:  "Salary",
	}
	if err := database.CreateTransaction(pool, incomeTx); err != nil {
		t.Fatalf("creating income transaction: %v", err)
	}
	if incomeTx.Date == 0 {
		t.Error("transaction date was not defaulted")
	}

	expenseTx := &models.Transaction{
		UserID:    user.ID,
		AccountID: account.ID,
		Type:      models.TransactionExpense,
		Amount:    15,
		Category:  "Food & Dining",
	}
	if err := database.CreateTransaction(pool, expenseTx); err != nil {
		t.Fatalf("creating expense transaction: %v", err)
	}

	refreshed, err := database.GetAccountByID(pool, user.ID, account.ID)
	if err != nil {
		t.Fatalf("reloading account: %v", err)
	}
	if refreshed.Balance != 125 {
		t.Errorf("balance = %v, want 125 (100 + 40 - 15)", refreshed.Balance)
	}
}

func TestCreateTransactionForeignAccountLooksMissing(t *testing.T) {
	pool := testPool(t)
	owner := registerTestUser(t, pool)
	intruder := registerTestUser(t, pool)
	account := createTestAccount(t, pool, owner.ID, 100)

	tx := &models.Transaction{
		UserID:    intruder.ID,
		AccountID: account.ID,
		Type:      models.TransactionExpense,
		Amount:    10,
		Category:  "Food & Dining",
	}
	if err := database.CreateTransaction(pool, tx); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("foreign account transaction error = %v, want ErrNotFound", err)
	}
}

func TestGetCategoryBreakdown(t *testing.T) {
	pool := testPool(t)
	user := registerTestUser(t, pool)
	account := createTestAccount(t, pool, user.ID, 1000)

	now := time.Now().UnixMilli()
	for _, amount := range []float64{50, 30} {
		tx := &models.Transaction{
			UserID:    user.ID,
			AccountID: account.ID,
			Type:      models.TransactionExpense,
			Amount:    amount,
			Category:  "Food",
			Date:      now - 5*24*60*60*1000,
		}
		if err := database.CreateTransaction(pool, tx); err != nil {
			t.Fatalf("creating transaction: %v", err)
		}
	}

	totals, err := database.GetCategoryBreakdown(pool, user.ID, models.TransactionExpense, 30)
	if err != nil {
		t.Fatalf("category breakdown: %v", err)
	}
	if len(totals) != 1 {
		t.Fatalf("breakdown has %d categories, want 1: %+v", len(totals), totals)
	}
	if totals[0].Category != "Food" || totals[0].Amount != 80 {
		t.Errorf("breakdown = %+v, want Food/80", totals[0])
	}
}

func TestGetTransactionsByUserNewestFirst(t *testing.T) {
	pool := testPool(t)
	user := registerTestUser(t, pool)
	account := createTestAccount(t, pool, user.ID, 1000)

	now := time.Now().UnixMilli()
	for i, amount := range []float64{10, 20, 30} {
		tx := &models.Transaction{
			UserID:    user.ID,
			AccountID: account.ID,
			Type:      models.TransactionExpense,
			Amount:    amount,
			Category:  "Shopping",
			Date:      now - int64(i)*1000,
		}
		if err := database.CreateTransaction(pool, tx); err != nil {
			t.Fatalf("creating transaction: %v", err)
		}
	}

	list, err := database.GetTransactionsByUser(pool, user.ID, 2, 0)
	if err != nil {
		t.Fatalf("listing transactions: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d transactions, want 2 (limit)", len(list))
	}
	if list[0].Amount != 10 || list[1].Amount != 20 {
		t.Errorf("unexpected order: %v then %v, want 10 then 20", list[0].Amount, list[1].Amount)
	}
	if list[0].Account.ID != account.ID {
		t.Errorf("joined account id = %d, want %d", list[0].Account.ID, account.ID)
	}
}
