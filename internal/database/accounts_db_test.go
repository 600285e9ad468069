package database_test

import (
	"errors"
	"testing"

	"github.com/cashflowhq/cashflow-commander/internal/database"
)

func TestCreateAccountIncreasesTotalBalance(t *testing.T) {
	pool := testPool(t)
	user := registerTestUser(t, pool)

	before, err := database.GetTotalBalance(pool, user.ID)
	if err != nil {
		t.Fatalf("total balance: %v", err)
	}
	if before != 0 {
		t.Fatalf("fresh user has total balance %v, want 0", before)
	}

	createTestAccount(t, pool, user.ID, 250)
	createTestAccount(t, pool, user.ID, 100.50)

	after, err := database.GetTotalBalance(pool, user.ID)
	if err != nil {
		t.Fatalf("total balance: %v", err)
	}
	if after != 350.50 {
		t.Errorf("total balance = %v, want 350.50", after)
	}
}

func TestUpdateAccountPatchesOnlyGivenFields(t *testing.T) {
	pool := testPool(t)
	user := registerTestUser(t, pool)
	account := createTestAccount(t, pool, user.ID, 100)

	name := "Renamed"
	updated, err := database.UpdateAccount(pool, user.ID, account.ID, &name, nil, nil)
	if err != nil {
		t.Fatalf("updating account: %v", err)
	}
	if updated.Name != "Renamed" {
		t.Errorf("name = %q, want Renamed", updated.Name)
	}
	if updated.Balance != 100 {
		t.Errorf("balance changed to %v on a name-only patch", updated.Balance)
	}
}

func TestUpdateAccountNotOwnedLooksMissing(t *testing.T) {
	pool := testPool(t)
	owner := registerTestUser(t, pool)
	intruder := registerTestUser(t, pool)
	account := createTestAccount(t, pool, owner.ID, 100)

	name := "hijacked"

	_, errForeign := database.UpdateAccount(pool, intruder.ID, account.ID, &name, nil, nil)
	_, errMissing := database.UpdateAccount(pool, intruder.ID, 999999999, &name, nil, nil)

	if !errors.Is(errForeign, database.ErrNotFound) {
		t.Errorf("foreign account update error = %v, want ErrNotFound", errForeign)
	}
	if !errors.Is(errMissing, database.ErrNotFound) {
		t.Errorf("missing account update error = %v, want ErrNotFound", errMissing)
	}
}
