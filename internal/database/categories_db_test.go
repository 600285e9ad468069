package database_test

import (
	"testing"

	"github.com/cashflowhq/cashflow-commander/internal/database"
	"github.com/cashflowhq/cashflow-commander/models"
)

func TestInitializeDefaultCategoriesIsIdempotent(t *testing.T) {
	pool := testPool(t)
	user := registerTestUser(t, pool)

	if err := database.InitializeDefaultCategories(pool, user.ID); err != nil {
		t.Fatalf("seeding defaults: %v", err)
	}
	if err := database.InitializeDefaultCategories(pool, user.ID); err != nil {
		t.Fatalf("seeding defaults twice: %v", err)
	}

	all, err := database.GetCategoriesByUser(pool, user.ID, "")
	if err != nil {
		t.Fatalf("listing categories: %v", err)
	}
	if len(all) != 13 {
		t.Errorf("got %d categories after double seed, want 13", len(all))
	}

	expense, err := database.GetCategoriesByUser(pool, user.ID, models.TransactionExpense)
	if err != nil {
		t.Fatalf("listing expense categories: %v", err)
	}
	if len(expense) != 8 {
		t.Errorf("got %d expense categories, want 8", len(expense))
	}

	income, err := database.GetCategoriesByUser(pool, user.ID, models.TransactionIncome)
	if err != nil {
		t.Fatalf("listing income categories: %v", err)
	}
	if len(income) != 5 {
		t.Errorf("got %d income categories, want 5", len(income))
	}
	for _, c := range all {
		if !c.IsDefault {
			t.Errorf("seeded category %q not flagged as default", c.Name)
		}
	}
}

func TestInitializeDefaultCategoriesSkipsSeededUser(t *testing.T) {
	pool := testPool(t)
	user := registerTestUser(t, pool)

	custom := &models.Category{
		UserID: user.ID,
		Name:   "Pets",
		Icon:   "🐾",
		Color:  "#AA66CC",
		Type:   models.TransactionExpense,
	}
	if err := database.CreateCategory(pool, custom); err != nil {
		t.Fatalf("creating category: %v", err)
	}

	if err := database.InitializeDefaultCategories(pool, user.ID); err != nil {
		t.Fatalf("seeding defaults: %v", err)
	}

	all, err := database.GetCategoriesByUser(pool, user.ID, "")
	if err != nil {
		t.Fatalf("listing categories: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("got %d categories, want just the custom one", len(all))
	}
}
