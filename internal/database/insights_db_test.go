package database_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cashflowhq/cashflow-commander/internal/database"
	"github.com/cashflowhq/cashflow-commander/models"
)

func generatedInsights(n int) []models.GeneratedInsight {
	out := make([]models.GeneratedInsight, n)
	for i := range out {
		out[i] = models.GeneratedInsight{
			Type:        "recommendation",
			Title:       fmt.Sprintf("Tip %d", i),
			Description: "Keep an eye on discretionary spending.",
			Data:        map[string]float64{"suggestedCap": float64(10 * (i + 1))},
		}
	}
	return out
}

func TestReplaceInsightsDiscardsPreviousSet(t *testing.T) {
	pool := testPool(t)
	user := registerTestUser(t, pool)

	if err := database.ReplaceInsightsForUser(pool, user.ID, generatedInsights(3)); err != nil {
		t.Fatalf("storing first set: %v", err)
	}
	if err := database.ReplaceInsightsForUser(pool, user.ID, generatedInsights(2)); err != nil {
		t.Fatalf("storing second set: %v", err)
	}

	insights, err := database.GetInsightsByUser(pool, user.ID)
	if err != nil {
		t.Fatalf("listing insights: %v", err)
	}
	if len(insights) != 2 {
		t.Fatalf("got %d insights after replace, want 2", len(insights))
	}
	// Newest first: the last inserted row carries the highest created_at.
	if insights[0].Title != "Tip 1" || insights[1].Title != "Tip 0" {
		t.Errorf("unexpected order: %q then %q", insights[0].Title, insights[1].Title)
	}
	for _, in := range insights {
		if in.IsRead {
			t.Errorf("fresh insight %q already marked read", in.Title)
		}
	}
}

func TestGetInsightsByUserCapsAtTen(t *testing.T) {
	pool := testPool(t)
	user := registerTestUser(t, pool)

	if err := database.ReplaceInsightsForUser(pool, user.ID, generatedInsights(12)); err != nil {
		t.Fatalf("storing insights: %v", err)
	}

	insights, err := database.GetInsightsByUser(pool, user.ID)
	if err != nil {
		t.Fatalf("listing insights: %v", err)
	}
	if len(insights) != 10 {
		t.Errorf("got %d insights, want the 10 newest", len(insights))
	}
}

func TestMarkInsightRead(t *testing.T) {
	pool := testPool(t)
	user := registerTestUser(t, pool)
	other := registerTestUser(t, pool)

	if err := database.ReplaceInsightsForUser(pool, user.ID, generatedInsights(1)); err != nil {
		t.Fatalf("storing insight: %v", err)
	}
	insights, err := database.GetInsightsByUser(pool, user.ID)
	if err != nil || len(insights) != 1 {
		t.Fatalf("listing insights: %v (%d rows)", err, len(insights))
	}
	id := insights[0].ID

	if err := database.MarkInsightRead(pool, other.ID, id); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("foreign mark-read error = %v, want ErrNotFound", err)
	}

	if err := database.MarkInsightRead(pool, user.ID, id); err != nil {
		t.Fatalf("marking insight read: %v", err)
	}
	insights, err = database.GetInsightsByUser(pool, user.ID)
	if err != nil {
		t.Fatalf("listing insights: %v", err)
	}
	if !insights[0].IsRead {
		t.Error("insight not marked read")
	}
}
