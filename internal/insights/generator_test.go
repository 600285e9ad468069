package insights_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/cashflowhq/cashflow-commander/internal/insights"
	"github.com/cashflowhq/cashflow-commander/models"
)

func daysAgo(now time.Time, days int) int64 {
	return now.UnixMilli() - int64(days)*24*60*60*1000
}

func expense(amount float64, category, description string, date int64) models.Transaction {
	return models.Transaction{
		Type:        models.TransactionExpense,
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
	}
}

func income(amount float64, date int64) models.Transaction {
	return models.Transaction{
		Type:     models.TransactionIncome,
		Amount:   amount,
		Category: "Salary",
		Date:     date,
	}
}

func findByType(t *testing.T, generated []models.GeneratedInsight, insightType string) models.GeneratedInsight {
	t.Helper()
	for _, g := range generated {
		if g.Type == insightType {
			return g
		}
	}
	t.Fatalf("no insight of type %q in %+v", insightType, generated)
	return models.GeneratedInsight{}
}

func TestGenerateEmptyInput(t *testing.T) {
	generated := insights.Generate(nil, time.Now())
	if len(generated) != 0 {
		t.Fatalf("expected empty insight set, got %d insights", len(generated))
	}
}

func TestGenerateCategoryBreakdownSingleCategory(t *testing.T) {
	now := time.Now()
	transactions := []models.Transaction{
		expense(50, "Food", "", daysAgo(now, 20)),
		expense(30, "Food", "", daysAgo(now, 25)),
	}

	generated := insights.Generate(transactions, now)

	// Both transactions are outside the weekly windows and there is no
	// income, so only the 30-day insights fire.
	if len(generated) != 2 {
		t.Fatalf("expected 2 insights, got %d: %+v", len(generated), generated)
	}

	breakdown := findByType(t, generated, "category_breakdown")
	want := "Food represents 100.0% of your spending this month across 2 transactions."
	if breakdown.Description != want {
		t.Errorf("breakdown description = %q, want %q", breakdown.Description, want)
	}

	data, ok := breakdown.Data.(insights.CategoryBreakdownData)
	if !ok {
		t.Fatalf("unexpected data type %T", breakdown.Data)
	}
	if data.TopCategory != "Food" || data.Amount != 80 || data.Count != 2 || data.Percentage != 100 {
		t.Errorf("unexpected breakdown data: %+v", data)
	}

	biggest := findByType(t, generated, "top_category")
	wantBiggest := "Your largest expense in the last 30 days was $50.00 for Food."
	if biggest.Description != wantBiggest {
		t.Errorf("biggest expense description = %q, want %q", biggest.Description, wantBiggest)
	}
}

func TestGenerateWeeklyTrendIncrease(t *testing.T) {
	now := time.Now()
	transactions := []models.Transaction{
		expense(100, "Food", "groceries", daysAgo(now, 3)),
		expense(50, "Food", "groceries", daysAgo(now, 10)),
	}

	generated := insights.Generate(transactions, now)

	trend := findByType(t, generated, "spending_trend")
	want := "You spent 100.0% more than the previous week ($100.00 vs $50.00)."
	if trend.Description != want {
		t.Errorf("trend description = %q, want %q", trend.Description, want)
	}

	data := trend.Data.(insights.SpendingTrendData)
	if data.LastWeekTotal != 100 || data.PreviousWeekTotal != 50 {
		t.Errorf("unexpected trend data: %+v", data)
	}
	if data.Change == nil || *data.Change != 100 {
		t.Errorf("expected change of 100%%, got %+v", data.Change)
	}
}

func TestGenerateWeeklyTrendNoPriorWindow(t *testing.T) {
	now := time.Now()
	transactions := []models.Transaction{
		expense(80, "Shopping", "sneakers", daysAgo(now, 2)),
	}

	generated := insights.Generate(transactions, now)

	trend := findByType(t, generated, "spending_trend")
	want := "Your spending last week totalled $80.00."
	if trend.Description != want {
		t.Errorf("trend description = %q, want %q", trend.Description, want)
	}
	if data := trend.Data.(insights.SpendingTrendData); data.Change != nil {
		t.Errorf("expected nil change when the prior window is empty, got %v", *data.Change)
	}

	biggest := findByType(t, generated, "top_category")
	wantBiggest := "Your largest expense in the last 30 days was $80.00 for Shopping (sneakers)."
	if biggest.Description != wantBiggest {
		t.Errorf("biggest expense description = %q, want %q", biggest.Description, wantBiggest)
	}

	tip := findByType(t, generated, "recommendation")
	wantTip := "Try keeping individual purchases under $80.00 to stay aligned with last week's average spend per transaction."
	if tip.Description != wantTip {
		t.Errorf("tip description = %q, want %q", tip.Description, wantTip)
	}
	if data := tip.Data.(insights.RecommendationData); data.TransactionCount != 1 || data.AverageTransaction != 80 {
		t.Errorf("unexpected tip data: %+v", data)
	}
}

func TestGenerateCategoryTrendDetection(t *testing.T) {
	now := time.Now()
	transactions := []models.Transaction{
		expense(300, "Food", "", daysAgo(now, 20)),
		expense(100, "Transportation", "", daysAgo(now, 22)),
	}

	generated := insights.Generate(transactions, now)

	trend := findByType(t, generated, "trend_detection")
	want := "Food spending is 200.0% higher than Transportation this month."
	if trend.Description != want {
		t.Errorf("trend description = %q, want %q", trend.Description, want)
	}

	data := trend.Data.(insights.TrendDetectionData)
	if data.Leader != "Food" || data.RunnerUp != "Transportation" {
		t.Errorf("unexpected trend data: %+v", data)
	}
	if data.DifferencePct == nil || *data.DifferencePct != 200 {
		t.Errorf("expected 200%% difference, got %+v", data.DifferencePct)
	}
}

func TestGenerateSavingsOpportunity(t *testing.T) {
	now := time.Now()
	transactions := []models.Transaction{
		income(1000, daysAgo(now, 15)),
		expense(900, "Bills & Utilities", "rent", daysAgo(now, 20)),
	}

	generated := insights.Generate(transactions, now)

	savings := findByType(t, generated, "savings_opportunity")
	want := "Saving 20% of your income would mean setting aside $200.00. You're currently short by $100.00 this month."
	if savings.Description != want {
		t.Errorf("savings description = %q, want %q", savings.Description, want)
	}

	data := savings.Data.(insights.SavingsOpportunityData)
	if data.SavingsRate != 10 || data.TargetSavings != 200 || data.AdditionalNeeded != 100 {
		t.Errorf("unexpected savings data: %+v", data)
	}
}

func TestGenerateNoSavingsInsightWhenRateHealthy(t *testing.T) {
	now := time.Now()
	transactions := []models.Transaction{
		income(1000, daysAgo(now, 15)),
		expense(500, "Food", "", daysAgo(now, 20)),
	}

	generated := insights.Generate(transactions, now)
	for _, g := range generated {
		if g.Type == "savings_opportunity" {
			t.Fatalf("savings insight emitted at a 50%% savings rate: %+v", g)
		}
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	now := time.Now()
	transactions := []models.Transaction{
		income(2000, daysAgo(now, 5)),
		expense(120, "Food", "groceries", daysAgo(now, 1)),
		expense(60, "Transportation", "fuel", daysAgo(now, 3)),
		expense(200, "Shopping", "jacket", daysAgo(now, 9)),
		expense(45, "Food", "takeout", daysAgo(now, 25)),
	}

	first := insights.Generate(transactions, now)
	second := insights.Generate(transactions, now)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("two runs over the same input diverged:\n%+v\n%+v", first, second)
	}
	if len(first) == 0 {
		t.Fatal("expected a non-empty insight set")
	}
}
