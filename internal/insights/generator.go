package insights

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashflowhq/cashflow-commander/models"
	"github.com/cashflowhq/cashflow-commander/utils"
)

const (
	dayMillis   = int64(24 * 60 * 60 * 1000)
	weekMillis  = 7 * dayMillis
	monthMillis = 30 * dayMillis
)

type CategoryStat struct {
	Amount float64 `json:"amount"`
	Count  int     `json:"count"`
}

type SpendingTrendData struct {
	LastWeekTotal     float64  `json:"lastWeekTotal"`
	PreviousWeekTotal float64  `json:"previousWeekTotal"`
	Change            *float64 `json:"change"`
}

type BiggestExpenseData struct {
	TransactionID int     `json:"transactionId"`
	Category      string  `json:"category"`
	Amount        float64 `json:"amount"`
	Description   string  `json:"description"`
}

type CategoryBreakdownData struct {
	TopCategory string                  `json:"topCategory"`
	Amount      float64                 `json:"amount"`
	Count       int                     `json:"count"`
	Percentage  float64                 `json:"percentage"`
	Totals      map[string]CategoryStat `json:"totals"`
}

type TrendDetectionData struct {
	Leader         string   `json:"leader"`
	RunnerUp       string   `json:"runnerUp"`
	LeaderAmount   float64  `json:"leaderAmount"`
	RunnerUpAmount float64  `json:"runnerUpAmount"`
	DifferencePct  *float64 `json:"differencePct"`
}

type SavingsOpportunityData struct {
	SavingsRate      float64 `json:"savingsRate"`
	TargetSavings    float64 `json:"targetSavings"`
	AdditionalNeeded float64 `json:"additionalNeeded"`
	Income           float64 `json:"income"`
	Expenses         float64 `json:"expenses"`
}

type RecommendationData struct {
	AverageTransaction float64 `json:"averageTransaction"`
	TransactionCount   int     `json:"transactionCount"`
}

// Generate derives the insight set from a user's recent transactions.
// Callers supply the 60-day lookback window; an empty slice yields an
// empty set, which is a valid terminal state, not an error.
func Generate(transactions []models.Transaction, now time.Time) []models.GeneratedInsight {
	insights := []models.GeneratedInsight{}
	if len(transactions) == 0 {
		return insights
	}

	nowMillis := now.UnixMilli()

	var expenses, incomes []models.Transaction
	for _, t := range transactions {
		if t.Type == models.TransactionExpense {
			expenses = append(expenses, t)
		} else {
			incomes = append(incomes, t)
		}
	}

	within := func(ts []models.Transaction, period int64) []models.Transaction {
		var out []models.Transaction
		for _, t := range ts {
			if t.Date >= nowMillis-period {
				out = append(out, t)
			}
		}
		return out
	}

	lastWeekExpenses := within(expenses, weekMillis)
	var previousWeekExpenses []models.Transaction
	for _, t := range expenses {
		if t.Date >= nowMillis-2*weekMillis && t.Date < nowMillis-weekMillis {
			previousWeekExpenses = append(previousWeekExpenses, t)
		}
	}

	lastWeekTotal := sumAmounts(lastWeekExpenses)
	previousWeekTotal := sumAmounts(previousWeekExpenses)

	if lastWeekTotal > 0 || previousWeekTotal > 0 {
		data := SpendingTrendData{
			LastWeekTotal:     lastWeekTotal,
			PreviousWeekTotal: previousWeekTotal,
		}

		var description string
		if previousWeekTotal > 0 {
			change := (lastWeekTotal - previousWeekTotal) / previousWeekTotal * 100
			data.Change = &change
			direction := "less"
			if change > 0 {
				direction = "more"
			}
			description = fmt.Sprintf("You spent %.1f%% %s than the previous week (%s vs %s).",
				abs(change), direction, utils.FormatUSD(lastWeekTotal), utils.FormatUSD(previousWeekTotal))
		} else {
			description = fmt.Sprintf("Your spending last week totalled %s.", utils.FormatUSD(lastWeekTotal))
		}

		insights = append(insights, models.GeneratedInsight{
			Type:        "spending_trend",
			Title:       "Weekly Spending Pattern",
			Description: description,
			Data:        data,
		})
	}

	lastMonthExpenses := within(expenses, monthMillis)
	lastMonthTotal := sumAmounts(lastMonthExpenses)

	if len(lastMonthExpenses) > 0 {
		top := lastMonthExpenses[0]
		for _, t := range lastMonthExpenses[1:] {
			if t.Amount > top.Amount {
				top = t
			}
		}

		description := fmt.Sprintf("Your largest expense in the last 30 days was %s for %s",
			utils.FormatUSD(top.Amount), top.Category)
		if top.Description != "" {
			description += fmt.Sprintf(" (%s)", top.Description)
		}
		description += "."

		insights = append(insights, models.GeneratedInsight{
			Type:        "top_category",
			Title:       "Biggest Expense",
			Description: description,
			Data: BiggestExpenseData{
				TransactionID: top.ID,
				Category:      top.Category,
				Amount:        top.Amount,
				Description:   top.Description,
			},
		})

		totals := map[string]CategoryStat{}
		for _, t := range lastMonthExpenses {
			entry := totals[t.Category]
			entry.Amount = decimal.NewFromFloat(entry.Amount).Add(decimal.NewFromFloat(t.Amount)).InexactFloat64()
			entry.Count++
			totals[t.Category] = entry
		}

		type ranked struct {
			category string
			CategoryStat
		}
		sorted := make([]ranked, 0, len(totals))
		for c, s := range totals {
			sorted = append(sorted, ranked{c, s})
		}
		sort.Slice(sorted, func(i, j int) bool {
			if sorted[i].Amount != sorted[j].Amount {
				return sorted[i].Amount > sorted[j].Amount
			}
			return sorted[i].category < sorted[j].category
		})

		topCat := sorted[0]
		topShare := 0.0
		if lastMonthTotal > 0 {
			topShare = topCat.Amount / lastMonthTotal * 100
		}

		plural := ""
		if topCat.Count > 1 {
			plural = "s"
		}

		insights = append(insights, models.GeneratedInsight{
			Type:        "category_breakdown",
			Title:       "Category Breakdown",
			Description: fmt.Sprintf("%s represents %.1f%% of your spending this month across %d transaction%s.", topCat.category, topShare, topCat.Count, plural),
			Data: CategoryBreakdownData{
				TopCategory: topCat.category,
				Amount:      topCat.Amount,
				Count:       topCat.Count,
				Percentage:  topShare,
				Totals:      totals,
			},
		})

		if len(sorted) > 1 {
			second := sorted[1]
			data := TrendDetectionData{
				Leader:         topCat.category,
				RunnerUp:       second.category,
				LeaderAmount:   topCat.Amount,
				RunnerUpAmount: second.Amount,
			}

			var description string
			if second.Amount > 0 {
				diff := (topCat.Amount - second.Amount) / second.Amount * 100
				data.DifferencePct = &diff
				description = fmt.Sprintf("%s spending is %.1f%% higher than %s this month.", topCat.category, diff, second.category)
			} else {
				description = fmt.Sprintf("%s spending is leading all other categories this month.", topCat.category)
			}

			insights = append(insights, models.GeneratedInsight{
				Type:        "trend_detection",
				Title:       "Spending Trend",
				Description: description,
				Data:        data,
			})
		}
	}

	lastMonthIncome := sumAmounts(within(incomes, monthMillis))

	if lastMonthIncome > 0 && lastMonthTotal > 0 {
		savingsRate := (lastMonthIncome - lastMonthTotal) / lastMonthIncome * 100
		if savingsRate < 20 {
			target := lastMonthIncome * 0.2
			needed := target - (lastMonthIncome - lastMonthTotal)
			if needed < 0 {
				needed = 0
			}

			insights = append(insights, models.GeneratedInsight{
				Type:        "savings_opportunity",
				Title:       "Savings Opportunity",
				Description: fmt.Sprintf("Saving 20%% of your income would mean setting aside %s. You're currently short by %s this month.", utils.FormatUSD(target), utils.FormatUSD(needed)),
				Data: SavingsOpportunityData{
					SavingsRate:      savingsRate,
					TargetSavings:    target,
					AdditionalNeeded: needed,
					Income:           lastMonthIncome,
					Expenses:         lastMonthTotal,
				},
			})
		}
	}

	if len(lastWeekExpenses) > 0 {
		average := decimal.NewFromFloat(lastWeekTotal).
			Div(decimal.NewFromInt(int64(len(lastWeekExpenses)))).InexactFloat64()

		insights = append(insights, models.GeneratedInsight{
			Type:        "recommendation",
			Title:       "Personalized Tip",
			Description: fmt.Sprintf("Try keeping individual purchases under %s to stay aligned with last week's average spend per transaction.", utils.FormatUSD(average)),
			Data: RecommendationData{
				AverageTransaction: average,
				TransactionCount:   len(lastWeekExpenses),
			},
		})
	}

	return insights
}

func sumAmounts(transactions []models.Transaction) float64 {
	total := decimal.Zero
	for _, t := range transactions {
		total = total.Add(decimal.NewFromFloat(t.Amount))
	}
	return total.InexactFloat64()
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
