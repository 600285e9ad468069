package insights

import (
	"log"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cashflowhq/cashflow-commander/internal/database"
	"github.com/cashflowhq/cashflow-commander/models"
)

const lookbackDays = 60

// Refresh regenerates a user's insights from their recent transactions
// and replaces the stored set, returning the new insights.
func Refresh(pool *pgxpool.Pool, userID int) ([]models.GeneratedInsight, error) {
	now := time.Now()
	since := now.UnixMilli() - lookbackDays*dayMillis

	transactions, err := database.GetTransactionsInRange(pool, userID, since, math.MaxInt64)
	if err != nil {
		return nil, err
	}

	generated := Generate(transactions, now)
	if err := database.ReplaceInsightsForUser(pool, userID, generated); err != nil {
		return nil, err
	}
	return generated, nil
}

// RefreshAll regenerates insights for every user with recent activity.
// Wired to the nightly cron job; a failure for one user does not stop
// the rest.
func RefreshAll(pool *pgxpool.Pool) {
	since := time.Now().UnixMilli() - lookbackDays*dayMillis

	userIDs, err := database.GetUserIDsWithTransactionsSince(pool, since)
	if err != nil {
		log.Printf("insight refresh: listing users: %v", err)
		return
	}

	for _, id := range userIDs {
		if _, err := Refresh(pool, id); err != nil {
			log.Printf("insight refresh: user %d: %v", id, err)
		}
	}
}
