package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cashflowhq/cashflow-commander/models"
)

// GetInsightsByUser returns the caller's latest insights, newest first,
// capped at 10.
func GetInsightsByUser(pool *pgxpool.Pool, userID int) ([]models.Insight, error) {
	query := `
		SELECT id, user_id, type, title, description, data, created_at, is_read
		FROM insights
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 10`

	rows, err := pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing insights: %v", err)
	}
	defer rows.Close()

	insights := []models.Insight{}
	for rows.Next() {
		var in models.Insight
		if err := rows.Scan(&in.ID, &in.UserID, &in.Type, &in.Title, &in.Description, &in.Data, &in.CreatedAt, &in.IsRead); err != nil {
			return nil, err
		}
		insights = append(insights, in)
	}
	return insights, rows.Err()
}

// ReplaceInsightsForUser deletes the user's stored insights and inserts
// the freshly generated set. createdAt increases by one millisecond per
// insight so insertion order survives ordering by timestamp.
func ReplaceInsightsForUser(pool *pgxpool.Pool, userID int, generated []models.GeneratedInsight) error {
	ctx := context.Background()

	if _, err := pool.Exec(ctx, `DELETE FROM insights WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clearing insights: %v", err)
	}

	base := time.Now().UnixMilli()
	for i, g := range generated {
		payload, err := json.Marshal(g.Data)
		if err != nil {
			return fmt.Errorf("encoding insight data: %v", err)
		}

		_, err = pool.Exec(ctx, `
			INSERT INTO insights (user_id, type, title, description, data, created_at, is_read)
			VALUES ($1, $2, $3, $4, $5, $6, FALSE)`,
			userID, g.Type, g.Title, g.Description, payload, base+int64(i))
		if err != nil {
			return fmt.Errorf("storing insight: %v", err)
		}
	}
	return nil
}

func MarkInsightRead(pool *pgxpool.Pool, userID, insightID int) error {
	tag, err := pool.Exec(context.Background(),
		`UPDATE insights SET is_read = TRUE WHERE id = $1 AND user_id = $2`,
		insightID, userID)
	if err != nil {
		return fmt.Errorf("marking insight read: %v", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
