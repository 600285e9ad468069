package models

import "encoding/json"

type Insight struct {
	ID          int             `json:"id" db:"id"`
	UserID      int             `json:"user_id" db:"user_id"`
	Type        string          `json:"type" db:"type"`
	Title       string          `json:"title" db:"title"`
	Description string          `json:"description" db:"description"`
	Data        json.RawMessage `json:"data" db:"data"`
	CreatedAt   int64           `json:"created_at" db:"created_at"` // epoch milliseconds
	IsRead      bool            `json:"is_read" db:"is_read"`
}

// GeneratedInsight is an insight before it is persisted. Data holds the
// typed payload for the insight's type and is marshalled into the jsonb
// column on write.
type GeneratedInsight struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Data        any    `json:"data"`
}
