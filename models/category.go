package models

type Category struct {
	ID        int    `json:"id" db:"id"`
	UserID    int    `json:"user_id" db:"user_id"`
	Name      string `json:"name" db:"name"`
	Icon      string `json:"icon" db:"icon"`
	Color     string `json:"color" db:"color"`
	Type      string `json:"type" db:"type"`
	IsDefault bool   `json:"is_default" db:"is_default"`
}
