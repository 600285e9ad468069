package models

type Badge struct {
	ID          int    `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	DisplayName string `json:"display_name" db:"display_name"`
	Description string `json:"description" db:"description"`
	Icon        string `json:"icon" db:"icon"`
	Color       string `json:"color" db:"color"`
	CreatedAt   int64  `json:"created_at" db:"created_at"` // epoch milliseconds
}

type UserBadge struct {
	ID         int   `json:"id" db:"id"`
	UserID     int   `json:"user_id" db:"user_id"`
	BadgeID    int   `json:"badge_id" db:"badge_id"`
	AssignedAt int64 `json:"assigned_at" db:"assigned_at"`
	AssignedBy int   `json:"assigned_by" db:"assigned_by"`
}

// UserBadgeDetail is a badge joined with its assignment time, as returned
// by the per-user badge listings.
type UserBadgeDetail struct {
	Badge
	AssignedAt int64 `json:"assigned_at"`
}

// AdminUserEntry is one row of the founder's user overview: a profile and
// the badges held by that user.
type AdminUserEntry struct {
	Profile
	Badges []Badge `json:"badges"`
}
