package models

import "time"

type Profile struct {
	ID                int       `json:"id" db:"id"`
	UserID            int       `json:"user_id" db:"user_id"`
	Username          string    `json:"username" db:"username"`
	Bio               string    `json:"bio,omitempty" db:"bio"`
	ProfilePictureURL string    `json:"profile_picture_url,omitempty" db:"profile_picture_url"`
	IsComplete        bool      `json:"is_complete" db:"is_complete"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}

// ProfileWithBadges is the profile page payload: the profile plus every
// badge currently assigned to that user.
type ProfileWithBadges struct {
	Profile *Profile `json:"profile"`
	UserID  int      `json:"user_id"`
	Badges  []Badge  `json:"badges"`
}
