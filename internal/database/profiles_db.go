package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cashflowhq/cashflow-commander/models"
)

// GetProfileByUserID returns nil (not an error) when the user has not
// created a profile yet.
func GetProfileByUserID(pool *pgxpool.Pool, userID int) (*models.Profile, error) {
	query := `
		SELECT id, user_id, username, bio, profile_picture_url, is_complete, created_at, updated_at
		FROM user_profiles
		WHERE user_id = $1`

	profile := &models.Profile{}
	err := pool.QueryRow(context.Background(), query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Username,
		&profile.Bio,
		&profile.ProfilePictureURL,
		&profile.IsComplete,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("looking up profile: %v", err)
	}

	return profile, nil
}

// UpsertProfile patches the profile when one exists, inserts otherwise.
// One profile per user, keyed on the user_id unique constraint.
func UpsertProfile(pool *pgxpool.Pool, profile *models.Profile) error {
	query := `
		INSERT INTO user_profiles (user_id, username, bio, profile_picture_url, is_complete)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET username = EXCLUDED.username,
		    bio = EXCLUDED.bio,
		    profile_picture_url = EXCLUDED.profile_picture_url,
		    is_complete = EXCLUDED.is_complete,
		    updated_at = now()
		RETURNING id, created_at, updated_at`

	profile.IsComplete = profile.Username != ""
	err := pool.QueryRow(context.Background(), query,
		profile.UserID,
		profile.Username,
		profile.Bio,
		profile.ProfilePictureURL,
		profile.IsComplete).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upserting profile: %v", err)
	}
	return nil
}

// GetAllProfilesWithBadges lists every profile with the badges assigned
// to it. Founder-only surface; the handler enforces that.
func GetAllProfilesWithBadges(pool *pgxpool.Pool) ([]models.AdminUserEntry, error) {
	query := `
		SELECT id, user_id, username, bio, profile_picture_url, is_complete, created_at, updated_at
		FROM user_profiles
		ORDER BY id`

	rows, err := pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %v", err)
	}

	entries := []models.AdminUserEntry{}
	for rows.Next() {
		var e models.AdminUserEntry
		err := rows.Scan(&e.ID, &e.UserID, &e.Username, &e.Bio, &e.ProfilePictureURL, &e.IsComplete, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			rows.Close()
			return nil, err
		}
		entries = append(entries, e)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range entries {
		details, err := GetUserBadges(pool, entries[i].UserID)
		if err != nil {
			return nil, err
		}
		badges := []models.Badge{}
		for _, d := range details {
			badges = append(badges, d.Badge)
		}
		entries[i].Badges = badges
	}
	return entries, nil
}
