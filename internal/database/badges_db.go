package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cashflowhq/cashflow-commander/models"
)

// FounderBadgeName is the reserved badge ensured at startup and granted
// to the founder account.
const FounderBadgeName = "FOUNDER"

func GetAllBadges(pool *pgxpool.Pool) ([]models.Badge, error) {
	query := `
		SELECT id, name, display_name, description, icon, color, created_at
		FROM badges
		ORDER BY id`

	rows, err := pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("listing badges: %v", err)
	}
	defer rows.Close()

	badges := []models.Badge{}
	for rows.Next() {
		var b models.Badge
		if err := rows.Scan(&b.ID, &b.Name, &b.DisplayName, &b.Description, &b.Icon, &b.Color, &b.CreatedAt); err != nil {
			return nil, err
		}
		badges = append(badges, b)
	}
	return badges, rows.Err()
}

func GetBadgeByName(pool *pgxpool.Pool, name string) (*models.Badge, error) {
	query := `
		SELECT id, name, display_name, description, icon, color, created_at
		FROM badges
		WHERE name = $1`

	badge := &models.Badge{}
	err := pool.QueryRow(context.Background(), query, name).Scan(
		&badge.ID, &badge.Name, &badge.DisplayName, &badge.Description, &badge.Icon, &badge.Color, &badge.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("looking up badge: %v", err)
	}
	return badge, nil
}

// CreateBadge inserts a badge definition. Names are unique.
func CreateBadge(pool *pgxpool.Pool, badge *models.Badge) error {
	if _, err := GetBadgeByName(pool, badge.Name); err == nil {
		return errors.New("badge with this name already exists")
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}

	if badge.CreatedAt == 0 {
		badge.CreatedAt = time.Now().UnixMilli()
	}

	query := `
		INSERT INTO badges (name, display_name, description, icon, color, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := pool.QueryRow(context.Background(), query,
		badge.Name,
		badge.DisplayName,
		badge.Description,
		badge.Icon,
		badge.Color,
		badge.CreatedAt).Scan(&badge.ID)
	if err != nil {
		return fmt.Errorf("creating badge: %v", err)
	}
	return nil
}

// GetUserBadges returns a user's badges joined with when each was
// assigned. Badge listings are public.
func GetUserBadges(pool *pgxpool.Pool, userID int) ([]models.UserBadgeDetail, error) {
	query := `
		SELECT b.id, b.name, b.display_name, b.description, b.icon, b.color, b.created_at, ub.assigned_at
		FROM user_badges ub
		JOIN badges b ON b.id = ub.badge_id
		WHERE ub.user_id = $1
		ORDER BY ub.assigned_at`

	rows, err := pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing user badges: %v", err)
	}
	defer rows.Close()

	details := []models.UserBadgeDetail{}
	for rows.Next() {
		var d models.UserBadgeDetail
		err := rows.Scan(&d.ID, &d.Name, &d.DisplayName, &d.Description, &d.Icon, &d.Color, &d.CreatedAt, &d.AssignedAt)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

// AssignBadge links a badge to a user. Fails when the badge does not
// exist or the user already holds it.
func AssignBadge(pool *pgxpool.Pool, targetUserID, badgeID, assignedBy int) error {
	var exists bool
	err := pool.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM badges WHERE id = $1)`, badgeID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("looking up badge: %v", err)
	}
	if !exists {
		return errors.New("badge not found")
	}

	var assigned bool
	err = pool.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM user_badges WHERE user_id = $1 AND badge_id = $2)`,
		targetUserID, badgeID).Scan(&assigned)
	if err != nil {
		return fmt.Errorf("checking assignment: %v", err)
	}
	if assigned {
		return errors.New("user already has this badge")
	}

	_, err = pool.Exec(context.Background(), `
		INSERT INTO user_badges (user_id, badge_id, assigned_at, assigned_by)
		VALUES ($1, $2, $3, $4)`,
		targetUserID, badgeID, time.Now().UnixMilli(), assignedBy)
	if err != nil {
		return fmt.Errorf("assigning badge: %v", err)
	}
	return nil
}

// RevokeBadge removes the link row outright.
func RevokeBadge(pool *pgxpool.Pool, targetUserID, badgeID int) error {
	tag, err := pool.Exec(context.Background(),
		`DELETE FROM user_badges WHERE user_id = $1 AND badge_id = $2`,
		targetUserID, badgeID)
	if err != nil {
		return fmt.Errorf("revoking badge: %v", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("user does not have this badge")
	}
	return nil
}

type FounderBadgeResult struct {
	BadgeID       int  `json:"badge_id"`
	AlreadyExists bool `json:"already_exists"`
	Assigned      bool `json:"assigned"`
}

// EnsureFounderBadge creates the FOUNDER badge if missing and, when the
// caller holds the founder role, assigns it to them. Safe to call on
// every app load.
func EnsureFounderBadge(pool *pgxpool.Pool, userID int, isFounder bool) (*FounderBadgeResult, error) {
	result := &FounderBadgeResult{}

	badge, err := GetBadgeByName(pool, FounderBadgeName)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		badge = &models.Badge{
			Name:        FounderBadgeName,
			DisplayName: "Founder",
			Description: "The creator and owner of CashFlow Commander",
			Icon:        "👑",
			Color:       "#FFD700",
		}
		if err := CreateBadge(pool, badge); err != nil {
			return nil, err
		}
	} else {
		result.AlreadyExists = true
	}
	result.BadgeID = badge.ID

	if !isFounder {
		return result, nil
	}

	err = AssignBadge(pool, userID, badge.ID, userID)
	if err != nil && err.Error() != "user already has this badge" {
		return nil, err
	}
	result.Assigned = true
	return result, nil
}
