package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/cashflowhq/cashflow-commander/models"
)

// RegisterUser hashes the password and inserts the user. The account
// whose email matches founderEmail gets the founder role; everyone else
// is a regular user.
func RegisterUser(pool *pgxpool.Pool, user *models.User, founderEmail string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %v", err)
	}

	user.Role = models.RoleUser
	if founderEmail != "" && strings.EqualFold(user.Email, founderEmail) {
		user.Role = models.RoleFounder
	}

	query := `
		INSERT INTO users (email, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err = pool.QueryRow(context.Background(), query, user.Email, string(hash), user.Role).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating user: %v", err)
	}

	user.Password = ""
	user.PasswordHash = string(hash)
	return nil
}

func AuthenticateUser(pool *pgxpool.Pool, email, password string) (*models.User, error) {
	query := `SELECT id, email, password_hash, role, created_at FROM users WHERE email = $1`

	user := &models.User{}
	err := pool.QueryRow(context.Background(), query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("invalid email or password")
		}
		return nil, fmt.Errorf("looking up user: %v", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.New("invalid email or password")
	}

	return user, nil
}

func GetUserByID(pool *pgxpool.Pool, id int) (*models.User, error) {
	query := `SELECT id, email, role, created_at FROM users WHERE id = $1`

	user := &models.User{}
	err := pool.QueryRow(context.Background(), query, id).Scan(
		&user.ID,
		&user.Email,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("looking up user: %v", err)
	}

	return user, nil
}

// IsFounder reports whether the user holds the founder role. Unknown
// users are simply not founders.
func IsFounder(pool *pgxpool.Pool, userID int) (bool, error) {
	if userID == 0 {
		return false, nil
	}

	var role string
	err := pool.QueryRow(context.Background(), `SELECT role FROM users WHERE id = $1`, userID).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("looking up role: %v", err)
	}

	return role == models.RoleFounder, nil
}

// GetUserIDsWithTransactionsSince lists users who have booked at least
// one transaction after the given time; the nightly insight refresh only
// bothers with those.
func GetUserIDsWithTransactionsSince(pool *pgxpool.Pool, since int64) ([]int, error) {
	rows, err := pool.Query(context.Background(),
		`SELECT DISTINCT user_id FROM transactions WHERE date >= $1`, since)
	if err != nil {
		return nil, fmt.Errorf("listing active users: %v", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
