package database

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// ErrNotFound covers both "no such record" and "record owned by another
// user"; the two cases are deliberately indistinguishable to callers.
var ErrNotFound = errors.New("not found")

func ConnectPool(ctx context.Context) (*pgxpool.Pool, error) {
	// .env is optional; variables may come from the environment directly
	_ = godotenv.Load()

	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_HOST"), port, os.Getenv("DB_NAME"))

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	return pool, nil
}
