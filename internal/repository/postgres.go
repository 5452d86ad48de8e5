package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"nearme/internal/model"
)

// PostgresRepository persists search and feedback logs. The whole layer is
// optional: when no DSN is configured the server runs without it.
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository.
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// Close closes the database connection.
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// LogSearch records one completed search and the places it returned.
func (r *PostgresRepository) LogSearch(ctx context.Context, set *model.SearchResultSet, tookMs int64) error {
	placeIDs := make([]string, len(set.Places))
	for i, p := range set.Places {
		placeIDs[i] = p.PlaceID
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO search_logs (search_id, query, vibe, lat, lng, result_count, place_ids, took_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())`,
		set.SearchID, set.Query, set.Vibe, set.Origin.Lat, set.Origin.Lng,
		len(set.Places), pq.Array(placeIDs), tookMs,
	)
	if err != nil {
		return fmt.Errorf("failed to log search: %w", err)
	}
	return nil
}

// LogFeedback records a user action (click, favorite, helpful, view_details)
// against a search result.
func (r *PostgresRepository) LogFeedback(ctx context.Context, searchID, placeID, action string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO place_feedback (search_id, place_id, action, created_at)
		VALUES ($1, $2, $3, NOW())`,
		searchID, placeID, action,
	)
	if err != nil {
		return fmt.Errorf("failed to log feedback: %w", err)
	}
	return nil
}
