package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveResume stores a resume and returns its generated id.
func (db *DB) SaveResume(ctx context.Context, userKey, filename, original, optimized string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_key, filename, original_content, optimized_content)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		userKey, filename, original, optimized,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save resume: %w", err)
	}
	return id, nil
}

// GetResume retrieves a resume by id. Returns nil when not found.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*ResumeRecord, error) {
	var record ResumeRecord
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_key, filename, original_content, optimized_content, created_at
		 FROM resumes WHERE id = $1`,
		id,
	).Scan(&record.ID, &record.UserKey, &record.Filename,
		&record.OriginalContent, &record.OptimizedContent, &record.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return &record, nil
}

// GetLatestResume retrieves the most recently stored resume for a user.
// Returns nil when the user has none.
func (db *DB) GetLatestResume(ctx context.Context, userKey string) (*ResumeRecord, error) {
	var record ResumeRecord
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_key, filename, original_content, optimized_content, created_at
		 FROM resumes WHERE user_key = $1
		 ORDER BY created_at DESC
		 LIMIT 1`,
		userKey,
	).Scan(&record.ID, &record.UserKey, &record.Filename,
		&record.OriginalContent, &record.OptimizedContent, &record.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest resume: %w", err)
	}
	return &record, nil
}
