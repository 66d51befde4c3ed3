package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// SaveInterview stores a completed interview session with its report.
func (db *DB) SaveInterview(ctx context.Context, record *InterviewRecord) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO interviews
		   (session_id, user_key, style, mode, duration, resume_id,
		    conversation_history, question_answers, report)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		record.SessionID, record.UserKey, record.Style, record.Mode,
		record.Duration, record.ResumeID, record.ConversationHistory,
		record.QuestionAnswers, record.Report,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save interview: %w", err)
	}
	return id, nil
}

// ListInterviews returns a user's completed interviews, newest first.
func (db *DB) ListInterviews(ctx context.Context, userKey string) ([]InterviewSummary, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, style, mode, duration, resume_id, created_at, report
		 FROM interviews WHERE user_key = $1
		 ORDER BY created_at DESC`,
		userKey,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	defer rows.Close()

	summaries := []InterviewSummary{}
	for rows.Next() {
		var s InterviewSummary
		if err := rows.Scan(&s.ID, &s.Style, &s.Mode, &s.Duration,
			&s.ResumeID, &s.CreatedAt, &s.Report); err != nil {
			return nil, fmt.Errorf("failed to scan interview row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate interviews: %w", err)
	}
	return summaries, nil
}
