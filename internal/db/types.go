package db

import (
	"time"

	"github.com/google/uuid"
)

// ResumeRecord is a stored resume with its original and optimized renditions.
// OptimizedContent is empty until an analysis produces one.
type ResumeRecord struct {
	ID               uuid.UUID
	UserKey          string
	Filename         string
	OriginalContent  string
	OptimizedContent string
	CreatedAt        time.Time
}

// InterviewRecord is a completed interview session as emitted by the
// orchestrator after end: configuration, transcript, and the final report.
// ConversationHistory, QuestionAnswers, and Report are stored as JSON.
type InterviewRecord struct {
	ID                  uuid.UUID
	SessionID           string
	UserKey             string
	Style               string
	Mode                string
	Duration            int
	ResumeID            string
	ConversationHistory []byte
	QuestionAnswers     []byte
	Report              []byte
	CreatedAt           time.Time
}

// InterviewSummary is the listing shape for interview history.
type InterviewSummary struct {
	ID        uuid.UUID `json:"id"`
	Style     string    `json:"style"`
	Mode      string    `json:"mode"`
	Duration  int       `json:"duration"`
	ResumeID  string    `json:"resume_id"`
	CreatedAt time.Time `json:"created_at"`
	Report    []byte    `json:"-"`
}
