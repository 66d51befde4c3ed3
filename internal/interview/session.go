// Package interview implements the bounded interview conversation: the
// session entity, the in-memory session store, and the orchestrator that
// drives start/answer/end turns against the generative model.
package interview

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// State is the lifecycle state of a session.
type State string

// Session lifecycle states. There is no transition out of StateEnded.
const (
	StateActive State = "active"
	StateEnded  State = "ended"
)

// QuestionAnswer is one completed turn: the question as asked and the
// candidate's answer.
type QuestionAnswer struct {
	QuestionID int    `json:"questionId"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
}

// Session is one live interview conversation. All mutation happens under mu,
// held by the orchestrator across the model call, so concurrent answer calls
// for one session queue rather than interleave.
type Session struct {
	mu sync.Mutex

	ID            string
	UserKey       string
	Style         string
	Mode          string
	Duration      int
	ResumeID      string
	ResumeContent string

	CurrentQuestionID   int
	ConversationHistory []string
	QuestionAnswers     []QuestionAnswer
	State               State
}

// newSessionID generates an opaque session token.
func newSessionID() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("interview_%s", hex[:8])
}

// lastQuestion returns the most recently asked question, or the fixed opening
// question when no model-authored question has been recorded yet. The first
// question is intentionally not part of ConversationHistory.
func (s *Session) lastQuestion() string {
	if len(s.ConversationHistory) > 0 {
		return s.ConversationHistory[len(s.ConversationHistory)-1]
	}
	return fallbackFirstQuestionContent
}

// SessionNotFoundError is the only error the orchestrator surfaces to
// callers: the session id is unknown, already ended, or lost to a restart.
type SessionNotFoundError struct {
	ID string
}

func (e *SessionNotFoundError) Error() string {
	return fmt.Sprintf("interview session not found: %s", e.ID)
}
