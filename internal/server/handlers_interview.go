package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/interview-coach/internal/db"
	"github.com/jonathan/interview-coach/internal/extract"
	"github.com/jonathan/interview-coach/internal/interview"
)

// Default session parameters applied when the client omits them.
const (
	defaultStyle    = "温柔HR"
	defaultMode     = "文字模式"
	defaultDuration = 15
	defaultUserKey  = "default_user"
)

// sessionNotFoundMessage is the client-facing error text for unknown
// sessions; the field value is part of the API contract.
const sessionNotFoundMessage = "面试会话不存在"

// StartInterviewRequest is the request body for /api/mock-interview/start.
type StartInterviewRequest struct {
	Style    string `json:"style"`
	Mode     string `json:"mode"`
	Duration int    `json:"duration"`
	UserID   string `json:"userId"`
}

// StartInterviewResponse echoes the session configuration and presents the
// first question.
type StartInterviewResponse struct {
	InterviewID     string           `json:"interviewId"`
	Style           string           `json:"style"`
	Mode            string           `json:"mode"`
	Duration        int              `json:"duration"`
	CurrentQuestion extract.Question `json:"currentQuestion"`
	Tips            []string         `json:"tips"`
}

// handleStartInterview creates a new interview session. This endpoint never
// fails on model trouble: the orchestrator guarantees a usable first question.
func (s *Server) handleStartInterview(w http.ResponseWriter, r *http.Request) {
	var req StartInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if req.Style == "" {
		req.Style = defaultStyle
	}
	if req.Mode == "" {
		req.Mode = defaultMode
	}
	if req.Duration == 0 {
		req.Duration = defaultDuration
	}
	if req.UserID == "" {
		req.UserID = defaultUserKey
	}

	result := s.orch.Start(r.Context(), interview.StartParams{
		Style:    req.Style,
		Mode:     req.Mode,
		Duration: req.Duration,
		UserKey:  req.UserID,
	})

	s.jsonResponse(w, http.StatusOK, StartInterviewResponse{
		InterviewID:     result.SessionID,
		Style:           result.Style,
		Mode:            result.Mode,
		Duration:        result.Duration,
		CurrentQuestion: result.Question,
		Tips:            result.Tips,
	})
}

// AnswerRequest is the request body for /api/mock-interview/answer.
type AnswerRequest struct {
	InterviewID string `json:"interviewId" validate:"required"`
	QuestionID  int    `json:"questionId"`
	Answer      string `json:"answer" validate:"required"`
}

// handleAnswerQuestion records an answer and returns feedback plus the next
// question. The only failure mode is an unknown session id.
func (s *Server) handleAnswerQuestion(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	step, err := s.orch.Answer(r.Context(), req.InterviewID, req.QuestionID, req.Answer)
	if err != nil {
		s.sessionError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, step)
}

// EndRequest is the request body for /api/mock-interview/end.
type EndRequest struct {
	InterviewID string `json:"interviewId" validate:"required"`
	UserID      string `json:"userId"`
}

// handleEndInterview finalizes a session, persists its transcript and report
// best-effort, and returns the report. The session id is invalid afterwards.
func (s *Server) handleEndInterview(w http.ResponseWriter, r *http.Request) {
	var req EndRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	outcome, err := s.orch.End(r.Context(), req.InterviewID)
	if err != nil {
		s.sessionError(w, err)
		return
	}

	s.persistOutcome(r, req.UserID, outcome)
	s.jsonResponse(w, http.StatusOK, outcome.Report)
}

// persistOutcome saves a completed session. Persistence failures are logged
// and swallowed: the candidate already has their report.
func (s *Server) persistOutcome(r *http.Request, userID string, outcome *interview.Outcome) {
	if s.store == nil {
		return
	}
	if userID == "" {
		userID = outcome.UserKey
	}

	history, _ := json.Marshal(outcome.ConversationHistory)
	answers, _ := json.Marshal(outcome.QuestionAnswers)
	report, _ := json.Marshal(outcome.Report)

	if _, err := s.store.SaveInterview(r.Context(), &db.InterviewRecord{
		SessionID:           outcome.SessionID,
		UserKey:             userID,
		Style:               outcome.Style,
		Mode:                outcome.Mode,
		Duration:            outcome.Duration,
		ResumeID:            outcome.ResumeID,
		ConversationHistory: history,
		QuestionAnswers:     answers,
		Report:              report,
	}); err != nil {
		s.log.Warn("failed to persist interview",
			zap.String("session_id", outcome.SessionID), zap.Error(err))
	}
}

// HistoryEntry is one item in the interview history listing.
type HistoryEntry struct {
	ID        string          `json:"id"`
	Style     string          `json:"style"`
	Mode      string          `json:"mode"`
	Duration  int             `json:"duration"`
	ResumeID  string          `json:"resume_id"`
	CreatedAt string          `json:"created_at"`
	Report    json.RawMessage `json:"report"`
}

// handleInterviewHistory lists a user's completed interviews, newest first.
func (s *Server) handleInterviewHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		userID = defaultUserKey
	}

	if s.store == nil {
		s.jsonResponse(w, http.StatusOK, []HistoryEntry{})
		return
	}

	summaries, err := s.store.ListInterviews(r.Context(), userID)
	if err != nil {
		s.log.Error("failed to list interviews", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to get interview history")
		return
	}

	history := make([]HistoryEntry, 0, len(summaries))
	for _, item := range summaries {
		report := json.RawMessage(item.Report)
		if len(report) == 0 {
			report = json.RawMessage("{}")
		}
		history = append(history, HistoryEntry{
			ID:        item.ID.String(),
			Style:     item.Style,
			Mode:      item.Mode,
			Duration:  item.Duration,
			ResumeID:  item.ResumeID,
			CreatedAt: item.CreatedAt.Format("2006-01-02 15:04:05"),
			Report:    report,
		})
	}

	s.jsonResponse(w, http.StatusOK, history)
}

// sessionError maps orchestrator errors onto API responses.
func (s *Server) sessionError(w http.ResponseWriter, err error) {
	var notFound *interview.SessionNotFoundError
	if errors.As(err, &notFound) {
		s.errorResponse(w, http.StatusNotFound, sessionNotFoundMessage)
		return
	}
	s.errorResponse(w, HTTPStatus(err), err.Error())
}
