package interview

import (
	"context"
	"encoding/json"
	"strconv"

	"go.uber.org/zap"

	"github.com/jonathan/interview-coach/internal/extract"
	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/jonathan/interview-coach/internal/logger"
	"github.com/jonathan/interview-coach/internal/prompts"
	"github.com/jonathan/interview-coach/internal/resume"
)

// Orchestrator drives the interview state machine. Every operation that talks
// to the model degrades to deterministic fallback content on failure; the
// only error it ever surfaces is SessionNotFoundError.
type Orchestrator struct {
	client   llm.Client
	store    *Store
	resolver resume.ContentResolver
	log      *zap.Logger
}

// NewOrchestrator creates an orchestrator. A nil logger disables logging.
func NewOrchestrator(client llm.Client, store *Store, resolver resume.ContentResolver, log *zap.Logger) *Orchestrator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Orchestrator{
		client:   client,
		store:    store,
		resolver: resolver,
		log:      log,
	}
}

// StartParams configures a new session. Style and mode are opaque labels used
// only for prompt construction and echoed back to the caller.
type StartParams struct {
	Style    string
	Mode     string
	Duration int
	UserKey  string
}

// StartResult is what a newly started session presents to the candidate.
type StartResult struct {
	SessionID string
	Style     string
	Mode      string
	Duration  int
	Question  extract.Question
	Tips      []string
}

// Start creates a session, asks the model for an opening question, and
// registers the session as active. It never fails: resume resolution errors
// resolve to empty content and model failures substitute the fixed opener.
func (o *Orchestrator) Start(ctx context.Context, params StartParams) *StartResult {
	content, err := o.resolver.Resolve(ctx, params.UserKey, resume.VariantOptimized)
	if err != nil {
		o.log.Warn("resume resolution failed, proceeding without resume",
			zap.String("user_key", params.UserKey), zap.Error(err))
		content = resume.Content{}
	}

	sess := &Session{
		ID:                  newSessionID(),
		UserKey:             params.UserKey,
		Style:               params.Style,
		Mode:                params.Mode,
		Duration:            params.Duration,
		ResumeID:            content.ResumeID,
		ResumeContent:       content.Text,
		CurrentQuestionID:   1,
		ConversationHistory: []string{},
		QuestionAnswers:     []QuestionAnswer{},
		State:               StateActive,
	}

	question := fallbackFirstQuestion()
	prompt := prompts.Format(prompts.MustGet("interview.first_question"), map[string]string{
		"Style":         sess.Style,
		"ResumeContent": sess.ResumeContent,
	})
	raw, err := o.client.Generate(ctx, llm.GenerateRequest{
		System:      o.systemInterviewer(sess.Style),
		Prompt:      prompt,
		Temperature: 0.7,
		MaxTokens:   512,
	})
	if err != nil {
		o.log.Warn("first question generation failed, using fallback",
			zap.String("session_id", sess.ID), zap.Error(err))
	} else if parsed, ok := extract.ParseQuestion(raw); ok {
		question = parsed
	} else {
		o.log.Warn("first question extraction failed, using fallback",
			zap.String("session_id", sess.ID),
			zap.String("raw", logger.Truncate(raw, 200)))
	}

	// The session counter owns question numbering; whatever id the model
	// proposed is discarded.
	question.ID = 1

	o.store.Put(sess)
	o.log.Info("interview session started",
		zap.String("session_id", sess.ID),
		zap.String("style", sess.Style),
		zap.String("mode", sess.Mode),
		zap.Int("duration", sess.Duration))

	return &StartResult{
		SessionID: sess.ID,
		Style:     sess.Style,
		Mode:      sess.Mode,
		Duration:  sess.Duration,
		Question:  question,
		Tips:      Tips(),
	}
}

// Answer records the candidate's answer, asks the model for feedback and a
// follow-up question, and advances the session by exactly one turn whether or
// not the model cooperated. Returns SessionNotFoundError for unknown or
// already-ended sessions.
func (o *Orchestrator) Answer(ctx context.Context, sessionID string, questionID int, answerText string) (*extract.FeedbackStep, error) {
	sess, ok := o.store.Get(sessionID)
	if !ok {
		return nil, &SessionNotFoundError{ID: sessionID}
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.State != StateActive {
		return nil, &SessionNotFoundError{ID: sessionID}
	}

	current := sess.lastQuestion()
	sess.QuestionAnswers = append(sess.QuestionAnswers, QuestionAnswer{
		QuestionID: questionID,
		Question:   current,
		Answer:     answerText,
	})

	prompt := prompts.Format(prompts.MustGet("interview.feedback_step"), map[string]string{
		"Style":               sess.Style,
		"ResumeContent":       sess.ResumeContent,
		"ConversationHistory": marshalForPrompt(sess.ConversationHistory),
		"CurrentQuestion":     current,
		"Answer":              answerText,
	})

	step := fallbackFeedbackStep()
	raw, err := o.client.Generate(ctx, llm.GenerateRequest{
		System:      o.systemInterviewer(sess.Style),
		Prompt:      prompt,
		Temperature: 0.7,
		MaxTokens:   1024,
	})
	if err != nil {
		o.log.Warn("feedback generation failed, using fallback",
			zap.String("session_id", sess.ID), zap.Error(err))
	} else if parsed, ok := extract.ParseFeedbackStep(raw); ok {
		step = parsed
	} else {
		o.log.Warn("feedback extraction failed, using fallback",
			zap.String("session_id", sess.ID),
			zap.String("raw", logger.Truncate(raw, 200)))
	}

	// Success or fallback, the turn advances identically: the model's id
	// suggestion is overwritten, the counter increments, and the next
	// question joins the history.
	step.NextQuestion.ID = sess.CurrentQuestionID + 1
	sess.CurrentQuestionID++
	sess.ConversationHistory = append(sess.ConversationHistory, step.NextQuestion.Content)

	return &step, nil
}

// Outcome is the terminal result of a session: the report plus everything the
// caller needs to persist the transcript. The session itself is gone from the
// store by the time an Outcome is returned.
type Outcome struct {
	SessionID           string
	UserKey             string
	Style               string
	Mode                string
	Duration            int
	ResumeID            string
	ConversationHistory []string
	QuestionAnswers     []QuestionAnswer
	Report              extract.InterviewReport
}

// End asks the model for a final report, removes the session from the store,
// and returns the outcome for persistence. The session is removed whether the
// report came from the model or from the fallback. Returns
// SessionNotFoundError for unknown sessions.
func (o *Orchestrator) End(ctx context.Context, sessionID string) (*Outcome, error) {
	sess, ok := o.store.Get(sessionID)
	if !ok {
		return nil, &SessionNotFoundError{ID: sessionID}
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.State != StateActive {
		return nil, &SessionNotFoundError{ID: sessionID}
	}

	prompt := prompts.Format(prompts.MustGet("interview.final_report"), map[string]string{
		"ResumeContent":       sess.ResumeContent,
		"Style":               sess.Style,
		"Duration":            strconv.Itoa(sess.Duration),
		"QuestionAnswers":     marshalForPrompt(sess.QuestionAnswers),
		"ConversationHistory": marshalForPrompt(sess.ConversationHistory),
	})

	report := fallbackReport()
	raw, err := o.client.Generate(ctx, llm.GenerateRequest{
		System:      prompts.MustGet("interview.system_assessor"),
		Prompt:      prompt,
		Temperature: 0.7,
		MaxTokens:   2048,
	})
	if err != nil {
		o.log.Warn("report generation failed, using fallback",
			zap.String("session_id", sess.ID), zap.Error(err))
	} else if parsed, ok := extract.ParseInterviewReport(raw); ok {
		report = parsed
	} else {
		o.log.Warn("report extraction failed, using fallback",
			zap.String("session_id", sess.ID),
			zap.String("raw", logger.Truncate(raw, 200)))
	}

	sess.State = StateEnded
	o.store.Delete(sess.ID)
	o.log.Info("interview session ended",
		zap.String("session_id", sess.ID),
		zap.Int("turns", len(sess.QuestionAnswers)))

	return &Outcome{
		SessionID:           sess.ID,
		UserKey:             sess.UserKey,
		Style:               sess.Style,
		Mode:                sess.Mode,
		Duration:            sess.Duration,
		ResumeID:            sess.ResumeID,
		ConversationHistory: sess.ConversationHistory,
		QuestionAnswers:     sess.QuestionAnswers,
		Report:              report,
	}, nil
}

// systemInterviewer builds the interviewer persona system message.
func (o *Orchestrator) systemInterviewer(style string) string {
	return prompts.Format(prompts.MustGet("interview.system_interviewer"), map[string]string{
		"Style": style,
	})
}

// marshalForPrompt renders a value as compact JSON for prompt embedding.
func marshalForPrompt(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
