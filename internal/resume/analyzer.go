package resume

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/interview-coach/internal/db"
	"github.com/jonathan/interview-coach/internal/extract"
	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/jonathan/interview-coach/internal/logger"
	"github.com/jonathan/interview-coach/internal/prompts"
	"github.com/jonathan/interview-coach/internal/schemas"
)

// Analyzer runs resume analysis through the model and stores the result.
type Analyzer struct {
	client llm.Client
	store  *db.DB // optional; nil disables persistence
	log    *zap.Logger
}

// NewAnalyzer creates an analyzer. store may be nil, in which case analyses
// are not persisted and no resume id is issued.
func NewAnalyzer(client llm.Client, store *db.DB, log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{client: client, store: store, log: log}
}

// AnalysisResult is an extracted analysis plus storage metadata.
type AnalysisResult struct {
	extract.ResumeAnalysis
	ResumeID   string
	WellFormed bool
}

// Analyze sends resume content to the model and extracts the structured
// analysis. Malformed model output degrades to the all-default analysis;
// only transport failure is an error. Persistence is best-effort.
func (a *Analyzer) Analyze(ctx context.Context, userKey, filename, content string) (*AnalysisResult, error) {
	prompt := prompts.Format(prompts.MustGet("resume.analyze"), map[string]string{
		"ResumeContent": content,
	})

	raw, err := a.client.Generate(ctx, llm.GenerateRequest{
		System:      prompts.MustGet("resume.system_analyst"),
		Prompt:      prompt,
		Temperature: 0.7,
		MaxTokens:   4096,
	})
	if err != nil {
		return nil, fmt.Errorf("resume analysis generation failed: %w", err)
	}

	analysis, wellFormed := extract.ParseResumeAnalysis(raw)
	if !wellFormed {
		a.log.Warn("resume analysis extraction failed, returning defaults",
			zap.String("raw", logger.Truncate(raw, 200)))
	} else if err := schemas.ValidateResumeAnalysis(analysis); err != nil {
		// Schema drift is diagnostic only; the extracted value is still used.
		a.log.Debug("resume analysis shape drift", zap.Error(err))
	}

	result := &AnalysisResult{ResumeAnalysis: analysis, WellFormed: wellFormed}

	if a.store != nil {
		id, err := a.store.SaveResume(ctx, userKey, filename, content, analysis.OptimizedResume)
		if err != nil {
			a.log.Warn("failed to persist resume", zap.Error(err))
		} else {
			result.ResumeID = id.String()
		}
	}

	return result, nil
}
