// Package extract recovers validated structured values from raw generative
// model replies. Model output is adversarial input from the parser's point of
// view: prose around the JSON, Markdown fences, single quotes, trailing
// commas, comments, control characters. Every entry point in this package
// follows one policy: maximal tolerance, never crash, always degrade to a
// fully populated default.
package extract

// Diagnosis entry types recognized in resume analysis output. These are the
// wire values the model is prompted to produce; anything else is dropped.
const (
	DiagnosisWarning    = "警告"
	DiagnosisError      = "错误"
	DiagnosisSuggestion = "建议"
)

// DiagnosisItem is a single finding in a resume analysis.
type DiagnosisItem struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// StarItem is one experience rewritten with the STAR method.
type StarItem struct {
	Situation string `json:"situation"`
	Task      string `json:"task"`
	Action    string `json:"action"`
	Result    string `json:"result"`
}

// ResumeAnalysis is the structured result of a resume analysis reply.
type ResumeAnalysis struct {
	Score           int             `json:"score"`
	Diagnosis       []DiagnosisItem `json:"diagnosis"`
	Keywords        []string        `json:"keywords"`
	StarRewrite     []StarItem      `json:"starRewrite"`
	OptimizedResume string          `json:"optimizedResume"`
}

// NewResumeAnalysis returns the all-default analysis. Slices are non-nil so
// the value serializes with empty arrays rather than nulls.
func NewResumeAnalysis() ResumeAnalysis {
	return ResumeAnalysis{
		Diagnosis:   []DiagnosisItem{},
		Keywords:    []string{},
		StarRewrite: []StarItem{},
	}
}

// Question is a single interview question produced by the model.
type Question struct {
	ID      int    `json:"id"`
	Content string `json:"content"`
	Type    string `json:"type"`
}

// FeedbackStep is the per-turn result of an interview answer: feedback on the
// current answer plus the next question to ask.
type FeedbackStep struct {
	Feedback     string   `json:"feedback"`
	NextQuestion Question `json:"nextQuestion"`
}

// QuestionAnalysis is the per-question breakdown in the final report.
type QuestionAnalysis struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Feedback   string `json:"feedback"`
	Suggestion string `json:"suggestion"`
}

// InterviewReport is the structured result of ending an interview session.
// Scores are passed through as extracted; the extractor does not clamp them.
type InterviewReport struct {
	ProfessionalScore       int                `json:"professionalScore"`
	LogicScore              int                `json:"logicScore"`
	ConfidenceScore         int                `json:"confidenceScore"`
	MatchScore              int                `json:"matchScore"`
	QuestionAnalysis        []QuestionAnalysis `json:"questionAnalysis"`
	OptimizationSuggestions []string           `json:"optimizationSuggestions"`
}

// NewInterviewReport returns the all-default report with non-nil slices.
func NewInterviewReport() InterviewReport {
	return InterviewReport{
		QuestionAnalysis:        []QuestionAnalysis{},
		OptimizationSuggestions: []string{},
	}
}
