package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-coach/internal/extract"
)

func validAnalysis() extract.ResumeAnalysis {
	a := extract.NewResumeAnalysis()
	a.Score = 82
	a.Diagnosis = append(a.Diagnosis, extract.DiagnosisItem{
		Type:        extract.DiagnosisWarning,
		Title:       "缺少量化数据",
		Description: "项目经历缺少具体成果数字",
	})
	a.Keywords = append(a.Keywords, "Go")
	a.StarRewrite = append(a.StarRewrite, extract.StarItem{
		Situation: "s", Task: "t", Action: "a", Result: "r",
	})
	a.OptimizedResume = "优化后的简历"
	return a
}

func TestValidateResumeAnalysis_Valid(t *testing.T) {
	assert.NoError(t, ValidateResumeAnalysis(validAnalysis()))
}

func TestValidateResumeAnalysis_DefaultsAreValid(t *testing.T) {
	// The extractor's all-default value must satisfy the strict shape, since
	// it is what callers receive on every malformed reply.
	assert.NoError(t, ValidateResumeAnalysis(extract.NewResumeAnalysis()))
}

func TestValidateResumeAnalysis_ScoreOutOfRange(t *testing.T) {
	a := validAnalysis()
	a.Score = 150

	err := ValidateResumeAnalysis(a)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
	assert.Contains(t, ve.Error(), "score")
}

func TestValidateResumeAnalysis_BadDiagnosisType(t *testing.T) {
	a := validAnalysis()
	a.Diagnosis[0].Type = "Note"

	assert.Error(t, ValidateResumeAnalysis(a))
}

func TestValidateInterviewReport_Valid(t *testing.T) {
	r := extract.NewInterviewReport()
	r.ProfessionalScore = 85
	r.LogicScore = 78
	r.ConfidenceScore = 82
	r.MatchScore = 80
	r.QuestionAnalysis = append(r.QuestionAnalysis, extract.QuestionAnalysis{
		Question: "q", Answer: "a", Feedback: "f", Suggestion: "s",
	})
	r.OptimizationSuggestions = append(r.OptimizationSuggestions, "多用数据支撑")

	assert.NoError(t, ValidateInterviewReport(r))
}

func TestValidateInterviewReport_DefaultsAreValid(t *testing.T) {
	assert.NoError(t, ValidateInterviewReport(extract.NewInterviewReport()))
}
