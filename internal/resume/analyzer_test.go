package resume

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-coach/internal/llm"
)

func TestAnalyze_WellFormedReply(t *testing.T) {
	fake := &llm.FakeClient{Responses: []string{`{
		"score": 82,
		"diagnosis": [{"type": "建议", "title": "补充数据", "description": "项目成果缺少数字"}],
		"keywords": ["Go", "Kubernetes"],
		"starRewrite": [],
		"optimizedResume": "优化后的简历"
	}`}}
	analyzer := NewAnalyzer(fake, nil, nil)

	result, err := analyzer.Analyze(context.Background(), "user1", "resume.pdf", "原始简历内容")

	require.NoError(t, err)
	assert.True(t, result.WellFormed)
	assert.Equal(t, 82, result.Score)
	assert.Equal(t, []string{"Go", "Kubernetes"}, result.Keywords)
	assert.Equal(t, "优化后的简历", result.OptimizedResume)
	assert.Empty(t, result.ResumeID, "no resume id without a store")
}

func TestAnalyze_MalformedReplyReturnsDefaults(t *testing.T) {
	fake := &llm.FakeClient{Responses: []string{"这份简历写得不错，继续加油！"}}
	analyzer := NewAnalyzer(fake, nil, nil)

	result, err := analyzer.Analyze(context.Background(), "user1", "resume.pdf", "内容")

	require.NoError(t, err, "malformed output degrades, it does not fail")
	assert.False(t, result.WellFormed)
	assert.Equal(t, 0, result.Score)
	assert.Empty(t, result.Diagnosis)
	assert.Empty(t, result.Keywords)
}

func TestAnalyze_TransportFailureSurfaces(t *testing.T) {
	fake := &llm.FakeClient{Err: errors.New("connection refused")}
	analyzer := NewAnalyzer(fake, nil, nil)

	_, err := analyzer.Analyze(context.Background(), "user1", "resume.pdf", "内容")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume analysis generation failed")
}

func TestAnalyze_PromptCarriesResumeContent(t *testing.T) {
	fake := &llm.FakeClient{Responses: []string{`{"score": 60}`}}
	analyzer := NewAnalyzer(fake, nil, nil)

	_, err := analyzer.Analyze(context.Background(), "user1", "resume.pdf", "五年Go后端经验")
	require.NoError(t, err)

	req := fake.LastRequest()
	assert.Contains(t, req.Prompt, "五年Go后端经验")
	assert.NotEmpty(t, req.System)
	assert.Equal(t, float32(0.7), req.Temperature)
	assert.Equal(t, int32(4096), req.MaxTokens)
}
