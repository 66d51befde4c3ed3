package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-coach/internal/llm"
)

func TestHandleAnalyzeResume(t *testing.T) {
	fake := &llm.FakeClient{Responses: []string{`{
		"score": 78,
		"diagnosis": [{"type": "建议", "title": "补充数据", "description": "缺少量化成果"}],
		"keywords": ["Go", "PostgreSQL"],
		"starRewrite": [],
		"optimizedResume": "优化后的简历全文"
	}`}}
	s := newTestServer(fake)

	rec := postJSON(t, s.handleAnalyzeResume, "/api/resume/analyze", map[string]any{
		"content":  "原始简历文本",
		"filename": "resume.pdf",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Score    int      `json:"score"`
		Keywords []string `json:"keywords"`
		FileInfo struct {
			Filename      string `json:"filename"`
			ContentLength int    `json:"contentLength"`
		} `json:"fileInfo"`
	}
	decodeBody(t, rec, &resp)
	assert.Equal(t, 78, resp.Score)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, resp.Keywords)
	assert.Equal(t, "resume.pdf", resp.FileInfo.Filename)
	assert.Equal(t, len("原始简历文本"), resp.FileInfo.ContentLength)
}

func TestHandleAnalyzeResume_MissingContent(t *testing.T) {
	s := newTestServer(&llm.FakeClient{})

	rec := postJSON(t, s.handleAnalyzeResume, "/api/resume/analyze", map[string]any{
		"filename": "resume.pdf",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyzeResume_MalformedModelOutputDegrades(t *testing.T) {
	fake := &llm.FakeClient{Responses: []string{"简历看起来不错！"}}
	s := newTestServer(fake)

	rec := postJSON(t, s.handleAnalyzeResume, "/api/resume/analyze", map[string]any{
		"content": "简历内容",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Score     int      `json:"score"`
		Diagnosis []any    `json:"diagnosis"`
		Keywords  []string `json:"keywords"`
	}
	decodeBody(t, rec, &resp)
	assert.Equal(t, 0, resp.Score)
	assert.Empty(t, resp.Diagnosis)
	assert.Empty(t, resp.Keywords)
}

func TestHandleAnalyzeResume_TransportFailure(t *testing.T) {
	fake := &llm.FakeClient{Err: fmt.Errorf("connection refused")}
	s := newTestServer(fake)

	rec := postJSON(t, s.handleAnalyzeResume, "/api/resume/analyze", map[string]any{
		"content": "简历内容",
	})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandleGenerateIntro_Defaults(t *testing.T) {
	fake := &llm.FakeClient{Responses: []string{"大家好，我是一名工程师。"}}
	s := newTestServer(fake)

	rec := postJSON(t, s.handleGenerateIntro, "/api/self-intro/generate", map[string]any{
		"userInfo": "五年后端经验",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp GenerateIntroResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "大家好，我是一名工程师。", resp.Intro)
	assert.Equal(t, "30秒电梯演讲版", resp.Version)
	assert.Equal(t, "正式", resp.Style)
	assert.Equal(t, "0.5", resp.EstimatedTime)
}

func TestHandleGenerateIntro_ExplicitVersion(t *testing.T) {
	fake := &llm.FakeClient{Responses: []string{"介绍文本"}}
	s := newTestServer(fake)

	rec := postJSON(t, s.handleGenerateIntro, "/api/self-intro/generate", map[string]any{
		"version": "3分钟标准版",
		"style":   "轻松",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp GenerateIntroResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "3分钟标准版", resp.Version)
	assert.Equal(t, "轻松", resp.Style)
	assert.Equal(t, "3", resp.EstimatedTime)
}

func TestHandleGenerateIntro_TransportFailure(t *testing.T) {
	fake := &llm.FakeClient{Err: fmt.Errorf("unavailable")}
	s := newTestServer(fake)

	rec := postJSON(t, s.handleGenerateIntro, "/api/self-intro/generate", map[string]any{})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
