package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/interview-coach/internal/extract"
	"github.com/jonathan/interview-coach/internal/resume"
)

// AnalyzeResumeRequest is the request body for /api/resume/analyze. Content
// is the already-extracted resume text; document parsing (PDF, DOCX) happens
// upstream of this service.
type AnalyzeResumeRequest struct {
	Content  string `json:"content" validate:"required"`
	Filename string `json:"filename"`
	UserID   string `json:"userId"`
}

// FileInfo echoes metadata about the analyzed document.
type FileInfo struct {
	Filename      string `json:"filename"`
	ContentLength int    `json:"contentLength"`
}

// AnalyzeResumeResponse is the analysis result plus storage metadata.
type AnalyzeResumeResponse struct {
	extract.ResumeAnalysis
	FileInfo FileInfo `json:"fileInfo"`
	ResumeID string   `json:"resumeId,omitempty"`
}

// handleAnalyzeResume runs a resume through model analysis. Malformed model
// output yields the all-default analysis rather than an error; only transport
// failure surfaces, as a 502.
func (s *Server) handleAnalyzeResume(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if req.UserID == "" {
		req.UserID = defaultUserKey
	}

	result, err := s.analyzer.Analyze(r.Context(), req.UserID, req.Filename, req.Content)
	if err != nil {
		s.log.Error("resume analysis failed", zap.Error(err))
		s.errorResponse(w, http.StatusBadGateway, "resume analysis failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, AnalyzeResumeResponse{
		ResumeAnalysis: result.ResumeAnalysis,
		FileInfo: FileInfo{
			Filename:      req.Filename,
			ContentLength: len(req.Content),
		},
		ResumeID: result.ResumeID,
	})
}

// GenerateIntroRequest is the request body for /api/self-intro/generate.
type GenerateIntroRequest struct {
	UserID   string `json:"userId"`
	Version  string `json:"version"`
	Style    string `json:"style"`
	UserInfo string `json:"userInfo"`
}

// GenerateIntroResponse carries the generated introduction.
type GenerateIntroResponse struct {
	Intro         string `json:"intro"`
	Version       string `json:"version"`
	Style         string `json:"style"`
	EstimatedTime string `json:"estimatedTime"`
}

// handleGenerateIntro produces a self-introduction from the user's optimized
// resume, falling back to whatever info the request supplied.
func (s *Server) handleGenerateIntro(w http.ResponseWriter, r *http.Request) {
	var req GenerateIntroRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.UserID == "" {
		req.UserID = defaultUserKey
	}
	if req.Version == "" {
		req.Version = resume.VersionElevator
	}
	if req.Style == "" {
		req.Style = "正式"
	}

	intro, err := s.intro.Generate(r.Context(), req.UserID, req.Version, req.Style, req.UserInfo)
	if err != nil {
		s.log.Error("self-intro generation failed", zap.Error(err))
		s.errorResponse(w, http.StatusBadGateway, "生成自我介绍失败，请重试")
		return
	}

	s.jsonResponse(w, http.StatusOK, GenerateIntroResponse{
		Intro:         intro,
		Version:       req.Version,
		Style:         req.Style,
		EstimatedTime: resume.EstimatedTime(req.Version),
	})
}
