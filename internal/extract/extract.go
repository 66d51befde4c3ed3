package extract

import (
	"encoding/json"
	"strings"
)

// decodeObject cleans a raw reply and parses it into a JSON object. The bool
// reports whether a well-formed object was recovered.
func decodeObject(raw string) (map[string]any, bool) {
	candidate, ok := CleanJSONCandidate(raw)
	if !ok {
		return nil, false
	}

	var parsed any
	if err := json.Unmarshal([]byte(candidate), &parsed); err != nil {
		return nil, false
	}

	obj, ok := parsed.(map[string]any)
	if !ok {
		return nil, false
	}
	return obj, true
}

func stringField(m map[string]any, key string) (string, bool) {
	v, ok := m[key].(string)
	return v, ok
}

func intField(m map[string]any, key string) (int, bool) {
	// encoding/json decodes every JSON number as float64.
	v, ok := m[key].(float64)
	if !ok {
		return 0, false
	}
	return int(v), true
}

// ParseResumeAnalysis extracts a resume analysis from a raw model reply.
// Fields that are absent or mistyped are skipped; diagnosis entries with an
// unrecognized type or missing keys are dropped, never substituted. On any
// parse failure the all-default analysis is returned with ok = false.
func ParseResumeAnalysis(raw string) (ResumeAnalysis, bool) {
	result := NewResumeAnalysis()

	obj, ok := decodeObject(raw)
	if !ok {
		return result, false
	}

	if score, ok := intField(obj, "score"); ok {
		result.Score = score
	}

	if entries, ok := obj["diagnosis"].([]any); ok {
		for _, entry := range entries {
			item, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			typ, okType := stringField(item, "type")
			title, okTitle := stringField(item, "title")
			desc, okDesc := stringField(item, "description")
			if !okType || !okTitle || !okDesc {
				continue
			}
			switch typ {
			case DiagnosisWarning, DiagnosisError, DiagnosisSuggestion:
				result.Diagnosis = append(result.Diagnosis, DiagnosisItem{
					Type:        typ,
					Title:       title,
					Description: desc,
				})
			}
		}
	}

	if entries, ok := obj["keywords"].([]any); ok {
		for _, entry := range entries {
			keyword, ok := entry.(string)
			if !ok {
				continue
			}
			if keyword = strings.TrimSpace(keyword); keyword != "" {
				result.Keywords = append(result.Keywords, keyword)
			}
		}
	}

	if entries, ok := obj["starRewrite"].([]any); ok {
		for _, entry := range entries {
			item, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			situation, _ := stringField(item, "situation")
			task, _ := stringField(item, "task")
			action, _ := stringField(item, "action")
			res, _ := stringField(item, "result")
			result.StarRewrite = append(result.StarRewrite, StarItem{
				Situation: strings.TrimSpace(situation),
				Task:      strings.TrimSpace(task),
				Action:    strings.TrimSpace(action),
				Result:    strings.TrimSpace(res),
			})
		}
	}

	if optimized, ok := stringField(obj, "optimizedResume"); ok {
		result.OptimizedResume = strings.TrimSpace(optimized)
	}

	return result, true
}

// ParseQuestion extracts a single interview question. A question without
// content is useless to the conversation, so well-formedness requires a
// non-empty content field; the caller substitutes its fixed opener otherwise.
func ParseQuestion(raw string) (Question, bool) {
	var q Question

	obj, ok := decodeObject(raw)
	if !ok {
		return q, false
	}

	if id, ok := intField(obj, "id"); ok {
		q.ID = id
	}
	if content, ok := stringField(obj, "content"); ok {
		q.Content = strings.TrimSpace(content)
	}
	if typ, ok := stringField(obj, "type"); ok {
		q.Type = typ
	}

	if q.Content == "" {
		return Question{}, false
	}
	return q, true
}

// ParseFeedbackStep extracts per-turn feedback plus the next question. The
// next question must carry content for the conversation to advance; a reply
// without one is treated as malformed so the caller applies its fallback.
// The extracted question id is advisory only: the session orchestrator always
// overwrites it with its own counter.
func ParseFeedbackStep(raw string) (FeedbackStep, bool) {
	var step FeedbackStep

	obj, ok := decodeObject(raw)
	if !ok {
		return step, false
	}

	if feedback, ok := stringField(obj, "feedback"); ok {
		step.Feedback = feedback
	}

	next, ok := obj["nextQuestion"].(map[string]any)
	if !ok {
		return FeedbackStep{}, false
	}
	if id, ok := intField(next, "id"); ok {
		step.NextQuestion.ID = id
	}
	if content, ok := stringField(next, "content"); ok {
		step.NextQuestion.Content = strings.TrimSpace(content)
	}
	if typ, ok := stringField(next, "type"); ok {
		step.NextQuestion.Type = typ
	}

	if step.NextQuestion.Content == "" {
		return FeedbackStep{}, false
	}
	return step, true
}

// ParseInterviewReport extracts the end-of-session report. All fields default
// individually; scores are not clamped here.
func ParseInterviewReport(raw string) (InterviewReport, bool) {
	result := NewInterviewReport()

	obj, ok := decodeObject(raw)
	if !ok {
		return result, false
	}

	if v, ok := intField(obj, "professionalScore"); ok {
		result.ProfessionalScore = v
	}
	if v, ok := intField(obj, "logicScore"); ok {
		result.LogicScore = v
	}
	if v, ok := intField(obj, "confidenceScore"); ok {
		result.ConfidenceScore = v
	}
	if v, ok := intField(obj, "matchScore"); ok {
		result.MatchScore = v
	}

	if entries, ok := obj["questionAnalysis"].([]any); ok {
		for _, entry := range entries {
			item, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			question, _ := stringField(item, "question")
			answer, _ := stringField(item, "answer")
			feedback, _ := stringField(item, "feedback")
			suggestion, _ := stringField(item, "suggestion")
			result.QuestionAnalysis = append(result.QuestionAnalysis, QuestionAnalysis{
				Question:   question,
				Answer:     answer,
				Feedback:   feedback,
				Suggestion: suggestion,
			})
		}
	}

	if entries, ok := obj["optimizationSuggestions"].([]any); ok {
		for _, entry := range entries {
			if suggestion, ok := entry.(string); ok {
				result.OptimizationSuggestions = append(result.OptimizationSuggestions, suggestion)
			}
		}
	}

	return result, true
}
