// Package schemas provides JSON Schema validation for the structured shapes
// extracted from model output. The extractor is deliberately tolerant; these
// schemas express the strict contract and are used for drift diagnostics and
// in tests.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const resumeAnalysisSchema = `{
  "type": "object",
  "required": ["score", "diagnosis", "keywords", "starRewrite", "optimizedResume"],
  "properties": {
    "score": {"type": "integer", "minimum": 0, "maximum": 100},
    "diagnosis": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["type", "title", "description"],
        "properties": {
          "type": {"type": "string", "enum": ["警告", "错误", "建议"]},
          "title": {"type": "string"},
          "description": {"type": "string"}
        }
      }
    },
    "keywords": {"type": "array", "items": {"type": "string", "minLength": 1}},
    "starRewrite": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["situation", "task", "action", "result"],
        "properties": {
          "situation": {"type": "string"},
          "task": {"type": "string"},
          "action": {"type": "string"},
          "result": {"type": "string"}
        }
      }
    },
    "optimizedResume": {"type": "string"}
  }
}`

const interviewReportSchema = `{
  "type": "object",
  "required": ["professionalScore", "logicScore", "confidenceScore", "matchScore", "questionAnalysis", "optimizationSuggestions"],
  "properties": {
    "professionalScore": {"type": "integer"},
    "logicScore": {"type": "integer"},
    "confidenceScore": {"type": "integer"},
    "matchScore": {"type": "integer"},
    "questionAnalysis": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["question", "answer", "feedback", "suggestion"],
        "properties": {
          "question": {"type": "string"},
          "answer": {"type": "string"},
          "feedback": {"type": "string"},
          "suggestion": {"type": "string"}
        }
      }
    },
    "optimizationSuggestions": {"type": "array", "items": {"type": "string"}}
  }
}`

// ValidationError aggregates field-level schema violations.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single violation at a specific field path.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateResumeAnalysis checks a value against the strict analysis shape.
func ValidateResumeAnalysis(v any) error {
	return validate(resumeAnalysisSchema, v)
}

// ValidateInterviewReport checks a value against the strict report shape.
func ValidateInterviewReport(v any) error {
	return validate(interviewReportSchema, v)
}

func validate(schema string, v any) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewGoLoader(v),
	)
	if err != nil {
		return fmt.Errorf("schema validation failed to run: %w", err)
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
