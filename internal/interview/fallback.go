package interview

import "github.com/jonathan/interview-coach/internal/extract"

// Fixed substitute content used whenever the model call or extraction fails.
// Deterministic fallbacks keep the conversation moving; they are part of the
// external contract, not placeholders.
const (
	fallbackFirstQuestionContent = "请介绍一下你自己"
	fallbackQuestionType         = "高频必问题"
	fallbackFeedback             = "您的回答结构清晰，重点突出，但可以更具体地描述项目成果。"
	fallbackNextQuestionContent  = "您为什么想来我们公司工作？"
)

// fallbackFirstQuestion is the hardcoded opening question.
func fallbackFirstQuestion() extract.Question {
	return extract.Question{
		ID:      1,
		Content: fallbackFirstQuestionContent,
		Type:    fallbackQuestionType,
	}
}

// fallbackFeedbackStep is the substitute turn result. The orchestrator
// overwrites the question id on this path exactly as on the success path.
func fallbackFeedbackStep() extract.FeedbackStep {
	return extract.FeedbackStep{
		Feedback: fallbackFeedback,
		NextQuestion: extract.Question{
			Content: fallbackNextQuestionContent,
			Type:    fallbackQuestionType,
		},
	}
}

// fallbackReport is the substitute end-of-session report.
func fallbackReport() extract.InterviewReport {
	return extract.InterviewReport{
		ProfessionalScore: 85,
		LogicScore:        78,
		ConfidenceScore:   82,
		MatchScore:        80,
		QuestionAnalysis: []extract.QuestionAnalysis{
			{
				Question:   "请介绍一下你自己",
				Answer:     "我是一名前端开发工程师，有5年工作经验...",
				Feedback:   "回答结构清晰，重点突出，但可以更具体地描述项目成果",
				Suggestion: "建议使用STAR法则，增加数据支撑",
			},
		},
		OptimizationSuggestions: []string{
			"加强专业术语的使用，提升专业性",
			"注意语速控制，保持清晰流畅",
			"增加具体案例，增强说服力",
			"加强与面试官的眼神交流（视频面试）",
		},
	}
}

// Tips returns the fixed interview tips presented when a session starts.
func Tips() []string {
	return []string{
		"保持微笑，展现自信",
		"回答问题时保持逻辑清晰",
		"注意控制语速，避免过快或过慢",
	}
}
