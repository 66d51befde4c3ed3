package resume

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/jonathan/interview-coach/internal/prompts"
)

// Self-introduction versions and their estimated spoken duration in minutes.
const (
	VersionElevator = "30秒电梯演讲版"
	VersionStandard = "3分钟标准版"
	VersionDeep     = "5分钟深度版"
)

// EstimatedTime maps an intro version to its expected duration label.
func EstimatedTime(version string) string {
	switch version {
	case VersionElevator:
		return "0.5"
	case VersionStandard:
		return "3"
	default:
		return "5"
	}
}

// IntroGenerator produces spoken self-introductions from resume content.
type IntroGenerator struct {
	client   llm.Client
	resolver ContentResolver
	log      *zap.Logger
}

// NewIntroGenerator creates an intro generator.
func NewIntroGenerator(client llm.Client, resolver ContentResolver, log *zap.Logger) *IntroGenerator {
	if log == nil {
		log = zap.NewNop()
	}
	return &IntroGenerator{client: client, resolver: resolver, log: log}
}

// Generate produces a self-introduction. The optimized resume for userKey is
// preferred; userInfo is the fallback source, and with neither available a
// generic introduction is produced.
func (g *IntroGenerator) Generate(ctx context.Context, userKey, version, style, userInfo string) (string, error) {
	content := userInfo
	if g.resolver != nil {
		resolved, err := g.resolver.Resolve(ctx, userKey, VariantOptimized)
		if err != nil {
			g.log.Warn("resume resolution failed for intro generation",
				zap.String("user_key", userKey), zap.Error(err))
		} else if resolved.Text != "" {
			content = resolved.Text
		}
	}

	key := "resume.intro_with_resume"
	data := map[string]string{
		"Style":         style,
		"Version":       version,
		"ResumeContent": content,
	}
	if content == "" {
		key = "resume.intro_generic"
	}

	raw, err := g.client.Generate(ctx, llm.GenerateRequest{
		System:      prompts.MustGet("resume.system_intro"),
		Prompt:      prompts.Format(prompts.MustGet(key), data),
		Temperature: 0.7,
		MaxTokens:   1000,
	})
	if err != nil {
		return "", fmt.Errorf("self-introduction generation failed: %w", err)
	}

	return strings.TrimSpace(raw), nil
}
