package resume

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-coach/internal/llm"
)

func TestEstimatedTime(t *testing.T) {
	assert.Equal(t, "0.5", EstimatedTime(VersionElevator))
	assert.Equal(t, "3", EstimatedTime(VersionStandard))
	assert.Equal(t, "5", EstimatedTime(VersionDeep))
	assert.Equal(t, "5", EstimatedTime("未知版本"))
}

func TestIntroGenerate_PrefersResolvedResume(t *testing.T) {
	fake := &llm.FakeClient{Responses: []string{"  大家好，我是一名后端工程师。  "}}
	resolver := &StaticResolver{Content: Content{ResumeID: "r1", Text: "简历正文"}}
	gen := NewIntroGenerator(fake, resolver, nil)

	intro, err := gen.Generate(context.Background(), "user1", VersionStandard, "正式", "手填的信息")

	require.NoError(t, err)
	assert.Equal(t, "大家好，我是一名后端工程师。", intro)
	assert.Contains(t, fake.LastRequest().Prompt, "简历正文")
	assert.NotContains(t, fake.LastRequest().Prompt, "手填的信息")
}

func TestIntroGenerate_FallsBackToUserInfo(t *testing.T) {
	fake := &llm.FakeClient{Responses: []string{"介绍文本"}}
	gen := NewIntroGenerator(fake, &StaticResolver{}, nil)

	_, err := gen.Generate(context.Background(), "user1", VersionElevator, "轻松", "三年产品经理经验")

	require.NoError(t, err)
	assert.Contains(t, fake.LastRequest().Prompt, "三年产品经理经验")
}

func TestIntroGenerate_GenericWithoutAnyContent(t *testing.T) {
	fake := &llm.FakeClient{Responses: []string{"通用介绍"}}
	gen := NewIntroGenerator(fake, &StaticResolver{}, nil)

	intro, err := gen.Generate(context.Background(), "user1", VersionElevator, "正式", "")

	require.NoError(t, err)
	assert.Equal(t, "通用介绍", intro)
}

func TestIntroGenerate_ResolverFailureStillGenerates(t *testing.T) {
	fake := &llm.FakeClient{Responses: []string{"介绍"}}
	gen := NewIntroGenerator(fake, failingIntroResolver{}, nil)

	intro, err := gen.Generate(context.Background(), "user1", VersionDeep, "正式", "备用信息")

	require.NoError(t, err)
	assert.Equal(t, "介绍", intro)
	assert.Contains(t, fake.LastRequest().Prompt, "备用信息")
}

func TestIntroGenerate_TransportFailureSurfaces(t *testing.T) {
	fake := &llm.FakeClient{Err: errors.New("unavailable")}
	gen := NewIntroGenerator(fake, &StaticResolver{}, nil)

	_, err := gen.Generate(context.Background(), "user1", VersionElevator, "正式", "信息")

	assert.Error(t, err)
}

type failingIntroResolver struct{}

func (failingIntroResolver) Resolve(context.Context, string, Variant) (Content, error) {
	return Content{}, errors.New("store down")
}
