package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeClient_ResponsesInOrderThenRepeat(t *testing.T) {
	fake := &FakeClient{Responses: []string{"first", "second"}}

	for _, want := range []string{"first", "second", "second"} {
		got, err := fake.Generate(context.Background(), GenerateRequest{Prompt: "p"})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 3, fake.CallCount())
}

func TestFakeClient_ErrFailsEveryCall(t *testing.T) {
	fake := &FakeClient{Responses: []string{"unused"}, Err: errors.New("down")}

	_, err := fake.Generate(context.Background(), GenerateRequest{})
	assert.Error(t, err)
	assert.Equal(t, 1, fake.CallCount(), "failed calls are still recorded")
}

func TestFakeClient_RecordsRequests(t *testing.T) {
	fake := &FakeClient{Responses: []string{"ok"}}

	_, err := fake.Generate(context.Background(), GenerateRequest{
		System:      "系统提示",
		Prompt:      "用户提示",
		Temperature: 0.7,
		MaxTokens:   512,
	})
	require.NoError(t, err)

	req := fake.LastRequest()
	assert.Equal(t, "系统提示", req.System)
	assert.Equal(t, "用户提示", req.Prompt)
	assert.Equal(t, float32(0.7), req.Temperature)
	assert.Equal(t, int32(512), req.MaxTokens)
}
