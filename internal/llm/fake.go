package llm

import (
	"context"
	"sync"
)

// FakeClient is a deterministic Client used by tests. Responses are returned
// in order; once exhausted the last one repeats. A non-nil Err fails every
// call, which is how the no-stall fallback paths are exercised.
type FakeClient struct {
	mu        sync.Mutex
	Responses []string
	Err       error
	Requests  []GenerateRequest
}

// Generate records the request and returns the next canned response.
func (f *FakeClient) Generate(_ context.Context, req GenerateRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Requests = append(f.Requests, req)
	if f.Err != nil {
		return "", f.Err
	}
	if len(f.Responses) == 0 {
		return "", nil
	}
	resp := f.Responses[0]
	if len(f.Responses) > 1 {
		f.Responses = f.Responses[1:]
	}
	return resp, nil
}

// Close implements Client.
func (f *FakeClient) Close() error { return nil }

// CallCount returns how many Generate calls were made.
func (f *FakeClient) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Requests)
}

// LastRequest returns the most recent request, or the zero value.
func (f *FakeClient) LastRequest() GenerateRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Requests) == 0 {
		return GenerateRequest{}
	}
	return f.Requests[len(f.Requests)-1]
}
