package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiter_AllowsWithinBurst(t *testing.T) {
	l := NewLimiter(Config{RequestsPerMinute: 60, Burst: 3})
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := l.Allow("client")
		assert.True(t, allowed, "request %d within burst", i)
	}

	allowed, info := l.Allow("client")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsIndependent(t *testing.T) {
	l := NewLimiter(Config{RequestsPerMinute: 60, Burst: 1})
	defer l.Stop()

	allowed, _ := l.Allow("a")
	assert.True(t, allowed)
	allowed, _ = l.Allow("a")
	assert.False(t, allowed)

	allowed, _ = l.Allow("b")
	assert.True(t, allowed, "exhausting one client must not affect another")
}

func TestLimiter_ZeroRateDisables(t *testing.T) {
	l := NewLimiter(Config{RequestsPerMinute: 0})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, info := l.Allow("client")
		assert.True(t, allowed)
		assert.Equal(t, 0, info.Limit)
	}
}

func TestLimiter_Refills(t *testing.T) {
	// 6000 rpm refills a token every 10ms.
	l := NewLimiter(Config{RequestsPerMinute: 6000, Burst: 1})
	defer l.Stop()

	allowed, _ := l.Allow("client")
	assert.True(t, allowed)
	allowed, _ = l.Allow("client")
	assert.False(t, allowed)

	time.Sleep(30 * time.Millisecond)
	allowed, _ = l.Allow("client")
	assert.True(t, allowed)
}

func TestLimiter_StopIsIdempotent(t *testing.T) {
	l := NewLimiter(Config{RequestsPerMinute: 60, Burst: 1})
	l.Stop()
	l.Stop()
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPM", "")
	t.Setenv("RATE_LIMIT_BURST", "")

	cfg := LoadConfig()
	assert.Equal(t, 60, cfg.RequestsPerMinute)
	assert.Equal(t, 10, cfg.Burst)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPM", "0")
	t.Setenv("RATE_LIMIT_BURST", "25")

	cfg := LoadConfig()
	assert.Equal(t, 0, cfg.RequestsPerMinute)
	assert.Equal(t, 25, cfg.Burst)
}
