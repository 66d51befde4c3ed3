// Package ratelimit provides a per-client token bucket guarding the model
// budget. Every interview turn costs a model call, so the limiter sits in
// front of the API rather than in front of the model client.
package ratelimit

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// Config holds limiter settings.
type Config struct {
	// RequestsPerMinute is the sustained per-client rate. Zero disables
	// limiting entirely.
	RequestsPerMinute int
	// Burst is the bucket capacity.
	Burst int
	// CleanupInterval controls how often idle client buckets are dropped.
	CleanupInterval time.Duration
}

// LoadConfig reads limiter settings from the environment.
// RATE_LIMIT_RPM=0 disables limiting.
func LoadConfig() Config {
	cfg := Config{
		RequestsPerMinute: 60,
		Burst:             10,
		CleanupInterval:   5 * time.Minute,
	}
	if v := os.Getenv("RATE_LIMIT_RPM"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.RequestsPerMinute = n
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Burst = n
		}
	}
	return cfg
}

// Info describes the limiter state for a client after an Allow call, used to
// populate the X-RateLimit response headers.
type Info struct {
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

type bucket struct {
	tokens   float64
	lastSeen time.Time
}

// Limiter implements a token bucket per client id.
type Limiter struct {
	mu      sync.Mutex
	cfg     Config
	clients map[string]*bucket
	stop    chan struct{}
	once    sync.Once
}

// NewLimiter creates a limiter and starts its idle-bucket cleanup goroutine.
func NewLimiter(cfg Config) *Limiter {
	l := &Limiter{
		cfg:     cfg,
		clients: make(map[string]*bucket),
		stop:    make(chan struct{}),
	}
	if cfg.RequestsPerMinute > 0 {
		go l.cleanupLoop()
	}
	return l
}

// Allow reports whether the client may proceed and returns limiter state.
func (l *Limiter) Allow(clientID string) (bool, Info) {
	if l.cfg.RequestsPerMinute <= 0 {
		return true, Info{}
	}

	now := time.Now()
	refillPerSec := float64(l.cfg.RequestsPerMinute) / 60.0

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.clients[clientID]
	if !ok {
		b = &bucket{tokens: float64(l.cfg.Burst), lastSeen: now}
		l.clients[clientID] = b
	} else {
		b.tokens += now.Sub(b.lastSeen).Seconds() * refillPerSec
		if b.tokens > float64(l.cfg.Burst) {
			b.tokens = float64(l.cfg.Burst)
		}
		b.lastSeen = now
	}

	info := Info{
		Limit:     l.cfg.RequestsPerMinute,
		ResetTime: now.Add(time.Duration(float64(time.Second) * (float64(l.cfg.Burst) - b.tokens) / refillPerSec)),
	}

	if b.tokens < 1 {
		info.Remaining = 0
		info.RetryAfter = time.Duration(float64(time.Second) * (1 - b.tokens) / refillPerSec)
		return false, info
	}

	b.tokens--
	info.Remaining = int(b.tokens)
	return true, info
}

// Stop terminates the cleanup goroutine.
func (l *Limiter) Stop() {
	l.once.Do(func() { close(l.stop) })
}

func (l *Limiter) cleanupLoop() {
	interval := l.cfg.CleanupInterval
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-interval)
			l.mu.Lock()
			for id, b := range l.clients {
				if b.lastSeen.Before(cutoff) {
					delete(l.clients, id)
				}
			}
			l.mu.Unlock()
		}
	}
}
