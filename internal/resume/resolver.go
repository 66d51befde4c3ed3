// Package resume provides resume analysis, self-introduction generation, and
// resume content resolution for interview sessions.
package resume

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jonathan/interview-coach/internal/db"
)

// Variant selects which stored rendition of a resume to resolve.
type Variant string

// Resume content variants.
const (
	VariantOriginal  Variant = "original"
	VariantOptimized Variant = "optimized"
)

// Content is a resolved resume snapshot. ResumeID identifies the stored
// resume the text came from; it is empty when the user has none, which is a
// valid state ("no resume available"), not an error.
type Content struct {
	ResumeID string
	Text     string
}

// ContentResolver resolves the resume text for a user. Implementations may
// return empty content; callers proceed with "no information provided".
type ContentResolver interface {
	Resolve(ctx context.Context, userKey string, variant Variant) (Content, error)
}

// StoreResolver resolves resume content from the database, preferring the
// requested variant and falling back to the original text when the optimized
// rendition is empty.
type StoreResolver struct {
	store *db.DB
}

// NewStoreResolver creates a resolver backed by the resume store.
func NewStoreResolver(store *db.DB) *StoreResolver {
	return &StoreResolver{store: store}
}

// Resolve returns the latest resume content for userKey. A user without any
// stored resume resolves to empty content.
func (r *StoreResolver) Resolve(ctx context.Context, userKey string, variant Variant) (Content, error) {
	if r.store == nil {
		return Content{}, nil
	}

	record, err := r.store.GetLatestResume(ctx, userKey)
	if err != nil {
		return Content{}, fmt.Errorf("failed to resolve resume content: %w", err)
	}
	if record == nil {
		return Content{}, nil
	}

	text := record.OriginalContent
	if variant == VariantOptimized && record.OptimizedContent != "" {
		text = record.OptimizedContent
	}
	return Content{ResumeID: record.ID.String(), Text: text}, nil
}

// CachedResolver memoizes resolutions for a short TTL and collapses
// concurrent lookups for the same key into a single underlying call. Starting
// several sessions for one user should not hammer the store.
type CachedResolver struct {
	inner ContentResolver
	ttl   time.Duration
	group singleflight.Group

	mu    sync.Mutex
	cache map[string]cachedContent
}

type cachedContent struct {
	content Content
	fetched time.Time
}

// NewCachedResolver wraps inner with a TTL cache. A non-positive ttl
// disables expiry.
func NewCachedResolver(inner ContentResolver, ttl time.Duration) *CachedResolver {
	return &CachedResolver{
		inner: inner,
		ttl:   ttl,
		cache: make(map[string]cachedContent),
	}
}

// Resolve returns cached content when fresh, otherwise delegates to the
// wrapped resolver. Resolution failures are not cached.
func (r *CachedResolver) Resolve(ctx context.Context, userKey string, variant Variant) (Content, error) {
	key := userKey + "|" + string(variant)

	r.mu.Lock()
	entry, ok := r.cache[key]
	r.mu.Unlock()
	if ok && (r.ttl <= 0 || time.Since(entry.fetched) < r.ttl) {
		return entry.content, nil
	}

	v, err, _ := r.group.Do(key, func() (any, error) {
		content, err := r.inner.Resolve(ctx, userKey, variant)
		if err != nil {
			return Content{}, err
		}
		r.mu.Lock()
		r.cache[key] = cachedContent{content: content, fetched: time.Now()}
		r.mu.Unlock()
		return content, nil
	})
	if err != nil {
		return Content{}, err
	}
	return v.(Content), nil
}

// StaticResolver returns fixed content for every user. Used when the service
// runs without a database and in tests.
type StaticResolver struct {
	Content Content
}

// Resolve implements ContentResolver.
func (r *StaticResolver) Resolve(context.Context, string, Variant) (Content, error) {
	return r.Content, nil
}
