package classify

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/siddhi-bansal/focus-flow/internal/normalize"
)

// Observer receives classification telemetry. Implementations may be nil.
type Observer interface {
	Resolution(ctx context.Context, source Source, cached bool)
	RemoteFailure(ctx context.Context)
}

// Resolver answers classification queries with a fixed precedence: cached
// user override, then cached genuine remote result, then a fresh
// classification (remote first, local rules as fallback).
type Resolver struct {
	repo   CacheRepository
	remote RemoteClassifier // nil when no credential is configured
	rules  *RuleTable
	obs    Observer
}

func NewResolver(repo CacheRepository, remote RemoteClassifier, rules *RuleTable, obs Observer) *Resolver {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Resolver{repo: repo, remote: remote, rules: rules, obs: obs}
}

// Resolve classifies a title. force skips a cached remote result but never
// a user override. Remote failures degrade to the rule table and are never
// surfaced as errors; the returned error covers only durable-store write
// failures.
func (r *Resolver) Resolve(ctx context.Context, title string, force bool) (Record, error) {
	sanitized := normalize.Sanitize(title, normalize.DefaultMaxTitleLength)
	key := CacheKey("", sanitized)

	// A failed cache read is a miss, not a fault.
	if cached, err := r.repo.Get(ctx, key); err == nil && cached != nil && cached.Durable() {
		// Overrides are permanent until reverted; force only discards
		// remote results.
		if cached.Source == SourceOverride || !force {
			cached.Cached = true
			r.observe(ctx, cached.Source, true)
			return *cached, nil
		}
	}

	rec := r.classifyFresh(ctx, sanitized)
	if rec.Durable() {
		rec.ID = uuid.NewString()
		rec.CreatedAt = time.Now().UTC()
		if err := r.repo.Put(ctx, key, &rec); err != nil {
			return rec, fmt.Errorf("persist classification: %w", err)
		}
	}
	r.observe(ctx, rec.Source, false)
	return rec, nil
}

// classifyFresh runs the remote classifier when available, then the rule
// table. When neither produces an answer the record carries the not_set
// sentinel; that state is never persisted, so later calls retry.
func (r *Resolver) classifyFresh(ctx context.Context, sanitized string) Record {
	if r.remote != nil {
		rec, err := r.remote.Classify(ctx, sanitized)
		if err == nil {
			return rec
		}
		if r.obs != nil {
			r.obs.RemoteFailure(ctx)
		}
	}

	if rec, ok := r.rules.Classify(sanitized); ok {
		return rec
	}

	return Record{
		Title:     sanitized,
		Category:  CategoryNotSet,
		Source:    SourceRule,
		Rationale: "no classifier produced a usable answer",
	}
}

// SaveOverride writes a permanent user classification. It wins over every
// automated result until reverted.
func (r *Resolver) SaveOverride(ctx context.Context, title, category string, confidence float64, rationale string) (Record, error) {
	cat, err := ParseCategory(category)
	if err != nil {
		return Record{}, err
	}

	sanitized := normalize.Sanitize(title, normalize.DefaultMaxTitleLength)
	rec := Record{
		ID:         uuid.NewString(),
		Title:      sanitized,
		Category:   cat,
		Confidence: confidence,
		Tags:       []string{},
		Rationale:  rationale,
		Source:     SourceOverride,
		CreatedAt:  time.Now().UTC(),
	}
	if err := r.repo.Put(ctx, CacheKey("", sanitized), &rec); err != nil {
		return Record{}, fmt.Errorf("persist override: %w", err)
	}
	r.observe(ctx, SourceOverride, false)
	return rec, nil
}

// RevertOverride deletes the cached record for a title so the next Resolve
// falls back to the standard precedence.
func (r *Resolver) RevertOverride(ctx context.Context, title string) error {
	sanitized := normalize.Sanitize(title, normalize.DefaultMaxTitleLength)
	return r.repo.Delete(ctx, CacheKey("", sanitized))
}

func (r *Resolver) observe(ctx context.Context, source Source, cached bool) {
	if r.obs != nil {
		r.obs.Resolution(ctx, source, cached)
	}
}
