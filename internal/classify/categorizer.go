package classify

import (
	"context"

	"github.com/siddhi-bansal/focus-flow/internal/normalize"
)

// AppSets is the zero-cost categorizer backed by the configured focus and
// distraction app lists. Membership is decided on the base app name.
type AppSets struct {
	focus       map[string]struct{}
	distraction map[string]struct{}
}

func NewAppSets(focus, distraction []string) *AppSets {
	s := &AppSets{
		focus:       make(map[string]struct{}, len(focus)),
		distraction: make(map[string]struct{}, len(distraction)),
	}
	for _, app := range focus {
		s.focus[app] = struct{}{}
	}
	for _, app := range distraction {
		s.distraction[app] = struct{}{}
	}
	return s
}

// Lookup reports the category for a base app, false when the app is in
// neither set.
func (s *AppSets) Lookup(baseApp string) (Category, bool) {
	if _, ok := s.focus[baseApp]; ok {
		return CategoryFocus, true
	}
	if _, ok := s.distraction[baseApp]; ok {
		return CategoryDistraction, true
	}
	return "", false
}

// CachedCategorizer categorizes sessions during aggregation: app sets first,
// then a read-only cache lookup for the display title, else neutral. It
// never triggers a remote call, keeping analysis passes offline.
type CachedCategorizer struct {
	sets *AppSets
	repo CacheRepository // optional
}

func NewCachedCategorizer(sets *AppSets, repo CacheRepository) *CachedCategorizer {
	return &CachedCategorizer{sets: sets, repo: repo}
}

func (c *CachedCategorizer) Categorize(ctx context.Context, baseApp, displayTitle string) Category {
	if cat, ok := c.sets.Lookup(baseApp); ok {
		return cat
	}
	if c.repo != nil {
		sanitized := normalize.Sanitize(displayTitle, normalize.DefaultMaxTitleLength)
		if rec, err := c.repo.Get(ctx, CacheKey("", sanitized)); err == nil && rec != nil && rec.Durable() {
			return rec.Category
		}
	}
	return CategoryNeutral
}
