package classify

import (
	"context"
	"errors"
	"testing"
)

// stubRemote is a RemoteClassifier returning a fixed record or error.
type stubRemote struct {
	rec   Record
	err   error
	calls int
}

func (s *stubRemote) Classify(ctx context.Context, title string) (Record, error) {
	s.calls++
	if s.err != nil {
		return Record{}, s.err
	}
	rec := s.rec
	rec.Title = title
	return rec, nil
}

func TestResolve_RemoteResultIsCachedAndReused(t *testing.T) {
	repo := NewMemoryCacheRepository()
	remote := &stubRemote{rec: Record{Category: CategoryDistraction, Confidence: 95, Source: SourceRemote}}
	r := NewResolver(repo, remote, DefaultRules(), nil)
	ctx := context.Background()

	first, err := r.Resolve(ctx, "Chrome — YouTube", false)
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	if first.Category != CategoryDistraction || first.Cached {
		t.Errorf("expected fresh distraction, got %+v", first)
	}

	second, err := r.Resolve(ctx, "Chrome — YouTube", false)
	if err != nil {
		t.Fatalf("second resolve: %v", err)
	}
	if !second.Cached {
		t.Errorf("expected cache hit, got %+v", second)
	}
	if remote.calls != 1 {
		t.Errorf("expected 1 remote call, got %d", remote.calls)
	}
	if second.ID != first.ID || second.Category != first.Category {
		t.Errorf("records differ across calls: %+v vs %+v", first, second)
	}
}

func TestResolve_ForceBypassesCache(t *testing.T) {
	repo := NewMemoryCacheRepository()
	remote := &stubRemote{rec: Record{Category: CategoryFocus, Confidence: 90, Source: SourceRemote}}
	r := NewResolver(repo, remote, DefaultRules(), nil)
	ctx := context.Background()

	if _, err := r.Resolve(ctx, "VSCode", false); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if _, err := r.Resolve(ctx, "VSCode", true); err != nil {
		t.Fatalf("forced resolve: %v", err)
	}
	if remote.calls != 2 {
		t.Errorf("expected 2 remote calls with force, got %d", remote.calls)
	}
}

func TestResolve_ForceNeverDiscardsOverride(t *testing.T) {
	repo := NewMemoryCacheRepository()
	remote := &stubRemote{rec: Record{Category: CategoryFocus, Confidence: 99, Source: SourceRemote}}
	r := NewResolver(repo, remote, DefaultRules(), nil)
	ctx := context.Background()

	if _, err := r.SaveOverride(ctx, "Slack", "distraction", 100, "personal chat"); err != nil {
		t.Fatalf("save override: %v", err)
	}

	forced, err := r.Resolve(ctx, "Slack", true)
	if err != nil {
		t.Fatalf("forced resolve: %v", err)
	}
	if forced.Source != SourceOverride || forced.Category != CategoryDistraction {
		t.Errorf("force must return the override, got %+v", forced)
	}
	if remote.calls != 0 {
		t.Errorf("force must not call the remote past an override, got %d calls", remote.calls)
	}

	after, err := r.Resolve(ctx, "Slack", false)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if after.Source != SourceOverride || after.Category != CategoryDistraction {
		t.Errorf("override was replaced by a forced resolve: %+v", after)
	}
}

func TestResolve_RemoteFailureFallsBackToRules(t *testing.T) {
	repo := NewMemoryCacheRepository()
	remote := &stubRemote{err: errors.New("boom")}
	r := NewResolver(repo, remote, DefaultRules(), nil)

	rec, err := r.Resolve(context.Background(), "Chrome — YouTube", false)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if rec.Category != CategoryDistraction || rec.Source != SourceRule {
		t.Errorf("expected rule-sourced distraction, got %+v", rec)
	}
	if repo.Len() != 0 {
		t.Errorf("rule result must not be persisted, cache has %d entries", repo.Len())
	}
}

func TestResolve_RuleOnlyResultsRetry(t *testing.T) {
	repo := NewMemoryCacheRepository()
	remote := &stubRemote{err: errors.New("boom")}
	r := NewResolver(repo, remote, DefaultRules(), nil)
	ctx := context.Background()

	if _, err := r.Resolve(ctx, "Terminal", false); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if _, err := r.Resolve(ctx, "Terminal", false); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if remote.calls != 2 {
		t.Errorf("expected the remote to be retried, got %d calls", remote.calls)
	}
}

func TestResolve_NoClassifierYieldsNotSet(t *testing.T) {
	repo := NewMemoryCacheRepository()
	r := NewResolver(repo, nil, DefaultRules(), nil)

	rec, err := r.Resolve(context.Background(), "Some Obscure App", false)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if rec.Category != CategoryNotSet {
		t.Errorf("expected not_set, got %s", rec.Category)
	}
	if rec.Confidence != 0 {
		t.Errorf("expected confidence 0, got %v", rec.Confidence)
	}
	if repo.Len() != 0 {
		t.Errorf("not_set must never be persisted, cache has %d entries", repo.Len())
	}
}

func TestSaveOverride_WinsOverEverything(t *testing.T) {
	repo := NewMemoryCacheRepository()
	remote := &stubRemote{rec: Record{Category: CategoryFocus, Confidence: 99, Source: SourceRemote}}
	r := NewResolver(repo, remote, DefaultRules(), nil)
	ctx := context.Background()

	if _, err := r.SaveOverride(ctx, "Slack", "distraction", 100, "personal chat"); err != nil {
		t.Fatalf("save override: %v", err)
	}

	rec, err := r.Resolve(ctx, "Slack", false)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if rec.Category != CategoryDistraction || rec.Source != SourceOverride {
		t.Errorf("expected override to win, got %+v", rec)
	}
	if remote.calls != 0 {
		t.Errorf("override must short-circuit the remote, got %d calls", remote.calls)
	}
}

func TestSaveOverride_InvalidCategory(t *testing.T) {
	r := NewResolver(NewMemoryCacheRepository(), nil, DefaultRules(), nil)

	_, err := r.SaveOverride(context.Background(), "Slack", "productive", 100, "")
	if !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestRevertOverride_RestoresPrecedence(t *testing.T) {
	repo := NewMemoryCacheRepository()
	remote := &stubRemote{rec: Record{Category: CategoryFocus, Confidence: 99, Source: SourceRemote}}
	r := NewResolver(repo, remote, DefaultRules(), nil)
	ctx := context.Background()

	if _, err := r.SaveOverride(ctx, "Slack", "distraction", 100, ""); err != nil {
		t.Fatalf("save override: %v", err)
	}
	if err := r.RevertOverride(ctx, "Slack"); err != nil {
		t.Fatalf("revert: %v", err)
	}

	rec, err := r.Resolve(ctx, "Slack", false)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if rec.Source != SourceRemote || rec.Category != CategoryFocus {
		t.Errorf("expected fresh remote result after revert, got %+v", rec)
	}
}

func TestCachedCategorizer_AppSetsFirst(t *testing.T) {
	sets := NewAppSets([]string{"VSCode"}, []string{"YouTube"})
	repo := NewMemoryCacheRepository()
	cat := NewCachedCategorizer(sets, repo)
	ctx := context.Background()

	if got := cat.Categorize(ctx, "VSCode", "VSCode"); got != CategoryFocus {
		t.Errorf("expected focus, got %s", got)
	}
	if got := cat.Categorize(ctx, "YouTube", "YouTube"); got != CategoryDistraction {
		t.Errorf("expected distraction, got %s", got)
	}
	if got := cat.Categorize(ctx, "Mystery", "Mystery"); got != CategoryNeutral {
		t.Errorf("expected neutral default, got %s", got)
	}
	if repo.GetCalls == 0 {
		t.Errorf("expected a cache lookup for the unknown app")
	}
}

func TestCachedCategorizer_UsesCachedOverride(t *testing.T) {
	sets := NewAppSets(nil, nil)
	repo := NewMemoryCacheRepository()
	r := NewResolver(repo, nil, DefaultRules(), nil)
	ctx := context.Background()

	if _, err := r.SaveOverride(ctx, "Figma", "focus", 100, "design work"); err != nil {
		t.Fatalf("save override: %v", err)
	}

	cat := NewCachedCategorizer(sets, repo)
	if got := cat.Categorize(ctx, "Figma", "Figma"); got != CategoryFocus {
		t.Errorf("expected overridden focus, got %s", got)
	}
}
