package history

import (
	"context"
	"fmt"

	"github.com/puzpuzpuz/xsync/v3"
	"golang.org/x/sync/singleflight"

	"github.com/dcode-oj/dcode-cli/api"
)

// FetchService lists past submissions for one (problem, user) pair.
// Implemented by platform.Client.
type FetchService interface {
	Submissions(ctx context.Context, problemID int, userID string) ([]api.Submission, error)
}

// View is the submission history surface of the problem view. History is
// fetched on demand, not eagerly: the first lookup for a (problem, user)
// pair hits the backend, later lookups come from the cache until a submit
// refreshes it. Concurrent first lookups for the same pair are collapsed
// into one request.
type View struct {
	svc   FetchService
	cache *xsync.MapOf[string, []api.Submission]
	group singleflight.Group
}

func NewView(svc FetchService) *View {
	return &View{
		svc:   svc,
		cache: xsync.NewMapOf[string, []api.Submission](),
	}
}

func cacheKey(problemID int, userID string) string {
	return fmt.Sprintf("%d/%s", problemID, userID)
}

// Submissions returns the history for a (problem, user) pair, fetching it
// on first use.
func (v *View) Submissions(ctx context.Context, problemID int, userID string) ([]api.Submission, error) {
	key := cacheKey(problemID, userID)
	if subs, ok := v.cache.Load(key); ok {
		return subs, nil
	}

	res, err, _ := v.group.Do(key, func() (interface{}, error) {
		subs, err := v.svc.Submissions(ctx, problemID, userID)
		if err != nil {
			return nil, err
		}
		v.cache.Store(key, subs)
		return subs, nil
	})
	if err != nil {
		return nil, err
	}
	return res.([]api.Submission), nil
}

// Refresh refetches the history, replacing whatever is cached. Called after
// every submit, whatever its outcome.
func (v *View) Refresh(ctx context.Context, problemID int, userID string) ([]api.Submission, error) {
	subs, err := v.svc.Submissions(ctx, problemID, userID)
	if err != nil {
		return nil, err
	}
	v.cache.Store(cacheKey(problemID, userID), subs)
	return subs, nil
}

// Invalidate drops the cached history for one pair.
func (v *View) Invalidate(problemID int, userID string) {
	v.cache.Delete(cacheKey(problemID, userID))
}

// Select drills down into one submission of a fetched list by ordinal
// position (newest first, as served by the backend).
func Select(subs []api.Submission, index int) (*api.Submission, error) {
	if index < 0 || index >= len(subs) {
		return nil, fmt.Errorf("no submission at position %d (have %d)", index, len(subs))
	}
	return &subs[index], nil
}
