package sweep

import (
	"context"
	"fmt"

	"github.com/spiffcs/sweep/internal/log"
	"github.com/spiffcs/sweep/internal/model"
	"golang.org/x/sync/errgroup"
)

// collectorBuffer bounds the number of fetched pages waiting to be merged.
const collectorBuffer = 32

// RepoLister fetches one page of repositories owned by the authenticated
// user. Pages are 1-based. lastPage is the total page count as reported by
// the API; 0 or 1 means there are no further pages.
type RepoLister interface {
	ListPage(ctx context.Context, page int) (repos []model.Repo, lastPage int, err error)
}

// Collect retrieves every page of repositories. The first page is fetched
// synchronously to learn the page count; remaining pages are fetched
// concurrently and merged in arrival order. Page order is not preserved.
//
// Any page failure fails the whole collect: a partial listing could hide
// repositories from review, which is not acceptable before a destructive
// operation. Collect waits for every dispatched fetch to settle before
// returning the first error.
func Collect(ctx context.Context, lister RepoLister) ([]model.Repo, error) {
	first, lastPage, err := lister.ListPage(ctx, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories: %w", err)
	}

	if lastPage <= 1 {
		return first, nil
	}

	log.Debug("fetching remaining pages", "pages", lastPage-1)

	results := make(chan []model.Repo, collectorBuffer)

	g, gctx := errgroup.WithContext(ctx)
	for page := 2; page <= lastPage; page++ {
		g.Go(func() error {
			repos, _, err := lister.ListPage(gctx, page)
			if err != nil {
				return fmt.Errorf("failed to list repositories page %d: %w", page, err)
			}
			results <- repos
			return nil
		})
	}

	go func() {
		_ = g.Wait()
		close(results)
	}()

	all := first
	for repos := range results {
		all = append(all, repos...)
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return all, nil
}
