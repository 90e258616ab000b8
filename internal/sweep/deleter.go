package sweep

import (
	"context"
	"errors"
	"sync"

	"github.com/spiffcs/sweep/internal/model"
)

// deleterBuffer bounds the number of completed deletions waiting to be
// reported. Resource control only; correctness does not depend on it.
const deleterBuffer = 64

// RepoDeleter deletes a single repository.
type RepoDeleter interface {
	DeleteRepo(ctx context.Context, owner, name string) error
}

// OutcomeFunc is called once per resolved deletion, success or failure, in
// completion order.
type OutcomeFunc func(model.Outcome)

var errNoOwner = errors.New("repository has no resolvable owner")

// DeleteAll deletes every confirmed repository concurrently. One task is
// dispatched per repository; outcomes funnel through a bounded channel and
// are reported via onDone as they arrive. A failed deletion is contained to
// its own record: it never stops sibling tasks and is never retried.
// DeleteAll waits for every dispatched task before returning, so the report
// always covers the full batch.
//
// A repository without an owner login cannot be addressed by the delete API;
// it is reported as a failed outcome without being dispatched.
func DeleteAll(ctx context.Context, deleter RepoDeleter, repos []model.Repo, onDone OutcomeFunc) *model.Report {
	outcomes := make(chan model.Outcome, deleterBuffer)

	var wg sync.WaitGroup
	for _, repo := range repos {
		wg.Add(1)
		go func(r model.Repo) {
			defer wg.Done()
			if r.Owner == "" {
				outcomes <- model.Outcome{Repo: r, Err: errNoOwner}
				return
			}
			err := deleter.DeleteRepo(ctx, r.Owner, r.Name)
			outcomes <- model.Outcome{Repo: r, Err: err}
		}(repo)
	}

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	report := &model.Report{}
	for outcome := range outcomes {
		report.Outcomes = append(report.Outcomes, outcome)
		if onDone != nil {
			onDone(outcome)
		}
	}
	return report
}
