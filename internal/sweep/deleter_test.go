package sweep

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/spiffcs/sweep/internal/model"
)

// stubDeleter records attempted deletions and fails the configured names.
type stubDeleter struct {
	mu        sync.Mutex
	attempted []string
	failNames map[string]bool
}

func (s *stubDeleter) DeleteRepo(_ context.Context, owner, name string) error {
	s.mu.Lock()
	s.attempted = append(s.attempted, owner+"/"+name)
	s.mu.Unlock()
	if s.failNames[name] {
		return errors.New("delete failed")
	}
	return nil
}

func makeRepos(n int) []model.Repo {
	repos := make([]model.Repo, 0, n)
	for i := 0; i < n; i++ {
		repos = append(repos, model.Repo{Owner: "octocat", Name: fmt.Sprintf("repo-%d", i)})
	}
	return repos
}

func TestDeleteAllSuccess(t *testing.T) {
	repos := makeRepos(12)
	deleter := &stubDeleter{}

	var completions int
	report := DeleteAll(context.Background(), deleter, repos, func(model.Outcome) {
		completions++
	})

	if report.Attempted() != 12 {
		t.Errorf("Attempted() = %d, want 12", report.Attempted())
	}
	if report.DeletedCount() != 12 {
		t.Errorf("DeletedCount() = %d, want 12", report.DeletedCount())
	}
	if completions != 12 {
		t.Errorf("onDone called %d times, want 12", completions)
	}
	if len(deleter.attempted) != 12 {
		t.Errorf("deleter saw %d calls, want 12", len(deleter.attempted))
	}
}

// Failures are isolated: every deletion is attempted and the report counts
// exactly the injected failures.
func TestDeleteAllFailureIsolation(t *testing.T) {
	const n, k = 20, 5
	repos := makeRepos(n)
	deleter := &stubDeleter{failNames: map[string]bool{}}
	for i := 0; i < k; i++ {
		deleter.failNames[fmt.Sprintf("repo-%d", i*3)] = true
	}

	report := DeleteAll(context.Background(), deleter, repos, nil)

	if report.Attempted() != n {
		t.Errorf("Attempted() = %d, want %d", report.Attempted(), n)
	}
	if got := len(report.Failed()); got != k {
		t.Errorf("Failed() has %d entries, want %d", got, k)
	}
	if report.DeletedCount() != n-k {
		t.Errorf("DeletedCount() = %d, want %d", report.DeletedCount(), n-k)
	}
	if len(deleter.attempted) != n {
		t.Errorf("deleter saw %d calls, want %d: a failure must not stop dispatch", len(deleter.attempted), n)
	}
}

// A repo without an owner is reported as failed but does not abort the batch.
func TestDeleteAllMissingOwner(t *testing.T) {
	repos := []model.Repo{
		{Owner: "octocat", Name: "a"},
		{Name: "orphan"},
		{Owner: "octocat", Name: "b"},
	}
	deleter := &stubDeleter{}

	report := DeleteAll(context.Background(), deleter, repos, nil)

	if report.Attempted() != 3 {
		t.Errorf("Attempted() = %d, want 3", report.Attempted())
	}
	failed := report.Failed()
	if len(failed) != 1 {
		t.Fatalf("Failed() has %d entries, want 1", len(failed))
	}
	if failed[0].Repo.Name != "orphan" {
		t.Errorf("failed repo = %s, want orphan", failed[0].Repo.Name)
	}
	// The ownerless repo must not reach the delete capability.
	if len(deleter.attempted) != 2 {
		t.Errorf("deleter saw %d calls, want 2", len(deleter.attempted))
	}
}

func TestDeleteAllEmptyBatch(t *testing.T) {
	report := DeleteAll(context.Background(), &stubDeleter{}, nil, nil)
	if report.Attempted() != 0 {
		t.Errorf("Attempted() = %d, want 0", report.Attempted())
	}
}

// More repos than the outcome buffer: every task must still complete.
func TestDeleteAllLargeBatch(t *testing.T) {
	const n = deleterBuffer * 3
	repos := makeRepos(n)
	deleter := &stubDeleter{}

	report := DeleteAll(context.Background(), deleter, repos, nil)
	if report.Attempted() != n {
		t.Errorf("Attempted() = %d, want %d", report.Attempted(), n)
	}
}
