package sweep

import (
	"fmt"
	"testing"

	"github.com/spiffcs/sweep/internal/model"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(n int) *int    { return &n }

func makeRepo(owner, name, visibility string, fork bool, stars int) model.Repo {
	return model.Repo{
		Owner:      owner,
		Name:       name,
		Visibility: visibility,
		Fork:       boolPtr(fork),
		Stars:      intPtr(stars),
	}
}

func TestCriteriaMatches(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		repo     model.Repo
		want     bool
	}{
		{
			name:     "matches all configured predicates",
			criteria: Criteria{Visibility: []string{"public"}, ForkOnly: true, MaxStars: 0},
			repo:     makeRepo("octocat", "fork1", "public", true, 0),
			want:     true,
		},
		{
			name:     "non-fork excluded when fork-only",
			criteria: Criteria{Visibility: []string{"public"}, ForkOnly: true, MaxStars: 0},
			repo:     makeRepo("octocat", "original", "public", false, 0),
			want:     false,
		},
		{
			name:     "fork excluded when fork-only is false",
			criteria: Criteria{Visibility: []string{"public"}, ForkOnly: false, MaxStars: 0},
			repo:     makeRepo("octocat", "fork1", "public", true, 0),
			want:     false,
		},
		{
			name:     "stars above threshold excluded",
			criteria: Criteria{Visibility: []string{"public"}, ForkOnly: true, MaxStars: 5},
			repo:     makeRepo("octocat", "popular", "public", true, 6),
			want:     false,
		},
		{
			name:     "stars at threshold included",
			criteria: Criteria{Visibility: []string{"public"}, ForkOnly: true, MaxStars: 5},
			repo:     makeRepo("octocat", "fork1", "public", true, 5),
			want:     true,
		},
		{
			name:     "visibility not in allowlist excluded",
			criteria: Criteria{Visibility: []string{"public"}, ForkOnly: true, MaxStars: 0},
			repo:     makeRepo("octocat", "secret", "private", true, 0),
			want:     false,
		},
		{
			name:     "multiple visibilities",
			criteria: Criteria{Visibility: []string{"public", "internal"}, ForkOnly: true, MaxStars: 0},
			repo:     makeRepo("octocat", "internal1", "internal", true, 0),
			want:     true,
		},
		{
			name:     "owner not in allowlist excluded",
			criteria: Criteria{Owners: []string{"octocat"}, Visibility: []string{"public"}, ForkOnly: true},
			repo:     makeRepo("someone-else", "fork1", "public", true, 0),
			want:     false,
		},
		{
			name:     "empty owner allowlist matches any owner",
			criteria: Criteria{Visibility: []string{"public"}, ForkOnly: true},
			repo:     makeRepo("someone-else", "fork1", "public", true, 0),
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.criteria.Matches(tt.repo); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCriteriaFailOpen(t *testing.T) {
	criteria := Criteria{
		Owners:     []string{"octocat"},
		Visibility: []string{"public"},
		ForkOnly:   true,
		MaxStars:   0,
	}

	tests := []struct {
		name string
		repo model.Repo
	}{
		{
			name: "unknown fork flag",
			repo: model.Repo{Owner: "octocat", Name: "r", Visibility: "public", Stars: intPtr(0)},
		},
		{
			name: "unknown star count",
			repo: model.Repo{Owner: "octocat", Name: "r", Visibility: "public", Fork: boolPtr(true)},
		},
		{
			name: "unknown visibility",
			repo: model.Repo{Owner: "octocat", Name: "r", Fork: boolPtr(true), Stars: intPtr(0)},
		},
		{
			name: "unknown owner",
			repo: model.Repo{Name: "r", Visibility: "public", Fork: boolPtr(true), Stars: intPtr(0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !criteria.Matches(tt.repo) {
				t.Error("repo with unknown attribute was excluded; unknown values must match")
			}
		})
	}
}

// Relaxing a criterion to absent must never shrink the matching set.
func TestFilterRelaxingNeverShrinks(t *testing.T) {
	repos := []model.Repo{
		makeRepo("octocat", "a", "public", true, 0),
		makeRepo("octocat", "b", "private", true, 0),
		makeRepo("other", "c", "public", true, 3),
		makeRepo("octocat", "d", "public", false, 0),
	}

	strict := Criteria{Owners: []string{"octocat"}, Visibility: []string{"public"}, ForkOnly: true, MaxStars: 0}
	relaxedOwner := strict
	relaxedOwner.Owners = nil
	relaxedStars := strict
	relaxedStars.MaxStars = 10

	strictSet := Filter(repos, strict)
	for name, relaxed := range map[string]Criteria{
		"owners": relaxedOwner,
		"stars":  relaxedStars,
	} {
		relaxedSet := Filter(repos, relaxed)
		if len(relaxedSet) < len(strictSet) {
			t.Errorf("relaxing %s shrank the match set: %d < %d", name, len(relaxedSet), len(strictSet))
		}
	}
}

func TestFilterIdempotent(t *testing.T) {
	repos := []model.Repo{
		makeRepo("octocat", "a", "public", true, 0),
		makeRepo("octocat", "b", "private", true, 0),
		makeRepo("octocat", "c", "public", false, 2),
	}
	criteria := Criteria{Visibility: []string{"public"}, ForkOnly: true, MaxStars: 0}

	once := Filter(repos, criteria)
	twice := Filter(once, criteria)

	if len(once) != len(twice) {
		t.Fatalf("filtering twice changed the set: %d != %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].FullName() != twice[i].FullName() {
			t.Errorf("entry %d changed: %s != %s", i, once[i].FullName(), twice[i].FullName())
		}
	}
}

// 150 repositories across the criteria from the acceptance scenario: only
// public zero-star forks survive.
func TestFilterScenario(t *testing.T) {
	var repos []model.Repo
	for i := 0; i < 150; i++ {
		r := makeRepo("octocat", fmt.Sprintf("repo-%d", i), "public", false, 0)
		switch {
		case i < 12: // the matching forks
			r.Fork = boolPtr(true)
		case i < 40: // forks with stars
			r.Fork = boolPtr(true)
			r.Stars = intPtr(1 + i)
		case i < 60: // private forks
			r.Fork = boolPtr(true)
			r.Visibility = "private"
		}
		repos = append(repos, r)
	}

	matched := Filter(repos, Criteria{Visibility: []string{"public"}, ForkOnly: true, MaxStars: 0})
	if len(matched) != 12 {
		t.Errorf("Filter() matched %d repos, want 12", len(matched))
	}
}
