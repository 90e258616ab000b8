package sweep

import (
	"sort"

	"github.com/spiffcs/sweep/internal/model"
)

// Candidates is the filtered set of repositories keyed by qualified name.
// Built once, read-only afterwards; the Names slice gives the stable order
// the selection prompt presents, and selected indices resolve back through
// it. Duplicate qualified names collapse to a single entry so an index
// always maps to exactly one repository.
type Candidates struct {
	Names []string
	byKey map[string]model.Repo
}

// NewCandidates builds a candidate set from the filtered repositories.
func NewCandidates(repos []model.Repo) *Candidates {
	byKey := make(map[string]model.Repo, len(repos))
	for _, r := range repos {
		byKey[r.FullName()] = r
	}

	names := make([]string, 0, len(byKey))
	for name := range byKey {
		names = append(names, name)
	}
	sort.Strings(names)

	return &Candidates{
		Names: names,
		byKey: byKey,
	}
}

// Len returns the number of distinct candidates.
func (c *Candidates) Len() int {
	return len(c.Names)
}

// Pick resolves selection indices back to repositories. Indices outside the
// candidate range are ignored.
func (c *Candidates) Pick(indices []int) []model.Repo {
	repos := make([]model.Repo, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(c.Names) {
			continue
		}
		repos = append(repos, c.byKey[c.Names[i]])
	}
	return repos
}
