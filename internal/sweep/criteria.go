package sweep

import "github.com/spiffcs/sweep/internal/model"

// Criteria is the conjunction of predicates a repository must satisfy to be
// a deletion candidate. Every configured predicate must match. A repository
// whose relevant attribute is unknown is treated as matching, so ambiguous
// records surface for review instead of being silently dropped.
type Criteria struct {
	Owners     []string // allowed owner logins; empty means any owner
	Visibility []string // allowed visibility values
	ForkOnly   bool     // repository's fork flag must equal this value
	MaxStars   int      // inclusive upper bound on stargazer count
}

// Matches reports whether r satisfies every configured predicate.
func (c Criteria) Matches(r model.Repo) bool {
	if len(c.Owners) > 0 && r.Owner != "" && !contains(c.Owners, r.Owner) {
		return false
	}
	if len(c.Visibility) > 0 && r.Visibility != "" && !contains(c.Visibility, r.Visibility) {
		return false
	}
	if r.Fork != nil && *r.Fork != c.ForkOnly {
		return false
	}
	if r.Stars != nil && *r.Stars > c.MaxStars {
		return false
	}
	return true
}

// Filter returns the repositories matching c. Pure: no side effects, input
// order preserved but callers must not rely on any particular order.
func Filter(repos []model.Repo, c Criteria) []model.Repo {
	matched := make([]model.Repo, 0, len(repos))
	for _, r := range repos {
		if c.Matches(r) {
			matched = append(matched, r)
		}
	}
	return matched
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
