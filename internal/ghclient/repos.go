package ghclient

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v57/github"
	"github.com/spiffcs/sweep/internal/log"
	"github.com/spiffcs/sweep/internal/model"
)

// perPage keeps the round-trip count bounded; GitHub caps page size at 100.
const perPage = 100

// ListPage fetches one page of repositories owned by the authenticated user.
// Pages are 1-based. lastPage is 0 when the response carries no further
// pages, which callers treat the same as 1.
func (c *Client) ListPage(ctx context.Context, page int) ([]model.Repo, int, error) {
	opts := &gh.RepositoryListOptions{
		Affiliation: "owner",
		ListOptions: gh.ListOptions{
			PerPage: perPage,
			Page:    page,
		},
	}

	repos, resp, err := c.client.Repositories.List(ctx, "", opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list repositories page %d: %w", page, err)
	}

	log.Debug("fetched repository page", "page", page, "count", len(repos), "last_page", resp.LastPage)

	converted := make([]model.Repo, 0, len(repos))
	for _, r := range repos {
		converted = append(converted, convertRepo(r))
	}
	return converted, resp.LastPage, nil
}

// DeleteRepo deletes a single repository. Requires a token with the
// delete_repo scope.
func (c *Client) DeleteRepo(ctx context.Context, owner, name string) error {
	if _, err := c.client.Repositories.Delete(ctx, owner, name); err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", owner, name, err)
	}
	return nil
}

// convertRepo maps an API repository onto the pipeline's record type.
// Missing fields stay nil so the filter can fail open on them.
func convertRepo(r *gh.Repository) model.Repo {
	repo := model.Repo{
		Owner:      r.GetOwner().GetLogin(),
		Name:       r.GetName(),
		Visibility: r.GetVisibility(),
	}
	if r.Fork != nil {
		fork := *r.Fork
		repo.Fork = &fork
	}
	if r.StargazersCount != nil {
		stars := *r.StargazersCount
		repo.Stars = &stars
	}
	return repo
}
