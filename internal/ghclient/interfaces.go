package ghclient

import "github.com/spiffcs/sweep/internal/sweep"

// Ensure Client satisfies the pipeline's capability interfaces.
var (
	_ sweep.RepoLister  = (*Client)(nil)
	_ sweep.RepoDeleter = (*Client)(nil)
)
