package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spiffcs/sweep/config"
	"github.com/spiffcs/sweep/internal/ghclient"
	"github.com/spiffcs/sweep/internal/log"
	"github.com/spiffcs/sweep/internal/model"
	"github.com/spiffcs/sweep/internal/output"
	"github.com/spiffcs/sweep/internal/sweep"
	"github.com/spiffcs/sweep/internal/tui"
)

func runSweep(cmd *cobra.Command, opts *Options) error {
	ctx := cmd.Context()
	started := time.Now()

	log.Initialize(opts.Verbosity, os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyConfig(cmd, opts, cfg)

	for _, v := range opts.Visibility {
		if !model.ValidVisibility(v) {
			return fmt.Errorf("unknown visibility %q (expected one of %s)", v, strings.Join(model.Visibilities(), ", "))
		}
	}

	if !opts.DryRun && !tui.IsInteractive() {
		return fmt.Errorf("deleting repositories requires an interactive terminal; use --dry-run to preview matches")
	}

	// Authenticate
	client, err := ghclient.NewClient(ctx, opts.Token)
	if err != nil {
		return err
	}
	user, err := client.AuthenticatedUser(ctx)
	if err != nil {
		return err
	}
	log.Info("authenticated", "user", user)

	// Fetch
	repos, err := sweep.Collect(ctx, client)
	if err != nil {
		return err
	}
	log.Info("fetched repositories", "count", len(repos))

	// Filter
	criteria := sweep.Criteria{
		Owners:     opts.Owners,
		Visibility: opts.Visibility,
		ForkOnly:   opts.ForkOnly,
		MaxStars:   opts.MaxStars,
	}
	matched := sweep.Filter(repos, criteria)
	if len(matched) == 0 {
		fmt.Println("No matched repositories.")
		return nil
	}

	candidates := sweep.NewCandidates(matched)
	log.Info("matched repositories", "count", candidates.Len())

	if opts.DryRun {
		output.Candidates(os.Stdout, candidates.Names)
		return nil
	}

	// Confirm
	gate := tui.Interactive{}
	selected, err := sweep.Confirm(candidates, gate, gate)
	if err != nil {
		return err
	}
	targets := candidates.Pick(selected)

	// Delete
	total := len(targets)
	completed := 0
	report := sweep.DeleteAll(ctx, client, targets, func(o model.Outcome) {
		output.Outcome(os.Stdout, o)
		completed++
		if log.IsInfo() {
			log.Progress("completed %d/%d", completed, total)
		}
	})
	log.ProgressDone()
	output.Summary(os.Stdout, report, time.Since(started))
	return nil
}

// applyConfig fills options from the config file for flags the user did not
// set explicitly. Flags always win.
func applyConfig(cmd *cobra.Command, opts *Options, cfg *config.Config) {
	if opts.Token == "" {
		opts.Token = cfg.Token
	}
	if !cmd.Flags().Changed("fork") && cfg.ForkOnly != nil {
		opts.ForkOnly = *cfg.ForkOnly
	}
	if !cmd.Flags().Changed("visibility") && len(cfg.Visibility) > 0 {
		opts.Visibility = cfg.Visibility
	}
	if !cmd.Flags().Changed("owner") && len(cfg.Owners) > 0 {
		opts.Owners = cfg.Owners
	}
	if !cmd.Flags().Changed("stars") && cfg.MaxStars != nil {
		opts.MaxStars = *cfg.MaxStars
	}
}
