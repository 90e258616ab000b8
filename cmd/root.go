package cmd

import (
	"github.com/spf13/cobra"
)

// New creates the root command with all subcommands registered.
func New() *cobra.Command {
	opts := NewOptions()

	rootCmd := &cobra.Command{
		Use:   "sweep",
		Short: "Bulk-delete unused GitHub repositories",
		Long: `A CLI tool that lists the repositories you own, filters them by
fork status, visibility, owner, and star count, and deletes the ones you
confirm. Deletion is irreversible: every run requires an interactive
selection plus a typed confirmation phrase.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSweep(cmd, opts)
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	addSweepFlags(rootCmd, opts)

	// Register subcommands
	rootCmd.AddCommand(NewCmdConfig())
	rootCmd.AddCommand(NewCmdVersion())

	return rootCmd
}

// addSweepFlags adds the sweep flags to a command.
func addSweepFlags(cmd *cobra.Command, opts *Options) {
	cmd.Flags().StringVarP(&opts.Token, "token", "t", "", "GitHub personal access token (needs delete_repo scope)")
	cmd.Flags().BoolVarP(&opts.ForkOnly, "fork", "f", true, "Only match forks (--fork=false matches non-forks)")
	cmd.Flags().StringSliceVarP(&opts.Visibility, "visibility", "V", []string{"public"}, "Visibility values to match (public, internal, private)")
	cmd.Flags().StringSliceVarP(&opts.Owners, "owner", "o", nil, "Owner logins to match (default: any owner you control)")
	cmd.Flags().IntVarP(&opts.MaxStars, "stars", "s", 0, "Match repositories with at most this many stars")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "List matching repositories without deleting")
	cmd.Flags().CountVarP(&opts.Verbosity, "verbose", "v", "Increase verbosity (-v info, -vv debug)")
}
