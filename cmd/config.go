package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spiffcs/sweep/config"
	"gopkg.in/yaml.v3"
)

// NewCmdConfig creates the config command with subcommands.
func NewCmdConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or manage configuration",
		Long: `Show or manage configuration.

When run without arguments, shows the current configuration.

Subcommands:
  path       Show the config file location
  set-token  Store the GitHub token in the config file`,
		RunE: runConfigShow,
	}

	cmd.AddCommand(NewCmdConfigPath())
	cmd.AddCommand(NewCmdConfigSetToken())

	return cmd
}

// NewCmdConfigPath creates the config path subcommand.
func NewCmdConfigPath() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show the config file location",
		RunE: func(_ *cobra.Command, _ []string) error {
			path := config.ConfigPath()
			exists := "not found"
			if _, err := os.Stat(path); err == nil {
				exists = "exists"
			}
			fmt.Printf("%s (%s)\n", path, exists)
			return nil
		},
	}
}

// NewCmdConfigSetToken creates the config set-token subcommand.
func NewCmdConfigSetToken() *cobra.Command {
	return &cobra.Command{
		Use:   "set-token <TOKEN>",
		Short: "Store the GitHub token in the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			cfg.Token = args[0]
			if err := cfg.Save(); err != nil {
				return err
			}
			fmt.Printf("Token saved to %s\n", config.ConfigPath())
			return nil
		},
	}
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Never print the token itself.
	display := *cfg
	if display.Token != "" {
		display.Token = "(set)"
	}

	data, err := yaml.Marshal(&display)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	fmt.Print(string(data))
	return nil
}
