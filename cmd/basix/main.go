// Package main provides the basix CLI: a menu for picking and installing
// native packages, Flatpaks, fonts and dotfiles on a fresh Linux install.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set via -ldflags during build
var version = "dev"

func main() {
	rootCmd := newRootCmd()

	// Cobra handles error printing
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd creates the root command for basix. Without a subcommand it runs
// the line-oriented menu.
func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "basix",
		Short: "Linux post-install package menu",
		Long: `basix is an interactive menu for setting up a fresh Linux install.

It supports:
  - Selecting native packages and installing them with apt, pacman, dnf,
    yum, zypper or snap
  - Selecting and installing Flatpaks from Flathub
  - Installing 1Password and extra fonts
  - Copying configuration files from a dotfiles repository into $HOME`,
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMenu(cmd, flags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Config file (default ~/.config/basix/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flags.dryRun, "dry-run", false, "Print commands instead of running them")

	rootCmd.AddCommand(
		newMenuCmd(flags),
		newTUICmd(flags),
		newCatalogCmd(flags),
		newDoctorCmd(flags),
		newPlanCmd(flags),
		newConfigCmd(flags),
	)

	return rootCmd
}

// newMenuCmd creates the menu subcommand
func newMenuCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the line-oriented menu (default)",
		Long: `Run the main menu on standard input and output.

Type w or s and press Enter to move, press Enter on its own to open the
highlighted row, and type q to quit. In a selection list, type a row number
to select or unselect it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMenu(cmd, flags)
		},
	}
}

// newTUICmd creates the tui subcommand
func newTUICmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the full-screen menu",
		Long:  `Run the main menu as a full-screen terminal UI with arrow key navigation.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, flags)
		},
	}
}
