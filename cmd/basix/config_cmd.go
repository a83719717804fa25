package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/usires/basix/pkg/config"
)

// newConfigCmd creates the config subcommand and its children
func newConfigCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the basix config file",
		Long: `Manage ~/.config/basix/config.yaml.

The config file can replace the package catalogs, pre-select a package
manager and point "Copy configs" at another dotfiles repository.`,
	}

	cmd.AddCommand(
		newConfigInitCmd(flags),
		newConfigPathCmd(flags),
		newConfigShowCmd(flags),
	)

	return cmd
}

func newConfigInitCmd(flags *globalFlags) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := flags.configPathOrDefault()
			if path == "" {
				return fmt.Errorf("could not determine config path")
			}
			if _, err := config.Init(path, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config saved to: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}

func newConfigPathCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := flags.configPathOrDefault()
			if path == "" {
				return fmt.Errorf("could not determine config path")
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func newConfigShowCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective config",
		Long:  `Print the config in effect, with defaults filled in for anything the file leaves out.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := flags.newSession(cmd)
			if err != nil {
				return err
			}
			data, err := s.cfg.Marshal()
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			_, err = s.out.Write(data)
			return err
		},
	}
}
