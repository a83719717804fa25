package main

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/usires/basix/pkg/catalog"
	"github.com/usires/basix/pkg/selection"
)

// newPlanCmd creates the plan subcommand
func newPlanCmd(flags *globalFlags) *cobra.Command {
	var manager string

	cmd := &cobra.Command{
		Use:   "plan <row> [package...]",
		Short: "Print the commands a menu row would run",
		Long: `Print the commands an action row of the main menu would run, without
running anything.

Rows:
  2  Install original repo packages (packages from the apt catalog)
  4  Install Flatpak packages (apps from the flatpak catalog)
  5  Install 1Password
  6  Install additional fonts
  8  Copy configs from Github repo to HOME

Examples:
  basix plan 2 git curl
  basix plan 2 --manager pacman git
  basix plan 4 org.videolan.VLC`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, flags, manager, args)
		},
	}

	cmd.Flags().StringVar(&manager, "manager", "", "Package manager for row 2 (default from config, then apt)")

	return cmd
}

func runPlan(cmd *cobra.Command, flags *globalFlags, manager string, args []string) error {
	row, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid row %q: must be a number", args[0])
	}

	s, err := flags.newSession(cmd)
	if err != nil {
		return err
	}

	st := s.newState()
	if manager != "" {
		st.SetPackageManager(manager)
	}

	switch row {
	case catalog.RowInstallApt:
		if err := selectNames(st.SelectedApt, s.cfg.Catalog(catalog.KindApt), catalog.KindApt, args[1:]); err != nil {
			return err
		}
	case catalog.RowInstallFlatpak:
		if err := selectNames(st.SelectedFlatpak, s.cfg.Catalog(catalog.KindFlatpak), catalog.KindFlatpak, args[1:]); err != nil {
			return err
		}
	}

	plan, err := s.newInstaller().PlanFor(row, st)
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "# %s\n", plan.Title)
	fmt.Fprint(s.out, plan.String())
	return nil
}

// selectNames adds each name to a selection, rejecting names outside the
// catalog.
func selectNames(set selection.Set, candidates []string, kind catalog.Kind, names []string) error {
	for _, name := range names {
		if !slices.Contains(candidates, name) {
			return fmt.Errorf("%q is not in the %s catalog", name, kind)
		}
		set.Add(name)
	}
	return nil
}
