package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/usires/basix/pkg/catalog"
	"github.com/usires/basix/pkg/doctor"
	"github.com/usires/basix/pkg/system"
	"github.com/usires/basix/pkg/tui"
)

// newDoctorCmd creates the doctor subcommand
func newDoctorCmd(flags *globalFlags) *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check for package managers and installer tools",
		Long: `Report the running kernel, which package managers are installed and
whether the tools used by the install actions are on $PATH.

With --fix, missing tools are installed with the configured package manager,
or the first one detected.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd, flags, fix)
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "Install missing tools")

	return cmd
}

func runDoctor(cmd *cobra.Command, flags *globalFlags, fix bool) error {
	s, err := flags.newSession(cmd)
	if err != nil {
		return err
	}

	managers := s.cfg.Catalog(catalog.KindManagers)
	checker := doctor.NewChecker(managers)
	groups := checker.CheckAll()
	printReport(s.out, groups)

	if !doctor.HasIssues(groups) {
		fmt.Fprintln(s.out, tui.SuccessStyle.Render("Everything basix needs is installed."))
		return nil
	}

	missing := doctor.Missing(groups)
	if !fix || len(missing) == 0 {
		fmt.Fprintln(s.out, tui.WarningStyle.Render("Some checks need attention."))
		if len(missing) > 0 {
			fmt.Fprintln(s.out, "Run 'basix doctor --fix' to install the missing tools.")
		}
		return nil
	}

	manager := s.cfg.DefaultPackageManager
	if manager == "" {
		if detected := system.NewDetector().Detect(managers); len(detected) > 0 {
			manager = detected[0]
		}
	}
	s.logger.Debug("fixing", "manager", manager, "missing", len(missing))

	fixer := doctor.NewFixer(s.executor, manager)
	if err := fixer.RunFix(missing); err != nil {
		return err
	}
	fmt.Fprintln(s.out, tui.SuccessStyle.Render("Missing tools installed."))
	return nil
}

// printReport prints every group with coloured statuses.
func printReport(w io.Writer, groups []doctor.CheckGroup) {
	for _, group := range groups {
		fmt.Fprintln(w, tui.InfoStyle.Render(group.Name))
		for _, check := range group.Checks {
			fmt.Fprintf(w, "  %-10s %s  %s\n", check.Name, statusStyle(check.Status).Render(check.Status.String()), check.Message)
		}
		fmt.Fprintln(w)
	}

	summary := doctor.GetSummary(groups)
	fmt.Fprintf(w, "%d checks: %d ok, %d missing, %d warnings, %d errors\n",
		summary.Total, summary.OK, summary.Missing, summary.Warnings, summary.Errors)
}

func statusStyle(status doctor.CheckStatus) lipgloss.Style {
	switch status {
	case doctor.StatusOK:
		return tui.SuccessStyle
	case doctor.StatusMissing, doctor.StatusWarning:
		return tui.WarningStyle
	default:
		return tui.ErrorStyle
	}
}
