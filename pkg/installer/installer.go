package installer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/usires/basix/pkg/catalog"
	"github.com/usires/basix/pkg/menu"
	"github.com/usires/basix/pkg/state"
	"github.com/usires/basix/pkg/system"
)

// Options configures the installers.
type Options struct {
	FlathubURL  string
	ConfigsRepo string
	FontsDir    string
	HomeDir     string
}

// Result counts the commands of one executed plan.
type Result struct {
	Ran    int
	Failed int
}

// Installer runs plans through an Executor.
type Installer struct {
	executor  system.Executor
	out       io.Writer
	opts      Options
	logger    *log.Logger
	mkdirTemp func(pattern string) (string, error)
}

// New creates an installer. A nil logger discards log output.
func New(executor system.Executor, out io.Writer, opts Options, logger *log.Logger) *Installer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Installer{
		executor: executor,
		out:      out,
		opts:     opts,
		logger:   logger,
		mkdirTemp: func(pattern string) (string, error) {
			return os.MkdirTemp("", pattern)
		},
	}
}

// Execute runs every command of p in order. A failing command is reported by
// the executor and does not stop the remaining ones.
func (i *Installer) Execute(p Plan) Result {
	var res Result
	if p.Title != "" {
		fmt.Fprintln(i.out, p.Title)
	}
	for _, argv := range p.Commands {
		status := i.executor.Run(argv)
		res.Ran++
		if !status.Success() {
			res.Failed++
		}
	}
	i.logger.Debug("plan finished", "title", p.Title, "ran", res.Ran, "failed", res.Failed)
	return res
}

// InstallNative installs the selected native packages with the chosen
// package manager.
func (i *Installer) InstallNative(st *state.ProgramState) error {
	manager, _ := st.PackageManager()
	plan, err := NativePlan(manager, st.SelectedApt, i.opts.FlathubURL)
	if err != nil {
		return i.nothingSelected(err)
	}
	i.report(i.Execute(plan))
	return nil
}

// InstallFlatpak installs the selected Flatpak applications.
func (i *Installer) InstallFlatpak(st *state.ProgramState) error {
	plan, err := FlatpakPlan(st.SelectedFlatpak)
	if err != nil {
		return i.nothingSelected(err)
	}
	i.report(i.Execute(plan))
	return nil
}

// InstallOnePassword installs 1Password from the AgileBits repository.
func (i *Installer) InstallOnePassword(_ *state.ProgramState) error {
	i.report(i.Execute(OnePasswordPlan()))
	return nil
}

// InstallFonts downloads and installs the extra fonts.
func (i *Installer) InstallFonts(_ *state.ProgramState) error {
	dir, err := i.mkdirTemp("basix-fonts-")
	if err != nil {
		return fmt.Errorf("failed to create download directory: %w", err)
	}
	defer os.RemoveAll(dir)

	i.report(i.Execute(FontsPlan(dir, i.opts.FontsDir)))
	return nil
}

// CopyConfigs clones the configured dotfiles repository and copies its files
// into the home directory.
func (i *Installer) CopyConfigs(_ *state.ProgramState) error {
	if i.opts.HomeDir == "" {
		return errors.New("home directory unknown")
	}

	dir, err := i.mkdirTemp("basix-configs-")
	if err != nil {
		return fmt.Errorf("failed to create clone directory: %w", err)
	}
	defer os.RemoveAll(dir)

	// git refuses to clone into a non-empty directory, so clone into a child.
	repoDir := filepath.Join(dir, "repo")
	if res := i.Execute(ClonePlan(i.opts.ConfigsRepo, repoDir)); res.Failed > 0 {
		fmt.Fprintln(i.out, "Nothing copied.")
		return nil
	}
	if _, err := os.Stat(repoDir); err != nil {
		// Dry runs never create the clone.
		fmt.Fprintln(i.out, "Nothing copied.")
		return nil
	}

	res, err := CopyTree(repoDir, i.opts.HomeDir)
	if err != nil {
		return fmt.Errorf("failed to copy configs: %w", err)
	}
	fmt.Fprintf(i.out, "Copied %d file(s) to %s (%d backed up with %s).\n",
		res.Copied, i.opts.HomeDir, res.BackedUp, BackupSuffix)
	i.logger.Info("configs copied", "repo", i.opts.ConfigsRepo, "copied", res.Copied, "backed_up", res.BackedUp)
	return nil
}

// Actions returns the installer bound to each action row.
func (i *Installer) Actions() map[int]menu.Action {
	return map[int]menu.Action{
		catalog.RowInstallApt:     i.InstallNative,
		catalog.RowInstallFlatpak: i.InstallFlatpak,
		catalog.RowOnePassword:    i.InstallOnePassword,
		catalog.RowFonts:          i.InstallFonts,
		catalog.RowCopyConfigs:    i.CopyConfigs,
	}
}

// Bind attaches every installer to its row of m.
func (i *Installer) Bind(m *menu.Menu) {
	for row, action := range i.Actions() {
		m.Bind(row, action)
	}
}

// PlanFor returns the plan an action row would run for st, without running
// it. Temporary directories are shown as placeholders.
func (i *Installer) PlanFor(row int, st *state.ProgramState) (Plan, error) {
	switch row {
	case catalog.RowInstallApt:
		manager, _ := st.PackageManager()
		return NativePlan(manager, st.SelectedApt, i.opts.FlathubURL)
	case catalog.RowInstallFlatpak:
		return FlatpakPlan(st.SelectedFlatpak)
	case catalog.RowOnePassword:
		return OnePasswordPlan(), nil
	case catalog.RowFonts:
		return FontsPlan("$TMPDIR", i.opts.FontsDir), nil
	case catalog.RowCopyConfigs:
		return ClonePlan(i.opts.ConfigsRepo, "$TMPDIR/repo"), nil
	default:
		return Plan{}, fmt.Errorf("%w: %d", ErrUnknownRow, row)
	}
}

func (i *Installer) nothingSelected(err error) error {
	if errors.Is(err, ErrNothingSelected) {
		fmt.Fprintln(i.out, "No packages selected.")
		return nil
	}
	return err
}

func (i *Installer) report(res Result) {
	if res.Failed > 0 {
		fmt.Fprintf(i.out, "%d of %d command(s) failed.\n", res.Failed, res.Ran)
		return
	}
	fmt.Fprintln(i.out, "Done.")
}
