package installer

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usires/basix/pkg/catalog"
	"github.com/usires/basix/pkg/menu"
	"github.com/usires/basix/pkg/state"
	"github.com/usires/basix/pkg/system"
)

// MockExecutor is a mock command executor for testing.
type MockExecutor struct {
	RunFunc func(argv []string) system.ExitStatus
	Calls   [][]string
}

func (m *MockExecutor) Run(argv []string) system.ExitStatus {
	m.Calls = append(m.Calls, argv)
	if m.RunFunc != nil {
		return m.RunFunc(argv)
	}
	return system.ExitStatus{}
}

func newTestInstaller(t *testing.T, exec system.Executor) (*Installer, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	inst := New(exec, &out, Options{
		FlathubURL:  flathub,
		ConfigsRepo: "https://example.com/dots.git",
		FontsDir:    filepath.Join(t.TempDir(), "fonts"),
		HomeDir:     t.TempDir(),
	}, nil)
	return inst, &out
}

func TestExecute_ContinuesAfterFailure(t *testing.T) {
	exec := &MockExecutor{
		RunFunc: func(argv []string) system.ExitStatus {
			if argv[0] == "false" {
				return system.ExitStatus{Code: 1}
			}
			return system.ExitStatus{}
		},
	}
	inst, out := newTestInstaller(t, exec)

	res := inst.Execute(Plan{Title: "Testing", Commands: [][]string{{"false"}, {"true"}}})

	assert.Equal(t, Result{Ran: 2, Failed: 1}, res)
	assert.Len(t, exec.Calls, 2)
	assert.Contains(t, out.String(), "Testing")
}

func TestInstallNative(t *testing.T) {
	exec := &MockExecutor{}
	inst, out := newTestInstaller(t, exec)
	st := state.New()
	st.SelectedApt.Add("git")
	st.SelectedApt.Add("curl")
	st.SetPackageManager("dnf")

	require.NoError(t, inst.InstallNative(st))

	assert.Equal(t, [][]string{{"sudo", "dnf", "install", "-y", "curl", "git"}}, exec.Calls)
	assert.Contains(t, out.String(), "Done.")
}

func TestInstallNative_NothingSelected(t *testing.T) {
	exec := &MockExecutor{}
	inst, out := newTestInstaller(t, exec)

	require.NoError(t, inst.InstallNative(state.New()))

	assert.Empty(t, exec.Calls)
	assert.Contains(t, out.String(), "No packages selected.")
}

func TestInstallNative_UnsupportedManager(t *testing.T) {
	inst, _ := newTestInstaller(t, &MockExecutor{})
	st := state.New()
	st.SelectedApt.Add("git")
	st.SetPackageManager("brew")

	err := inst.InstallNative(st)

	assert.ErrorIs(t, err, ErrUnknownManager)
}

func TestInstallFlatpak_ReportsFailures(t *testing.T) {
	exec := &MockExecutor{
		RunFunc: func([]string) system.ExitStatus { return system.ExitStatus{Code: 1} },
	}
	inst, out := newTestInstaller(t, exec)
	st := state.New()
	st.SelectedFlatpak.Add("org.gimp.GIMP")

	require.NoError(t, inst.InstallFlatpak(st))

	assert.Contains(t, out.String(), "1 of 1 command(s) failed.")
}

func TestInstallFonts_CleansUpDownloadDir(t *testing.T) {
	exec := &MockExecutor{}
	inst, _ := newTestInstaller(t, exec)
	var dir string
	inst.mkdirTemp = func(pattern string) (string, error) {
		var err error
		dir, err = os.MkdirTemp(t.TempDir(), pattern)
		return dir, err
	}

	require.NoError(t, inst.InstallFonts(state.New()))

	assert.Equal(t, []string{"fc-cache", "-r", "-v"}, exec.Calls[len(exec.Calls)-1])
	assert.NoDirExists(t, dir)
}

func TestInstallFonts_TempDirError(t *testing.T) {
	inst, _ := newTestInstaller(t, &MockExecutor{})
	inst.mkdirTemp = func(string) (string, error) { return "", errors.New("disk full") }

	err := inst.InstallFonts(state.New())

	assert.ErrorContains(t, err, "disk full")
}

func TestCopyConfigs(t *testing.T) {
	exec := &MockExecutor{
		RunFunc: func(argv []string) system.ExitStatus {
			// Simulate git clone by populating the destination directory.
			dest := argv[len(argv)-1]
			if err := os.MkdirAll(dest, 0755); err != nil {
				return system.ExitStatus{Code: -1, Err: err}
			}
			if err := os.WriteFile(filepath.Join(dest, ".vimrc"), []byte("set nu\n"), 0644); err != nil {
				return system.ExitStatus{Code: -1, Err: err}
			}
			return system.ExitStatus{}
		},
	}
	inst, out := newTestInstaller(t, exec)

	require.NoError(t, inst.CopyConfigs(state.New()))

	require.Len(t, exec.Calls, 1)
	assert.Equal(t, []string{"git", "clone", "--depth", "1", "https://example.com/dots.git"}, exec.Calls[0][:5])
	assert.FileExists(t, filepath.Join(inst.opts.HomeDir, ".vimrc"))
	assert.Contains(t, out.String(), "Copied 1 file(s)")
}

func TestCopyConfigs_CloneFails(t *testing.T) {
	exec := &MockExecutor{
		RunFunc: func([]string) system.ExitStatus { return system.ExitStatus{Code: 128} },
	}
	inst, out := newTestInstaller(t, exec)

	require.NoError(t, inst.CopyConfigs(state.New()))

	assert.Contains(t, out.String(), "Nothing copied.")
}

func TestCopyConfigs_DryRun(t *testing.T) {
	inst, out := newTestInstaller(t, &system.DryRunExecutor{Out: &bytes.Buffer{}})

	require.NoError(t, inst.CopyConfigs(state.New()))

	assert.Contains(t, out.String(), "Nothing copied.")
}

func TestBind(t *testing.T) {
	inst, _ := newTestInstaller(t, &MockExecutor{})
	m := menu.New()

	inst.Bind(m)

	for _, row := range []int{catalog.RowInstallApt, catalog.RowInstallFlatpak, catalog.RowOnePassword, catalog.RowFonts, catalog.RowCopyConfigs} {
		assert.Equal(t, menu.TargetAction, m.Resolve(row), "row %d", row)
	}
	assert.Equal(t, menu.TargetSelectApt, m.Resolve(catalog.RowSelectApt))
}

func TestPlanFor(t *testing.T) {
	inst, _ := newTestInstaller(t, &MockExecutor{})
	st := state.New()
	st.SelectedFlatpak.Add("org.gimp.GIMP")

	plan, err := inst.PlanFor(catalog.RowInstallFlatpak, st)
	require.NoError(t, err)
	assert.Equal(t, 1, plan.Len())

	_, err = inst.PlanFor(catalog.RowInstallApt, st)
	assert.ErrorIs(t, err, ErrNothingSelected)

	for _, row := range []int{catalog.RowOnePassword, catalog.RowFonts, catalog.RowCopyConfigs} {
		plan, err := inst.PlanFor(row, st)
		require.NoError(t, err)
		assert.NotZero(t, plan.Len())
	}

	_, err = inst.PlanFor(catalog.RowSelectApt, st)
	assert.ErrorIs(t, err, ErrUnknownRow)
}
