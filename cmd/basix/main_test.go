package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usires/basix/pkg/config"
	"github.com/usires/basix/pkg/installer"
)

const testConfig = `version: "1.0"
apt_packages: [zip, curl, git, flatpak]
flatpak_packages: [org.videolan.VLC, com.spotify.Client]
package_managers: [apt, pacman]
log_level: error
`

// isolate points the default config location at a temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0600))
	return path
}

// execute runs the root command with args and input, returning stdout.
func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)

	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestNewRootCmd(t *testing.T) {
	rootCmd := newRootCmd()

	assert.Equal(t, "basix", rootCmd.Use)
	assert.Equal(t, "Linux post-install package menu", rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestRootCmdHelp(t *testing.T) {
	output, err := execute(t, "", "--help")
	require.NoError(t, err)

	assert.Contains(t, output, "basix")
	assert.Contains(t, output, "menu")
	assert.Contains(t, output, "tui")
	assert.Contains(t, output, "catalog")
	assert.Contains(t, output, "doctor")
	assert.Contains(t, output, "plan")
	assert.Contains(t, output, "config")
	assert.Contains(t, output, "--dry-run")
}

func TestRootCmdVersion(t *testing.T) {
	output, err := execute(t, "", "--version")
	require.NoError(t, err)

	assert.Contains(t, output, "basix version")
}

func TestMenuCmd_Quit(t *testing.T) {
	isolate(t)

	for _, args := range [][]string{{}, {"menu"}} {
		output, err := execute(t, "q\n", args...)
		require.NoError(t, err)

		assert.Contains(t, output, "Main Menu")
		assert.Contains(t, output, "1. Select original repo packages")
	}
}

func TestMenuCmd_EndOfInput(t *testing.T) {
	isolate(t)

	_, err := execute(t, "", "menu")

	assert.NoError(t, err)
}

func TestMenuCmd_SelectAndInstallDryRun(t *testing.T) {
	path := writeConfig(t)
	// Sorted apt list: curl, flatpak, git, zip.
	input := "\n1\n3\nq\ns\n\n\nq\n"

	output, err := execute(t, input, "--config", path, "--dry-run")
	require.NoError(t, err)

	assert.Contains(t, output, "1 [+] curl")
	assert.Contains(t, output, "3 [+] git")
	assert.Contains(t, output, "+ sudo apt-get update\n")
	assert.Contains(t, output, "+ sudo apt-get install -y curl git\n")
	assert.Contains(t, output, "Done.")
	assert.Contains(t, output, "Press Enter to return to the main menu...")
}

func TestMenuCmd_InstallNothingSelected(t *testing.T) {
	path := writeConfig(t)

	output, err := execute(t, "s\n\n\nq\n", "--config", path, "--dry-run")
	require.NoError(t, err)

	assert.Contains(t, output, "No packages selected.")
	assert.NotContains(t, output, "+ sudo")
}

func TestCatalogCmd(t *testing.T) {
	path := writeConfig(t)

	output, err := execute(t, "", "catalog", "apt", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "curl\nflatpak\ngit\nzip\n", output)

	output, err = execute(t, "", "catalog", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, output, "apt (4):")
	assert.Contains(t, output, "flatpak (2):")
	assert.Contains(t, output, "managers (2):")
	assert.Contains(t, output, "  - org.videolan.VLC")
}

func TestCatalogCmd_Defaults(t *testing.T) {
	isolate(t)

	output, err := execute(t, "", "catalog", "managers")
	require.NoError(t, err)

	assert.Equal(t, "apt\ndnf\npacman\nsnap\nyum\nzypper\n", output)
}

func TestCatalogCmd_InvalidKind(t *testing.T) {
	isolate(t)

	_, err := execute(t, "", "catalog", "brew")

	assert.Error(t, err)
}

func TestPlanCmd(t *testing.T) {
	path := writeConfig(t)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "native",
			args: []string{"plan", "2", "git", "curl"},
			want: []string{"sudo apt-get update\n", "sudo apt-get install -y curl git\n"},
		},
		{
			name: "native with flatpak",
			args: []string{"plan", "2", "flatpak"},
			want: []string{"flatpak remote-add --if-not-exists flathub " + config.DefaultFlathubURL},
		},
		{
			name: "other manager",
			args: []string{"plan", "2", "--manager", "pacman", "git"},
			want: []string{"sudo pacman -Sy --noconfirm git\n"},
		},
		{
			name: "flatpak",
			args: []string{"plan", "4", "org.videolan.VLC"},
			want: []string{"flatpak install -y flathub org.videolan.VLC\n"},
		},
		{
			name: "1password",
			args: []string{"plan", "5"},
			want: []string{"sudo apt-get install -y 1password\n"},
		},
		{
			name: "fonts",
			args: []string{"plan", "6"},
			want: []string{"fc-cache -r -v\n"},
		},
		{
			name: "configs",
			args: []string{"plan", "8"},
			want: []string{"git clone --depth 1 " + config.DefaultConfigsRepo},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := execute(t, "", append(tt.args, "--config", path)...)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, output, w)
			}
		})
	}
}

func TestPlanCmd_Errors(t *testing.T) {
	path := writeConfig(t)

	_, err := execute(t, "", "plan", "x", "--config", path)
	assert.ErrorContains(t, err, "invalid row")

	_, err = execute(t, "", "plan", "3", "--config", path)
	assert.ErrorIs(t, err, installer.ErrUnknownRow)

	_, err = execute(t, "", "plan", "2", "--config", path)
	assert.ErrorIs(t, err, installer.ErrNothingSelected)

	_, err = execute(t, "", "plan", "2", "neovim", "--config", path)
	assert.ErrorContains(t, err, "not in the apt catalog")

	_, err = execute(t, "", "plan", "2", "git", "--manager", "brew", "--config", path)
	assert.ErrorIs(t, err, installer.ErrUnknownManager)
}

func TestConfigCmd(t *testing.T) {
	dir := isolate(t)
	want := filepath.Join(dir, config.ConfigDirName, config.ConfigFileName)

	output, err := execute(t, "", "config", "path")
	require.NoError(t, err)
	assert.Equal(t, want+"\n", output)

	output, err = execute(t, "", "config", "init")
	require.NoError(t, err)
	assert.Contains(t, output, want)
	assert.FileExists(t, want)

	_, err = execute(t, "", "config", "init")
	assert.ErrorIs(t, err, config.ErrConfigExists)

	_, err = execute(t, "", "config", "init", "--force")
	assert.NoError(t, err)

	output, err = execute(t, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, output, "configs_repo: "+config.DefaultConfigsRepo)
	assert.Contains(t, output, "log_level: warn")
}

func TestConfigCmd_ExplicitPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")

	output, err := execute(t, "", "config", "path", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, path+"\n", output)

	_, err = execute(t, "", "config", "init", "--config", path)
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("apt_packages: [git, git]\n"), 0600))

	_, err := execute(t, "", "catalog", "--config", path)

	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestInvalidLogLevel(t *testing.T) {
	isolate(t)

	_, err := execute(t, "", "catalog", "--log-level", "loud")

	assert.ErrorContains(t, err, "invalid log level")
}

func TestDoctorCmd(t *testing.T) {
	isolate(t)

	output, err := execute(t, "", "doctor")
	require.NoError(t, err)

	assert.Contains(t, output, "Package managers")
	assert.Contains(t, output, "Installer tools")
	assert.Contains(t, output, "checks:")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger, err := newLogger(&buf, "", "info")
	require.NoError(t, err)
	logger.Info("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "session=")

	buf.Reset()
	logger, err = newLogger(&buf, "error", "debug")
	require.NoError(t, err)
	logger.Info("hidden")
	assert.Empty(t, buf.String())
}

func TestTUICmd(t *testing.T) {
	// The full-screen UI needs a terminal; its model is tested in pkg/tui.
	t.Skip("tui command requires interactive TTY")
}
