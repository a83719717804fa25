package installer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usires/basix/pkg/selection"
)

const flathub = "https://dl.flathub.org/repo/flathub.flatpakrepo"

func TestNativePlan_AptDefault(t *testing.T) {
	plan, err := NativePlan("", selection.NewSet("zip", "curl", "git"), flathub)

	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"sudo", "apt-get", "update"},
		{"sudo", "apt-get", "install", "-y", "curl", "git", "zip"},
	}, plan.Commands)
	assert.Contains(t, plan.Title, "apt")
}

func TestNativePlan_Managers(t *testing.T) {
	tests := []struct {
		manager string
		want    [][]string
	}{
		{"pacman", [][]string{{"sudo", "pacman", "-Sy", "--noconfirm", "git"}}},
		{"dnf", [][]string{{"sudo", "dnf", "install", "-y", "git"}}},
		{"yum", [][]string{{"sudo", "yum", "install", "-y", "git"}}},
		{"zypper", [][]string{
			{"sudo", "zypper", "--non-interactive", "refresh"},
			{"sudo", "zypper", "--non-interactive", "install", "git"},
		}},
		{"snap", [][]string{{"sudo", "snap", "install", "git"}}},
	}

	for _, tt := range tests {
		t.Run(tt.manager, func(t *testing.T) {
			plan, err := NativePlan(tt.manager, selection.NewSet("git"), flathub)
			require.NoError(t, err)
			assert.Equal(t, tt.want, plan.Commands)
			assert.True(t, SupportsManager(tt.manager))
		})
	}
}

func TestNativePlan_FlatpakAddsRemote(t *testing.T) {
	plan, err := NativePlan("apt", selection.NewSet("flatpak", "git"), flathub)

	require.NoError(t, err)
	require.Equal(t, 3, plan.Len())
	assert.Equal(t, []string{"flatpak", "remote-add", "--if-not-exists", "flathub", flathub}, plan.Commands[2])
}

func TestNativePlan_FlatpakWithoutRemoteURL(t *testing.T) {
	plan, err := NativePlan("apt", selection.NewSet("flatpak"), "")

	require.NoError(t, err)
	assert.Equal(t, 2, plan.Len())
}

func TestNativePlan_Errors(t *testing.T) {
	_, err := NativePlan("apt", selection.NewSet(), flathub)
	assert.ErrorIs(t, err, ErrNothingSelected)

	_, err = NativePlan("brew", selection.NewSet("git"), flathub)
	assert.ErrorIs(t, err, ErrUnknownManager)
	assert.False(t, SupportsManager("brew"))
}

func TestFlatpakPlan(t *testing.T) {
	plan, err := FlatpakPlan(selection.NewSet("org.videolan.VLC", "com.spotify.Client"))

	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"flatpak", "install", "-y", "flathub", "com.spotify.Client", "org.videolan.VLC"},
	}, plan.Commands)

	_, err = FlatpakPlan(selection.NewSet())
	assert.ErrorIs(t, err, ErrNothingSelected)
}

func TestOnePasswordPlan(t *testing.T) {
	plan := OnePasswordPlan()

	require.NotZero(t, plan.Len())
	assert.Equal(t, []string{"sudo", "apt-get", "install", "-y", "1password"}, plan.Commands[plan.Len()-1])
	assert.Contains(t, plan.String(), "1password-archive-keyring.gpg")
}

func TestFontsPlan(t *testing.T) {
	plan := FontsPlan("/tmp/dl", "/home/u/.local/share/fonts")

	assert.Equal(t, [][]string{
		{"mkdir", "-p", "/home/u/.local/share/fonts"},
		{"wget", "-q", "-O", "/tmp/dl/Hack-v3.003-ttf.zip", Fonts[0].URL},
		{"unzip", "-o", "-q", "/tmp/dl/Hack-v3.003-ttf.zip", "-d", "/home/u/.local/share/fonts"},
		{"wget", "-q", "-O", "/tmp/dl/JetBrainsMono-1.0.3.zip", Fonts[1].URL},
		{"unzip", "-o", "-q", "/tmp/dl/JetBrainsMono-1.0.3.zip", "-d", "/home/u/.local/share/fonts"},
		{"fc-cache", "-r", "-v"},
	}, plan.Commands)
}

func TestPlan_String(t *testing.T) {
	plan := ClonePlan("https://example.com/dots.git", "/tmp/x")

	assert.Equal(t, "git clone --depth 1 https://example.com/dots.git /tmp/x\n", plan.String())
}
