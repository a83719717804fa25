// Package catalog holds the static menu and package tables offered by basix.
//
// The tables are never handed out directly: every accessor returns a fresh
// copy so callers can sort or filter without touching the originals.
package catalog

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Kind identifies a candidate list.
type Kind string

const (
	KindApt      Kind = "apt"
	KindFlatpak  Kind = "flatpak"
	KindManagers Kind = "managers"
)

// Kinds returns all catalog kinds in display order.
func Kinds() []Kind {
	return []Kind{KindApt, KindFlatpak, KindManagers}
}

// Main menu rows, 1-based to match the on-screen numbering.
const (
	RowSelectApt      = 1
	RowInstallApt     = 2
	RowSelectFlatpak  = 3
	RowInstallFlatpak = 4
	RowOnePassword    = 5
	RowFonts          = 6
	RowPackageManager = 7
	RowCopyConfigs    = 8
	RowExit           = 9
)

// MenuRows is the number of rows in the main menu.
const MenuRows = 9

var mainMenuOptions = [MenuRows]string{
	"Select original repo packages",
	"Install original repo packages",
	"Select Flatpak packages",
	"Install Flatpak packages",
	"Install 1Password (via AgileBits repo)",
	"Install additional fonts",
	"Select package manager",
	"Copy configs from Github repo to HOME",
	"Exit (or press 'Q')",
}

var aptPrograms = []string{
	"curl", "git", "neovim", "htop", "neofetch", "tilix", "gdu", "nala", "mc",
	"zip", "unzip", "fortune-mod", "build-essential", "flatpak", "preload",
	"cmatrix", "cool-retro-term", "powertop", "upx-ucl", "code",
}

var flatpakPrograms = []string{
	"com.spotify.Client", "org.videolan.VLC",
	"com.github.tchx84.Flatseal", "com.discordapp.Discord",
	"com.ktechpit.colorwall", "com.mattjakeman.ExtensionManager", "com.microsoft.Edge",
	"com.valvesoftware.Steam", "net.cozic.joplin_desktop", "net.lutris.Lutris",
	"org.DolphinEmu.dolphin-emu", "org.duckstation.DuckStation", "org.libretro.RetroArch",
	"org.mozilla.Thunderbird", "net.sf.VICE", "net.fsuae.FS-UAE", "org.audacityteam.Audacity",
	"org.gimp.GIMP", "org.gnome.Boxes", "com.transmissionbt.Transmission", "fr.handbrake.ghb",
}

var packageManagerCandidates = []string{"apt", "pacman", "yum", "dnf", "zypper", "snap"}

// MainMenuOptions returns the main menu labels in row order.
func MainMenuOptions() []string {
	return slices.Clone(mainMenuOptions[:])
}

// MenuLabel returns the label of a 1-based menu row, or "" when out of range.
func MenuLabel(row int) string {
	if row < 1 || row > MenuRows {
		return ""
	}
	return mainMenuOptions[row-1]
}

// AptPrograms returns the native package catalog.
func AptPrograms() []string {
	return slices.Clone(aptPrograms)
}

// FlatpakPrograms returns the Flatpak application catalog.
func FlatpakPrograms() []string {
	return slices.Clone(flatpakPrograms)
}

// PackageManagerCandidates returns the package managers basix knows how to detect.
func PackageManagerCandidates() []string {
	return slices.Clone(packageManagerCandidates)
}

// Defaults returns the built-in list for a kind, or nil for an unknown kind.
func Defaults(kind Kind) []string {
	switch kind {
	case KindApt:
		return AptPrograms()
	case KindFlatpak:
		return FlatpakPrograms()
	case KindManagers:
		return PackageManagerCandidates()
	default:
		return nil
	}
}

// ParseKind resolves a user-supplied catalog name.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "apt", "repo", "native":
		return KindApt, true
	case "flatpak", "flatpaks":
		return KindFlatpak, true
	case "managers", "manager", "package-managers":
		return KindManagers, true
	}
	return "", false
}

// Sorted returns a lexicographically sorted copy of names.
func Sorted(names []string) []string {
	sorted := slices.Clone(names)
	slices.Sort(sorted)
	return sorted
}

// MaxNameLength is the longest package name accepted in a catalog.
const MaxNameLength = 128

// validNamePattern matches package names and Flatpak application IDs. Names
// end up in argv, so whitespace and shell metacharacters are rejected.
var validNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9.+_:@-]*$`)

// Validate reports the first empty, malformed or duplicate name in names.
// It returns "" when the list is usable as a candidate list.
func Validate(names []string) string {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			return "empty name"
		}
		if len(name) > MaxNameLength {
			return fmt.Sprintf("name longer than %d characters", MaxNameLength)
		}
		if !validNamePattern.MatchString(name) {
			return fmt.Sprintf("invalid name %q", name)
		}
		if _, ok := seen[name]; ok {
			return "duplicate name " + name
		}
		seen[name] = struct{}{}
	}
	return ""
}
