// Package installer builds and runs the command plans bound to the action
// rows of the main menu: installing native and Flatpak packages, 1Password,
// extra fonts, and copying a dotfiles repository into $HOME.
//
// Plans are plain data so they can be printed or tested without touching the
// system.
package installer

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/usires/basix/pkg/selection"
)

var (
	// ErrNothingSelected is returned when an install plan has no packages.
	ErrNothingSelected = errors.New("no packages selected")
	// ErrUnknownManager is returned for a package manager without a command table.
	ErrUnknownManager = errors.New("unsupported package manager")
	// ErrUnknownRow is returned for a menu row with no installer.
	ErrUnknownRow = errors.New("no installer for menu row")
)

// DefaultManager is used when the user has not picked a package manager.
const DefaultManager = "apt"

// Plan is an ordered list of commands run one after another.
type Plan struct {
	Title    string
	Commands [][]string
}

// Len returns the number of commands.
func (p Plan) Len() int {
	return len(p.Commands)
}

// String renders one command per line.
func (p Plan) String() string {
	var b strings.Builder
	for _, argv := range p.Commands {
		b.WriteString(strings.Join(argv, " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// managerCommand describes how one package manager refreshes and installs.
type managerCommand struct {
	refresh []string // nil when the install command refreshes on its own
	install []string
}

var managerCommands = map[string]managerCommand{
	"apt": {
		refresh: []string{"sudo", "apt-get", "update"},
		install: []string{"sudo", "apt-get", "install", "-y"},
	},
	"pacman": {
		install: []string{"sudo", "pacman", "-Sy", "--noconfirm"},
	},
	"dnf": {
		install: []string{"sudo", "dnf", "install", "-y"},
	},
	"yum": {
		install: []string{"sudo", "yum", "install", "-y"},
	},
	"zypper": {
		refresh: []string{"sudo", "zypper", "--non-interactive", "refresh"},
		install: []string{"sudo", "zypper", "--non-interactive", "install"},
	},
	"snap": {
		install: []string{"sudo", "snap", "install"},
	},
}

// SupportsManager reports whether basix can install with manager.
func SupportsManager(manager string) bool {
	_, ok := managerCommands[manager]
	return ok
}

// NativePlan installs packages with manager. When flatpak is among the
// packages and flathubURL is set, the Flathub remote is registered afterwards.
func NativePlan(manager string, packages selection.Set, flathubURL string) (Plan, error) {
	if manager == "" {
		manager = DefaultManager
	}
	mc, ok := managerCommands[manager]
	if !ok {
		return Plan{}, fmt.Errorf("%w: %s", ErrUnknownManager, manager)
	}
	if packages.Len() == 0 {
		return Plan{}, ErrNothingSelected
	}

	plan := Plan{Title: fmt.Sprintf("Installing %d package(s) with %s", packages.Len(), manager)}
	if mc.refresh != nil {
		plan.Commands = append(plan.Commands, slices.Clone(mc.refresh))
	}
	plan.Commands = append(plan.Commands, append(slices.Clone(mc.install), packages.Sorted()...))

	if packages.Has("flatpak") && flathubURL != "" {
		plan.Commands = append(plan.Commands, FlathubRemote(flathubURL))
	}
	return plan, nil
}

// FlathubRemote registers the Flathub remote if it is missing.
func FlathubRemote(url string) []string {
	return []string{"flatpak", "remote-add", "--if-not-exists", "flathub", url}
}

// FlatpakPlan installs applications from Flathub.
func FlatpakPlan(apps selection.Set) (Plan, error) {
	if apps.Len() == 0 {
		return Plan{}, ErrNothingSelected
	}
	argv := append([]string{"flatpak", "install", "-y", "flathub"}, apps.Sorted()...)
	return Plan{
		Title:    fmt.Sprintf("Installing %d Flatpak(s)", apps.Len()),
		Commands: [][]string{argv},
	}, nil
}

// 1Password repository locations.
const (
	onePasswordKeyURL    = "https://downloads.1password.com/linux/keys/1password.asc"
	onePasswordPolicyURL = "https://downloads.1password.com/linux/debian/debsig/1password.pol"
	onePasswordKeyring   = "/usr/share/keyrings/1password-archive-keyring.gpg"
	onePasswordPolicyDir = "/etc/debsig/policies/AC2D62742012EA22"
	onePasswordDebsigDir = "/usr/share/debsig/keyrings/AC2D62742012EA22"
	onePasswordAptSource = "deb [arch=amd64 signed-by=" + onePasswordKeyring +
		"] https://downloads.1password.com/linux/debian/amd64 stable main"
)

// OnePasswordPlan adds the AgileBits apt repository and installs 1Password.
func OnePasswordPlan() Plan {
	return Plan{
		Title: "Installing 1Password from the AgileBits repository",
		Commands: [][]string{
			{"sh", "-c", "curl -sS " + onePasswordKeyURL + " | sudo gpg --dearmor --yes --output " + onePasswordKeyring},
			{"sh", "-c", "echo '" + onePasswordAptSource + "' | sudo tee /etc/apt/sources.list.d/1password.list"},
			{"sudo", "mkdir", "-p", onePasswordPolicyDir},
			{"sh", "-c", "curl -sS " + onePasswordPolicyURL + " | sudo tee " + onePasswordPolicyDir + "/1password.pol"},
			{"sudo", "mkdir", "-p", onePasswordDebsigDir},
			{"sh", "-c", "curl -sS " + onePasswordKeyURL + " | sudo gpg --dearmor --yes --output " + onePasswordDebsigDir + "/debsig.gpg"},
			{"sudo", "apt-get", "update"},
			{"sudo", "apt-get", "install", "-y", "1password"},
		},
	}
}

// Font is a downloadable font archive.
type Font struct {
	Name string
	URL  string
}

// Fonts are the archives installed by FontsPlan.
var Fonts = []Font{
	{Name: "Hack-v3.003-ttf.zip", URL: "https://github.com/source-foundry/Hack/releases/download/v3.003/Hack-v3.003-ttf.zip"},
	{Name: "JetBrainsMono-1.0.3.zip", URL: "https://download.jetbrains.com/fonts/JetBrainsMono-1.0.3.zip"},
}

// FontsPlan downloads every font archive into downloadDir, unpacks it into
// fontsDir and rebuilds the font cache.
func FontsPlan(downloadDir, fontsDir string) Plan {
	plan := Plan{Title: "Installing additional fonts"}
	plan.Commands = append(plan.Commands, []string{"mkdir", "-p", fontsDir})
	for _, f := range Fonts {
		archive := filepath.Join(downloadDir, f.Name)
		plan.Commands = append(plan.Commands,
			[]string{"wget", "-q", "-O", archive, f.URL},
			[]string{"unzip", "-o", "-q", archive, "-d", fontsDir},
		)
	}
	plan.Commands = append(plan.Commands, []string{"fc-cache", "-r", "-v"})
	return plan
}

// ClonePlan shallow-clones repo into dir.
func ClonePlan(repo, dir string) Plan {
	return Plan{
		Title:    "Cloning " + repo,
		Commands: [][]string{{"git", "clone", "--depth", "1", repo, dir}},
	}
}
