package doctor

// tool is an executable used by one of the installer actions.
type tool struct {
	ID          string
	Name        string
	Description string
	Package     string
}

// tools lists what the installer actions run, in report order.
var tools = []tool{
	{ID: "sudo", Name: "sudo", Description: "Runs package managers as root", Package: "sudo"},
	{ID: "flatpak", Name: "Flatpak", Description: "Installs Flatpak packages", Package: "flatpak"},
	{ID: "curl", Name: "curl", Description: "Fetches the 1Password signing key", Package: "curl"},
	{ID: "gpg", Name: "GnuPG", Description: "Dearmors the 1Password signing key", Package: "gnupg"},
	{ID: "wget", Name: "wget", Description: "Downloads font archives", Package: "wget"},
	{ID: "unzip", Name: "unzip", Description: "Unpacks font archives", Package: "unzip"},
	{ID: "fc-cache", Name: "fontconfig", Description: "Rebuilds the font cache", Package: "fontconfig"},
	{ID: "git", Name: "Git", Description: "Clones the configs repository", Package: "git"},
}

// ToolIDs returns the executables checked in the tools group.
func ToolIDs() []string {
	ids := make([]string, len(tools))
	for i, t := range tools {
		ids[i] = t.ID
	}
	return ids
}

// GetFixCommand returns the fix for a tool, or nil when basix cannot install it.
func GetFixCommand(toolID string) *FixCommand {
	for _, t := range tools {
		if t.ID == toolID {
			return &FixCommand{
				Description: "Install the " + t.Package + " package",
				Package:     t.Package,
			}
		}
	}
	return nil
}
