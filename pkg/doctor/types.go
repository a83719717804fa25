// Package doctor reports whether the tools basix shells out to are installed.
package doctor

// CheckStatus represents the status of a check.
type CheckStatus int

const (
	// StatusOK indicates the tool is installed.
	StatusOK CheckStatus = iota
	// StatusMissing indicates the tool is not installed.
	StatusMissing
	// StatusError indicates an error occurred during the check.
	StatusError
	// StatusWarning indicates something is off but basix may still work.
	StatusWarning
)

// String returns the string representation of the status.
func (s CheckStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusMissing:
		return "missing"
	case StatusError:
		return "error"
	case StatusWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Check represents a single check result.
type Check struct {
	ID          string      // Executable name, e.g. "git", "apt"
	Name        string      // Display name
	Description string      // What basix uses it for
	Status      CheckStatus // Current status
	Message     string      // Resolved path, kernel release or error
	Fix         *FixCommand // How to fix if missing (nil if not fixable)
}

// FixCommand describes how to install a missing tool.
type FixCommand struct {
	Description string // Human-readable description of what the fix does
	Package     string // Package providing the tool
}

// CheckGroup represents a group of related checks.
type CheckGroup struct {
	ID          string  // Unique identifier, e.g. "system", "managers"
	Name        string  // Display name
	Description string  // What this group is for
	Required    bool    // Missing entries count as issues
	Checks      []Check // Individual checks in this group
}

// Group IDs.
const (
	GroupSystem   = "system"
	GroupManagers = "managers"
	GroupTools    = "tools"
)

// IDKernel identifies the kernel release check.
const IDKernel = "kernel"
