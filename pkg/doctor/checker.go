package doctor

import (
	"github.com/usires/basix/pkg/catalog"
	"github.com/usires/basix/pkg/system"
)

// Checker runs the checks.
type Checker struct {
	looker   system.PathLooker
	kernel   system.KernelProbe
	managers []string
}

// NewChecker creates a Checker that searches $PATH for the given package
// manager candidates. A nil list uses the built-in candidates.
func NewChecker(managers []string) *Checker {
	return NewCheckerWith(system.ExecLooker{}, system.UnameProbe{}, managers)
}

// NewCheckerWith creates a Checker with custom collaborators (for testing).
func NewCheckerWith(looker system.PathLooker, kernel system.KernelProbe, managers []string) *Checker {
	if managers == nil {
		managers = catalog.PackageManagerCandidates()
	}
	return &Checker{looker: looker, kernel: kernel, managers: managers}
}

// CheckAll runs every group in report order.
func (c *Checker) CheckAll() []CheckGroup {
	return []CheckGroup{c.checkSystem(), c.checkManagers(), c.checkTools()}
}

func (c *Checker) checkSystem() CheckGroup {
	check := Check{
		ID:          IDKernel,
		Name:        "Linux kernel",
		Description: "Running kernel release",
		Status:      StatusOK,
		Message:     c.kernel.KernelVersion(),
	}
	if check.Message == system.UnknownKernel {
		check.Status = StatusWarning
	}
	return CheckGroup{
		ID:          GroupSystem,
		Name:        "System",
		Description: "Host information shown on the main menu",
		Checks:      []Check{check},
	}
}

func (c *Checker) checkManagers() CheckGroup {
	group := CheckGroup{
		ID:          GroupManagers,
		Name:        "Package managers",
		Description: "Candidates offered by the package manager picker",
	}
	for _, name := range c.managers {
		group.Checks = append(group.Checks, c.lookup(name, name, "Package manager", nil))
	}
	return group
}

func (c *Checker) checkTools() CheckGroup {
	group := CheckGroup{
		ID:          GroupTools,
		Name:        "Installer tools",
		Description: "Executables run by the install and copy actions",
		Required:    true,
	}
	for _, t := range tools {
		group.Checks = append(group.Checks, c.lookup(t.ID, t.Name, t.Description, GetFixCommand(t.ID)))
	}
	return group
}

func (c *Checker) lookup(id, name, desc string, fix *FixCommand) Check {
	check := Check{ID: id, Name: name, Description: desc}
	path, err := c.looker.LookPath(id)
	if err != nil {
		check.Status = StatusMissing
		check.Message = "not installed"
		check.Fix = fix
		return check
	}
	check.Status = StatusOK
	check.Message = path
	return check
}

// Summary represents an overall health summary.
type Summary struct {
	Total    int
	OK       int
	Missing  int
	Warnings int
	Errors   int
}

// GetSummary returns a summary of check results.
func GetSummary(groups []CheckGroup) Summary {
	var summary Summary

	for _, group := range groups {
		for _, check := range group.Checks {
			summary.Total++
			switch check.Status {
			case StatusOK:
				summary.OK++
			case StatusMissing:
				summary.Missing++
			case StatusWarning:
				summary.Warnings++
			case StatusError:
				summary.Errors++
			}
		}
	}

	return summary
}

// HasIssues returns true if a required tool is missing, a check failed, or no
// package manager was found at all.
func HasIssues(groups []CheckGroup) bool {
	for _, group := range groups {
		found := 0
		for _, check := range group.Checks {
			if check.Status == StatusError {
				return true
			}
			if check.Status == StatusMissing && group.Required {
				return true
			}
			if check.Status == StatusOK {
				found++
			}
		}
		if group.ID == GroupManagers && found == 0 {
			return true
		}
	}
	return false
}

// Missing returns the checks of required groups that have a fix.
func Missing(groups []CheckGroup) []Check {
	var out []Check
	for _, group := range groups {
		if !group.Required {
			continue
		}
		for _, check := range group.Checks {
			if check.Status == StatusMissing && check.Fix != nil {
				out = append(out, check)
			}
		}
	}
	return out
}
