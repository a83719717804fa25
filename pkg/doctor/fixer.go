package doctor

import (
	"errors"
	"fmt"

	"github.com/usires/basix/pkg/installer"
	"github.com/usires/basix/pkg/selection"
	"github.com/usires/basix/pkg/system"
)

// ErrNoFix is returned for a check without a fix command.
var ErrNoFix = errors.New("no fix command available")

// Fixer installs missing tools with a package manager.
type Fixer struct {
	executor system.Executor
	manager  string
}

// NewFixer creates a Fixer. An empty manager uses installer.DefaultManager.
func NewFixer(executor system.Executor, manager string) *Fixer {
	return &Fixer{executor: executor, manager: manager}
}

// Plan returns the commands that install the packages behind checks.
func (f *Fixer) Plan(checks []Check) (installer.Plan, error) {
	pkgs := selection.NewSet()
	for _, c := range checks {
		if c.Fix == nil {
			return installer.Plan{}, fmt.Errorf("%w: %s", ErrNoFix, c.ID)
		}
		pkgs.Add(c.Fix.Package)
	}
	return installer.NativePlan(f.manager, pkgs, "")
}

// RunFix installs the packages behind checks. Every command runs even when
// an earlier one fails.
func (f *Fixer) RunFix(checks []Check) error {
	plan, err := f.Plan(checks)
	if err != nil {
		return err
	}

	failed := 0
	for _, argv := range plan.Commands {
		if !f.executor.Run(argv).Success() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("fix failed: %d of %d command(s) failed", failed, plan.Len())
	}
	return nil
}
