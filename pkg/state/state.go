// Package state holds the selections a user makes during one basix session.
package state

import "github.com/usires/basix/pkg/selection"

// ProgramState is created once at startup and passed by pointer to every
// screen. It is never persisted.
type ProgramState struct {
	SelectedApt     selection.Set
	SelectedFlatpak selection.Set

	// packageManager is empty when no manager has been chosen.
	packageManager string
}

// New creates an empty state.
func New() *ProgramState {
	return &ProgramState{
		SelectedApt:     selection.NewSet(),
		SelectedFlatpak: selection.NewSet(),
	}
}

// PackageManager returns the chosen package manager, if any.
func (s *ProgramState) PackageManager() (string, bool) {
	return s.packageManager, s.packageManager != ""
}

// SetPackageManager replaces the chosen package manager. An empty name clears it.
func (s *ProgramState) SetPackageManager(name string) {
	s.packageManager = name
}

// ManagerSeed returns a selection set pre-checked with the current package
// manager, for use as the working set of the manager picker.
func (s *ProgramState) ManagerSeed() selection.Set {
	if s.packageManager == "" {
		return selection.NewSet()
	}
	return selection.NewSet(s.packageManager)
}

// CollapseManager stores the first member of picked, in candidate order, as the
// package manager. Members not in candidates are dropped, so an empty result
// clears the choice.
func (s *ProgramState) CollapseManager(candidates []string, picked selection.Set) {
	name, _ := picked.FirstIn(candidates)
	s.packageManager = name
}
