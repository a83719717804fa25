// Package menu implements the main menu state machine: a wrap-around cursor
// over the menu rows and the table that decides what confirming a row does.
//
// It knows nothing about terminals; the console and TUI front ends both drive
// the same Menu.
package menu

import (
	"strings"

	"github.com/usires/basix/pkg/catalog"
	"github.com/usires/basix/pkg/state"
)

// Action is a side-effecting operation bound to a menu row.
type Action func(st *state.ProgramState) error

// Command is one parsed line of main menu input.
type Command int

const (
	CmdInvalid Command = iota
	CmdQuit
	CmdUp
	CmdDown
	CmdConfirm
)

// String returns a short name for logs.
func (c Command) String() string {
	switch c {
	case CmdQuit:
		return "quit"
	case CmdUp:
		return "up"
	case CmdDown:
		return "down"
	case CmdConfirm:
		return "confirm"
	default:
		return "invalid"
	}
}

// ParseCommand interprets a trimmed line typed at the main menu.
func ParseCommand(line string) Command {
	switch strings.TrimSpace(line) {
	case "q", "Q":
		return CmdQuit
	case "w":
		return CmdUp
	case "s":
		return CmdDown
	case "":
		return CmdConfirm
	default:
		return CmdInvalid
	}
}

// Target is what confirming a row leads to.
type Target int

const (
	TargetNotImplemented Target = iota
	TargetSelectApt
	TargetSelectFlatpak
	TargetSelectManager
	TargetAction
	TargetQuit
)

// String returns a short name for logs.
func (t Target) String() string {
	switch t {
	case TargetSelectApt:
		return "select-apt"
	case TargetSelectFlatpak:
		return "select-flatpak"
	case TargetSelectManager:
		return "select-manager"
	case TargetAction:
		return "action"
	case TargetQuit:
		return "quit"
	default:
		return "not-implemented"
	}
}

// Menu tracks the highlighted row and the actions bound to rows.
type Menu struct {
	labels    []string
	highlight int
	actions   map[int]Action
}

// New creates a menu over the standard main menu rows with row 1 highlighted.
func New() *Menu {
	return NewWithLabels(catalog.MainMenuOptions())
}

// NewWithLabels creates a menu over custom row labels.
func NewWithLabels(labels []string) *Menu {
	return &Menu{
		labels:    labels,
		highlight: 1,
		actions:   make(map[int]Action),
	}
}

// Rows returns the number of rows.
func (m *Menu) Rows() int {
	return len(m.labels)
}

// Labels returns the row labels in order.
func (m *Menu) Labels() []string {
	out := make([]string, len(m.labels))
	copy(out, m.labels)
	return out
}

// Highlight returns the 1-based highlighted row.
func (m *Menu) Highlight() int {
	return m.highlight
}

// Up moves the highlight one row up, wrapping from the first row to the last.
func (m *Menu) Up() {
	if m.highlight > 1 {
		m.highlight--
	} else {
		m.highlight = m.Rows()
	}
}

// Down moves the highlight one row down, wrapping from the last row to the first.
func (m *Menu) Down() {
	if m.highlight < m.Rows() {
		m.highlight++
	} else {
		m.highlight = 1
	}
}

// Bind attaches an action to a row. Rows with their own built-in behaviour
// (the three pickers and exit) cannot be rebound and report false.
func (m *Menu) Bind(row int, action Action) bool {
	if row < 1 || row > m.Rows() || action == nil {
		return false
	}
	switch row {
	case catalog.RowSelectApt, catalog.RowSelectFlatpak, catalog.RowPackageManager, catalog.RowExit:
		return false
	}
	m.actions[row] = action
	return true
}

// Action returns the action bound to row, or nil.
func (m *Menu) Action(row int) Action {
	return m.actions[row]
}

// Resolve returns what confirming row leads to.
func (m *Menu) Resolve(row int) Target {
	switch row {
	case catalog.RowSelectApt:
		return TargetSelectApt
	case catalog.RowSelectFlatpak:
		return TargetSelectFlatpak
	case catalog.RowPackageManager:
		return TargetSelectManager
	case catalog.RowExit:
		return TargetQuit
	}
	if _, ok := m.actions[row]; ok {
		return TargetAction
	}
	return TargetNotImplemented
}
