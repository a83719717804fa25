// Package tui is the full-screen front end of the basix menu. It drives the
// same menu, selection and state packages as the line-oriented console.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/usires/basix/pkg/console"
	"github.com/usires/basix/pkg/menu"
	"github.com/usires/basix/pkg/selection"
	"github.com/usires/basix/pkg/state"
	"github.com/usires/basix/pkg/system"
)

type screen int

const (
	screenMenu screen = iota
	screenList
)

// listView is an open multi-select list.
type listView struct {
	title  string
	target menu.Target
	list   *selection.List
	set    selection.Set
	cursor int    // 0-based
	digits string // row number being typed
}

// typeDigit extends the row number being typed. The row is toggled as soon
// as no further digit could still name a row; until then it waits for more
// digits or Enter.
func (v *listView) typeDigit(d string) {
	digits := v.digits + d
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 || n > v.list.Len() {
		v.digits = ""
		return
	}
	if n*10 > v.list.Len() {
		v.toggleRow(n)
		v.digits = ""
		return
	}
	v.digits = digits
}

// commitDigits toggles the row number typed so far. It reports false when
// nothing was pending.
func (v *listView) commitDigits() bool {
	if v.digits == "" {
		return false
	}
	n, _ := strconv.Atoi(v.digits)
	v.toggleRow(n)
	v.digits = ""
	return true
}

func (v *listView) toggleRow(n int) {
	if v.list.Toggle(v.set, n) {
		v.cursor = n - 1
	}
}

// Model is the bubbletea model for one run of the program. Actions bound to
// the menu are not run inside the model: selecting one quits the program with
// Pending set so the caller can run it on the normal screen.
type Model struct {
	state *state.ProgramState
	menu  *menu.Menu

	version  string
	apt      []string
	flatpak  []string
	managers []string
	detector console.ManagerDetector
	kernel   string
	detected []string

	screen  screen
	current listView
	status  string
	width   int

	pending  int
	quitting bool
}

// Config holds the collaborators of a Model.
type Config struct {
	Version  string
	Apt      []string
	Flatpak  []string
	Managers []string
	Detector console.ManagerDetector
	Kernel   system.KernelProbe
}

// New creates a model over st and m.
func New(st *state.ProgramState, m *menu.Menu, cfg Config) Model {
	model := Model{
		state:    st,
		menu:     m,
		version:  cfg.Version,
		apt:      cfg.Apt,
		flatpak:  cfg.Flatpak,
		managers: cfg.Managers,
		detector: cfg.Detector,
		kernel:   cfg.Kernel.KernelVersion(),
	}
	model.detected = model.detector.Detect(model.managers)
	return model
}

// Pending returns the menu row whose action should run next, or 0.
func (m Model) Pending() int {
	return m.pending
}

// Quitting reports whether the user asked to leave basix.
func (m Model) Quitting() bool {
	return m.quitting
}

// Resume clears the pending action and refreshes the detected managers, ready
// for the next program run.
func (m Model) Resume() Model {
	m.pending = 0
	m.status = ""
	m.detected = m.detector.Detect(m.managers)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.screen == screenList {
			return m.updateList(msg)
		}
		return m.updateMenu(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.Up):
		m.menu.Up()
	case key.Matches(msg, keys.Down):
		m.menu.Down()
	case key.Matches(msg, keys.Enter):
		return m.dispatch(m.menu.Highlight())
	}
	return m, nil
}

func (m Model) dispatch(row int) (tea.Model, tea.Cmd) {
	switch target := m.menu.Resolve(row); target {
	case menu.TargetSelectApt:
		m.openList("Select packages:", target, m.apt, m.state.SelectedApt)
	case menu.TargetSelectFlatpak:
		m.openList("Select Flatpaks:", target, m.flatpak, m.state.SelectedFlatpak)
	case menu.TargetSelectManager:
		m.detected = m.detector.Detect(m.managers)
		m.openList("Select package manager:", target, m.detected, m.state.ManagerSeed())
	case menu.TargetAction:
		m.pending = row
		return m, tea.Quit
	case menu.TargetQuit:
		m.quitting = true
		return m, tea.Quit
	default:
		m.status = console.MsgNotImplemented
	}
	return m, nil
}

func (m *Model) openList(title string, target menu.Target, candidates []string, set selection.Set) {
	m.screen = screenList
	m.current = listView{
		title:  title,
		target: target,
		list:   selection.NewList(candidates),
		set:    set,
	}
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	v := &m.current

	if key.Matches(msg, keys.Number) {
		v.typeDigit(msg.String())
		return m, nil
	}
	if key.Matches(msg, keys.Enter) && v.commitDigits() {
		return m, nil
	}
	v.digits = ""

	switch {
	case key.Matches(msg, keys.Back):
		if v.target == menu.TargetSelectManager {
			m.state.CollapseManager(m.detected, v.set)
		}
		m.screen = screenMenu
	case key.Matches(msg, keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(msg, keys.Down):
		if v.cursor < v.list.Len()-1 {
			v.cursor++
		}
	case key.Matches(msg, keys.Toggle):
		v.list.Toggle(v.set, v.cursor+1)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting || m.pending != 0 {
		return ""
	}
	if m.screen == screenList {
		return m.viewList()
	}
	return m.viewMenu()
}

func (m Model) viewMenu() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(fmt.Sprintf("basix // Version %s", m.version)))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render("Main Menu"))
	b.WriteString("\n")
	for i, label := range m.menu.Labels() {
		line := fmt.Sprintf("%d. %s", i+1, label)
		if i+1 == m.menu.Highlight() {
			b.WriteString(SelectedRowStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(DimStyle.Render("Current Linux Kernel version: " + m.kernel))
	b.WriteString("\n")
	b.WriteString(DimStyle.Render("Detected package managers: " + joinOrNone(m.detected)))
	b.WriteString("\n")
	manager, ok := m.state.PackageManager()
	if !ok {
		manager = "None"
	}
	b.WriteString(InfoStyle.Render("Selected package manager: " + manager))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(WarningStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderFooter(menuBindings(), m.width))
	return b.String()
}

func (m Model) viewList() string {
	var b strings.Builder
	v := m.current

	b.WriteString(TitleStyle.Render(v.title))
	b.WriteString("\n")
	if v.list.Len() == 0 {
		b.WriteString(SubtitleStyle.Render("(nothing to select)"))
		b.WriteString("\n")
	}
	for i, row := range v.list.Rows(v.set) {
		marker := row.Marker()
		if row.Checked {
			marker = CheckedStyle.Render(marker)
		}
		line := fmt.Sprintf("%d %s %s", row.Index, marker, row.Name)
		if i == v.cursor {
			b.WriteString(SelectedRowStyle.Render("> ") + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if v.digits != "" {
		b.WriteString(InfoStyle.Render("Row: " + v.digits))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderFooter(listBindings(), m.width))
	return b.String()
}

func joinOrNone(names []string) string {
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, " ")
}
