// Package console runs the main menu and multi-select lists over a
// line-oriented text protocol: every screen is printed in full, then one
// trimmed line of input is read.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/usires/basix/pkg/catalog"
	"github.com/usires/basix/pkg/menu"
	"github.com/usires/basix/pkg/selection"
	"github.com/usires/basix/pkg/state"
	"github.com/usires/basix/pkg/system"
)

// Messages printed by the controller.
const (
	MsgInvalidInput   = "Invalid input"
	MsgNotImplemented = "Not implemented yet"
	MsgPressEnter     = "Press Enter to return to the main menu..."
)

// ManagerDetector reports which package managers are installed.
type ManagerDetector interface {
	Detect(candidates []string) []string
}

// Controller drives the main menu.
type Controller struct {
	in     *bufio.Reader
	out    io.Writer
	state  *state.ProgramState
	menu   *menu.Menu
	logger *log.Logger

	version  string
	apt      []string
	flatpak  []string
	managers []string

	detector ManagerDetector
	kernel   system.KernelProbe
}

// Option configures a Controller.
type Option func(*Controller)

// WithCatalogs replaces the built-in candidate lists.
func WithCatalogs(apt, flatpak, managers []string) Option {
	return func(c *Controller) {
		c.apt = apt
		c.flatpak = flatpak
		c.managers = managers
	}
}

// WithMenu uses m, typically one with installer actions bound.
func WithMenu(m *menu.Menu) Option {
	return func(c *Controller) {
		c.menu = m
	}
}

// WithDetector sets the package manager detector.
func WithDetector(d ManagerDetector) Option {
	return func(c *Controller) {
		c.detector = d
	}
}

// WithKernelProbe sets the kernel version source.
func WithKernelProbe(k system.KernelProbe) Option {
	return func(c *Controller) {
		c.kernel = k
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// WithVersion sets the version shown in the title line.
func WithVersion(v string) Option {
	return func(c *Controller) {
		c.version = v
	}
}

// New creates a controller reading from in and writing to out.
func New(in io.Reader, out io.Writer, st *state.ProgramState, opts ...Option) *Controller {
	c := &Controller{
		in:       bufio.NewReader(in),
		out:      out,
		state:    st,
		menu:     menu.New(),
		logger:   log.New(io.Discard),
		version:  "dev",
		apt:      catalog.AptPrograms(),
		flatpak:  catalog.FlatpakPrograms(),
		managers: catalog.PackageManagerCandidates(),
		detector: system.NewDetector(),
		kernel:   system.UnameProbe{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Menu returns the menu driven by the controller.
func (c *Controller) Menu() *menu.Menu {
	return c.menu
}

// Run loops until the user quits or input ends. Only read errors are returned.
func (c *Controller) Run() error {
	for {
		c.renderMainMenu()

		line, ok, err := c.readLine()
		if err != nil {
			return err
		}
		if !ok {
			c.logger.Debug("input closed")
			return nil
		}

		cmd := menu.ParseCommand(line)
		c.logger.Debug("main menu input", "cmd", cmd, "highlight", c.menu.Highlight())

		switch cmd {
		case menu.CmdQuit:
			return nil
		case menu.CmdUp:
			c.menu.Up()
		case menu.CmdDown:
			c.menu.Down()
		case menu.CmdConfirm:
			quit, err := c.dispatch(c.menu.Highlight())
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		default:
			fmt.Fprintln(c.out, MsgInvalidInput)
		}
	}
}

// dispatch runs the screen or action bound to row. It reports true when the
// session should end.
func (c *Controller) dispatch(row int) (bool, error) {
	target := c.menu.Resolve(row)
	c.logger.Debug("dispatch", "row", row, "target", target)

	switch target {
	case menu.TargetSelectApt:
		return c.Select("Select packages:", c.apt, c.state.SelectedApt)

	case menu.TargetSelectFlatpak:
		return c.Select("Select Flatpaks:", c.flatpak, c.state.SelectedFlatpak)

	case menu.TargetSelectManager:
		available := c.detector.Detect(c.managers)
		picked := c.state.ManagerSeed()
		quit, err := c.Select("Select package manager:", available, picked)
		c.state.CollapseManager(available, picked)
		return quit, err

	case menu.TargetAction:
		if err := c.menu.Action(row)(c.state); err != nil {
			c.logger.Warn("action failed", "row", row, "err", err)
			fmt.Fprintf(c.out, "Error: %v\n", err)
		}
		fmt.Fprintln(c.out, MsgPressEnter)
		_, ok, err := c.readLine()
		return !ok, err

	case menu.TargetQuit:
		return true, nil

	default:
		fmt.Fprintln(c.out, MsgNotImplemented)
		return false, nil
	}
}

// Select runs a multi-select list over candidates, toggling names in set until
// the user types q. It reports true when input ended instead.
func (c *Controller) Select(title string, candidates []string, set selection.Set) (bool, error) {
	list := selection.NewList(candidates)

	for {
		c.renderList(title, list, set)

		line, ok, err := c.readLine()
		if err != nil {
			return false, err
		}
		if !ok {
			return true, nil
		}

		input := selection.ParseInput(line)
		switch input.Kind {
		case selection.InputQuit:
			return false, nil
		case selection.InputIndex:
			if list.Toggle(set, input.Index) {
				c.logger.Debug("toggled", "index", input.Index, "selected", set.Len())
			}
		default:
			fmt.Fprintln(c.out, MsgInvalidInput)
		}
	}
}

// readLine returns the next trimmed line. ok is false at end of input. Lines
// of any length are accepted.
func (c *Controller) readLine() (string, bool, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", false, fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", false, nil
		}
	}
	return strings.TrimSpace(line), true, nil
}

func (c *Controller) renderMainMenu() {
	fmt.Fprintf(c.out, "basix // Version %s\n", c.version)
	fmt.Fprintln(c.out, "Main Menu")
	for i, label := range c.menu.Labels() {
		cursor := "  "
		if i+1 == c.menu.Highlight() {
			cursor = "> "
		}
		fmt.Fprintf(c.out, "%s%d. %s\n", cursor, i+1, label)
	}

	fmt.Fprintf(c.out, "\nCurrent Linux Kernel version: %s\n", c.kernel.KernelVersion())
	fmt.Fprintf(c.out, "Detected package managers: %s\n", joinOrNone(c.detector.Detect(c.managers)))
	manager, _ := c.state.PackageManager()
	fmt.Fprintf(c.out, "Selected package manager: %s\n", orNone(manager))
	fmt.Fprintln(c.out, "Press w/s to move, Enter to confirm, q to quit")
}

func (c *Controller) renderList(title string, list *selection.List, set selection.Set) {
	fmt.Fprintln(c.out, title)
	if list.Len() == 0 {
		fmt.Fprintln(c.out, "(nothing to select)")
	}
	for _, row := range list.Rows(set) {
		fmt.Fprintln(c.out, row.String())
	}
	fmt.Fprintln(c.out, "Press the number to select/unselect, q to quit")
}

func joinOrNone(names []string) string {
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, " ")
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}
