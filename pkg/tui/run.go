package tui

import (
	"bufio"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/usires/basix/pkg/console"
	"github.com/usires/basix/pkg/menu"
	"github.com/usires/basix/pkg/state"
)

// Run shows the full-screen menu until the user quits. Actions run on the
// normal screen between program runs, followed by a wait for Enter.
func Run(in io.Reader, out io.Writer, st *state.ProgramState, m *menu.Menu, cfg Config, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	reader := bufio.NewReader(in)
	model := New(st, m, cfg)

	for {
		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithInput(in), tea.WithOutput(out))
		final, err := p.Run()
		if err != nil {
			return fmt.Errorf("tui error: %w", err)
		}

		result, ok := final.(Model)
		if !ok {
			return fmt.Errorf("unexpected model type %T", final)
		}
		row := result.Pending()
		if row == 0 {
			return nil
		}

		logger.Debug("running action", "row", row)
		if err := m.Action(row)(st); err != nil {
			logger.Warn("action failed", "row", row, "err", err)
			fmt.Fprintf(out, "Error: %v\n", err)
		}
		fmt.Fprintln(out, console.MsgPressEnter)
		if _, err := reader.ReadString('\n'); err != nil {
			// End of input quits, as in the console.
			return nil
		}

		model = result.Resume()
	}
}
