// Package system wraps the operating system collaborators basix depends on:
// running commands, probing the kernel version and finding executables.
package system

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// ErrEmptyCommand is reported when an executor is handed an empty argv.
var ErrEmptyCommand = errors.New("empty command")

// ExitStatus is the outcome of running one command.
type ExitStatus struct {
	Code int   // process exit code, -1 when the process never ran
	Err  error // start failure, nil when the process ran
}

// Success reports whether the command ran and exited with status 0.
func (s ExitStatus) Success() bool {
	return s.Err == nil && s.Code == 0
}

// Executor runs an argument vector synchronously.
type Executor interface {
	Run(argv []string) ExitStatus
}

// RealExecutor runs commands with the user's terminal attached.
type RealExecutor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *log.Logger
}

// NewRealExecutor creates an executor bound to the process's standard streams.
func NewRealExecutor(logger *log.Logger) *RealExecutor {
	return &RealExecutor{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: logger,
	}
}

// Run executes argv and prints a diagnostic to Stderr when it fails.
func (e *RealExecutor) Run(argv []string) ExitStatus {
	if len(argv) == 0 {
		return ExitStatus{Code: -1, Err: ErrEmptyCommand}
	}

	if e.Logger != nil {
		e.Logger.Debug("running command", "argv", argv)
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	status := ExitStatus{}
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			status.Code = exitErr.ExitCode()
		} else {
			status.Code = -1
			status.Err = err
		}
	}

	if !status.Success() {
		e.report(argv, status)
	}
	return status
}

func (e *RealExecutor) report(argv []string, status ExitStatus) {
	if e.Stderr != nil {
		fmt.Fprintln(e.Stderr, Diagnostic(argv, status))
	}
	if e.Logger != nil {
		e.Logger.Warn("command failed", "argv", argv, "code", status.Code, "err", status.Err)
	}
}

// Diagnostic formats the line printed for a failed command.
func Diagnostic(argv []string, status ExitStatus) string {
	msg := fmt.Sprintf("Command %s failed with exit code %d", FormatArgv(argv), status.Code)
	if status.Err != nil {
		msg += ": " + status.Err.Error()
	}
	return msg
}

// FormatArgv renders argv as a bracketed, space separated list.
func FormatArgv(argv []string) string {
	return "[" + strings.Join(argv, " ") + "]"
}

// DryRunExecutor prints each command instead of running it.
type DryRunExecutor struct {
	Out io.Writer
}

// Run prints "+ argv" and reports success.
func (e *DryRunExecutor) Run(argv []string) ExitStatus {
	if len(argv) == 0 {
		return ExitStatus{Code: -1, Err: ErrEmptyCommand}
	}
	fmt.Fprintf(e.Out, "+ %s\n", strings.Join(argv, " "))
	return ExitStatus{}
}
