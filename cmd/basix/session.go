package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/usires/basix/pkg/config"
	"github.com/usires/basix/pkg/installer"
	"github.com/usires/basix/pkg/menu"
	"github.com/usires/basix/pkg/state"
	"github.com/usires/basix/pkg/system"
)

// globalFlags holds the persistent flags shared by every command.
type globalFlags struct {
	configPath string
	logLevel   string
	dryRun     bool
}

// session is everything a command needs for one run.
type session struct {
	cfg      *config.Config
	logger   *log.Logger
	executor system.Executor
	out      io.Writer
}

// newSession loads the config and builds the logger and executor.
func (g *globalFlags) newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), g.logLevel, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger.Debug("config loaded", "path", g.configPathOrDefault())

	s := &session{
		cfg:    cfg,
		logger: logger,
		out:    cmd.OutOrStdout(),
	}
	if g.dryRun {
		s.executor = &system.DryRunExecutor{Out: s.out}
	} else {
		s.executor = system.NewRealExecutor(logger)
	}
	return s, nil
}

func (g *globalFlags) configPathOrDefault() string {
	if g.configPath != "" {
		return g.configPath
	}
	path, err := config.GetConfigPath()
	if err != nil {
		return ""
	}
	return path
}

// newLogger creates a stderr logger tagged with a per-run session id. The
// flag level wins over the configured one.
func newLogger(w io.Writer, flagLevel, configLevel string) (*log.Logger, error) {
	name := configLevel
	if flagLevel != "" {
		name = flagLevel
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", name, err)
	}

	logger := log.NewWithOptions(w, log.Options{
		Prefix: "basix",
		Level:  level,
	})
	return logger.With("session", uuid.NewString()), nil
}

// newState creates the program state, pre-selecting the configured manager.
func (s *session) newState() *state.ProgramState {
	st := state.New()
	st.SetPackageManager(s.cfg.DefaultPackageManager)
	return st
}

// newInstaller creates the installer for the action rows.
func (s *session) newInstaller() *installer.Installer {
	home, err := os.UserHomeDir()
	if err != nil {
		s.logger.Warn("home directory unknown", "err", err)
	}
	return installer.New(s.executor, s.out, installer.Options{
		FlathubURL:  s.cfg.FlathubURL,
		ConfigsRepo: s.cfg.ConfigsRepo,
		FontsDir:    s.cfg.FontsDir,
		HomeDir:     home,
	}, s.logger)
}

// newMenu creates the main menu with every installer bound.
func (s *session) newMenu() *menu.Menu {
	m := menu.New()
	s.newInstaller().Bind(m)
	return m
}
