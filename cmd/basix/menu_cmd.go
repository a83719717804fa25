package main

import (
	"github.com/spf13/cobra"

	"github.com/usires/basix/pkg/catalog"
	"github.com/usires/basix/pkg/console"
	"github.com/usires/basix/pkg/system"
	"github.com/usires/basix/pkg/tui"
)

// runMenu runs the line-oriented menu on the command's streams.
func runMenu(cmd *cobra.Command, flags *globalFlags) error {
	s, err := flags.newSession(cmd)
	if err != nil {
		return err
	}

	c := console.New(cmd.InOrStdin(), s.out, s.newState(),
		console.WithMenu(s.newMenu()),
		console.WithCatalogs(
			s.cfg.Catalog(catalog.KindApt),
			s.cfg.Catalog(catalog.KindFlatpak),
			s.cfg.Catalog(catalog.KindManagers),
		),
		console.WithLogger(s.logger),
		console.WithVersion(version),
	)
	return c.Run()
}

// runTUI runs the full-screen menu.
func runTUI(cmd *cobra.Command, flags *globalFlags) error {
	s, err := flags.newSession(cmd)
	if err != nil {
		return err
	}

	return tui.Run(cmd.InOrStdin(), s.out, s.newState(), s.newMenu(), tui.Config{
		Version:  version,
		Apt:      s.cfg.Catalog(catalog.KindApt),
		Flatpak:  s.cfg.Catalog(catalog.KindFlatpak),
		Managers: s.cfg.Catalog(catalog.KindManagers),
		Detector: system.NewDetector(),
		Kernel:   system.UnameProbe{},
	}, s.logger)
}
