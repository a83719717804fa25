package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/usires/basix/pkg/catalog"
)

// newCatalogCmd creates the catalog subcommand
func newCatalogCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:       "catalog [apt|flatpak|managers]",
		Short:     "List the selectable packages",
		Long:      `List the native packages, Flatpaks and package managers offered by the menu, in the order the menu shows them.`,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(catalog.KindApt), string(catalog.KindFlatpak), string(catalog.KindManagers)},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.newSession(cmd)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				kind, _ := catalog.ParseKind(args[0])
				for _, name := range catalog.Sorted(s.cfg.Catalog(kind)) {
					fmt.Fprintln(s.out, name)
				}
				return nil
			}

			for _, kind := range catalog.Kinds() {
				names := catalog.Sorted(s.cfg.Catalog(kind))
				fmt.Fprintf(s.out, "%s (%d):\n", kind, len(names))
				for _, name := range names {
					fmt.Fprintf(s.out, "  - %s\n", name)
				}
				fmt.Fprintln(s.out)
			}
			return nil
		},
	}
}
