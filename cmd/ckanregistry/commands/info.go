package commands

import (
	"errors"
	"fmt"

	"github.com/ksp-mods/ckanreg"
	"github.com/ksp-mods/ckanreg/registrysnapshot"
	"github.com/spf13/cobra"
)

var InfoCmd = &cobra.Command{
	Use:   "info <identifier>",
	Short: "Show the latest available release of one module",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hostVersion, _ := cmd.Flags().GetString("host-version")

		r, err := registrysnapshot.Load(registryPath(cmd))
		if err != nil {
			return err
		}

		m, err := r.LatestAvailable(args[0], hostVersion)
		if err != nil {
			var notFound *ckanreg.ModuleNotFoundError
			if errors.As(err, &notFound) {
				return fmt.Errorf("%s: not found (or no release compatible with host %q)", args[0], hostVersion)
			}
			return err
		}

		fmt.Printf("identifier: %s\n", m.Identifier)
		fmt.Printf("version:    %s\n", m.Version)
		if len(m.Depends) > 0 {
			fmt.Println("depends:")
			for _, d := range m.Depends {
				fmt.Printf("  %s\n", d.String())
			}
		}
		if len(m.Provides) > 0 {
			fmt.Printf("provides:   %v\n", m.Provides)
		}
		if m.Replacement != "" {
			fmt.Printf("deprecated: replaced by %s\n", m.Replacement)
		}
		if installed, ok := r.InstalledVersion(args[0]); ok {
			fmt.Printf("installed:  %s\n", installed)
		}
		return nil
	},
}

func init() {
	InfoCmd.Flags().String("host-version", "", "filter by host application version compatibility")
}
