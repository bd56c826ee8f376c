package commands

import (
	"fmt"

	"github.com/ksp-mods/ckanreg/registrysnapshot"
	"github.com/spf13/cobra"
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the latest available release of every compatible module",
	RunE: func(cmd *cobra.Command, args []string) error {
		hostVersion, _ := cmd.Flags().GetString("host-version")

		r, err := registrysnapshot.Load(registryPath(cmd))
		if err != nil {
			return err
		}

		available := r.Available(hostVersion)
		if len(available) == 0 {
			fmt.Println("no available modules")
			return nil
		}
		for _, m := range available {
			fmt.Printf("%s %s\n", m.Identifier, m.Version)
		}

		incompatible := r.Incompatible(hostVersion)
		for _, m := range incompatible {
			fmt.Printf("%s %s (incompatible with host %s)\n", m.Identifier, m.Version, hostVersion)
		}
		return nil
	},
}

func init() {
	ListCmd.Flags().String("host-version", "", "filter by host application version compatibility")
}
