package commands

import (
	"errors"
	"fmt"

	"github.com/ksp-mods/ckanreg"
	"github.com/ksp-mods/ckanreg/registrysnapshot"
	"github.com/spf13/cobra"
)

var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the installed set for unmet dependencies and conflicts",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := registrysnapshot.Load(registryPath(cmd))
		if err != nil {
			return err
		}

		err = r.EnforceConsistency()
		if err == nil {
			fmt.Println("consistent")
			return nil
		}

		var inconsistent *ckanreg.InconsistentError
		if !errors.As(err, &inconsistent) {
			return err
		}
		for _, u := range inconsistent.UnmetDependencies {
			fmt.Printf("unmet: %s (required by %v)\n", u.Identifier, u.Dependents)
		}
		for _, c := range inconsistent.Conflicts {
			fmt.Printf("conflict: %s <-> %s\n", c.A, c.B)
		}
		return fmt.Errorf("installed set is inconsistent")
	},
}
