package commands

import (
	"fmt"

	"github.com/ksp-mods/ckanreg/registrysnapshot"
	"github.com/spf13/cobra"
)

var RemoveCmd = &cobra.Command{
	Use:   "remove <identifier>...",
	Short: "Preview (or apply) removing modules and their dependents",
	Long: `Computes the reverse-dependency closure of the given identifiers — every
module that would be left with an unmet dependency once the seed set is
gone — and prints it. Pass --apply to actually deregister the whole
closure; without it, remove is a dry run.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		apply, _ := cmd.Flags().GetBool("apply")
		path := registryPath(cmd)

		r, err := registrysnapshot.Load(path)
		if err != nil {
			return err
		}

		closure := r.FindReverseDependencies(args)
		for _, identifier := range closure {
			fmt.Fprintln(cmd.OutOrStdout(), identifier)
		}

		if !apply {
			return nil
		}
		for _, identifier := range closure {
			r.DeregisterModule(identifier)
		}
		if err := registrysnapshot.Save(path, r); err != nil {
			return fmt.Errorf("save registry snapshot: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "removed %d module(s)\n", len(closure))
		return nil
	},
}

func init() {
	RemoveCmd.Flags().Bool("apply", false, "deregister the whole closure instead of only previewing it")
}
