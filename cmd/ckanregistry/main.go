// Command ckanregistry is a thin CLI front-end over the ckanreg
// registry: it is an external caller, not part of the package it drives
// — it only ever touches ckanreg through the same public API any other
// caller would use.
package main

import (
	"fmt"
	"os"

	"github.com/ksp-mods/ckanreg/cmd/ckanregistry/commands"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "ckanregistry",
	Short: "Inspect and maintain a mod registry snapshot",
	Long: `ckanregistry drives a ckanreg.Registry snapshot from the command line:
syncing it against a catalog, listing what's available, checking the
installed set for consistency, and previewing a removal's blast radius.

Examples:
  ckanregistry sync --sources sources.yaml
  ckanregistry list --host-version 1.12.2
  ckanregistry check
  ckanregistry remove SomeMod`,
	Version:      version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("registry", "registry.json", "path to the registry snapshot file")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug-level logging")

	rootCmd.AddCommand(commands.SyncCmd)
	rootCmd.AddCommand(commands.ListCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.RemoveCmd)
	rootCmd.AddCommand(commands.InfoCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
