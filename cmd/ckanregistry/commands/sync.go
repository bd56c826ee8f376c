package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/ksp-mods/ckanreg"
	"github.com/ksp-mods/ckanreg/catalogsync"
	"github.com/ksp-mods/ckanreg/registrysnapshot"
	"github.com/spf13/cobra"
)

var SyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Refresh the available-module index from a catalog",
	Long: `Fetches the catalog document named by --sources (trying each mirror in
order), loads every release into the registry's available index, and
writes the result back to the snapshot file, printing what changed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sourcesPath, _ := cmd.Flags().GetString("sources")
		cfg, err := LoadSourcesConfig(sourcesPath)
		if err != nil {
			return err
		}

		path := registryPath(cmd)
		before, err := loadOrNew(path)
		if err != nil {
			return err
		}

		after, err := loadOrNew(path)
		if err != nil {
			return err
		}
		after.ClearAvailable()

		syncer := catalogsync.New(cfg.Mirrors, catalogsync.WithLogger(loggerFor(cmd)))
		defer syncer.Close()

		if err := syncer.Sync(context.Background(), after); err != nil {
			return fmt.Errorf("sync: %w", err)
		}

		diff := ckanreg.DiffAvailable(before, after, cfg.HostVersion)
		printDiff(diff)

		if err := registrysnapshot.Save(path, after); err != nil {
			return fmt.Errorf("save registry snapshot: %w", err)
		}
		fmt.Fprintf(os.Stdout, "saved %s\n", path)
		return nil
	},
}

func init() {
	SyncCmd.Flags().String("sources", "sources.yaml", "path to the sources config naming catalog mirrors")
}

func loadOrNew(path string) (*ckanreg.Registry, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return ckanreg.New(), nil
	}
	return registrysnapshot.Load(path)
}

func printDiff(d *ckanreg.CatalogDiff) {
	if d.IsEmpty() {
		fmt.Println("no changes")
		return
	}
	for _, m := range d.Added {
		fmt.Printf("+ %s %s\n", m.Identifier, m.Version)
	}
	for _, m := range d.Removed {
		fmt.Printf("- %s %s\n", m.Identifier, m.Version)
	}
	for _, u := range d.Upgraded {
		fmt.Printf("^ %s %s -> %s\n", u.Identifier, u.OldVersion, u.NewVersion)
	}
	for _, u := range d.Downgraded {
		fmt.Printf("v %s %s -> %s\n", u.Identifier, u.OldVersion, u.NewVersion)
	}
}
