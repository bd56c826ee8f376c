package commands

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

// loggerFor builds the colorized console logger for cmd's human-facing
// output, honoring the --verbose persistent flag set on the root
// command. The sync command hands it to catalogsync.WithLogger; no
// command passes a logger to the core registry.
func loggerFor(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	}))
}

func registryPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("registry")
	return path
}
