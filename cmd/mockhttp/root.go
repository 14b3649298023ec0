package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mockhttp-project/mockhttp/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	debug     bool
	logFormat string
}

var rootCmd = &cobra.Command{
	Use:   "mockhttp",
	Short: "Inspect and exercise static mock HTTP endpoint fixtures",
	Long: "mockhttp lints endpoint fixture files and resolves requests against them\n" +
		"the same way the library would, without any network.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		level := slog.LevelInfo
		if rootFlags.debug {
			level = slog.LevelDebug
		}
		logging.Init(level, rootFlags.logFormat)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&rootFlags.debug, "debug", false, "Enable debug logging")
	pf.StringVar(&rootFlags.logFormat, "log-format", "text", "Log format: text or json")

	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.Version = version
}
