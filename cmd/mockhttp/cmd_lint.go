package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mockhttp-project/mockhttp/fixture"
	"github.com/mockhttp-project/mockhttp/internal/logging"
)

var lintFlags struct {
	print bool
}

var lintCmd = &cobra.Command{
	Use:   "lint <fixture>...",
	Short: "Validate fixture files and report shadowed endpoints",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLint,
}

func init() {
	f := lintCmd.Flags()
	f.BoolVar(&lintFlags.print, "print", false, "Print the normalized declarations as YAML")
}

func runLint(cmd *cobra.Command, args []string) error {
	logger := logging.New("lint")
	out := cmd.OutOrStdout()

	for _, path := range args {
		file, err := fixture.LoadFile(path)
		if err != nil {
			return fmt.Errorf("lint %s: %w", path, err)
		}

		// Building the registry catches whatever validation tags cannot
		if _, err := file.Registry(); err != nil {
			return fmt.Errorf("lint %s: %w", path, err)
		}

		fmt.Fprintf(out, "%s: %d endpoint(s)\n", path, len(file.Endpoints))
		logger.Debug("fixture loaded", "path", path, "endpoints", len(file.Endpoints))

		// Report declarations unreachable under first-match-wins
		seen := make(map[string]int)
		for i, d := range file.Endpoints {
			key := d.Method + " " + d.URL
			if first, dup := seen[key]; dup {
				fmt.Fprintf(out, "  warning: endpoint %d (%s) is shadowed by endpoint %d\n", i, key, first)
				continue
			}
			seen[key] = i
		}

		if lintFlags.print {
			encoded, err := yaml.Marshal(file)
			if err != nil {
				return fmt.Errorf("print %s: %w", path, err)
			}
			fmt.Fprintf(out, "%s", encoded)
		}
	}

	return nil
}
