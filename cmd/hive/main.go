// hive is the operator CLI: queue control, log tailing, the cells table,
// and stray-log consolidation.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/opencoord/hive/pkg/config"
	"github.com/opencoord/hive/pkg/version"
)

var (
	jsonOutput  bool
	projectFlag string
)

func main() {
	root := &cobra.Command{
		Use:           "hive",
		Short:         "Multi-agent coordination CLI",
		Version:       version.Full(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit structured JSON output")
	root.PersistentFlags().StringVar(&projectFlag, "project", "", "project key (defaults to HIVE_PROJECT)")

	root.AddCommand(newQueueCmd())
	root.AddCommand(newLogCmd())
	root.AddCommand(newCellsCmd())
	root.AddCommand(newConsolidateCmd())

	if err := root.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

// loadConfig resolves CLI configuration, applying the --project override.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if projectFlag != "" {
		cfg.DefaultProject = projectFlag
	}
	return cfg, nil
}

// printError renders a failure as JSON or a one-line message with a hint.
func printError(err error) {
	if jsonOutput {
		buf, _ := json.Marshal(map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		fmt.Fprintln(os.Stderr, string(buf))
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

// printJSON emits any value as indented JSON.
func printJSON(v interface{}) error {
	buf, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(buf))
	return nil
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}
