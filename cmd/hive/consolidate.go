package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencoord/hive/pkg/consolidate"
	"github.com/opencoord/hive/pkg/database"
	"github.com/opencoord/hive/pkg/logstore"
)

func newConsolidateCmd() *cobra.Command {
	var (
		root string
		yes  bool
	)
	cmd := &cobra.Command{
		Use:   "consolidate",
		Short: "Fold stray per-directory logs into the global store",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			strays, err := consolidate.Scan(ctx, root)
			if err != nil {
				return err
			}
			plans := consolidate.BuildPlans(strays)
			if len(plans) == 0 {
				fmt.Println("No stray logs found")
				return nil
			}

			if jsonOutput && !yes {
				return printJSON(plans)
			}
			if !jsonOutput {
				fmt.Printf("Found %d stray log(s):\n", len(plans))
				for _, p := range plans {
					line := fmt.Sprintf("  %s  schema=%s rows=%d action=%s",
						p.Stray.Path, p.Stray.Schema, p.Stray.EstimatedRows, p.Action)
					if p.Reason != "" {
						line += " (" + p.Reason + ")"
					}
					fmt.Println(line)
				}
			}

			if !yes {
				fmt.Print("Proceed with migration? [y/N] ")
				reader := bufio.NewReader(os.Stdin)
				answer, _ := reader.ReadString('\n')
				if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
					fmt.Println("Aborted")
					return nil
				}
			}

			dbConfig, err := database.LoadConfigFromEnv()
			if err != nil {
				return err
			}
			dbClient, err := database.NewClient(ctx, dbConfig)
			if err != nil {
				return err
			}
			defer dbClient.Close()

			store := logstore.New(dbClient.DB())
			c := consolidate.New(store, dbClient.DB(), cfg.DefaultProject, newLogger())

			var reports []*consolidate.Report
			for _, p := range plans {
				if p.Action != consolidate.ActionMigrate {
					continue
				}
				report, err := c.Migrate(ctx, p)
				if err != nil {
					return err
				}
				reports = append(reports, report)
			}

			if jsonOutput {
				return printJSON(reports)
			}
			for _, r := range reports {
				fmt.Printf("%s -> %s\n", r.Path, r.RenamedTo)
				for table, counts := range r.Tables {
					fmt.Printf("  %s: migrated=%d skipped=%d\n", table, counts.Migrated, counts.Skipped)
				}
				for _, rowErr := range r.RowErrors {
					fmt.Printf("  warning: %s\n", rowErr)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&root, "root", ".", "directory to scan for stray logs")
	cmd.Flags().BoolVar(&yes, "yes", false, "migrate without prompting")
	return cmd
}
