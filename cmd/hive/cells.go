package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/opencoord/hive/pkg/models"
)

// maxCellTitle is the widest title the cells table renders before
// truncating.
const maxCellTitle = 47

func newCellsCmd() *cobra.Command {
	var serverURL string
	cmd := &cobra.Command{
		Use:   "cells",
		Short: "Show the cells projection as a tree table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if serverURL == "" {
				serverURL = fmt.Sprintf("http://localhost:%d", cfg.HTTPPort)
			}

			resp, err := http.Get(fmt.Sprintf("%s/cells?project=%s", serverURL, cfg.DefaultProject))
			if err != nil {
				return fmt.Errorf("server unreachable: %w (is hived running?)", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("server returned %s", resp.Status)
			}

			var body models.CellsResponse
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				return fmt.Errorf("malformed response: %w", err)
			}
			cells := body.Cells

			if jsonOutput {
				return printJSON(cells)
			}
			if len(cells) == 0 {
				fmt.Println("No cells found")
				return nil
			}

			fmt.Printf("%-24s  %-47s  %-12s  %s\n", "id", "title", "status", "priority")
			for _, c := range cells {
				printCell(c, 0)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&serverURL, "server", "", "server base URL (default http://localhost:$HTTP_PORT)")
	return cmd
}

func printCell(c *models.CellNode, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	title := c.Title
	if len(title) > maxCellTitle {
		title = title[:maxCellTitle-1] + "…"
	}
	fmt.Printf("%-24s  %-47s  %-12s  %d\n", indent+c.ID, title, c.Status, c.Priority)
	for _, child := range c.Children {
		printCell(child, depth+1)
	}
}
