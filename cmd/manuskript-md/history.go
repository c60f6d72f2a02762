// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/manuskript-md/internal/catalog"
)

var historyCmd = &cobra.Command{
	Use:   "history [dir]",
	Short: "Show recent conversion runs recorded in an output directory",
	Long: `History lists the conversion runs recorded in a directory's local
catalog (.manuskript-md/catalog.db), newest first. The directory defaults
to the current one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := catalog.Open(dir)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Runs(context.Background(), limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No conversion runs recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-20s  %-40s  %s\n", "Run", "When", "Project", "Documents")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 80))
	for _, r := range runs {
		project := r.Project
		if len(project) > 40 {
			project = project[:37] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-20s  %-40s  %d\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), project, len(r.Documents))
	}
	return nil
}

func init() {
	historyCmd.Flags().Int("limit", 0, "maximum runs to list (0 = default)")

	rootCmd.AddCommand(historyCmd)
}
