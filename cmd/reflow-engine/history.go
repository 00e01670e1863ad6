// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/reflow-engine/internal/history"
	"github.com/pdiddy/reflow-engine/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded processing runs",
	Long: `History lists or searches the processing-run database written by
process --history-dir. Search uses FTS5 full-text queries over the
rendered output of each run.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent processing runs, newest first",
	RunE:  runHistoryList,
}

var historySearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Full-text search over recorded outputs",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistorySearch,
}

func init() {
	historyCmd.PersistentFlags().String("history-dir", "history", "directory holding the history database")
	historyCmd.PersistentFlags().Int("limit", 0, "maximum results (default 20)")
	historyCmd.PersistentFlags().Bool("json", false, "output as JSON")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historySearchCmd)
	rootCmd.AddCommand(historyCmd)
}

func historyStore(cmd *cobra.Command) (*history.Store, error) {
	dir, _ := cmd.Flags().GetString("history-dir")
	return history.NewStore(types.HistoryConfig{HistoryDir: dir})
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := historyStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.List(context.Background(), limit)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-5s  %-30s  %-6s  %-6s  %-9s  %s\n",
		"ID", "Source", "Pages", "Conf", "Format", "Processed")
	for _, run := range runs {
		fmt.Fprintf(os.Stdout, "%-5d  %-30s  %-6d  %-6.1f  %-9s  %s\n",
			run.ID, truncate(run.Source, 30), run.PageCount, run.AverageConfidence,
			run.OutputFormat, run.ProcessedAt.Format(time.RFC3339))
	}
	fmt.Fprintf(os.Stdout, "\n%d runs\n", len(runs))
	return nil
}

func runHistorySearch(cmd *cobra.Command, args []string) error {
	store, err := historyStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	results, err := store.Search(context.Background(), args[0], limit)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	for i, r := range results {
		fmt.Fprintf(os.Stdout, "%d. %s (run %d, %s)\n   %s\n",
			i+1, r.Source, r.ID, r.ProcessedAt.Format(time.RFC3339), r.Snippet)
	}
	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
