package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-skirmish/internal/platform/tui"
	"github.com/vovakirdan/tui-skirmish/internal/registry"
	"github.com/vovakirdan/tui-skirmish/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [scenario]",
	Short: "Show recorded target selections",
	Long: `Display the target selections recorded during battles.

Without --plain an interactive table opens; Tab switches scenarios.
With --plain the most recent selections are printed, followed by how
often each slot was picked.

Examples:
  skirmish history
  skirmish history doubles --plain
  skirmish history doubles --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print instead of opening the table")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of selections to print")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded selections")
}

func runHistory(_ *cobra.Command, args []string) {
	scenarioID := ""
	if len(args) > 0 {
		scenarioID = args[0]
		if !registry.Exists(scenarioID) && scenarioID != "custom" {
			fatal("unknown scenario %q", scenarioID)
		}
	}

	cfg := loadConfig()
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fatal("opening history database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearSelections(scenarioID); err != nil {
			store.Close()
			fatal("%v", err)
		}
		fmt.Println("History cleared.")
		return
	}

	if !flagPlain {
		rc := runtimeConfig(cfg)
		if _, err := tui.RunHistory(store, rc.ScreenW, rc.ScreenH); err != nil {
			store.Close()
			fatal("%v", err)
		}
		return
	}

	selections, err := store.RecentSelections(scenarioID, flagLimit)
	if err != nil {
		store.Close()
		fatal("retrieving history: %v", err)
	}

	title := "all scenarios"
	if scenarioID != "" {
		title = scenarioID
	}
	fmt.Printf("Selections - %s\n", title)
	fmt.Println()

	if len(selections) == 0 {
		fmt.Println("No selections recorded yet.")
		return
	}

	fmt.Printf("  %-12s  %-10s  %-14s  %-10s  %-6s  %s\n", "Scenario", "Actor", "Move", "Target", "Effect", "Date")
	fmt.Printf("  %-12s  %-10s  %-14s  %-10s  %-6s  %s\n", "--------", "-----", "----", "------", "------", "----")
	// rows: actor, move, target, effect, date
	for i, row := range tui.HistoryRows(selections) {
		fmt.Printf("  %-12s  %-10s  %-14s  %-10s  %-6s  %s\n", selections[i].ScenarioID, row[0], row[1], row[2], row[3], row[4])
	}

	if scenarioID == "" {
		printTotals(store)
		return
	}
	counts, err := store.TargetCounts(scenarioID)
	if err != nil || len(counts) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("Most picked:")
	for _, c := range counts {
		fmt.Printf("  slot %d  %-10s  %d\n", c.Target, c.TargetName, c.Count)
	}
}

// printTotals lists per-scenario counts across the whole history.
func printTotals(store *storage.Store) {
	stats, err := store.GetAllScenarioStats()
	if err != nil || len(stats) == 0 {
		return
	}
	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Println()
	fmt.Printf("  %-12s  %10s  %9s  %s\n", "Scenario", "Selections", "Cancelled", "Last played")
	for _, id := range ids {
		st := stats[id]
		fmt.Printf("  %-12s  %10d  %9d  %s\n", id, st.Selections, st.Cancelled, st.LastPlayed.Format("2006-01-02 15:04"))
	}
}
