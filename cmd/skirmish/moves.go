package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-skirmish/internal/battle"
)

var movesCmd = &cobra.Command{
	Use:   "moves",
	Short: "List the move dex",
	Long:  `Shows every move with its type, category, power, PP and targeting.`,
	Run:   runMoves,
}

func runMoves(_ *cobra.Command, _ []string) {
	moves := battle.Standard().Moves()

	fmt.Printf("  %-14s  %-16s  %-9s  %-8s  %5s  %3s  %s\n", "ID", "Name", "Type", "Category", "Power", "PP", "Target")
	fmt.Printf("  %-14s  %-16s  %-9s  %-8s  %5s  %3s  %s\n", "--", "----", "----", "--------", "-----", "--", "------")
	for _, m := range moves {
		power := "-"
		if m.Power > 0 {
			power = fmt.Sprint(m.Power)
		}
		fmt.Printf("  %-14s  %-16s  %-9s  %-8s  %5s  %3d  %s\n", m.ID, m.Name, m.Type, m.Category, power, m.PP, m.Target)
	}
}
