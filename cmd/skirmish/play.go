package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-skirmish/internal/platform/tui"
	"github.com/vovakirdan/tui-skirmish/internal/registry"
	"github.com/vovakirdan/tui-skirmish/internal/scenario"
)

var flagField string

var playCmd = &cobra.Command{
	Use:   "play [scenario]",
	Short: "Plan turns in a scenario",
	Long: `Start a battle in the specified scenario.

Pick a move for each ally, then choose its target. The focused target
flashes and the info panel shows how effective the move is against it.

Controls:
  Arrows/WASD/HJKL  - Move the cursor
  1-4               - Pick a move directly
  Enter/Space/Z     - Confirm
  Esc/B/X           - Cancel or undo
  ?                 - Toggle help
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

A roster file replaces the built-in scenarios:

  name: Rain team
  ally:
    - species: Gyarados
      moves: [surf, ice-beam, protect, haze]
  enemy:
    - species: Garchomp
      hp: 60
      moves: [earthquake, outrage]

Examples:
  skirmish play doubles
  skirmish play outnumbered --sound
  skirmish play --field ./rain.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagField, "field", "", "Path to a roster YAML")
}

func runPlay(_ *cobra.Command, args []string) {
	id := ""
	if len(args) > 0 {
		id = args[0]
	}
	if id == "" && flagField == "" {
		fatal("a scenario or --field is required")
	}
	if flagField == "" && !registry.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown scenario %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'skirmish list' to see available scenarios.")
		os.Exit(1)
	}

	sc, err := scenario.Load(id, flagField)
	if err != nil {
		fatal("%v", err)
	}

	cfg := loadConfig()
	sess := openSession(cfg)
	runErr := tui.Run(sc, runtimeConfig(cfg), sess.opts)

	// Close before potential exit
	sess.Close()

	if runErr != nil {
		fatal("running battle: %v", runErr)
	}
}
