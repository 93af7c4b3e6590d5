package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-skirmish/internal/platform/tui"
	"github.com/vovakirdan/tui-skirmish/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start skirmish with a scenario picker menu",
	Long: `Start skirmish in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a scenario.
Backing out of a battle returns you to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select scenario
  Tab          - Selection history
  Q            - Quit

Examples:
  skirmish menu
  skirmish menu --fps 30
  skirmish menu --db ./history.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	sess := openSession(cfg)
	defer sess.Close()

	rc := runtimeConfig(cfg)

	for {
		menuResult, err := tui.RunMenu(rc)
		if err != nil {
			sess.Close()
			fatal("%v", err)
		}
		rc = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsHistory {
			goBack, err := tui.RunHistory(sess.store, rc.ScreenW, rc.ScreenH)
			if err != nil {
				sess.Close()
				fatal("%v", err)
			}
			if !goBack {
				return
			}
			continue
		}

		sc, err := registry.Create(menuResult.ScenarioID)
		if err != nil {
			sess.Close()
			fatal("%v", err)
		}
		model, err := tui.RunEmbedded(sc, rc, sess.opts)
		if err != nil {
			sess.Close()
			fatal("running battle: %v", err)
		}
		if model.IsQuitting() {
			return
		}
	}
}
