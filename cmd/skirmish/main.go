// skirmish is a terminal double battle built around target selection.
//
// Usage:
//
//	skirmish list                - List available scenarios
//	skirmish play <scenario>     - Plan turns in a scenario
//	skirmish menu                - Pick scenarios interactively
//	skirmish serve               - Start SSH server for remote play
//	skirmish history [scenario]  - Show recorded target selections
//	skirmish moves               - List the move dex
//
// Global flags:
//
//	--config <path>  - Settings YAML (default: search ~/.skirmish/configs, ./configs)
//	--fps <rate>     - Set tick rate (default: from config, 60)
//	--db <path>      - Set database path (default: ~/.skirmish/history.db)
//	--log <path>     - Write a debug log file
//	--sound          - Play the select tone
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-skirmish/internal/audio"
	"github.com/vovakirdan/tui-skirmish/internal/config"
	"github.com/vovakirdan/tui-skirmish/internal/core"
	"github.com/vovakirdan/tui-skirmish/internal/platform/tui"
	"github.com/vovakirdan/tui-skirmish/internal/storage"
	"github.com/vovakirdan/tui-skirmish/internal/targetsel"

	// Import scenarios to register them
	_ "github.com/vovakirdan/tui-skirmish/internal/scenario"
)

var (
	// Global flags
	flagConfig string
	flagFPS    int
	flagDBPath string
	flagLog    string
	flagSound  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skirmish",
	Short: "Skirmish - plan double battles in your terminal",
	Long: `Skirmish is a terminal double battle on a 2x2 field. Pick a move for
each of your combatants, then aim it with the target selector: the focused
target flashes and the info panel previews how effective the move will be.

Available commands:
  list     - Show all available scenarios
  play     - Plan turns in a specific scenario
  menu     - Interactive scenario picker
  serve    - Start SSH server for remote play
  history  - View recorded target selections
  moves    - List the move dex

Examples:
  skirmish list
  skirmish play doubles
  skirmish play custom --field ./my-field.yaml
  skirmish menu --sound
  skirmish serve --ssh :2222
  skirmish history doubles`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database (default: ~/.skirmish/history.db)")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Write a debug log to this file")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play the select tone")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(movesCmd)
}

// fatal prints an error the way every command reports failure and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig reads settings and applies command line overrides.
func loadConfig() config.SkirmishConfig {
	cfg, err := config.LoadSkirmish(flagConfig)
	if err != nil {
		fatal("%v", err)
	}
	if flagFPS > 0 {
		cfg.UI.TickRate = flagFPS
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagSound {
		cfg.UI.Sound = true
	}
	if err := cfg.Validate(); err != nil {
		fatal("%v", err)
	}
	return cfg
}

// highlightOptions converts settings to the target flash options.
func highlightOptions(cfg config.SkirmishConfig) targetsel.HighlightOptions {
	ease, err := cfg.Highlight.EaseFunc()
	if err != nil {
		fatal("%v", err)
	}
	return targetsel.HighlightOptions{
		Period:   cfg.Highlight.Period(),
		MinAlpha: cfg.Highlight.MinAlpha,
		Ease:     ease,
	}
}

// runtimeConfig sizes the battle to the terminal.
func runtimeConfig(cfg config.SkirmishConfig) core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.UI.TickRate,
	}
}

// session holds what a local battle needs beyond the scenario. Close
// releases all of it.
type session struct {
	opts    tui.BattleOptions
	store   *storage.Store
	sound   *audio.SoundManager
	logFile *os.File
}

func openSession(cfg config.SkirmishConfig) *session {
	s := &session{}
	s.opts.Highlight = highlightOptions(cfg)

	if flagLog != "" {
		f, err := os.OpenFile(flagLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fatal("cannot open log file: %v", err)
		}
		s.logFile = f
		logger := log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "skirmish",
			Level:           log.DebugLevel,
		})
		s.opts.Logger = logger
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		// Continue without storage - selection still works
	} else {
		s.store = store
		s.opts.Store = store
	}

	if cfg.UI.Sound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
		} else {
			s.sound = sm
			s.opts.Sound = sm
		}
	}
	return s
}

func (s *session) Close() {
	if s.sound != nil {
		s.sound.Cleanup()
	}
	if s.store != nil {
		s.store.Close()
	}
	if s.logFile != nil {
		s.logFile.Close()
	}
}
