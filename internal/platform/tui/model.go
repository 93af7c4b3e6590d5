package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-skirmish/internal/core"
	"github.com/vovakirdan/tui-skirmish/internal/registry"
)

// maxFrameStep caps how far one tick may advance animations.
const maxFrameStep = 100 * time.Millisecond

// helpLines is the room reserved below the battlefield.
const helpLines = 2

// BattleModel is the Bubble Tea model for planning turns in a scenario.
type BattleModel struct {
	skirmish   *Skirmish
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	lastTick   time.Time
	embedded   bool // back returns to the caller instead of quitting
	ownProgram bool // embedded, but the program exits on back
	quitting   bool
	backToMenu bool
}

// NewBattleModel creates a model for the given scenario.
func NewBattleModel(sc registry.Scenario, cfg core.RuntimeConfig, opts BattleOptions) (BattleModel, error) {
	sk, err := NewSkirmish(sc, opts)
	if err != nil {
		return BattleModel{}, err
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	h := help.New()
	h.Width = cfg.ScreenW
	return BattleModel{
		skirmish:  sk,
		screen:    core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpLines, 1)),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      h,
	}, nil
}

// Init starts the animation loop.
func (m BattleModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m BattleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-helpLines, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m BattleModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if i, ok := m.keyMapper.MoveIndex(msg); ok {
		m.skirmish.ChooseMove(i)
		return m, nil
	}

	switch b := m.keyMapper.MapKey(msg); b {
	case core.ButtonQuit:
		m.skirmish.Close()
		m.quitting = true
		return m, tea.Quit
	case core.ButtonMenu:
		m.help.ShowAll = !m.help.ShowAll
	case core.ButtonNone:
	default:
		if m.skirmish.Press(b) {
			m.skirmish.Close()
			if m.embedded {
				m.backToMenu = true
				if m.ownProgram {
					return m, tea.Quit
				}
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// handleTick advances animations by the real time since the last frame.
func (m BattleModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := time.Second / time.Duration(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = min(now.Sub(m.lastTick), maxFrameStep)
	}
	m.lastTick = now
	if dt > 0 {
		m.skirmish.Tick(dt)
	}
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *BattleModel) saveScreenshot() {
	m.skirmish.Draw(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".skirmish", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.skirmish.scenario.ID(), timestamp)

	//nolint:errcheck // Best-effort save, battle continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m BattleModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.skirmish.Draw(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keyMapper.Keys()))
	return b.String()
}

// Skirmish returns the turn planner behind the model.
func (m BattleModel) Skirmish() *Skirmish { return m.skirmish }

// IsQuitting returns true if user requested to quit entirely.
func (m BattleModel) IsQuitting() bool { return m.quitting }

// BackToMenu returns true if user requested to go back to menu.
func (m BattleModel) BackToMenu() bool { return m.backToMenu }

// Run starts the Bubble Tea program for one scenario.
func Run(sc registry.Scenario, cfg core.RuntimeConfig, opts BattleOptions) error {
	model, err := NewBattleModel(sc, cfg, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}

// RunEmbedded runs a battle started from the menu. Backing out of it exits
// the program with BackToMenu set instead of quitting.
func RunEmbedded(sc registry.Scenario, cfg core.RuntimeConfig, opts BattleOptions) (BattleModel, error) {
	model, err := NewBattleModel(sc, cfg, opts)
	if err != nil {
		return model, err
	}
	model.embedded = true
	model.ownProgram = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return model, err
	}
	if bm, ok := final.(BattleModel); ok {
		return bm, nil
	}
	return model, nil
}
