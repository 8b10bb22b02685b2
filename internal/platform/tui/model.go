package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// summarizer is implemented by games that report run detail.
type summarizer interface {
	Summary() core.RunSummary
}

// Model is the Bubble Tea model that hosts a game: it turns key presses
// into input frames, schedules ticks and renders frames.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	input     *core.InputState
	holds     *HoldTracker
	gameState core.GameState
	quitting  bool
	recorded  bool // Whether the current session has been saved
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		store:  store,
		logger: log.New(io.Discard),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   h,
		input:  core.NewInputState(),
		holds:  NewHoldTracker(DefaultHoldWindow),
	}
}

// WithLogger returns a copy of the model that reports session events to logger.
func (m Model) WithLogger(logger *log.Logger) Model {
	if logger != nil {
		m.logger = logger
	}
	return m
}

// WithHoldWindow returns a copy of the model using a custom hold window.
func (m Model) WithHoldWindow(window time.Duration) Model {
	m.holds = NewHoldTracker(window)
	return m
}

// playfieldHeight leaves one row for the help footer.
func playfieldHeight(h int) int {
	if h > 1 {
		return h - 1
	}
	return 1
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionNone:
		return m, nil

	case core.ActionQuit:
		if !m.recorded && !m.gameState.GameOver {
			m.record(storage.OutcomeQuit)
		}
		m.quitting = true
		return m, tea.Quit

	case core.ActionRestart:
		if m.gameState.GameOver {
			return m.restart()
		}
		return m, nil

	case core.ActionLeft, core.ActionRight:
		if released := m.holds.Press(action, now); released != core.ActionNone {
			m.input.Release(released)
		}
		m.input.Press(action)

	default:
		// Every key event is a fresh edge: terminals report no releases.
		m.input.Press(action)
		m.input.Release(action)
	}

	return m, nil
}

// handleResize processes window resize events.
// The world is scaled to the screen, so the session continues unchanged.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation tick. Once the session has ended no
// further tick is scheduled until restart.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.gameState.GameOver {
		return m, nil
	}

	for _, a := range m.holds.Expire(now) {
		m.input.Release(a)
	}

	result := m.game.Step(m.input.Frame())
	m.gameState = result.State

	for _, e := range result.Events {
		m.logger.Debug("game event", "game", m.game.ID(), "event", e.Type, "value", e.Value)
	}

	if m.gameState.GameOver {
		outcome := storage.OutcomeGameOver
		if m.gameState.Won {
			outcome = storage.OutcomeWon
		}
		m.record(outcome)
		return m, nil
	}

	return m, tickCmd(m.config.TickRate)
}

// restart begins a new session and re-arms the tick loop.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.recorded = false
	m.input.Reset()
	m.holds.Reset()
	m.logger.Debug("session restarted", "game", m.game.ID())
	return m, tickCmd(m.config.TickRate)
}

// record saves the session's score and run record once.
func (m *Model) record(outcome string) {
	if m.recorded {
		return
	}
	m.recorded = true

	state := m.game.State()
	run := storage.RunRecord{
		GameID:  m.game.ID(),
		Outcome: outcome,
		Score:   state.Score,
		Lives:   state.Lives,
	}
	if s, ok := m.game.(summarizer); ok {
		sum := s.Summary()
		run.Kills = sum.Kills
		run.GoalScore = sum.GoalScore
		run.Ticks = sum.Ticks
	}

	m.logger.Info("session ended", "game", run.GameID, "outcome", outcome, "score", run.Score, "kills", run.Kills)

	if m.store == nil {
		return
	}
	// Abandoned runs are logged but do not enter the high score table.
	if outcome != storage.OutcomeQuit && state.Score > 0 {
		if _, err := m.store.SaveScore(run.GameID, state.Score); err != nil {
			m.logger.Warn("could not save score", "error", err)
		}
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".platformer", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.gameState.GameOver {
		footer = m.help.ShortHelpView([]key.Binding{m.keys.Restart, m.keys.Quit})
	}

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(footer)
}

// State returns the last game state seen by the host.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(model Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
