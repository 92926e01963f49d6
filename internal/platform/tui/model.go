package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// helpHeight is the number of rows reserved below the game for key hints.
const helpHeight = 1

// resizer is implemented by games that can adapt to a new terminal size
// without starting over.
type resizer interface {
	Resize(w, h int)
}

// Model is the Bubble Tea model that drives a single game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	fixedSeed  bool // seed came from the user; reuse it on restart
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	gameID     string
	inputFrame core.InputFrame
	gameState  core.GameState
	ended      bool // game over has been logged for gameID
	quitting   bool
}

// NewModel creates a model for the given game and starts the first round.
// A nil logger discards output.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		config:     cfg,
		fixedSeed:  fixed,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH))
	m.startGame()
	return m
}

// gameHeight returns the rows available to the game.
func gameHeight(h int) int {
	if h <= helpHeight {
		return 0
	}
	return h - helpHeight
}

// startGame resets the game with a fresh identifier for log correlation.
func (m *Model) startGame() {
	gameCfg := m.config
	gameCfg.ScreenH = gameHeight(m.config.ScreenH)

	m.gameID = uuid.NewString()
	m.ended = false
	m.game.Reset(gameCfg)
	m.gameState = m.game.State()

	m.logger.Info("game started",
		"game", m.game.ID(),
		"id", m.gameID,
		"seed", m.config.Seed,
		"screen", [2]int{gameCfg.ScreenW, gameCfg.ScreenH},
	)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the mapped action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.logger.Info("quit", "id", m.gameID, "score", m.gameState.Score)
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize adapts the screen buffer and lets the game relayout.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, gameHeight(msg.Height))

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, gameHeight(msg.Height))
	} else if !m.gameState.GameOver {
		m.startGame()
	}
	m.logger.Debug("resize", "id", m.gameID, "w", msg.Width, "h", msg.Height)

	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.startGame()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver && !m.ended {
		m.ended = true
		m.logger.Info("game over",
			"id", m.gameID,
			"score", m.gameState.Score,
			"level", m.gameState.Level,
			"lines", m.gameState.Lines,
		)
	}

	return m, tickCmd(m.config.TickRate)
}

// State returns the latest game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// GameID returns the identifier of the current round.
func (m Model) GameID() string {
	return m.gameID
}

// View renders the game followed by the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderFrame(m.screen, m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
