// Package tetris provides the falling-block puzzle game for the arcade.
// The rules live in the core subpackage; this package adapts them to the
// platform's frame loop, input actions and screen buffer.
package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "tetris"

// Game implements registry.Game on top of core.Engine.
type Game struct {
	cfg    config.TetrisConfig
	rules  core.Rules
	colors []platformcore.Color

	engine *core.Engine
	frames core.FrameSlot

	// Timestamps handed to the engine are derived from frames advanced
	// while unpaused, so pausing freezes the drop timer.
	tick     uint64
	frameDur time.Duration

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// Package-level rules, set by the CLI before the game is created.
var activeConfig = config.DefaultTetrisConfig()

// SetConfig replaces the rules used by games created afterwards.
func SetConfig(cfg config.TetrisConfig) {
	activeConfig = cfg
}

// New creates a game using the rules set with SetConfig.
func New() *Game {
	return NewWithConfig(activeConfig)
}

// NewWithConfig creates a game with explicit rules.
func NewWithConfig(cfg config.TetrisConfig) *Game {
	return &Game{
		cfg:    cfg,
		rules:  RulesFromConfig(cfg),
		colors: cfg.ColorTable(),
	}
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          ID,
		Title:       "Tetris",
		Description: "Stack falling tetrominoes and clear lines",
	}, func() registry.Game {
		return New()
	})
}

// RulesFromConfig converts the YAML rules into engine rules.
func RulesFromConfig(cfg config.TetrisConfig) core.Rules {
	return core.Rules{
		Cols:          cfg.Board.Cols,
		Rows:          cfg.Board.Rows,
		DropIntervals: cfg.Levels.DropIntervals(),
		LinesPerLevel: cfg.Levels.LinesPerLevel,
		Points: core.Points{
			SoftDrop: cfg.Points.SoftDrop,
			HardDrop: cfg.Points.HardDrop,
			Single:   cfg.Points.Single,
			Double:   cfg.Points.Double,
			Triple:   cfg.Points.Triple,
			Tetris:   cfg.Points.Tetris,
		},
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset starts a new game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = platformcore.DefaultConfig().TickRate
	}
	g.frameDur = time.Second / time.Duration(tickRate)
	g.tick = 0
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	if g.engine != nil {
		g.engine.Reset()
	}
	g.frames = core.FrameSlot{}
	g.engine = core.NewEngine(g.rules, core.NewRandomGenerator(cfg.Seed, g.rules.Cols), &g.frames)
	g.engine.Start(g.now())
}

// Resize adapts to new terminal dimensions without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW := boardWidth(g.rules.Cols) + panelGap + panelWidth
	minH := g.rules.Rows + 2
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step applies the frame's actions in order and then lets the engine tick
// if it has a frame pending.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	running := g.engine.Status() == core.StatusRunning

	for _, a := range in.Actions() {
		switch a {
		case platformcore.ActionPause:
			if running && !g.tooSmall {
				g.paused = !g.paused
			}
		case platformcore.ActionGiveUp:
			g.engine.Apply(core.InputQuit)
		default:
			if g.paused || g.tooSmall {
				continue
			}
			if kind, ok := InputFor(a); ok {
				g.engine.Apply(kind)
			}
		}
	}

	if !g.paused && !g.tooSmall && g.engine.Status() == core.StatusRunning {
		g.tick++
		if _, ok := g.frames.Take(); ok {
			g.engine.Tick(g.now())
		}
	}

	return platformcore.StepResult{State: g.State()}
}

// InputFor maps a platform action to an engine input.
func InputFor(a platformcore.Action) (core.Input, bool) {
	switch a {
	case platformcore.ActionLeft:
		return core.InputLeft, true
	case platformcore.ActionRight:
		return core.InputRight, true
	case platformcore.ActionDown:
		return core.InputDown, true
	case platformcore.ActionRotate:
		return core.InputRotate, true
	case platformcore.ActionHardDrop:
		return core.InputHardDrop, true
	case platformcore.ActionGiveUp:
		return core.InputQuit, true
	default:
		return core.InputNone, false
	}
}

func (g *Game) now() time.Duration {
	return time.Duration(g.tick) * g.frameDur
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	stats := g.engine.Stats()
	return platformcore.GameState{
		Score:    stats.Score,
		Level:    stats.Level,
		Lines:    stats.LinesCleared,
		GameOver: g.engine.Status() == core.StatusGameOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// Snapshot exposes the engine state for tests and tooling.
func (g *Game) Snapshot() core.Snapshot {
	return g.engine.Snapshot()
}
