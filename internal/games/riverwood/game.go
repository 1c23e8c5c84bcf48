// Package riverwood implements the river-crossing exploration game: player
// movement over the generated world, tree harvesting, bridge building and the
// fixed-layout save record.
package riverwood

import (
	"github.com/vovakirdan/riverwood/internal/core"
)

// Game binds a State to its storage slot and draws it into a core.Screen.
// The platform owns timing and input mapping; Game owns the rules.
type Game struct {
	store   Storage
	opts    Options
	state   *State
	outcome LoadOutcome
	shade   shading

	screenW int
	screenH int
}

// New creates a game that loads from and saves to store. store may be nil.
func New(store Storage, opts Options) *Game {
	return &Game{
		store: store,
		opts:  opts,
		shade: newShading(shadeSeed),
	}
}

// ID returns the game identifier used for logs and slot names.
func (g *Game) ID() string {
	return "riverwood"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Riverwood"
}

// Reset loads the save slot or generates a fresh world.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.state, g.outcome = Load(g.store, cfg.Resume, cfg.Seed, g.opts)
}

// Resize updates the screen dimensions used by Render.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state == nil {
		return core.StepResult{}
	}
	return g.state.Step(in)
}

// Save writes the current state to the slot.
func (g *Game) Save() error {
	if g.state == nil {
		return ErrNoStorage
	}
	return g.state.Save()
}

// State returns the running simulation, nil before Reset.
func (g *Game) State() *State {
	return g.state
}

// Outcome reports how the last Reset obtained its state.
func (g *Game) Outcome() LoadOutcome {
	return g.outcome
}
