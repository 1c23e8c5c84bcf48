package riverwood

import (
	"errors"

	"github.com/vovakirdan/riverwood/internal/core"
	"github.com/vovakirdan/riverwood/internal/world"
)

const (
	// DefaultAutosaveInterval is the number of ticks between autosaves.
	DefaultAutosaveInterval = 600
	// DefaultHarvestYield is the wood awarded per chopped tree.
	DefaultHarvestYield = 3

	// ViewRows is the height of the visible map window.
	ViewRows = 20
	// ScrollThreshold is the player row past which the window follows.
	ScrollThreshold = 10
)

// ErrNoStorage is returned by Save when no storage is attached.
var ErrNoStorage = errors.New("riverwood: no storage attached")

// Options tune the simulation rules.
type Options struct {
	AutosaveInterval uint64 // 0 disables autosave
	HarvestYield     uint8
	StartX, StartY   uint8
}

// DefaultOptions returns the standard rule set.
func DefaultOptions() Options {
	return Options{
		AutosaveInterval: DefaultAutosaveInterval,
		HarvestYield:     DefaultHarvestYield,
	}
}

// LoadOutcome tells how Load obtained its state.
type LoadOutcome int

const (
	Fresh     LoadOutcome = iota // generated from the seed
	Restored                     // decoded from storage
	Discarded                    // a record existed but could not be decoded
)

func (o LoadOutcome) String() string {
	switch o {
	case Fresh:
		return "fresh"
	case Restored:
		return "restored"
	case Discarded:
		return "discarded"
	default:
		return "unknown"
	}
}

// State is the whole simulation: world, player, inventory and tick counter.
// It is owned by a single goroutine.
type State struct {
	world  world.Map
	player Player
	inv    Inventory
	tick   uint64
	opts   Options
	store  Storage
}

// NewState generates a fresh world for seed with the player at the start cell facing up.
func NewState(seed uint64, opts Options) *State {
	return &State{
		world:  world.Generate(seed),
		player: Player{X: opts.StartX, Y: opts.StartY, Dir: Up},
		opts:   opts,
	}
}

// FromRecord rebuilds a state verbatim from a decoded record.
// The river control points are not persisted and read as zero.
func FromRecord(r Record, opts Options) *State {
	return &State{
		world:  world.Map{Grid: r.Grid, Trees: r.Trees},
		player: r.Player,
		inv:    r.Inventory,
		tick:   r.Tick,
		opts:   opts,
	}
}

// Load restores the stored state when resume is set and the record decodes,
// otherwise generates a fresh world from seed. The store is attached either way.
func Load(store Storage, resume bool, seed uint64, opts Options) (*State, LoadOutcome) {
	outcome := Fresh
	if resume && store != nil && store.HasRecord() {
		if r, ok := store.ReadRecord(); ok {
			s := FromRecord(r, opts)
			s.store = store
			return s, Restored
		}
		outcome = Discarded
	}

	s := NewState(seed, opts)
	s.store = store
	return s, outcome
}

// SetStorage attaches the storage used by Save and autosave.
func (s *State) SetStorage(store Storage) {
	s.store = store
}

// Step advances the simulation by one tick:
// facing and movement, harvest, build, tick increment, then autosave.
func (s *State) Step(in core.InputFrame) core.StepResult {
	var res core.StepResult
	if !in.Empty() {
		s.steer(in)
		if in.JustPressed(core.ActionHarvest) {
			before := s.inv.Get(WoodPlank)
			res.Felled = s.harvest()
			res.Gained = int(s.inv.Get(WoodPlank) - before)
		}
		if in.JustPressed(core.ActionBuild) {
			res.Built = s.build()
		}
	}

	s.tick++
	res.Tick = s.tick

	if s.autosaveDue() {
		res.Err = s.Save()
		res.Saved = res.Err == nil
	}
	return res
}

func (s *State) autosaveDue() bool {
	return s.store != nil && s.opts.AutosaveInterval > 0 && s.tick%s.opts.AutosaveInterval == 0
}

// Save writes the current state to the attached storage.
func (s *State) Save() error {
	if s.store == nil {
		return ErrNoStorage
	}
	return s.store.WriteRecord(s.Record())
}

// steer faces the first held direction and moves on its press edge.
func (s *State) steer(in core.InputFrame) {
	for _, a := range core.Directions {
		if !in.IsHeld(a) {
			continue
		}
		dir, _ := directionFor(a)
		s.player.Dir = dir
		if in.JustPressed(a) {
			s.move(dir)
		}
		return
	}
}

func (s *State) move(dir Direction) {
	x, y := s.player.Ahead(dir)
	ok, err := s.world.Grid.Walkable(x, y)
	if err != nil || !ok || s.world.Trees.ActiveAt(x, y) {
		return
	}
	s.player.X, s.player.Y = uint8(x), uint8(y)
}

// harvest chops every active tree next to the player and returns how many fell.
func (s *State) harvest() int {
	n := 0
	for i := range s.world.Trees {
		t := &s.world.Trees[i]
		if !t.Active() || !s.player.NextTo(int(t.X), int(t.Y)) {
			continue
		}
		t.Activity = 0
		s.inv.Add(WoodPlank, s.opts.HarvestYield)
		n++
	}
	return n
}

// build lays a bridge on the water cell the player faces, paying one plank.
func (s *State) build() bool {
	x, y := s.player.Facing()
	water, err := s.world.Grid.Terrain(x, y)
	if err != nil || !water {
		return false
	}
	if bridged, _ := s.world.Grid.Bridge(x, y); bridged {
		return false
	}
	if s.inv.Get(WoodPlank) == 0 {
		return false
	}
	s.inv.Sub(WoodPlank, 1)
	return s.world.Grid.SetBridge(x, y, true) == nil
}

// Map returns a copy of the world.
func (s *State) Map() world.Map {
	return s.world
}

// Player returns the player position and facing.
func (s *State) Player() Player {
	return s.player
}

// Inventory returns a copy of the inventory.
func (s *State) Inventory() Inventory {
	return s.inv
}

// Tick returns the number of steps taken since the world was generated.
func (s *State) Tick() uint64 {
	return s.tick
}

// Options returns the rules the state runs with.
func (s *State) Options() Options {
	return s.opts
}

// ScrollOffset returns the first map row of the visible window.
// The window starts following once the player passes ScrollThreshold and
// stops when its bottom reaches the last row.
func (s *State) ScrollOffset() int {
	off := int(s.player.Y) - ScrollThreshold
	return core.Clamp(off, 0, world.Size-ViewRows)
}
