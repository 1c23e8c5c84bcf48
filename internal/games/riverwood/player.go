package riverwood

import (
	"github.com/vovakirdan/riverwood/internal/core"
	"github.com/vovakirdan/riverwood/internal/world"
)

// Direction is the way the player faces.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Code returns the save-record code of the direction.
func (d Direction) Code() uint8 {
	switch d {
	case Up:
		return 0
	case Down:
		return 1
	case Left:
		return 2
	case Right:
		return 3
	default:
		panic("riverwood: invalid direction")
	}
}

// DirectionFromCode maps a save-record code back to a direction.
func DirectionFromCode(c uint8) (Direction, bool) {
	switch c {
	case 0:
		return Up, true
	case 1:
		return Down, true
	case 2:
		return Left, true
	case 3:
		return Right, true
	default:
		return Up, false
	}
}

// Delta returns the unit offset for one step in the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// directionFor maps a movement action to its direction.
func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return Up, true
	case core.ActionDown:
		return Down, true
	case core.ActionLeft:
		return Left, true
	case core.ActionRight:
		return Right, true
	default:
		return Up, false
	}
}

// Player is the avatar position and facing. Position is always on the grid.
type Player struct {
	X   uint8
	Y   uint8
	Dir Direction
}

// Ahead returns the cell one step from the player in direction d.
// Each axis saturates at the map edge, so a step off the map stays in place.
func (p Player) Ahead(d Direction) (x, y int) {
	dx, dy := d.Delta()
	return core.Clamp(int(p.X)+dx, 0, world.Size-1), core.Clamp(int(p.Y)+dy, 0, world.Size-1)
}

// Facing returns the cell the player looks at.
func (p Player) Facing() (x, y int) {
	return p.Ahead(p.Dir)
}

// NextTo reports whether (x, y) is orthogonally adjacent to the player.
func (p Player) NextTo(x, y int) bool {
	return core.Manhattan(int(p.X), int(p.Y), x, y) == 1
}
