// Package world provides the terrain model and deterministic map generation.
// It has no dependencies on the game rules or any UI.
package world

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// Size is the width and height of the map in cells.
const Size = 32

// ErrOutOfBounds is returned by grid accessors for coordinates outside the map.
var ErrOutOfBounds = errors.New("world: coordinate out of bounds")

// BoundsError reports the offending coordinate of an out-of-bounds access.
type BoundsError struct {
	X, Y int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("world: coordinate (%d,%d) out of bounds", e.X, e.Y)
}

// Unwrap lets errors.Is match ErrOutOfBounds.
func (e *BoundsError) Unwrap() error {
	return ErrOutOfBounds
}

// InBounds returns true if (x, y) lies on the map.
func InBounds(x, y int) bool {
	return x >= 0 && x < Size && y >= 0 && y < Size
}

// Plane is one boolean attribute over the map, one word per row, bit index = column.
type Plane [Size]uint32

// Grid holds the two bitplanes of the map.
// Terrain marks water (true) against land; Bridge marks a built crossing.
// The planes are independent of each other.
type Grid struct {
	terrain Plane
	bridge  Plane
}

// NewGridFromRows rebuilds a grid from its raw row words.
func NewGridFromRows(terrain, bridge Plane) Grid {
	return Grid{terrain: terrain, bridge: bridge}
}

// Rows returns copies of both planes.
func (g *Grid) Rows() (terrain, bridge Plane) {
	return g.terrain, g.bridge
}

func checkBounds(x, y int) error {
	if !InBounds(x, y) {
		return &BoundsError{X: x, Y: y}
	}
	return nil
}

func (p *Plane) get(x, y int) (bool, error) {
	if err := checkBounds(x, y); err != nil {
		return false, err
	}
	return p[y]&(1<<uint(x)) != 0, nil
}

func (p *Plane) set(x, y int, value bool) error {
	if err := checkBounds(x, y); err != nil {
		return err
	}
	if value {
		p[y] |= 1 << uint(x)
	} else {
		p[y] &^= 1 << uint(x)
	}
	return nil
}

// Terrain reports whether the cell is water.
func (g *Grid) Terrain(x, y int) (bool, error) {
	return g.terrain.get(x, y)
}

// Bridge reports whether a bridge has been built on the cell.
func (g *Grid) Bridge(x, y int) (bool, error) {
	return g.bridge.get(x, y)
}

// SetTerrain marks the cell as water (true) or land (false).
func (g *Grid) SetTerrain(x, y int, water bool) error {
	return g.terrain.set(x, y, water)
}

// SetBridge builds (true) or removes (false) a bridge on the cell.
func (g *Grid) SetBridge(x, y int, bridge bool) error {
	return g.bridge.set(x, y, bridge)
}

// Walkable reports whether the cell can be entered: land always, water only with a bridge.
func (g *Grid) Walkable(x, y int) (bool, error) {
	water, err := g.Terrain(x, y)
	if err != nil {
		return false, err
	}
	bridge, err := g.Bridge(x, y)
	if err != nil {
		return false, err
	}
	return !(water && !bridge), nil
}

// WaterCount returns the number of water cells.
func (g *Grid) WaterCount() int {
	n := 0
	for _, row := range g.terrain {
		n += bits.OnesCount32(row)
	}
	return n
}

// BridgeCount returns the number of cells carrying a bridge.
func (g *Grid) BridgeCount() int {
	n := 0
	for _, row := range g.bridge {
		n += bits.OnesCount32(row)
	}
	return n
}

// String renders the terrain plane, '*' for water and '#' for land.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(Size*Size + Size)
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if g.terrain[y]&(1<<uint(x)) != 0 {
				sb.WriteByte('*')
			} else {
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
