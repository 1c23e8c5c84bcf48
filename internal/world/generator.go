package world

import (
	"strings"
)

// RiverPoints is the number of river control points, evenly spaced over the rows.
const RiverPoints = 9

// Map is a generated world: terrain, trees and the river's control points.
type Map struct {
	Grid  Grid
	Trees Trees
	River [RiverPoints]uint8
}

// source is the subset of Stream consumed by generation.
type source interface {
	Uint8() uint8
	Uint16() uint16
}

// Generate builds the world for seed. Identical seeds give bit-identical maps.
func Generate(seed uint64) Map {
	return generate(NewStream(seed))
}

func generate(rng source) Map {
	m := Map{Trees: emptyTrees()}
	m.River = riverPoints(rng)
	m.drawRiver()
	m.placeTrees(rng)
	return m
}

// riverPoints picks both end columns, then fills the interior by midpoint displacement.
func riverPoints(rng source) [RiverPoints]uint8 {
	var points [RiverPoints]uint8
	points[0] = endColumn(rng)
	points[RiverPoints-1] = endColumn(rng)
	displace(0, RiverPoints-1, &points, rng)
	return points
}

// endColumn draws a column in the central band 10..21.
func endColumn(rng source) uint8 {
	return uint8(21 - int(rng.Uint8()%12))
}

// displace sets the midpoint of [from, to] from its endpoints plus noise,
// then recurses into the left half before the right half. The order is part
// of the output: every call consumes one draw.
func displace(from, to int, points *[RiverPoints]uint8, rng source) {
	if to-from <= 1 {
		return
	}
	mid := (from + to) / 2

	avg := (int(points[from]) + int(points[to])) / 2
	noise := 4 - int(rng.Uint8()%8)
	points[mid] = uint8(clamp(avg+noise, 0, Size-1))

	displace(from, mid, points, rng)
	displace(mid, to, points, rng)
}

// drawRiver rasterizes each control segment and widens it to a three-column swath.
func (m *Map) drawRiver() {
	for i := 0; i < RiverPoints-1; i++ {
		x0, y0 := int(m.River[i]), Size*i/(RiverPoints-1)
		x1, y1 := int(m.River[i+1]), Size*(i+1)/(RiverPoints-1)

		rasterize(x0, y0, x1, y1, func(x, y int) {
			mustSet(m.Grid.SetTerrain(x, y, true))
			// Neighbours past the map edge are skipped, never wrapped.
			if InBounds(x-1, y) {
				mustSet(m.Grid.SetTerrain(x-1, y, true))
			}
			if InBounds(x+1, y) {
				mustSet(m.Grid.SetTerrain(x+1, y, true))
			}
		})
	}
}

// placeTrees rejection-samples a free land cell in the top rows for every slot.
func (m *Map) placeTrees(rng source) {
	for i := range m.Trees {
		for {
			x := int(rng.Uint16() % Size)
			y := int(rng.Uint16() % TreeRows)
			water, err := m.Grid.Terrain(x, y)
			mustSet(err)
			if water || m.occupied(i, x, y) {
				continue
			}
			m.Trees[i] = Tree{X: uint16(x), Y: uint16(y), Activity: 1}
			break
		}
	}
}

// occupied reports whether one of the first n placed trees stands on (x, y).
func (m *Map) occupied(n, x, y int) bool {
	for _, t := range m.Trees[:n] {
		if t.At(x, y) {
			return true
		}
	}
	return false
}

// String renders the debug view: '*' water, '#' land, 'T' active tree.
func (m *Map) String() string {
	rows := strings.Split(strings.TrimSuffix(m.Grid.String(), "\n"), "\n")
	for _, t := range m.Trees {
		if !t.Active() {
			continue
		}
		row := []byte(rows[t.Y])
		row[t.X] = 'T'
		rows[t.Y] = string(row)
	}
	return strings.Join(rows, "\n") + "\n"
}

// rasterize walks the integer Bresenham line from (x0,y0) towards (x1,y1).
// The line is mapped into the first octant, stepped along its major axis and
// mapped back. The end point itself is not visited and the minor axis never
// reaches its end value, so a segment ending on row Size stays on the map.
func rasterize(x0, y0, x1, y1 int, plot func(x, y int)) {
	o := octantOf(x0, y0, x1, y1)
	ax, ay := o.toFirst(x0, y0)
	bx, by := o.toFirst(x1, y1)

	dx, dy := bx-ax, by-ay
	diff := dy - dx
	for x, y := ax, ay; x < bx; x++ {
		plot(o.fromFirst(x, y))
		if diff >= 0 {
			y++
			diff -= dx
		}
		diff += dy
	}
}

// octant numbers the eight line directions, 0 being shallow and rightwards.
type octant int

func octantOf(x0, y0, x1, y1 int) octant {
	dx, dy := x1-x0, y1-y0
	var o octant
	if dy < 0 {
		dx, dy = -dx, -dy
		o += 4
	}
	if dx < 0 {
		dx, dy = dy, -dx
		o += 2
	}
	if dx < dy {
		o++
	}
	return o
}

func (o octant) toFirst(x, y int) (int, int) {
	switch o {
	case 1:
		return y, x
	case 2:
		return y, -x
	case 3:
		return -x, y
	case 4:
		return -x, -y
	case 5:
		return -y, -x
	case 6:
		return -y, x
	case 7:
		return x, -y
	}
	return x, y
}

func (o octant) fromFirst(x, y int) (int, int) {
	switch o {
	case 1:
		return y, x
	case 2:
		return -y, x
	case 3:
		return -x, y
	case 4:
		return -x, -y
	case 5:
		return -y, -x
	case 6:
		return y, -x
	case 7:
		return x, -y
	}
	return x, y
}

// mustSet turns a broken bounds contract during generation into a crash.
func mustSet(err error) {
	if err != nil {
		panic(err)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
