// Package core provides the shared types of the game platform: input frames,
// step results and the screen buffer. It has no external dependencies
// (especially no Bubble Tea) to keep the simulation pure and testable.
package core

// Rect is a screen region in cells; X and Y are its top-left corner.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle at (x, y) spanning w by h cells.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether cell (x, y) lies inside r. Right and Bottom are exclusive.
func (r Rect) Contains(x, y int) bool {
	return r.X <= x && x < r.Right() && r.Y <= y && y < r.Bottom()
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// Abs returns |v|.
func Abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Manhattan returns the grid distance between two cells.
func Manhattan(ax, ay, bx, by int) int {
	return Abs(ax-bx) + Abs(ay-by)
}
