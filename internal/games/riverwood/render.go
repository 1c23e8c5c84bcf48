package riverwood

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/vovakirdan/riverwood/internal/core"
	"github.com/vovakirdan/riverwood/internal/world"
)

const (
	// CellWidth is the number of terminal columns per map cell.
	CellWidth = 2
	// FrameW and FrameH are the size of the framed map view.
	FrameW = world.Size*CellWidth + 2
	FrameH = ViewRows + 2

	hudW = 12
	hudH = 4

	shadeSeed = 0x7277
)

// shading holds a per-cell texture value in [0,1). It only changes how
// cells look, never what they are.
type shading [world.Size][world.Size]float64

func newShading(seed int64) shading {
	noise := opensimplex.NewNormalized(seed)
	var s shading
	for y := range s {
		for x := range s[y] {
			s[y][x] = octaveNoise(noise, float64(x), float64(y), 3, 0.18, 0.5)
		}
	}
	return s
}

// octaveNoise layers several noise frequencies for a less regular texture.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total, amplitude, maxVal := 0.0, 1.0, 0.0
	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	return total / maxVal
}

// Render draws the visible map window and the inventory panel.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.state == nil {
		return
	}

	if dst.Width() < FrameW || dst.Height() < FrameH {
		msg := "Window too small"
		dst.DrawTextColored(max(0, (dst.Width()-len(msg))/2), dst.Height()/2, msg, core.ColorText)
		return
	}

	dst.DrawBox(core.NewRect(0, 0, FrameW, FrameH), core.ColorDim)
	g.renderWorld(dst, 1, 1)
	g.renderHUD(dst)
}

// renderWorld draws the map window with its top-left cell at (ox, oy).
// Columns under the inventory panel are left blank.
func (g *Game) renderWorld(dst *core.Screen, ox, oy int) {
	hud := hudRect()
	off := g.state.ScrollOffset()
	for row := 0; row < ViewRows; row++ {
		y := off + row
		for x := 0; x < world.Size; x++ {
			glyph, color := g.tile(x, y)
			for i, r := range glyph {
				sx := ox + x*CellWidth + i
				if !hud.Contains(sx, oy+row) {
					dst.SetColored(sx, oy+row, r, color)
				}
			}
		}
	}
}

// tile picks the glyph pair for one map cell. Later layers win:
// terrain, bridge, tree, player.
func (g *Game) tile(x, y int) ([2]rune, core.Color) {
	s := g.state
	p := s.player
	if int(p.X) == x && int(p.Y) == y {
		return [2]rune{'@', p.Dir.arrow()}, core.ColorPlayer
	}

	for _, t := range s.world.Trees {
		if !t.At(x, y) {
			continue
		}
		if t.Active() {
			return [2]rune{'/', '\\'}, core.ColorTree
		}
		if t.Activity == 0 {
			return [2]rune{'_', '_'}, core.ColorStump
		}
	}

	shade := g.shade[y][x]
	if bridged, _ := s.world.Grid.Bridge(x, y); bridged {
		return [2]rune{'#', '#'}, core.ColorBridge
	}
	if water, _ := s.world.Grid.Terrain(x, y); water {
		if shade > 0.55 {
			return [2]rune{'≈', '≈'}, core.ColorWater
		}
		return [2]rune{'~', '~'}, core.ColorShallow
	}
	if shade > 0.6 {
		return [2]rune{'.', ' '}, core.ColorLandDark
	}
	return [2]rune{' ', ' '}, core.ColorLand
}

// hudRect is the inventory panel in the bottom-right corner of the view.
func hudRect() core.Rect {
	return core.NewRect(FrameW-1-hudW, FrameH-1-hudH, hudW, hudH)
}

func (g *Game) renderHUD(dst *core.Screen) {
	r := hudRect()
	dst.DrawBox(r, core.ColorDim)

	for i, item := range Items {
		d := Digits(g.state.inv.Get(item))
		line := item.String() + " " + string([]rune{'0' + rune(d[0]), '0' + rune(d[1]), '0' + rune(d[2])})
		dst.DrawTextColored(r.X+2, r.Y+1+i, line, core.ColorText)
	}
}

func (d Direction) arrow() rune {
	switch d {
	case Up:
		return '^'
	case Down:
		return 'v'
	case Left:
		return '<'
	case Right:
		return '>'
	default:
		return '?'
	}
}
