package world

import (
	"errors"
	"strings"
	"testing"
)

func TestGridOutOfBounds(t *testing.T) {
	var g Grid

	coords := []struct{ x, y int }{
		{Size, 0},
		{0, Size},
		{Size, Size},
		{-1, 0},
		{0, -1},
		{100, 5},
	}

	for _, c := range coords {
		if _, err := g.Terrain(c.x, c.y); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Terrain(%d, %d) err = %v, expected ErrOutOfBounds", c.x, c.y, err)
		}
		if _, err := g.Bridge(c.x, c.y); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Bridge(%d, %d) err = %v, expected ErrOutOfBounds", c.x, c.y, err)
		}
		if err := g.SetTerrain(c.x, c.y, true); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("SetTerrain(%d, %d) err = %v, expected ErrOutOfBounds", c.x, c.y, err)
		}
		if err := g.SetBridge(c.x, c.y, true); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("SetBridge(%d, %d) err = %v, expected ErrOutOfBounds", c.x, c.y, err)
		}
		if _, err := g.Walkable(c.x, c.y); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Walkable(%d, %d) err = %v, expected ErrOutOfBounds", c.x, c.y, err)
		}
	}

	var be *BoundsError
	_, err := g.Terrain(40, 3)
	if !errors.As(err, &be) || be.X != 40 || be.Y != 3 {
		t.Errorf("expected BoundsError for (40,3), got %v", err)
	}

	if g.WaterCount() != 0 || g.BridgeCount() != 0 {
		t.Error("failed writes must not mutate the grid")
	}
}

func TestGridRoundTrip(t *testing.T) {
	var g Grid

	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			water := (x+y)%3 == 0
			bridge := (x*y)%5 == 1
			if err := g.SetTerrain(x, y, water); err != nil {
				t.Fatalf("SetTerrain(%d, %d): %v", x, y, err)
			}
			if err := g.SetBridge(x, y, bridge); err != nil {
				t.Fatalf("SetBridge(%d, %d): %v", x, y, err)
			}
		}
	}

	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			water, _ := g.Terrain(x, y)
			bridge, _ := g.Bridge(x, y)
			if water != ((x+y)%3 == 0) {
				t.Errorf("Terrain(%d, %d) = %v", x, y, water)
			}
			if bridge != ((x*y)%5 == 1) {
				t.Errorf("Bridge(%d, %d) = %v", x, y, bridge)
			}
		}
	}

	// Clearing a bit leaves its neighbours untouched.
	_ = g.SetTerrain(31, 0, true)
	_ = g.SetTerrain(30, 0, true)
	_ = g.SetTerrain(31, 0, false)
	if water, _ := g.Terrain(31, 0); water {
		t.Error("Terrain(31, 0) should be cleared")
	}
	if water, _ := g.Terrain(30, 0); !water {
		t.Error("Terrain(30, 0) should be unaffected")
	}
}

func TestGridWalkable(t *testing.T) {
	tests := []struct {
		name     string
		water    bool
		bridge   bool
		walkable bool
	}{
		{"land", false, false, true},
		{"land with bridge", false, true, true},
		{"water", true, false, false},
		{"bridged water", true, true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var g Grid
			_ = g.SetTerrain(7, 9, tc.water)
			_ = g.SetBridge(7, 9, tc.bridge)
			got, err := g.Walkable(7, 9)
			if err != nil {
				t.Fatalf("Walkable: %v", err)
			}
			if got != tc.walkable {
				t.Errorf("Walkable() = %v, expected %v", got, tc.walkable)
			}
		})
	}
}

func TestGridRows(t *testing.T) {
	var g Grid
	_ = g.SetTerrain(0, 0, true)
	_ = g.SetTerrain(31, 5, true)
	_ = g.SetBridge(3, 31, true)

	terrain, bridge := g.Rows()
	if terrain[0] != 1 || terrain[5] != 1<<31 || bridge[31] != 1<<3 {
		t.Errorf("unexpected row words: %#x %#x %#x", terrain[0], terrain[5], bridge[31])
	}

	rebuilt := NewGridFromRows(terrain, bridge)
	if rebuilt != g {
		t.Error("NewGridFromRows should reproduce the grid")
	}
	if g.WaterCount() != 2 || g.BridgeCount() != 1 {
		t.Errorf("counts = %d/%d, expected 2/1", g.WaterCount(), g.BridgeCount())
	}
}

func TestGridString(t *testing.T) {
	var g Grid
	_ = g.SetTerrain(1, 0, true)

	lines := strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n")
	if len(lines) != Size {
		t.Fatalf("expected %d lines, got %d", Size, len(lines))
	}
	if !strings.HasPrefix(lines[0], "#*#") {
		t.Errorf("row 0 = %q", lines[0])
	}
}

func TestTreesActiveAt(t *testing.T) {
	trees := emptyTrees()
	trees[0] = Tree{X: 4, Y: 5, Activity: 1}
	trees[1] = Tree{X: 6, Y: 7, Activity: 0}

	if !trees.ActiveAt(4, 5) {
		t.Error("active tree at (4,5) not found")
	}
	if trees.ActiveAt(6, 7) {
		t.Error("harvested tree should not count as active")
	}
	if trees.ActiveAt(0, 0) {
		t.Error("empty slots should not count as active")
	}
	if trees.ActiveCount() != 1 {
		t.Errorf("ActiveCount() = %d, expected 1", trees.ActiveCount())
	}
}
