package core

import "testing"

func TestInputTrackerEdges(t *testing.T) {
	tr := NewInputTracker()

	f := tr.Next(ActionUp)
	if !f.IsHeld(ActionUp) || !f.JustPressed(ActionUp) {
		t.Error("first tick should hold and press Up")
	}

	f = tr.Next(ActionUp)
	if !f.IsHeld(ActionUp) || f.JustPressed(ActionUp) {
		t.Error("second tick should hold Up without an edge")
	}

	f = tr.Next(ActionUp, ActionHarvest)
	if f.JustPressed(ActionUp) || !f.JustPressed(ActionHarvest) {
		t.Error("only the newly held action should be pressed")
	}

	f = tr.Next()
	if !f.Empty() {
		t.Error("releasing everything should produce an empty frame")
	}

	f = tr.Next(ActionUp)
	if !f.JustPressed(ActionUp) {
		t.Error("holding again after a release should press")
	}
}

func TestInputTrackerReset(t *testing.T) {
	tr := NewInputTracker()
	tr.Next(ActionBuild)
	tr.Reset()

	if f := tr.Next(ActionBuild); !f.JustPressed(ActionBuild) {
		t.Error("Reset should make the next hold a press")
	}
}

func TestInputTrackerIgnoresNone(t *testing.T) {
	tr := NewInputTracker()
	if f := tr.Next(ActionNone); !f.Empty() {
		t.Error("ActionNone must not be tracked")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.IsHeld(ActionUp) || f.JustPressed(ActionUp) || !f.Empty() {
		t.Error("zero frame should report nothing")
	}

	f.Press(ActionLeft)
	if !f.IsHeld(ActionLeft) || !f.JustPressed(ActionLeft) {
		t.Error("Press should set both flags")
	}
	if f.Empty() {
		t.Error("a pressed frame is not empty")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a        Action
		expected string
	}{
		{ActionUp, "Up"},
		{ActionHarvest, "Harvest"},
		{ActionBuild, "Build"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if tc.a.String() != tc.expected {
			t.Errorf("String() = %q, expected %q", tc.a.String(), tc.expected)
		}
	}
}
