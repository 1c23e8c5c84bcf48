package riverwood

import "testing"

func TestInventorySaturation(t *testing.T) {
	tests := []struct {
		name     string
		start    uint8
		add      uint8
		sub      uint8
		expected uint8
	}{
		{"plain add", 5, 3, 0, 8},
		{"add to top", 250, 5, 0, 255},
		{"add past top", 250, 10, 0, 255},
		{"add at top", 255, 1, 0, 255},
		{"plain sub", 5, 0, 3, 2},
		{"sub to zero", 5, 0, 5, 0},
		{"sub past zero", 2, 0, 10, 0},
		{"sub at zero", 0, 0, 1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var inv Inventory
			inv.Add(WoodPlank, tc.start)
			inv.Add(WoodPlank, tc.add)
			inv.Sub(WoodPlank, tc.sub)
			if got := inv.Get(WoodPlank); got != tc.expected {
				t.Errorf("Get(WoodPlank) = %d, expected %d", got, tc.expected)
			}
			if inv.Get(Fish) != 0 {
				t.Error("other counters must stay untouched")
			}
		})
	}
}

func TestInventoryUnknownItem(t *testing.T) {
	var inv Inventory
	bogus := Item(7)

	inv.Add(bogus, 10)
	inv.Sub(bogus, 1)
	if inv.Get(bogus) != 0 {
		t.Error("unknown items should read as 0")
	}
	if inv.Get(WoodPlank) != 0 || inv.Get(Fish) != 0 {
		t.Error("unknown items must not touch known counters")
	}
	if bogus.String() != "unknown" {
		t.Errorf("String() = %q", bogus.String())
	}
}

func TestDigits(t *testing.T) {
	tests := []struct {
		n        uint8
		expected [3]uint8
	}{
		{0, [3]uint8{0, 0, 0}},
		{7, [3]uint8{0, 0, 7}},
		{42, [3]uint8{0, 4, 2}},
		{105, [3]uint8{1, 0, 5}},
		{255, [3]uint8{2, 5, 5}},
	}

	for _, tc := range tests {
		if got := Digits(tc.n); got != tc.expected {
			t.Errorf("Digits(%d) = %v, expected %v", tc.n, got, tc.expected)
		}
	}
}
