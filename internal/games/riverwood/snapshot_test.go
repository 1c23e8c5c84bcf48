package riverwood

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/vovakirdan/riverwood/internal/world"
)

// Byte offsets inside an encoded record.
const (
	offTrees  = 2 * world.Size * 4
	offInv    = offTrees + world.TreeCount*5
	offPlayer = offInv + 2
	offTick   = offPlayer + 3
)

// sampleRecord is a generated world with some play applied to it.
func sampleRecord() Record {
	m := world.Generate(42)
	_ = m.Grid.SetTerrain(0, 31, true)
	_ = m.Grid.SetBridge(int(m.River[3]), 12, true)
	m.Trees[1].Activity = 0

	var inv Inventory
	inv.Add(WoodPlank, 7)

	return Record{
		Grid:      m.Grid,
		Trees:     m.Trees,
		Inventory: inv,
		Player:    Player{X: 5, Y: 9, Dir: Left},
		Tick:      1234,
	}
}

func TestRecordRoundTrip(t *testing.T) {
	r := sampleRecord()

	data, err := r.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	if len(data) != RecordSize || RecordSize != 289 {
		t.Fatalf("encoded %d bytes, RecordSize %d, expected 289", len(data), RecordSize)
	}

	var got Record
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if got != r {
		t.Error("decoded record differs from the original")
	}
	if got.Trees[1].Activity != 0 || got.Inventory.Get(WoodPlank) != 7 {
		t.Error("harvested tree or wood count lost")
	}
}

func TestRecordLayout(t *testing.T) {
	r := sampleRecord()
	data, _ := r.MarshalBinary()

	terrain, bridge := r.Grid.Rows()
	if binary.LittleEndian.Uint32(data[31*4:]) != terrain[31] {
		t.Error("terrain row 31 misplaced")
	}
	if binary.LittleEndian.Uint32(data[(32+12)*4:]) != bridge[12] {
		t.Error("bridge row 12 misplaced")
	}

	tree := r.Trees[1]
	at := offTrees + 5
	if binary.LittleEndian.Uint16(data[at:]) != tree.X ||
		binary.LittleEndian.Uint16(data[at+2:]) != tree.Y ||
		data[at+4] != 0 {
		t.Error("tree 1 misplaced")
	}

	if data[offInv] != 7 || data[offInv+1] != 0 {
		t.Errorf("inventory bytes = %v", data[offInv:offInv+2])
	}
	if data[offPlayer] != 5 || data[offPlayer+1] != 9 || data[offPlayer+2] != 2 {
		t.Errorf("player bytes = %v", data[offPlayer:offPlayer+3])
	}
	if binary.LittleEndian.Uint64(data[offTick:]) != 1234 {
		t.Error("tick misplaced")
	}
}

func TestRecordNegativeActivity(t *testing.T) {
	r := sampleRecord()
	r.Trees[3].Activity = -1

	data, _ := r.MarshalBinary()
	if data[offTrees+3*5+4] != 0xFF {
		t.Errorf("activity byte = %#x, expected 0xff", data[offTrees+3*5+4])
	}

	var got Record
	if err := got.UnmarshalBinary(data); err != nil || got.Trees[3].Activity != -1 {
		t.Errorf("activity = %d, err = %v", got.Trees[3].Activity, err)
	}
}

func TestRecordMalformed(t *testing.T) {
	valid, _ := sampleRecord().MarshalBinary()

	corrupt := func(mutate func(b []byte) []byte) []byte {
		b := append([]byte(nil), valid...)
		return mutate(b)
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short", valid[:RecordSize-1]},
		{"long", append(append([]byte(nil), valid...), 0)},
		{"direction code", corrupt(func(b []byte) []byte { b[offPlayer+2] = 4; return b })},
		{"player x", corrupt(func(b []byte) []byte { b[offPlayer] = 32; return b })},
		{"player y", corrupt(func(b []byte) []byte { b[offPlayer+1] = 200; return b })},
		{"tree x", corrupt(func(b []byte) []byte {
			binary.LittleEndian.PutUint16(b[offTrees:], 40)
			return b
		})},
		{"tree y", corrupt(func(b []byte) []byte {
			binary.LittleEndian.PutUint16(b[offTrees+2:], 0xFFFF)
			return b
		})},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := sampleRecord()
			before := r
			err := r.UnmarshalBinary(tc.data)
			if !errors.Is(err, ErrMalformedRecord) {
				t.Errorf("err = %v, expected ErrMalformedRecord", err)
			}
			if r != before {
				t.Error("failed decode must leave the receiver unchanged")
			}
		})
	}
}

func TestMarshalRejectsInvalidState(t *testing.T) {
	r := sampleRecord()
	r.Player.X = 32
	if _, err := r.MarshalBinary(); !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("err = %v, expected ErrMalformedRecord", err)
	}

	r = sampleRecord()
	r.Player.Dir = Direction(9)
	if _, err := r.MarshalBinary(); !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("err = %v, expected ErrMalformedRecord", err)
	}
}

func TestDirectionCodes(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		got, ok := DirectionFromCode(d.Code())
		if !ok || got != d {
			t.Errorf("code round trip failed for %v", d)
		}
	}
	if _, ok := DirectionFromCode(4); ok {
		t.Error("code 4 must be rejected")
	}
	if Left.Code() != 2 || Right.String() != "right" {
		t.Error("unexpected direction encoding")
	}
}
