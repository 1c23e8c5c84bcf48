package riverwood

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/vovakirdan/riverwood/internal/world"
)

// RecordSize is the exact encoded length of a Record.
const RecordSize = 2*world.Size*4 + world.TreeCount*5 + int(itemCount) + 3 + 8

// ErrMalformedRecord is returned when save bytes cannot describe a valid state.
var ErrMalformedRecord = errors.New("riverwood: malformed save record")

// Record is the persisted projection of a State. It holds values only and
// shares nothing with the live state it was taken from.
//
// Binary layout, little-endian, no version tag:
//
//	32 x u32   terrain rows
//	32 x u32   bridge rows
//	 4 x (u16 x, u16 y, i8 activity)  trees
//	 2 x u8    inventory (wood, fish)
//	u8 x, u8 y, u8 direction           player
//	u64        tick
type Record struct {
	Grid      world.Grid
	Trees     world.Trees
	Inventory Inventory
	Player    Player
	Tick      uint64
}

// Record captures the current state for saving.
func (s *State) Record() Record {
	return Record{
		Grid:      s.world.Grid,
		Trees:     s.world.Trees,
		Inventory: s.inv,
		Player:    s.player,
		Tick:      s.tick,
	}
}

// MarshalBinary encodes the record into its fixed layout.
func (r Record) MarshalBinary() ([]byte, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}

	buf := make([]byte, 0, RecordSize)
	terrain, bridge := r.Grid.Rows()
	for _, row := range terrain {
		buf = binary.LittleEndian.AppendUint32(buf, row)
	}
	for _, row := range bridge {
		buf = binary.LittleEndian.AppendUint32(buf, row)
	}
	for _, t := range r.Trees {
		buf = binary.LittleEndian.AppendUint16(buf, t.X)
		buf = binary.LittleEndian.AppendUint16(buf, t.Y)
		buf = append(buf, byte(t.Activity))
	}
	for _, item := range Items {
		buf = append(buf, r.Inventory.Get(item))
	}
	buf = append(buf, r.Player.X, r.Player.Y, r.Player.Dir.Code())
	buf = binary.LittleEndian.AppendUint64(buf, r.Tick)
	return buf, nil
}

// UnmarshalBinary decodes a record, rejecting anything that could not have
// come from a valid state. On error the receiver is left unchanged.
func (r *Record) UnmarshalBinary(data []byte) error {
	if len(data) != RecordSize {
		return fmt.Errorf("%w: %d bytes, expected %d", ErrMalformedRecord, len(data), RecordSize)
	}

	var (
		out     Record
		terrain world.Plane
		bridge  world.Plane
		off     int
	)
	for i := range terrain {
		terrain[i] = binary.LittleEndian.Uint32(data[off:])
		off += 4
	}
	for i := range bridge {
		bridge[i] = binary.LittleEndian.Uint32(data[off:])
		off += 4
	}
	out.Grid = world.NewGridFromRows(terrain, bridge)

	for i := range out.Trees {
		out.Trees[i] = world.Tree{
			X:        binary.LittleEndian.Uint16(data[off:]),
			Y:        binary.LittleEndian.Uint16(data[off+2:]),
			Activity: int8(data[off+4]),
		}
		off += 5
	}
	for _, item := range Items {
		out.Inventory.Add(item, data[off])
		off++
	}

	dir, ok := DirectionFromCode(data[off+2])
	if !ok {
		return fmt.Errorf("%w: direction code %d", ErrMalformedRecord, data[off+2])
	}
	out.Player = Player{X: data[off], Y: data[off+1], Dir: dir}
	off += 3

	out.Tick = binary.LittleEndian.Uint64(data[off:])

	if err := out.validate(); err != nil {
		return err
	}
	*r = out
	return nil
}

func (r Record) validate() error {
	if !world.InBounds(int(r.Player.X), int(r.Player.Y)) {
		return fmt.Errorf("%w: player at (%d,%d)", ErrMalformedRecord, r.Player.X, r.Player.Y)
	}
	if _, ok := DirectionFromCode(uint8(r.Player.Dir)); !ok {
		return fmt.Errorf("%w: direction %d", ErrMalformedRecord, r.Player.Dir)
	}
	for i, t := range r.Trees {
		if !world.InBounds(int(t.X), int(t.Y)) {
			return fmt.Errorf("%w: tree %d at (%d,%d)", ErrMalformedRecord, i, t.X, t.Y)
		}
	}
	return nil
}
