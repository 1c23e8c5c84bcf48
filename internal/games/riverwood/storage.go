package riverwood

import (
	"fmt"
)

// Storage persists a single save record.
// A missing or unreadable record is reported through the boolean results,
// never as an error: the caller falls back to a fresh world.
type Storage interface {
	HasRecord() bool
	ReadRecord() (Record, bool)
	WriteRecord(Record) error
}

// Blobs is a byte store addressed by slot name.
// storage.Backend implementations satisfy it.
type Blobs interface {
	Has(slot string) (bool, error)
	Load(slot string) ([]byte, error)
	Save(slot string, data []byte) error
}

// SlotStorage stores records as encoded bytes in one slot of a Blobs store.
type SlotStorage struct {
	blobs Blobs
	slot  string
}

// NewSlotStorage binds a slot of a byte store.
func NewSlotStorage(b Blobs, slot string) *SlotStorage {
	return &SlotStorage{blobs: b, slot: slot}
}

// Slot returns the bound slot name.
func (s *SlotStorage) Slot() string {
	return s.slot
}

// HasRecord reports whether the slot holds any bytes.
func (s *SlotStorage) HasRecord() bool {
	ok, err := s.blobs.Has(s.slot)
	return err == nil && ok
}

// ReadRecord loads and decodes the slot.
func (s *SlotStorage) ReadRecord() (Record, bool) {
	data, err := s.blobs.Load(s.slot)
	if err != nil {
		return Record{}, false
	}
	var r Record
	if err := r.UnmarshalBinary(data); err != nil {
		return Record{}, false
	}
	return r, true
}

// WriteRecord encodes r and replaces the slot contents.
func (s *SlotStorage) WriteRecord(r Record) error {
	data, err := r.MarshalBinary()
	if err != nil {
		return err
	}
	if err := s.blobs.Save(s.slot, data); err != nil {
		return fmt.Errorf("riverwood: write slot %q: %w", s.slot, err)
	}
	return nil
}
