package storage

import (
	"sort"
	"sync"
	"time"
)

type memEntry struct {
	data    []byte
	writes  int64
	updated time.Time
}

// Memory is a map-backed Backend. Nothing survives Close.
type Memory struct {
	mu    sync.RWMutex
	slots map[string]memEntry
}

// NewMemory creates an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{slots: make(map[string]memEntry)}
}

// Has reports whether the slot exists.
func (m *Memory) Has(slot string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.slots[slot]
	return ok, nil
}

// Load returns a copy of the slot contents.
func (m *Memory) Load(slot string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.slots[slot]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), e.data...), nil
}

// Save stores a copy of data.
func (m *Memory) Save(slot string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := m.slots[slot]
	e.data = append([]byte(nil), data...)
	e.writes++
	e.updated = time.Now()
	m.slots[slot] = e
	return nil
}

// Delete removes the slot.
func (m *Memory) Delete(slot string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.slots[slot]; !ok {
		return ErrNotFound
	}
	delete(m.slots, slot)
	return nil
}

// List returns all slots ordered by name.
func (m *Memory) List() ([]SlotInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	infos := make([]SlotInfo, 0, len(m.slots))
	for slot, e := range m.slots {
		infos = append(infos, SlotInfo{Slot: slot, Size: len(e.data), Writes: e.writes, UpdatedAt: e.updated})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Slot < infos[j].Slot })
	return infos, nil
}

// Close drops all slots.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots = make(map[string]memEntry)
	return nil
}
