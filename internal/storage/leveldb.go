package storage

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

const (
	savePrefix = "save/"
	metaPrefix = "meta/"
	metaSize   = 16 // u64 writes, i64 unix millis
)

// LevelDB keeps each slot under two keys: the blob and its metadata.
type LevelDB struct {
	db *leveldb.DB
	mu sync.Mutex // serializes read-modify-write of metadata
}

// OpenLevelDB creates or opens a LevelDB directory at the given path.
func OpenLevelDB(path string) (*LevelDB, error) {
	path, err := preparePath(path)
	if err != nil {
		return nil, err
	}
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open leveldb: %w", err)
	}
	return &LevelDB{db: db}, nil
}

func saveKey(slot string) []byte { return []byte(savePrefix + slot) }
func metaKey(slot string) []byte { return []byte(metaPrefix + slot) }

// Close closes the database.
func (l *LevelDB) Close() error {
	return l.db.Close()
}

// Has reports whether the slot exists.
func (l *LevelDB) Has(slot string) (bool, error) {
	ok, err := l.db.Has(saveKey(slot), nil)
	if err != nil {
		return false, fmt.Errorf("storage: cannot query slot: %w", err)
	}
	return ok, nil
}

// Load returns the slot contents.
func (l *LevelDB) Load(slot string) ([]byte, error) {
	data, err := l.db.Get(saveKey(slot), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load slot: %w", err)
	}
	return data, nil
}

// Save writes blob and metadata in one batch.
func (l *LevelDB) Save(slot string, data []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	writes, _, err := l.meta(slot)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}

	meta := make([]byte, metaSize)
	binary.LittleEndian.PutUint64(meta, uint64(writes+1))
	binary.LittleEndian.PutUint64(meta[8:], uint64(time.Now().UnixMilli()))

	batch := new(leveldb.Batch)
	batch.Put(saveKey(slot), data)
	batch.Put(metaKey(slot), meta)
	if err := l.db.Write(batch, nil); err != nil {
		return fmt.Errorf("storage: cannot save slot: %w", err)
	}
	return nil
}

// Delete removes the slot.
func (l *LevelDB) Delete(slot string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	ok, err := l.Has(slot)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	batch := new(leveldb.Batch)
	batch.Delete(saveKey(slot))
	batch.Delete(metaKey(slot))
	if err := l.db.Write(batch, nil); err != nil {
		return fmt.Errorf("storage: cannot delete slot: %w", err)
	}
	return nil
}

// List returns all slots ordered by name.
func (l *LevelDB) List() ([]SlotInfo, error) {
	iter := l.db.NewIterator(util.BytesPrefix([]byte(metaPrefix)), nil)
	defer iter.Release()

	var infos []SlotInfo
	for iter.Next() {
		slot := strings.TrimPrefix(string(iter.Key()), metaPrefix)
		writes, updated, err := decodeMeta(iter.Value())
		if err != nil {
			return nil, fmt.Errorf("storage: slot %q: %w", slot, err)
		}
		data, err := l.Load(slot)
		if err != nil {
			return nil, err
		}
		infos = append(infos, SlotInfo{Slot: slot, Size: len(data), Writes: writes, UpdatedAt: updated})
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("storage: cannot iterate slots: %w", err)
	}
	return infos, nil
}

func (l *LevelDB) meta(slot string) (int64, time.Time, error) {
	raw, err := l.db.Get(metaKey(slot), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return 0, time.Time{}, ErrNotFound
	}
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("storage: cannot read metadata: %w", err)
	}
	return decodeMeta(raw)
}

func decodeMeta(raw []byte) (int64, time.Time, error) {
	if len(raw) != metaSize {
		return 0, time.Time{}, fmt.Errorf("storage: metadata is %d bytes, expected %d", len(raw), metaSize)
	}
	writes := int64(binary.LittleEndian.Uint64(raw))
	updated := time.UnixMilli(int64(binary.LittleEndian.Uint64(raw[8:])))
	return writes, updated, nil
}
