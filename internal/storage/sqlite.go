package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLite keeps slots in a single table of a SQLite database file.
type SQLite struct {
	db *sqlx.DB
}

// OpenSQLite creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func OpenSQLite(dbPath string) (*SQLite, error) {
	dbPath, err := preparePath(dbPath)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SQLite allows one writer; sessions queue on the pool instead of on SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return s, nil
}

func (s *SQLite) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS saves (
			slot TEXT PRIMARY KEY,
			data BLOB NOT NULL,
			writes INTEGER NOT NULL DEFAULT 0,
			updated_at INTEGER NOT NULL
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Has reports whether the slot exists.
func (s *SQLite) Has(slot string) (bool, error) {
	var n int
	if err := s.db.Get(&n, "SELECT COUNT(*) FROM saves WHERE slot = ?", slot); err != nil {
		return false, fmt.Errorf("storage: cannot query slot: %w", err)
	}
	return n > 0, nil
}

// Load returns the slot contents.
func (s *SQLite) Load(slot string) ([]byte, error) {
	var data []byte
	err := s.db.Get(&data, "SELECT data FROM saves WHERE slot = ?", slot)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load slot: %w", err)
	}
	return data, nil
}

// Save replaces the slot contents and bumps its write counter.
func (s *SQLite) Save(slot string, data []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO saves (slot, data, writes, updated_at) VALUES (?, ?, 1, ?)
		 ON CONFLICT(slot) DO UPDATE SET
			data = excluded.data,
			writes = saves.writes + 1,
			updated_at = excluded.updated_at`,
		slot, data, time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save slot: %w", err)
	}
	return nil
}

// Delete removes the slot.
func (s *SQLite) Delete(slot string) error {
	res, err := s.db.Exec("DELETE FROM saves WHERE slot = ?", slot)
	if err != nil {
		return fmt.Errorf("storage: cannot delete slot: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type slotRow struct {
	Slot      string `db:"slot"`
	Size      int    `db:"size"`
	Writes    int64  `db:"writes"`
	UpdatedAt int64  `db:"updated_at"`
}

// List returns all slots ordered by name.
func (s *SQLite) List() ([]SlotInfo, error) {
	var rows []slotRow
	err := s.db.Select(&rows,
		`SELECT slot, length(data) AS size, writes, updated_at
		 FROM saves
		 ORDER BY slot`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list slots: %w", err)
	}

	infos := make([]SlotInfo, 0, len(rows))
	for _, r := range rows {
		infos = append(infos, SlotInfo{
			Slot:      r.Slot,
			Size:      r.Size,
			Writes:    r.Writes,
			UpdatedAt: time.UnixMilli(r.UpdatedAt),
		})
	}
	return infos, nil
}
