// Package jsondb implements the file-backed document store for the
// Chronicler catalogue. One JSON document holds every declared table as an
// array of rows; the whole file is the unit of load and save. Every
// operation is a full load, an in-memory mutation, and a full save,
// serialized behind the store mutex so overlapping callers cannot lose
// updates.
package jsondb

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/dukaforge/chronicler/pkg/types"
)

// tables is the in-memory image of the database file. Rows stay raw until a
// typed accessor decodes them, so unknown fields survive rewrites untouched.
type tables map[string][]json.RawMessage

// Store is one open database file. A Store value is the session handle the
// mapper and CLI receive; there is no package-level current database.
type Store struct {
	mu     sync.Mutex
	schema types.Schema
	path   string
	log    *zap.SugaredLogger
}

// Open resolves location into a database file and returns a store for it.
// A directory location resolves to "<schema.Name>.json" inside it; an
// existing file is used as-is; a missing path is treated as a file target
// when its parent directory exists. A freshly created file contains every
// declared table as an empty array.
func Open(location string, schema types.Schema, log *zap.SugaredLogger) (*Store, error) {
	if location == "" {
		return nil, types.ErrLocation
	}

	path := ""
	info, err := os.Stat(location)
	switch {
	case err == nil && info.IsDir():
		path = filepath.Join(location, schema.Name+".json")
	case err == nil:
		path = location
	case os.IsNotExist(err):
		parent, perr := os.Stat(filepath.Dir(location))
		if perr != nil || !parent.IsDir() {
			return nil, fmt.Errorf("%w: %s", types.ErrLocation, location)
		}
		path = location
	default:
		return nil, fmt.Errorf("%w: %v", types.ErrLocation, err)
	}

	s := &Store{schema: schema, path: path, log: log}
	if err := s.init(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the resolved database file path.
func (s *Store) Path() string {
	return s.path
}

// Schema returns the schema the store was opened with.
func (s *Store) Schema() types.Schema {
	return s.schema
}

// init writes a fresh database file with empty tables unless one exists.
func (s *Store) init() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat database: %w", err)
	}

	db := make(tables, len(s.schema.Tables))
	for _, t := range s.schema.Tables {
		db[t] = []json.RawMessage{}
	}
	if err := s.save(db); err != nil {
		return err
	}
	s.log.Infow("initialized database", "path", s.path)
	return nil
}

// load reads and decodes the whole database file.
func (s *Store) load() (tables, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading database: %w", err)
	}
	var db tables
	if err := json.Unmarshal(data, &db); err != nil {
		return nil, fmt.Errorf("parsing database: %w", err)
	}
	return db, nil
}

// save rewrites the whole database file.
func (s *Store) save(db tables) error {
	var data []byte
	var err error
	if s.schema.Compressed {
		data, err = json.Marshal(db)
	} else {
		data, err = json.MarshalIndent(db, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encoding database: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing database: %w", err)
	}
	return nil
}

// table returns the row sequence for name, or ErrUnknownTable when the
// schema does not declare it or the file does not carry it.
func (s *Store) table(db tables, name string) ([]json.RawMessage, error) {
	if !s.schema.HasTable(name) {
		return nil, fmt.Errorf("table %q: %w", name, types.ErrUnknownTable)
	}
	rows, ok := db[name]
	if !ok {
		return nil, fmt.Errorf("table %q: %w", name, types.ErrUnknownTable)
	}
	return rows, nil
}

// Delete removes the unique row with id from table. A missing id is a
// silent no-op that leaves the file untouched; more than one match is
// ErrDuplicateID.
func (s *Store) Delete(id int, table string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load()
	if err != nil {
		return err
	}
	rows, err := s.table(db, table)
	if err != nil {
		return err
	}

	matches, err := matchID(rows, id)
	if err != nil {
		return err
	}
	switch len(matches) {
	case 0:
		return nil
	case 1:
		i := matches[0]
		db[table] = append(rows[:i], rows[i+1:]...)
		return s.save(db)
	default:
		return fmt.Errorf("table %q id %d: %w", table, id, types.ErrDuplicateID)
	}
}

// Clear removes every row from table.
func (s *Store) Clear(table string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load()
	if err != nil {
		return err
	}
	if _, err := s.table(db, table); err != nil {
		return err
	}
	db[table] = []json.RawMessage{}
	return s.save(db)
}

// Count returns the number of rows in table.
func (s *Store) Count(table string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load()
	if err != nil {
		return 0, err
	}
	rows, err := s.table(db, table)
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

// rowID extracts the id field from a raw row.
func rowID(raw json.RawMessage) (int, error) {
	var probe struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return 0, fmt.Errorf("parsing row id: %w", err)
	}
	return probe.ID, nil
}

// matchID returns the indices of rows whose id equals id, in stored order.
func matchID(rows []json.RawMessage, id int) ([]int, error) {
	var matches []int
	for i, raw := range rows {
		rid, err := rowID(raw)
		if err != nil {
			return nil, err
		}
		if rid == id {
			matches = append(matches, i)
		}
	}
	return matches, nil
}

// maxID returns the highest id in rows, or ok=false for an empty table.
func maxID(rows []json.RawMessage) (int, bool, error) {
	if len(rows) == 0 {
		return 0, false, nil
	}
	max := 0
	for i, raw := range rows {
		id, err := rowID(raw)
		if err != nil {
			return 0, false, err
		}
		if i == 0 || id > max {
			max = id
		}
	}
	return max, true, nil
}
