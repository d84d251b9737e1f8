package jsondb

import (
	"encoding/json"
	"fmt"

	"github.com/dukaforge/chronicler/pkg/types"
)

// The typed accessors are package functions because Go methods cannot carry
// their own type parameters. PT is always the pointer form of a row struct
// (*types.EventRow and friends), so the zero PT returned on a miss is nil.

// RowPtr constrains PT to a pointer to a row struct T.
type RowPtr[T any] interface {
	types.Row
	*T
}

// Insert appends row to table and saves. A row carrying no id (0 or the -1
// sentinel) is assigned max existing id + 1, or the schema's first index
// when the table is empty. The row is returned with its final id.
//
// Because 0 is the zero value of an absent id, it always doubles as the
// unassigned sentinel: a zero-indexed schema can receive id 0 from
// assignment but must never rely on re-inserting the row that owns it.
func Insert[T any, PT RowPtr[T]](s *Store, row PT, table string) (PT, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load()
	if err != nil {
		return nil, err
	}
	rows, err := s.table(db, table)
	if err != nil {
		return nil, err
	}

	if id := row.RowID(); id == 0 || id == types.IDUnassigned {
		max, ok, err := maxID(rows)
		if err != nil {
			return nil, err
		}
		switch {
		case ok:
			row.SetRowID(max + 1)
		case s.schema.OneIndexed:
			row.SetRowID(1)
		default:
			row.SetRowID(0)
		}
	}

	raw, err := json.Marshal(row)
	if err != nil {
		return nil, fmt.Errorf("encoding row: %w", err)
	}
	db[table] = append(rows, raw)
	if err := s.save(db); err != nil {
		return nil, err
	}
	return row, nil
}

// GetAll returns every row in table matching pred, in stored order. A nil
// pred matches everything.
func GetAll[T any, PT RowPtr[T]](s *Store, table string, pred func(PT) bool) ([]PT, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load()
	if err != nil {
		return nil, err
	}
	rows, err := s.table(db, table)
	if err != nil {
		return nil, err
	}

	out := make([]PT, 0, len(rows))
	for _, raw := range rows {
		row, err := decode[T, PT](raw)
		if err != nil {
			return nil, err
		}
		if pred == nil || pred(row) {
			out = append(out, row)
		}
	}
	return out, nil
}

// Get returns the single row with id, or nil when no row matches. More than
// one match is ErrDuplicateID.
func Get[T any, PT RowPtr[T]](s *Store, id int, table string) (PT, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load()
	if err != nil {
		return nil, err
	}
	rows, err := s.table(db, table)
	if err != nil {
		return nil, err
	}

	matches, err := matchID(rows, id)
	if err != nil {
		return nil, err
	}
	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		return decode[T, PT](rows[matches[0]])
	default:
		return nil, fmt.Errorf("table %q id %d: %w", table, id, types.ErrDuplicateID)
	}
}

// Update replaces the unique row carrying row's id in place and saves.
// Zero matches is ErrNotFound; Update never creates a row.
func Update[T any, PT RowPtr[T]](s *Store, row PT, table string) (PT, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load()
	if err != nil {
		return nil, err
	}
	rows, err := s.table(db, table)
	if err != nil {
		return nil, err
	}

	matches, err := matchID(rows, row.RowID())
	if err != nil {
		return nil, err
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("table %q id %d: %w", table, row.RowID(), types.ErrNotFound)
	case 1:
		raw, err := json.Marshal(row)
		if err != nil {
			return nil, fmt.Errorf("encoding row: %w", err)
		}
		rows[matches[0]] = raw
		db[table] = rows
		if err := s.save(db); err != nil {
			return nil, err
		}
		return row, nil
	default:
		return nil, fmt.Errorf("table %q id %d: %w", table, row.RowID(), types.ErrDuplicateID)
	}
}

// decode unmarshals a raw row into a fresh T.
func decode[T any, PT RowPtr[T]](raw json.RawMessage) (PT, error) {
	row := PT(new(T))
	if err := json.Unmarshal(raw, row); err != nil {
		return nil, fmt.Errorf("parsing row: %w", err)
	}
	return row, nil
}
