// Shared helpers for chronicler CLI commands.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dukaforge/chronicler/internal/jsondb"
	"github.com/dukaforge/chronicler/pkg/types"
)

// validTableNamesStr is a comma-separated list of the declared table names
// for error output.
var validTableNamesStr = strings.Join(types.DeclaredTables, ", ")

// unknownTableErr builds the CLI-facing error for an undeclared table name.
func unknownTableErr(table string) error {
	return fmt.Errorf("unknown table %q (valid: %s)", table, validTableNamesStr)
}

// parseRow unmarshals JSON data into the row struct for the named table.
func parseRow(table string, data []byte) (types.Row, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	switch table {
	case types.TableEvents:
		var r types.EventRow
		if err := dec.Decode(&r); err != nil {
			return nil, err
		}
		return &r, nil
	case types.TableCharacters:
		var r types.CharacterRow
		if err := dec.Decode(&r); err != nil {
			return nil, err
		}
		return &r, nil
	case types.TableFactions:
		var r types.FactionRow
		if err := dec.Decode(&r); err != nil {
			return nil, err
		}
		return &r, nil
	case types.TableCollections:
		var r types.CollectionRow
		if err := dec.Decode(&r); err != nil {
			return nil, err
		}
		return &r, nil
	case types.TableLocales:
		var r types.LocaleRow
		if err := dec.Decode(&r); err != nil {
			return nil, err
		}
		return &r, nil
	default:
		return nil, unknownTableErr(table)
	}
}

// getRow fetches the row with id from the named table. A miss returns a
// nil row and no error.
func getRow(db *jsondb.Store, table string, id int) (types.Row, error) {
	switch table {
	case types.TableEvents:
		return nilable(jsondb.Get[types.EventRow](db, id, table))
	case types.TableCharacters:
		return nilable(jsondb.Get[types.CharacterRow](db, id, table))
	case types.TableFactions:
		return nilable(jsondb.Get[types.FactionRow](db, id, table))
	case types.TableCollections:
		return nilable(jsondb.Get[types.CollectionRow](db, id, table))
	case types.TableLocales:
		return nilable(jsondb.Get[types.LocaleRow](db, id, table))
	default:
		return nil, unknownTableErr(table)
	}
}

// listRows fetches every row of the named table in stored order.
func listRows(db *jsondb.Store, table string) (any, error) {
	switch table {
	case types.TableEvents:
		return jsondb.GetAll[types.EventRow](db, table, nil)
	case types.TableCharacters:
		return jsondb.GetAll[types.CharacterRow](db, table, nil)
	case types.TableFactions:
		return jsondb.GetAll[types.FactionRow](db, table, nil)
	case types.TableCollections:
		return jsondb.GetAll[types.CollectionRow](db, table, nil)
	case types.TableLocales:
		return jsondb.GetAll[types.LocaleRow](db, table, nil)
	default:
		return nil, unknownTableErr(table)
	}
}

// insertRow appends row to the named table, assigning an id when the row
// carries none.
func insertRow(db *jsondb.Store, table string, row types.Row) (types.Row, error) {
	switch r := row.(type) {
	case *types.EventRow:
		return jsondb.Insert(db, r, table)
	case *types.CharacterRow:
		return jsondb.Insert(db, r, table)
	case *types.FactionRow:
		return jsondb.Insert(db, r, table)
	case *types.CollectionRow:
		return jsondb.Insert(db, r, table)
	case *types.LocaleRow:
		return jsondb.Insert(db, r, table)
	default:
		return nil, unknownTableErr(table)
	}
}

// updateRow replaces the row carrying row's id in the named table.
func updateRow(db *jsondb.Store, table string, row types.Row) (types.Row, error) {
	switch r := row.(type) {
	case *types.EventRow:
		return jsondb.Update(db, r, table)
	case *types.CharacterRow:
		return jsondb.Update(db, r, table)
	case *types.FactionRow:
		return jsondb.Update(db, r, table)
	case *types.CollectionRow:
		return jsondb.Update(db, r, table)
	case *types.LocaleRow:
		return jsondb.Update(db, r, table)
	default:
		return nil, unknownTableErr(table)
	}
}

// nilable lifts a typed row pointer into the Row interface, preserving an
// untyped nil when the store found no match.
func nilable[T any, PT jsondb.RowPtr[T]](row PT, err error) (types.Row, error) {
	if err != nil || row == nil {
		return nil, err
	}
	return row, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
