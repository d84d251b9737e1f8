// Set command inserts or updates a row from a JSON payload.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dukaforge/chronicler/internal/mapper"
	"github.com/dukaforge/chronicler/pkg/types"
)

var setCmd = &cobra.Command{
	Use:   "set <table> <json>",
	Short: "Insert or update a row",
	Long: `Set writes a row to the named table. A payload without an id (or with
the -1 placeholder) is inserted and assigned the next id; a payload carrying
an id replaces the existing row with that id. Pass "-" to read the payload
from stdin.

Valid table names: events, characters, factions, collections, locales

Example:
  chronicler set collections '{"name": "Warcraft"}'
  chronicler set events - < event.json`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func runSet(cmd *cobra.Command, args []string) error {
	table := args[0]

	payload := []byte(args[1])
	if args[1] == "-" {
		var err error
		payload, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}

	row, err := parseRow(table, payload)
	if err != nil {
		return fmt.Errorf("parse row: %w", err)
	}

	if event, ok := row.(*types.EventRow); ok {
		if err := mapper.CheckYears(event); err != nil {
			return err
		}
	}

	if id := row.RowID(); id == 0 || id == types.IDUnassigned {
		row, err = insertRow(sess.db, table, row)
	} else {
		row, err = updateRow(sess.db, table, row)
	}
	if err != nil {
		return err
	}
	return printJSON(row)
}
