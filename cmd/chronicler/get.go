// Get command retrieves a row by id from a table.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <table> <id>",
	Short: "Get a row by id",
	Long: `Get retrieves a row from the named table by its integer id and prints
it as JSON.

Valid table names: events, characters, factions, collections, locales

Example:
  chronicler get events 12
  chronicler get locales 3`,
	Args: cobra.ExactArgs(2),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	table := args[0]
	id, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("id must be an integer: %q", args[1])
	}

	row, err := getRow(sess.db, table, id)
	if err != nil {
		return err
	}
	if row == nil {
		return fmt.Errorf("row %d not found in table %q", id, table)
	}
	return printJSON(row)
}
