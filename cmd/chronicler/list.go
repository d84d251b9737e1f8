// List command prints every row of a table.
package main

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <table>",
	Short: "List every row of a table",
	Long: `List prints every row of the named table as a JSON array, in the
order the rows are stored.

Valid table names: events, characters, factions, collections, locales

Example:
  chronicler list collections`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	rows, err := listRows(sess.db, args[0])
	if err != nil {
		return err
	}
	return printJSON(rows)
}
