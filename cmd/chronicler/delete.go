// Delete command removes a row by id from a table.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <table> <id>",
	Short: "Delete a row by id",
	Long: `Delete removes the row with the given id from the named table.
Deleting an id that is not present is a silent no-op.

Example:
  chronicler delete events 12`,
	Args: cobra.ExactArgs(2),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	table := args[0]
	id, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("id must be an integer: %q", args[1])
	}

	if err := sess.db.Delete(id, table); err != nil {
		return err
	}
	fmt.Printf("deleted %s/%d\n", table, id)
	return nil
}
