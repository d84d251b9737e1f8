// Clear command removes every row of a table.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear <table>",
	Short: "Remove every row of a table",
	Long: `Clear empties the named table. The table itself stays declared in the
database file.

Example:
  chronicler clear locales`,
	Args: cobra.ExactArgs(1),
	RunE: runClear,
}

func runClear(cmd *cobra.Command, args []string) error {
	if err := sess.db.Clear(args[0]); err != nil {
		return err
	}
	fmt.Printf("cleared %s\n", args[0])
	return nil
}
