// Count command prints the number of rows in a table.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var countCmd = &cobra.Command{
	Use:   "count <table>",
	Short: "Count the rows of a table",
	Args:  cobra.ExactArgs(1),
	RunE:  runCount,
}

func runCount(cmd *cobra.Command, args []string) error {
	n, err := sess.db.Count(args[0])
	if err != nil {
		return err
	}
	fmt.Println(n)
	return nil
}
