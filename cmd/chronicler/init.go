// Init command creates an empty catalogue database.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty catalogue database",
	Long: `Init creates the database file at the configured location with every
declared table present and empty. Opening an existing database is a no-op,
so init is safe to run more than once.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	// The session pre-run already created the file if it was missing.
	fmt.Println("initialized database at", sess.db.Path())
	return nil
}
