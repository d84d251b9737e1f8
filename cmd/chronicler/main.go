// Package main provides the chronicler CLI: an editor-side tool for the
// Chronicles narrative catalogue. It opens a JSON database, offers CRUD
// over the declared tables, and exports the resolved catalogue as an addon
// data archive.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
