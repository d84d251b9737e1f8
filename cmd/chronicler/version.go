// Version command for the chronicler CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is the chronicler release version.
const version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the chronicler version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("chronicler", version)
	},
}
