// Vocab command prints the fixed catalogue vocabularies.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/chronicler/pkg/types"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab <eventtypes|timelines>",
	Short: "Print a fixed vocabulary",
	Long: `Vocab prints one of the fixed vocabularies event rows reference by id:
the event type list or the timeline list.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"eventtypes", "timelines"},
	RunE:      runVocab,
}

func runVocab(cmd *cobra.Command, args []string) error {
	switch args[0] {
	case "eventtypes":
		return printJSON(types.EventTypes)
	case "timelines":
		return printJSON(types.Timelines)
	default:
		return fmt.Errorf("unknown vocabulary %q (valid: eventtypes, timelines)", args[0])
	}
}
