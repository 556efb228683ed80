package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/stagehand/internal/scratch"
)

func newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean <dir>",
		Short: "Remove a leftover scratch directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if failed := scratch.Remove(args[0]); failed > 0 {
				return fmt.Errorf("%s: %d entries could not be removed", args[0], failed)
			}
			return nil
		},
	}
}
