package cli

import (
	"github.com/spf13/cobra"

	"github.com/Paintersrp/stagehand/internal/config"
)

func newConfigCmd(c *context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Work with launcher options files",
	}
	cmd.AddCommand(newConfigLintCmd(c))
	return cmd
}

func newConfigLintCmd(c *context) *cobra.Command {
	return &cobra.Command{
		Use:   "lint",
		Short: "Validate a launcher options file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := *c.optionsFile
			if path == "" {
				path = "stagehand.yaml"
			}
			if _, err := config.Load(path); err != nil {
				return err
			}
			return nil
		},
	}
}
