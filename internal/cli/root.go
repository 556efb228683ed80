package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/stagehand/internal/config"
	"github.com/Paintersrp/stagehand/internal/supervise"
	"github.com/Paintersrp/stagehand/internal/trace"
)

// NewRootCmd builds the launcher's command tree.
func NewRootCmd() *cobra.Command {
	var optionsFile string
	var verbose bool

	root := &cobra.Command{
		Use:   "stagehand",
		Short: "Runtime support layer for self-contained application bundles",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			trace.Init(verbose)
		},
	}

	root.PersistentFlags().StringVarP(&optionsFile, "options", "f", "", "Path to a launcher options file")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable launcher tracing on stderr")

	ctx := &context{optionsFile: &optionsFile}
	root.AddCommand(newRunCmd(ctx))
	root.AddCommand(newCleanCmd())
	root.AddCommand(newConfigCmd(ctx))

	root.SilenceUsage = true
	root.SilenceErrors = true

	return root
}

// Execute runs the CLI entrypoint. A process started as the
// socket-activation helper hop bypasses the command tree entirely and
// replaces itself with the target image.
func Execute() {
	if supervise.IsActivationHelper() {
		if err := supervise.RunActivationHelper(os.Args[1:]); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}

	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type context struct {
	optionsFile *string
}

func (c *context) loadOptions() (*config.Options, error) {
	var file *config.File
	if *c.optionsFile != "" {
		doc, err := config.Load(*c.optionsFile)
		if err != nil {
			return nil, err
		}
		file = doc
	}
	return config.Resolve(file), nil
}
