package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/stagehand/internal/config"
	"github.com/Paintersrp/stagehand/internal/launch"
	"github.com/Paintersrp/stagehand/internal/libpath"
	"github.com/Paintersrp/stagehand/internal/scratch"
	"github.com/Paintersrp/stagehand/internal/supervise"
	"github.com/Paintersrp/stagehand/internal/trace"
)

func newRunCmd(c *context) *cobra.Command {
	var home string
	var noStage bool

	cmd := &cobra.Command{
		Use:   "run [flags] -- executable [args...]",
		Short: "Launch and supervise the packaged application",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLaunch(c, home, noStage, args)
		},
	}

	cmd.Flags().StringVar(&home, "home", "", "Directory holding the launcher's installed files (defaults to the executable's directory)")
	cmd.Flags().BoolVar(&noStage, "no-stage", false, "Skip scratch directory creation; libraries resolve from the home directory")

	return cmd
}

func runLaunch(c *context, home string, noStage bool, argv []string) error {
	opts, err := c.loadOptions()
	if err != nil {
		return err
	}

	if home == "" {
		abs, err := filepath.Abs(argv[0])
		if err != nil {
			return fmt.Errorf("resolve home directory: %w", err)
		}
		home = filepath.Dir(abs)
	}

	lctx := &launch.Context{HomeDir: home, Options: opts}

	cleanup := func() {
		if !lctx.ScratchCreated {
			return
		}
		if failed := scratch.Remove(lctx.ScratchDir); failed > 0 {
			trace.Log().Warn().Int("entries", failed).Str("dir", lctx.ScratchDir).Msg("scratch cleanup incomplete")
		}
		lctx.ScratchDir = ""
		lctx.ScratchCreated = false
	}

	if !noStage {
		mgr := &scratch.Manager{}
		if err := mgr.Ensure(lctx); err != nil {
			return err
		}
	}

	if err := libpath.Configure(lctx); err != nil {
		cleanup()
		return err
	}

	sup := supervise.New(supervise.Config{
		Pump:          newEventPump(),
		IgnoreSignals: opts.IsSet(config.OptionIgnoreSignals),
		SpawnOptions: supervise.SpawnOptions{
			Dir: opts.Workdir(),
			Env: opts.Env(),
		},
	})

	res, runErr := sup.Run(lctx, argv)

	// The exit below never returns, so cleanup cannot be deferred.
	cleanup()

	if runErr != nil {
		return runErr
	}
	supervise.ExitWith(res)
	return nil
}
