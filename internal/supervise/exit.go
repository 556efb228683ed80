package supervise

import (
	"os"

	"github.com/Paintersrp/stagehand/internal/trace"
)

// ExitWith reproduces the child's termination as the launcher's own: the
// identical exit code when it exited normally, death by the identical
// signal when it was killed, and code 1 when the wait itself failed. It
// does not return.
func ExitWith(res Result) {
	if res.WaitErr != nil {
		os.Exit(1)
	}
	if res.Signaled() {
		trace.Log().Debug().Stringer("signal", res.Signal).Msg("re-raising child signal")
		reraise(res.Signal)
		// Reached only if delivery failed.
		os.Exit(1)
	}
	trace.Log().Debug().Int("code", res.Code).Msg("exiting with child status")
	os.Exit(res.Code)
}
