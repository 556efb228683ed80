// Package supervise spawns the packaged application as a child process,
// relays signals to it, and reproduces its termination behavior as the
// launcher's own.
//
// Full signal-relay semantics are only available on POSIX platforms, where
// the supervisor can forward the identical signal number to the child and
// later die from the identical signal itself. On Windows the supervisor
// shields itself from console events while the child runs and translates
// the child's termination into an exit code.
package supervise
