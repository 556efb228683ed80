//go:build linux

package supervise

// Standard signals 1-31 plus the Linux real-time range.
const maxSignal = 64
