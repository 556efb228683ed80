//go:build !windows && !linux

package supervise

// No real-time signals outside Linux.
const maxSignal = 31
