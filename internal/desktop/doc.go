// Package desktop intercepts the window system's asynchronous
// open-document events: before the child process exists they are harvested
// into extra child arguments, afterward they are re-targeted at the child.
//
// Only macOS delivers such events; on every other platform this package
// contains no forwarder and the supervisor runs without a pump.
package desktop
