//go:build windows

package supervise

import "errors"

// Socket activation is a POSIX service-manager convention; the helper hop
// never runs on Windows.

func IsActivationHelper() bool {
	return false
}

func RunActivationHelper([]string) error {
	return errors.New("socket activation is not supported on windows")
}
