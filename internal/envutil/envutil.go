// Package envutil wraps process environment access for the launcher.
//
// Values returned by Get are private copies; the launcher and the staged
// application can never mutate each other's view of a variable through a
// returned string. A variable set to the empty string is reported as absent,
// because on some platforms the staged application cannot unset variables
// and clears them to "" instead.
package envutil

import (
	"fmt"
	"os"
)

// Get returns the value of the named environment variable. A missing
// variable and a variable set to the empty string both report absent.
func Get(name string) (string, bool) {
	v := os.Getenv(name)
	if v == "" {
		return "", false
	}
	return v, true
}

// Set assigns the named environment variable.
func Set(name, value string) error {
	if err := os.Setenv(name, value); err != nil {
		return fmt.Errorf("set %s: %w", name, err)
	}
	return nil
}

// Unset removes the named environment variable.
func Unset(name string) error {
	if err := os.Unsetenv(name); err != nil {
		return fmt.Errorf("unset %s: %w", name, err)
	}
	return nil
}

// JoinList joins first and second with sep. The separator is used only when
// both sides are non-empty, so joining against an absent value produces no
// leading or trailing separator.
func JoinList(first, sep, second string) string {
	if first == "" {
		return second
	}
	if second == "" {
		return first
	}
	return first + sep + second
}
