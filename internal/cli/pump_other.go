//go:build !darwin || !cgo

package cli

import "github.com/Paintersrp/stagehand/internal/supervise"

func newEventPump() supervise.EventPump {
	return nil
}
