// Package host defines what the watchface needs from the platform it runs on:
// event delivery, synchronous peeks of the current state, and the haptic
// motor.
package host

import (
	"time"

	"github.com/ardnew/watchface/model"
)

// Host is the platform binding consumed by run.Run.
type Host interface {
	// Now returns the current local time.
	Now() time.Time
	// ClockIs24h reports the user's clock style setting.
	ClockIs24h() bool
	// Battery returns the current charge level in percent.
	Battery() int
	// Connected reports whether the phone link is up.
	Connected() bool
	// QuietTime reports whether do-not-disturb is active.
	QuietTime() bool
	// Vibrate plays a haptic pattern without waiting for it to finish.
	Vibrate(model.Pattern)
	// Events delivers ticks, battery changes and connection changes. A host
	// may close the channel when it shuts down.
	Events() <-chan model.Event
}
