// Package model implements the watchface display state and the rules that
// derive it from host events.
//
// A Model is owned by exactly one dispatch loop. Nothing in this package draws
// or talks to the host; Apply returns the side effects (repaint requests,
// haptic pulses) for the caller to carry out.
package model

import "errors"

var (
	ErrUnknownEvent = errors.New("unknown event")
	ErrTextOverflow = errors.New("text exceeds buffer capacity")
)

// Initial label contents, shown until the first events arrive.
const (
	InitialTime    = "00:00"
	InitialDate    = "1970-01-01"
	InitialDay     = "FRAPTIOUS"
	InitialPercent = 100
)

// DaySentinel is an impossible day of month, so the first Tick always repaints
// the date.
const DaySentinel = 40

// Model holds everything displayed on the watchface.
type Model struct {
	Clock      Clock
	Date       Date
	Battery    Battery
	Connection Connection

	rand Rand
}

// Clock is the time label state. It is recomputed on every Tick.
type Clock struct {
	Hour   int
	Minute int
	Is24h  bool
	Text   Text
	// Placeholder reports whether Text holds the easter egg instead of the
	// real time.
	Placeholder bool
}

// Date is the cached date and weekday labels, keyed on day of month.
type Date struct {
	Today int
	Date  Text
	Day   Text
}

// Battery is the charge level and its derived presentation.
type Battery struct {
	Percent int
	Band    Band
	Label   Text
}

// Connection is the phone link state and the time label color it implies.
type Connection struct {
	Connected bool
	TimeColor Color
}

// New returns a Model holding the initial paint state. If r is nil, the
// package-level math/rand/v2 source is used.
func New(r Rand) *Model {
	if nil == r {
		r = DefaultRand
	}
	m := &Model{
		Clock: Clock{
			Text: NewText(TimeCapacity),
		},
		Date: Date{
			Today: DaySentinel,
			Date:  NewText(DateCapacity),
			Day:   NewText(DayCapacity),
		},
		Battery: Battery{
			Label: NewText(PercentCapacity),
		},
		Connection: Connection{
			Connected: true,
			TimeColor: ColorNormal,
		},
		rand: r,
	}
	// the initial strings are constants that fit their buffers
	_ = m.Clock.Text.Set(InitialTime)
	_ = m.Date.Date.Set(InitialDate)
	_ = m.Date.Day.Set(InitialDay)
	_ = m.setBattery(InitialPercent)
	return m
}
