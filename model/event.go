package model

import "time"

// Event is a notification pushed by the host: Tick, BatteryChanged or
// ConnectionChanged.
type Event interface {
	event()
}

// Tick is delivered on every minute boundary with the local time.
type Tick struct {
	Time  time.Time
	Is24h bool
}

// BatteryChanged carries the new charge level in percent.
type BatteryChanged struct {
	Percent int
}

// ConnectionChanged carries the new phone link state.
type ConnectionChanged struct {
	Connected bool
}

func (Tick) event()              {}
func (BatteryChanged) event()    {}
func (ConnectionChanged) event() {}

// Effect is a side effect requested by Apply: MarkDirty or Vibrate.
type Effect interface {
	effect()
}

// MarkDirty requests a repaint of a region on the next render pass.
type MarkDirty struct {
	Region Region
}

// Vibrate requests a single haptic pattern. It is fire-and-forget.
type Vibrate struct {
	Pattern Pattern
}

func (MarkDirty) effect() {}
func (Vibrate) effect()   {}

// Region identifies a repaintable surface of the watchface.
type Region uint8

// Constants defining each Region.
const (
	RegionTime Region = iota
	RegionDate
	RegionDay
	RegionBattery
	RegionStatus

	RegionCount = iota
)

func (r Region) String() string {
	switch r {
	case RegionTime:
		return "time"
	case RegionDate:
		return "date"
	case RegionDay:
		return "day"
	case RegionBattery:
		return "battery"
	case RegionStatus:
		return "status"
	}
	return "unknown"
}

// Pattern identifies a predefined vibration pattern.
type Pattern uint8

// Constants defining each Pattern.
const (
	PatternShortPulse Pattern = iota
	PatternLongPulse
)
