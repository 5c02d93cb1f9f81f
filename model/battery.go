package model

// Band is the severity classification of a battery level.
type Band uint8

// Constants defining each Band, from most to least severe.
const (
	BandRed Band = iota
	BandYellow
	BandGreen
)

// Band thresholds, inclusive upper bounds in percent.
const (
	LowThreshold  = 20
	WarnThreshold = 30
)

// BandOf classifies a battery percentage.
func BandOf(percent int) Band {
	switch {
	case percent <= LowThreshold:
		return BandRed
	case percent <= WarnThreshold:
		return BandYellow
	}
	return BandGreen
}

// Color returns the palette entry used for the bar fill and the label.
func (b Band) Color() Color {
	switch b {
	case BandRed:
		return ColorRed
	case BandYellow:
		return ColorYellow
	}
	return ColorGreen
}

func (b Band) String() string {
	switch b {
	case BandRed:
		return "red"
	case BandYellow:
		return "yellow"
	case BandGreen:
		return "green"
	}
	return "unknown"
}

// BarWidth returns the number of filled pixels in a bar of the given width,
// rounded down. percent is clamped to [0,100].
func BarWidth(percent, width int) int {
	return clampPercent(percent) * width / 100
}

func clampPercent(percent int) int {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}
