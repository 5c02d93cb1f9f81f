package model

// Color is an entry in the watchface palette. The renderer decides what each
// entry looks like on a particular panel.
type Color uint8

// Constants defining each palette entry.
const (
	ColorBlack Color = iota
	ColorWhite
	ColorRed
	ColorYellow
	ColorGreen
	ColorBlue
)

// Time label colors for a connected and a disconnected phone link.
const (
	ColorNormal = ColorWhite
	ColorAlert  = ColorBlue
)

func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "black"
	case ColorWhite:
		return "white"
	case ColorRed:
		return "red"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	}
	return "unknown"
}
