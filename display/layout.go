package display

import (
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/ardnew/watchface/model"
)

var (
	fontTime  tinyfont.Fonter = &freesans.Bold24pt7b
	fontDate  tinyfont.Fonter = &freesans.Bold12pt7b
	fontSmall tinyfont.Fonter = &proggy.TinySZ8pt7b
)

type rect struct {
	x, y, w, h int16
}

func (r rect) contains(x, y int16) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// clip returns r restricted to a screen of size sx by sy, or false if nothing
// of r is on screen.
func (r rect) clip(sx, sy int16) (bool, int16, int16, int16, int16) {
	x, y, w, h := r.x, r.y, r.w, r.h
	// normalize width/height to be positive
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	if x < 0 {
		x, w = 0, w+x
	} else if x >= sx {
		return false, 0, 0, 0, 0
	}
	if y < 0 {
		y, h = 0, h+y
	} else if y >= sy {
		return false, 0, 0, 0, 0
	}
	if x+w > sx {
		w = sx - x
	}
	if y+h > sy {
		h = sy - y
	}
	return true, x, y, w, h
}

// layout holds the screen rect of every layer.
type layout struct {
	screen rect
	time   rect
	date   rect
	day    rect
	bar    rect
	label  rect
	status rect
	glyph  rect
}

func newLayout(c Config) layout {
	w, h := c.Width, c.Height
	return layout{
		screen: rect{x: 0, y: 0, w: w, h: h},
		time:   rect{x: 0, y: 55, w: w, h: 55},
		date:   rect{x: 0, y: h - 40, w: w, h: 25},
		day:    rect{x: 0, y: h - 51, w: w, h: 11},
		bar:    rect{x: w - c.BarWidth - 5, y: 5, w: c.BarWidth, h: c.BarHeight},
		label:  rect{x: w - c.BarWidth - 27, y: 3, w: 20, h: c.BarHeight},
		status: rect{x: 0, y: 0, w: w, h: c.BarHeight + 12},
		glyph:  rect{x: 4, y: 5, w: 16, h: 12},
	}
}

// baseline returns the y coordinate that vertically centers a line of f in r.
func baseline(r rect, f tinyfont.Fonter) int16 {
	adv := int16(f.GetYAdvance())
	return r.y + (r.h+adv)/2 - adv/4
}

func palette(c model.Color) color.RGBA {
	switch c {
	case model.ColorWhite:
		return color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	case model.ColorRed:
		return color.RGBA{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF}
	case model.ColorYellow:
		return color.RGBA{R: 0xFF, G: 0xFF, B: 0x00, A: 0xFF}
	case model.ColorGreen:
		return color.RGBA{R: 0x00, G: 0xFF, B: 0x00, A: 0xFF}
	case model.ColorBlue:
		return color.RGBA{R: 0x00, G: 0x00, B: 0xFF, A: 0xFF}
	}
	return color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
}
