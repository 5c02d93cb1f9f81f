package display

import (
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"

	"github.com/ardnew/watchface/model"
)

// drawMuted draws a crossed-out speaker filling r: a magnet block, a
// trapezoidal body widening to the right, and two strike lines corner to
// corner.
func drawMuted(d drivers.Displayer, r rect) {
	fg := palette(model.ColorWhite)
	strike := palette(model.ColorRed)

	var (
		mx, my, mw, mh = r.x, r.y + r.h/4, r.w / 4, r.h / 2
		bx0, bx1       = mx + mw, r.x + r.w*5/8
		top, bottom    = r.y, r.y + r.h - 1
	)
	_ = tinydraw.FilledRectangle(d, mx, my, mw, mh, fg)
	tinydraw.FilledTriangle(d, bx0, my, bx1, top, bx1, bottom, fg)
	tinydraw.FilledTriangle(d, bx0, my, bx1, bottom, bx0, my+mh-1, fg)

	tinydraw.Line(d, r.x, r.y, r.x+r.w-1, r.y+r.h-1, strike)
	tinydraw.Line(d, r.x+r.w-1, r.y, r.x, r.y+r.h-1, strike)
}
