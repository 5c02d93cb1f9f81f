// Package display draws the watchface onto a pixel panel.
//
// Any device satisfying the tinygo drivers Displayer contract can be used: a
// real panel driver on the watch, or a Framebuffer on a desktop host.
package display

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"
	"tinygo.org/x/tinyfont"

	"github.com/ardnew/watchface/model"
)

// Default constants for Display configuration.
const (
	DefaultWidth     = 144 // px
	DefaultHeight    = 168 // px
	DefaultBarWidth  = 30  // px
	DefaultBarHeight = 15  // px
)

// Config defines the panel and battery bar geometry. Zero fields take the
// panel's own size, then the Default constants.
type Config struct {
	Width     int16
	Height    int16
	BarWidth  int16
	BarHeight int16
}

// QuietModer reports whether the host is currently in quiet time.
type QuietModer interface {
	QuietTime() bool
}

// Display renders a model.Model onto a panel. Regions are only repainted after
// they have been marked dirty.
type Display struct {
	dev    drivers.Displayer
	quiet  QuietModer
	layout layout
	dirty  [model.RegionCount]bool
}

// paint order; the battery sits on top of the status strip
var order = [model.RegionCount]model.Region{
	model.RegionStatus,
	model.RegionBattery,
	model.RegionTime,
	model.RegionDay,
	model.RegionDate,
}

// New returns a Display drawing onto dev. quiet may be nil, in which case the
// muted glyph is never shown. Every region starts dirty.
func New(dev drivers.Displayer, config Config, quiet QuietModer) *Display {
	if 0 == config.Width || 0 == config.Height {
		config.Width, config.Height = dev.Size()
	}
	if 0 == config.Width {
		config.Width = DefaultWidth
	}
	if 0 == config.Height {
		config.Height = DefaultHeight
	}
	if 0 == config.BarWidth {
		config.BarWidth = DefaultBarWidth
	}
	if 0 == config.BarHeight {
		config.BarHeight = DefaultBarHeight
	}
	d := &Display{
		dev:    dev,
		quiet:  quiet,
		layout: newLayout(config),
	}
	for i := range d.dirty {
		d.dirty[i] = true
	}
	return d
}

// MarkDirty schedules region for repaint on the next call to Render.
func (d *Display) MarkDirty(region model.Region) {
	if int(region) < len(d.dirty) {
		d.dirty[region] = true
	}
}

// Dirty reports whether region is waiting for a repaint.
func (d *Display) Dirty(region model.Region) bool {
	return int(region) < len(d.dirty) && d.dirty[region]
}

// Render repaints every dirty region from m and flushes the panel. Nothing is
// drawn or flushed if no region is dirty.
func (d *Display) Render(m *model.Model) error {
	pending := false
	for _, v := range d.dirty {
		pending = pending || v
	}
	if !pending {
		return nil
	}
	if d.dirty[model.RegionStatus] {
		d.dirty[model.RegionBattery] = true
	}
	for _, r := range order {
		if d.dirty[r] {
			d.paint(r, m)
			d.dirty[r] = false
		}
	}
	return d.dev.Display()
}

// Close blanks the panel.
func (d *Display) Close() error {
	d.fillRect(d.layout.screen, palette(model.ColorBlack))
	return d.dev.Display()
}

func (d *Display) paint(region model.Region, m *model.Model) {
	l := &d.layout
	switch region {
	case model.RegionTime:
		d.drawText(l.time, fontTime, alignCenter, m.Clock.Text.String(),
			palette(m.Connection.TimeColor))

	case model.RegionDate:
		d.drawText(l.date, fontDate, alignCenter, m.Date.Date.String(),
			palette(model.ColorWhite))

	case model.RegionDay:
		d.drawText(l.day, fontSmall, alignCenter, m.Date.Day.String(),
			palette(model.ColorWhite))

	case model.RegionBattery:
		band := palette(m.Battery.Band.Color())
		bar := l.bar
		d.fillRect(bar, palette(model.ColorWhite))
		if w := int16(model.BarWidth(m.Battery.Percent, int(bar.w))); w > 0 {
			d.fillRect(rect{x: bar.x + bar.w - w, y: bar.y, w: w, h: bar.h}, band)
		}
		// terminal nub on the left edge
		nub := bar.h / 4
		d.fillRect(rect{x: bar.x, y: bar.y, w: 4, h: nub}, palette(model.ColorBlack))
		d.fillRect(rect{x: bar.x, y: bar.y + bar.h - nub, w: 4, h: nub}, palette(model.ColorBlack))
		d.drawText(l.label, fontSmall, alignRight, m.Battery.Label.String(), band)

	case model.RegionStatus:
		s := l.status
		d.fillRect(s, palette(model.ColorBlack))
		tinydraw.Line(d.clip(s), s.x, s.y+s.h-1, s.x+s.w-1, s.y+s.h-1,
			palette(m.Battery.Band.Color()))
		// quiet time is polled on every repaint, never cached
		if nil != d.quiet && d.quiet.QuietTime() {
			drawMuted(d.clip(l.glyph), l.glyph)
		}
	}
}

type align uint8

const (
	alignLeft align = iota
	alignCenter
	alignRight
)

func (d *Display) drawText(r rect, f tinyfont.Fonter, a align, s string, c color.RGBA) {
	d.fillRect(r, palette(model.ColorBlack))
	if "" == s {
		return
	}
	_, w := tinyfont.LineWidth(f, s)
	x := r.x
	switch a {
	case alignCenter:
		x += (r.w - int16(w)) / 2
	case alignRight:
		x += r.w - int16(w)
	}
	tinyfont.WriteLine(d.clip(r), f, x, baseline(r, f), s, c)
}

func (d *Display) fillRect(r rect, c color.RGBA) {
	sx, sy := d.dev.Size()
	if ok, x, y, w, h := r.clip(sx, sy); ok && w > 0 && h > 0 {
		_ = tinydraw.FilledRectangle(d.dev, x, y, w, h, c)
	}
}

func (d *Display) clip(r rect) *clipped {
	return &clipped{dev: d.dev, r: r}
}

// clipped restricts drawing to a single rect of the underlying device.
type clipped struct {
	dev drivers.Displayer
	r   rect
}

func (c *clipped) Size() (x, y int16) { return c.dev.Size() }

func (c *clipped) SetPixel(x, y int16, col color.RGBA) {
	if c.r.contains(x, y) {
		c.dev.SetPixel(x, y, col)
	}
}

// Display is a no-op; Render flushes the real device once per pass.
func (c *clipped) Display() error { return nil }
