package display

import (
	"image"
	"image/color"
)

// Framebuffer is an in-memory panel. It satisfies the drivers Displayer
// contract for hosts without real display hardware.
type Framebuffer struct {
	img    *image.RGBA
	frames int

	// OnDisplay, if set, receives a copy of every flushed frame.
	OnDisplay func(*image.RGBA)
}

// NewFramebuffer returns a black Framebuffer of the given size.
func NewFramebuffer(width, height int16) *Framebuffer {
	f := &Framebuffer{img: image.NewRGBA(image.Rect(0, 0, int(width), int(height)))}
	for i := 3; i < len(f.img.Pix); i += 4 {
		f.img.Pix[i] = 0xFF
	}
	return f
}

func (f *Framebuffer) Size() (x, y int16) {
	b := f.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	// out of bounds writes are dropped by image.RGBA
	f.img.SetRGBA(int(x), int(y), c)
}

// Display counts the frame and hands a copy to OnDisplay.
func (f *Framebuffer) Display() error {
	f.frames++
	if nil != f.OnDisplay {
		f.OnDisplay(f.Snapshot())
	}
	return nil
}

// At returns the pixel at x, y.
func (f *Framebuffer) At(x, y int16) color.RGBA {
	return f.img.RGBAAt(int(x), int(y))
}

// Frames returns the number of flushes so far.
func (f *Framebuffer) Frames() int { return f.frames }

// Snapshot returns a copy of the current contents.
func (f *Framebuffer) Snapshot() *image.RGBA {
	cp := image.NewRGBA(f.img.Bounds())
	copy(cp.Pix, f.img.Pix)
	return cp
}
