package main

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const halfBlock = "▀"

// renderFrame draws img with one terminal cell per two pixel rows: the upper
// pixel is the foreground of a half block, the lower one its background.
func renderFrame(img *image.RGBA) string {
	b := img.Bounds()
	black := color.RGBA{A: 0xFF}
	var out strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			out.WriteByte('\n')
		}
		var (
			run        int
			top, under color.RGBA
		)
		for x := b.Min.X; x < b.Max.X; x++ {
			t, u := img.RGBAAt(x, y), black
			if y+1 < b.Max.Y {
				u = img.RGBAAt(x, y+1)
			}
			if run > 0 && (t != top || u != under) {
				out.WriteString(cells(run, top, under))
				run = 0
			}
			top, under = t, u
			run++
		}
		if run > 0 {
			out.WriteString(cells(run, top, under))
		}
	}
	return out.String()
}

func cells(n int, top, under color.RGBA) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hex(top))).
		Background(lipgloss.Color(hex(under))).
		Render(strings.Repeat(halfBlock, n))
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
