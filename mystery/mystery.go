// Package mystery synthesizes the placeholder icon shown for a pet whose
// evolution has not been discovered yet.
package mystery

import (
	"image"
	"image/color"
	"math"
)

const (
	size  = 256
	scale = 6
)

// glyph is the question mark drawn over the plaque, one rune per cell.
// The grid is the artwork itself; do not reformat it.
var glyph = [...]string{
	"  XXXXX  ",
	" XX   XX ",
	"XX    XX ",
	"      XX ",
	"     XX  ",
	"    XX   ",
	"   XX    ",
	"   XX    ",
	"         ",
	"   XX    ",
	"   XX    ",
}

// Image renders the 256x256 placeholder: a rounded-square blue-gray plaque
// that darkens toward the edges, with a pixel-art question mark on top. The
// output is fully deterministic.
func Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			cx, cy := absInt(x-128), absInt(y-128)
			if cx > 110 || cy > 110 {
				continue
			}
			// Corner pixels survive only while their excess distance past
			// the 90px inset stays inside a radius-20 arc.
			ex, ey := maxInt(0, cx-90), maxInt(0, cy-90)
			if ex*ex+ey*ey > 400 {
				continue
			}

			dist := math.Sqrt(float64((x-128)*(x-128) + (y-128)*(y-128)))
			b := int(60 - dist*0.2)
			if b < 30 {
				b = 30
			}
			img.SetNRGBA(x, y, color.NRGBA{uint8(b), uint8(b), uint8(b + 20), 200})
		}
	}

	lavender := color.NRGBA{180, 160, 220, 255}
	startX := 128 - len(glyph[0])*scale/2
	startY := 128 - len(glyph)*scale/2
	for rowI, row := range glyph {
		for colI, ch := range row {
			if ch != 'X' {
				continue
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					px := startX + colI*scale + dx
					py := startY + rowI*scale + dy
					if px >= 0 && px < size && py >= 0 && py < size {
						img.SetNRGBA(px, py, lavender)
					}
				}
			}
		}
	}

	return img
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
