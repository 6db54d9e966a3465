// Package sprite normalizes cropped sheet cells into canonical 256x256
// transparent-background sprites.
package sprite

import (
	"image"
	"image/draw"
	"image/png"
	"math"
	"os"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

const (
	// TargetSize is the width and height of every normalized sprite.
	TargetSize = 256

	// padding keeps a margin between the content and the canvas edge.
	padding = 16

	// The upstream image generator paints transparency as a bright
	// near-gray checkerboard. The thresholds are tuned empirically against
	// the generated sheets; they also strip bright near-gray highlights
	// inside genuine artwork, which is accepted.
	grayMaxChannelDiff = 20
	grayMinBrightness  = 180
)

// Normalize runs the full cleanup pipeline on one cropped cell:
// checkerboard removal, alpha bounding-box crop, Lanczos scale-to-fit and
// centering on a transparent TargetSize canvas.
//
// The result is always exactly TargetSize x TargetSize with per-pixel
// alpha. A cell with no opaque content left after cleanup produces a blank
// transparent sprite rather than an error, so a creature slot is never
// silently dropped.
func Normalize(cell image.Image) *image.NRGBA {
	cleaned := RemoveCheckerboard(cell)
	out := image.NewNRGBA(image.Rect(0, 0, TargetSize, TargetSize))

	bbox := alphaBounds(cleaned)
	if bbox.Empty() {
		return out
	}
	cropped := cleaned.SubImage(bbox)
	w, h := bbox.Dx(), bbox.Dy()

	maxDim := TargetSize - 2*padding
	ratio := math.Min(float64(maxDim)/float64(w), float64(maxDim)/float64(h))
	newW := int(float64(w) * ratio)
	newH := int(float64(h) * ratio)
	resized := resize.Resize(uint(newW), uint(newH), cropped, resize.Lanczos3)

	// Floor division biases any sub-pixel remainder toward the top left.
	x := (TargetSize - newW) / 2
	y := (TargetSize - newH) / 2
	dst := image.Rect(x, y, x+newW, y+newH)
	draw.Draw(out, dst, resized, resized.Bounds().Min, draw.Over)

	return out
}

// RemoveCheckerboard copies src into a fresh NRGBA image and zeroes the
// alpha of every near-gray bright pixel: maximum pairwise channel
// difference under grayMaxChannelDiff and mean brightness over
// grayMinBrightness. Colored or dark pixels pass through untouched.
func RemoveCheckerboard(src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)

	for i := 0; i < len(dst.Pix); i += 4 {
		r := int(dst.Pix[i])
		g := int(dst.Pix[i+1])
		bl := int(dst.Pix[i+2])

		maxDiff := absInt(r - g)
		if d := absInt(g - bl); d > maxDiff {
			maxDiff = d
		}
		if d := absInt(r - bl); d > maxDiff {
			maxDiff = d
		}

		// r+g+bl > 3*grayMinBrightness is the integer form of
		// mean brightness > grayMinBrightness.
		if maxDiff < grayMaxChannelDiff && r+g+bl > 3*grayMinBrightness {
			dst.Pix[i+3] = 0
		}
	}
	return dst
}

// alphaBounds returns the minimal rectangle containing every pixel with
// nonzero alpha, or the zero rectangle when the image is fully transparent.
func alphaBounds(img *image.NRGBA) image.Rectangle {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X, b.Min.Y
	found := false

	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.Pix[row+(x-b.Min.X)*4+3] != 0 {
				found = true
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
				if y < minY {
					minY = y
				}
				if y > maxY {
					maxY = y
				}
			}
		}
	}
	if !found {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

// SavePNG writes img to path, overwriting any previous file.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating png")
	}
	defer f.Close()
	return png.Encode(f, img)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
