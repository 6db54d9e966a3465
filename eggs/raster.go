package eggs

import (
	"image"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"badc0de.net/pkg/go-petcrop/sprite"
)

// Rasterize renders one palette's egg document into a 256x256 RGBA image.
func Rasterize(p Palette) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(SVG(p)))
	if err != nil {
		return nil, errors.Wrap(err, "parsing egg svg")
	}

	const size = sprite.TargetSize
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1)
	return img, nil
}

// RasterizeAll renders every egg to <species>-egg.png in outDir, next to the
// vector originals, and returns the number of files written.
func RasterizeAll(outDir string) (int, error) {
	written := 0
	for _, sp := range Species() {
		img, err := Rasterize(Palettes[sp])
		if err != nil {
			return written, errors.Wrapf(err, "rasterizing %s egg", sp)
		}
		name := sp + "-egg.png"
		if err := sprite.SavePNG(filepath.Join(outDir, name), img); err != nil {
			return written, errors.Wrapf(err, "writing %s", name)
		}
		written++
	}
	return written, nil
}
