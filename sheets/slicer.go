package sheets

import (
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-petcrop/sprite"
)

// subImager is implemented by every raster type the stdlib PNG decoder
// returns.
type subImager interface {
	image.Image
	SubImage(r image.Rectangle) image.Image
}

// Slice cuts one sheet into its NumRows*NumCols cells, pushes every cell
// through the sprite cleanup pipeline and writes the results into outDir as
// <species><suffix>.png. It returns the number of sprites written.
func Slice(imageDir, outDir string, sheet Sheet) (int, error) {
	f, err := os.Open(filepath.Join(imageDir, sheet.File))
	if err != nil {
		return 0, errors.Wrap(err, "opening sheet")
	}
	img, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		return 0, errors.Wrapf(err, "decoding sheet %s", sheet.File)
	}

	src, ok := img.(subImager)
	if !ok {
		return 0, errors.Errorf("sheet %s decoded to unsliceable %T", sheet.File, img)
	}

	size := img.Bounds().Size()
	glog.Infof("processing %s (%dx%d)", sheet.File, size.X, size.Y)

	written := 0
	for row := 0; row < NumRows; row++ {
		species := sheet.Species[row]
		for col := 0; col < NumCols; col++ {
			cell := src.SubImage(CellRect(size, row, col))
			out := sprite.Normalize(cell)

			name := species + ColSuffixes[col] + ".png"
			if err := sprite.SavePNG(filepath.Join(outDir, name), out); err != nil {
				return written, errors.Wrapf(err, "writing %s", name)
			}
			written++
		}
		glog.Infof("  %s: %d images cropped", species, NumCols)
	}
	return written, nil
}
