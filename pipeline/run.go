// Package pipeline runs the asset generation passes in order and owns the
// output directory lifecycle.
//
// A run is a pure function of the embedded tables and the source sheets:
// the output directory is cleared up front and fully rebuilt, so stale
// files never survive a rename in the tables.
package pipeline

import (
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-petcrop/anim"
	"badc0de.net/pkg/go-petcrop/eggs"
	"badc0de.net/pkg/go-petcrop/mystery"
	"badc0de.net/pkg/go-petcrop/sheets"
	"badc0de.net/pkg/go-petcrop/sprite"
)

// Config carries the two directories and the opt-in extras. None of the
// extras change the default output set.
type Config struct {
	// ImageDir holds the source sheet images.
	ImageDir string
	// OutDir receives every generated asset. It is cleared first.
	OutDir string

	Anim            bool
	RasterEggs      bool
	Preview         bool
	SuggestPalettes bool
}

// Run executes the full pipeline: sheet slicing, egg generation, the
// mystery placeholder and any enabled extras, strictly in sequence. It
// returns the final number of files in the output directory.
func Run(cfg Config) (int, error) {
	if err := resetOutDir(cfg.OutDir); err != nil {
		return 0, err
	}

	total := 0
	for _, sheet := range sheets.Sheets {
		n, err := sheets.Slice(cfg.ImageDir, cfg.OutDir, sheet)
		if err != nil {
			return 0, errors.Wrapf(err, "slicing %s", sheet.File)
		}
		total += n
	}
	glog.Infof("total PNGs cropped: %d", total)

	if cfg.Preview {
		previewSprites(cfg.OutDir)
	}
	if cfg.SuggestPalettes {
		suggestPalettes(cfg.OutDir)
	}

	eggCount, err := eggs.WriteAll(cfg.OutDir)
	if err != nil {
		return 0, errors.Wrap(err, "generating eggs")
	}
	glog.Infof("egg SVGs generated: %d", eggCount)

	if cfg.RasterEggs {
		n, err := eggs.RasterizeAll(cfg.OutDir)
		if err != nil {
			return 0, errors.Wrap(err, "rasterizing eggs")
		}
		glog.Infof("egg PNGs rasterized: %d", n)
	}

	mysteryPath := filepath.Join(cfg.OutDir, "mystery-evolution.png")
	if err := sprite.SavePNG(mysteryPath, mystery.Image()); err != nil {
		return 0, errors.Wrap(err, "writing mystery icon")
	}
	glog.Infof("mystery evolution image generated")

	if cfg.Anim {
		for _, sheet := range sheets.Sheets {
			for _, species := range sheet.Species {
				if err := anim.WriteSpecies(cfg.OutDir, species, sheets.ColSuffixes[:]); err != nil {
					return 0, errors.Wrapf(err, "animating %s", species)
				}
			}
		}
		glog.Infof("pose GIFs generated: %d", len(sheets.Sheets)*sheets.NumRows)
	}

	entries, err := os.ReadDir(cfg.OutDir)
	if err != nil {
		return 0, errors.Wrap(err, "counting output files")
	}
	glog.Infof("total files in %s: %d", cfg.OutDir, len(entries))
	return len(entries), nil
}

// resetOutDir empties dir, creating it first if it does not exist yet.
func resetOutDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return errors.Wrap(os.MkdirAll(dir, 0755), "creating output dir")
	}
	if err != nil {
		return errors.Wrap(err, "reading output dir")
	}
	for _, e := range entries {
		if err := os.Remove(filepath.Join(dir, e.Name())); err != nil {
			return errors.Wrap(err, "clearing output dir")
		}
	}
	return nil
}

// firstPose loads a species' first pose sprite back from outDir.
func firstPose(outDir, species string) (image.Image, error) {
	f, err := os.Open(filepath.Join(outDir, species+sheets.ColSuffixes[0]+".png"))
	if err != nil {
		return nil, errors.Wrap(err, "opening sprite")
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, errors.Wrap(err, "decoding sprite")
}
