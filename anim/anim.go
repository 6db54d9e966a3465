// Package anim assembles a species' pose sprites into a looping preview
// GIF.
package anim

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/ericpauley/go-quantize/quantize"
	"github.com/pkg/errors"
)

// frameDelay is the per-frame delay in 100ths of a second.
const frameDelay = 50

// GIF builds a looping animation from the passed frames.
func GIF(frames []image.Image) *gif.GIF {
	g := &gif.GIF{}
	q := quantize.MedianCutQuantizer{}

	for _, img := range frames {
		pal := q.Quantize(make([]color.Color, 0, 255), img)

		// Transparency goes first in the palette so the untouched parts of
		// each paletted frame default to it.
		paletted := image.NewPaletted(img.Bounds(), append(color.Palette{color.Transparent}, pal...))
		draw.Draw(paletted, img.Bounds(), img, img.Bounds().Min, draw.Over)

		g.Image = append(g.Image, paletted)
		g.Delay = append(g.Delay, frameDelay)
		g.Disposal = append(g.Disposal, gif.DisposalBackground)
	}
	g.BackgroundIndex = 0
	return g
}

// WriteSpecies reads the species' pose sprites back from outDir, in the
// passed suffix order, and writes <species>-anim.gif alongside them.
func WriteSpecies(outDir, species string, suffixes []string) error {
	var frames []image.Image
	for _, suffix := range suffixes {
		name := species + suffix + ".png"
		f, err := os.Open(filepath.Join(outDir, name))
		if err != nil {
			return errors.Wrap(err, "opening pose sprite")
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return errors.Wrapf(err, "decoding %s", name)
		}
		frames = append(frames, img)
	}

	out := filepath.Join(outDir, species+"-anim.gif")
	f, err := os.Create(out)
	if err != nil {
		return errors.Wrap(err, "creating gif")
	}
	defer f.Close()
	return gif.EncodeAll(f, GIF(frames))
}
