package pipeline

import (
	"image"
	"strings"

	"github.com/cenkalti/dominantcolor"
	"github.com/golang/glog"
	"github.com/lucasb-eyer/go-colorful"

	"badc0de.net/pkg/go-petcrop/preview"
	"badc0de.net/pkg/go-petcrop/sheets"
)

// previewSprites prints each species' first pose on the terminal.
func previewSprites(outDir string) {
	for _, sheet := range sheets.Sheets {
		for _, species := range sheet.Species {
			img, err := firstPose(outDir, species)
			if err != nil {
				glog.Errorf("preview of %s: %v", species, err)
				continue
			}
			glog.Infof("preview: %s", species)
			preview.Sprite(img)
		}
	}
}

// suggestPalettes logs a candidate egg palette per sheet species, derived
// from the dominant color of its first cropped sprite. Log-only; the real
// palette table stays hand-tuned.
func suggestPalettes(outDir string) {
	for _, sheet := range sheets.Sheets {
		for _, species := range sheet.Species {
			img, err := firstPose(outDir, species)
			if err != nil {
				glog.Errorf("palette suggestion for %s: %v", species, err)
				continue
			}
			primary, secondary, spot := SuggestPalette(img)
			glog.Infof("suggested palette for %s: primary %s secondary %s spot %s",
				species, primary, secondary, spot)
		}
	}
}

// SuggestPalette derives a {primary, secondary, spot} hex triple from an
// image: its dominant color, a Lab-darkened and a Lab-lightened variant.
func SuggestPalette(img image.Image) (primary, secondary, spot string) {
	c, ok := colorful.MakeColor(dominantcolor.Find(img))
	if !ok {
		// Fully transparent input; any neutral triple will do for a hint.
		c = colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	}
	black := colorful.Color{}
	white := colorful.Color{R: 1, G: 1, B: 1}
	primary = strings.ToUpper(c.Hex())
	secondary = strings.ToUpper(c.BlendLab(black, 0.3).Clamped().Hex())
	spot = strings.ToUpper(c.BlendLab(white, 0.35).Clamped().Hex())
	return primary, secondary, spot
}
