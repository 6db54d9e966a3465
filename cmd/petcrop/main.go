// Command petcrop slices the pre-rendered pet sheet images into individual
// 256x256 sprites and generates the egg and mystery placeholder icons.
//
// One-shot build-time tool: it clears the output directory and regenerates
// every asset from the embedded tables on each run.
package main

import (
	"flag"
	"path/filepath"

	"badc0de.net/pkg/flagutil/v1"

	"github.com/common-nighthawk/go-figure"
	"github.com/golang/glog"

	"badc0de.net/pkg/go-petcrop/pipeline"
)

var (
	imageDir = flag.String("image_dir", "image", "directory holding the source sheet images")
	outDir   = flag.String("out_dir", filepath.Join("public", "pets"), "directory receiving the generated assets; cleared first")

	animFlag   = flag.Bool("anim", false, "also write a looping pose GIF per species")
	rasterEggs = flag.Bool("raster_eggs", false, "also rasterize the egg SVGs to PNG")
	previewOut = flag.Bool("preview", false, "print each species' first sprite on the terminal")
	suggest    = flag.Bool("suggest_palettes", false, "log suggested egg palettes from dominant sprite colors")
	banner     = flag.Bool("banner", true, "print the startup banner")
)

func main() {
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	if *banner {
		figure.NewFigure("petcrop", "", true).Print()
	}

	n, err := pipeline.Run(pipeline.Config{
		ImageDir:        *imageDir,
		OutDir:          *outDir,
		Anim:            *animFlag,
		RasterEggs:      *rasterEggs,
		Preview:         *previewOut,
		SuggestPalettes: *suggest,
	})
	if err != nil {
		glog.Exitf("petcrop: %v", err)
	}
	glog.Infof("done, %d files", n)
}
