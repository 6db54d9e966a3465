// Package preview prints normalized sprites on the terminal while the
// pipeline runs. Debugging aid; no output stability guarantees.
package preview

import (
	"fmt"
	"image"
	"os"

	"github.com/BourgeoisBear/rasterm"
	"github.com/andybons/gogif"
	"github.com/gookit/color"
	"github.com/nfnt/resize"
	"golang.org/x/crypto/ssh/terminal"
)

// Sprite draws one sprite with the best renderer the terminal supports:
// native images on kitty and iterm2/wezterm, sixels where advertised and
// 24-bit colored blanks everywhere else.
func Sprite(img image.Image) {
	if rasterm.IsTermKitty() {
		rasterm.Settings{}.KittyWriteImage(os.Stdout, img)
		fmt.Println()
		return
	}
	if rasterm.IsTermItermWez() {
		rasterm.Settings{}.ItermWriteImage(os.Stdout, img)
		fmt.Println()
		return
	}
	if capable, err := rasterm.IsSixelCapable(); capable && err == nil {
		paletted := image.NewPaletted(img.Bounds(), nil)
		quantizer := gogif.MedianCutQuantizer{NumColor: 64}
		quantizer.Quantize(paletted, img.Bounds(), img, image.ZP)
		rasterm.Settings{}.SixelWriteImage(os.Stdout, paletted)
		fmt.Println()
		return
	}
	blanks(downsize(img))
}

// downsize shrinks a sprite so two terminal cells stand in for one pixel.
func downsize(img image.Image) image.Image {
	w, h, err := terminal.GetSize(0)
	if err != nil {
		w, h = 80, 25
	}
	return resize.Thumbnail(uint(w/2), uint(h), img, resize.Lanczos3)
}

// blanks renders the sprite as colored double-space cells, transparent
// pixels as plain blanks.
func blanks(img image.Image) {
	for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y; y++ {
		for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
			cR, cG, cB, cA := img.At(x, y).RGBA()
			if cA > 0 {
				color.RGB(uint8(cR>>8), uint8(cG>>8), uint8(cB>>8), true).Printf("  ")
			} else {
				fmt.Printf("\x1b[0m  ")
			}
		}
		fmt.Printf("\x1b[0m\n")
	}
}
