package anim

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"testing"

	"badc0de.net/pkg/go-petcrop/ttesting"
)

func testFrames(n int) []image.Image {
	var frames []image.Image
	for i := 0; i < n; i++ {
		img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
		for y := 2; y < 6; y++ {
			for x := 2; x < 6; x++ {
				img.SetNRGBA(x, y, color.NRGBA{uint8(40 * (i + 1)), 80, 160, 255})
			}
		}
		frames = append(frames, img)
	}
	return frames
}

func TestGIF(t *testing.T) {
	g := GIF(testFrames(7))

	ttesting.AssertEqualInt(t, "frame count", len(g.Image), 7)
	ttesting.AssertEqualInt(t, "delay count", len(g.Delay), 7)
	for i, d := range g.Delay {
		if d != frameDelay {
			t.Errorf("frame %d delay = %d; want %d", i, d, frameDelay)
		}
	}
	for i, d := range g.Disposal {
		if d != byte(gif.DisposalBackground) {
			t.Errorf("frame %d disposal = %d; want background", i, d)
		}
	}
	ttesting.AssertEqualInt(t, "background index", int(g.BackgroundIndex), 0)
}

func TestGIFRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, GIF(testFrames(3))); err != nil {
		t.Fatalf("EncodeAll: %v", err)
	}
	decoded, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	ttesting.AssertEqualInt(t, "decoded frame count", len(decoded.Image), 3)
}
