package pipeline

import (
	"crypto/sha256"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"badc0de.net/pkg/go-petcrop/sheets"
	"badc0de.net/pkg/go-petcrop/sprite"
	"badc0de.net/pkg/go-petcrop/ttesting"
)

// writeTestSheets fills imageDir with one synthetic sheet per table entry.
// 1016x736 keeps the grid arithmetic meaningful while staying fast.
func writeTestSheets(t *testing.T, imageDir string) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 1016, 736))
	for y := 0; y < 736; y++ {
		for x := 0; x < 1016; x++ {
			img.SetNRGBA(x, y, color.NRGBA{200, 50, 50, 255})
		}
	}
	for _, sheet := range sheets.Sheets {
		if err := sprite.SavePNG(filepath.Join(imageDir, sheet.File), img); err != nil {
			t.Fatalf("writing synthetic sheet %s: %v", sheet.File, err)
		}
	}
}

func hashOutputs(t *testing.T, dir string) map[string][32]byte {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading %s: %v", dir, err)
	}
	out := map[string][32]byte{}
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			t.Fatalf("reading %s: %v", e.Name(), err)
		}
		out[e.Name()] = sha256.Sum256(data)
	}
	return out
}

func TestRun(t *testing.T) {
	imageDir := t.TempDir()
	writeTestSheets(t, imageDir)
	outDir := filepath.Join(t.TempDir(), "pets") // does not exist yet

	n, err := Run(Config{ImageDir: imageDir, OutDir: outDir})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	ttesting.AssertEqualInt(t, "file count", n, 161)

	pngs, svgs := 0, 0
	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("reading out dir: %v", err)
	}
	for _, e := range entries {
		switch {
		case strings.HasSuffix(e.Name(), ".png"):
			pngs++
		case strings.HasSuffix(e.Name(), ".svg"):
			svgs++
		default:
			t.Errorf("unexpected output file %s", e.Name())
		}
	}
	ttesting.AssertEqualInt(t, "png count", pngs, 141)
	ttesting.AssertEqualInt(t, "svg count", svgs, 20)
}

func TestRunClearsStaleFiles(t *testing.T) {
	imageDir := t.TempDir()
	writeTestSheets(t, imageDir)
	outDir := t.TempDir()
	stale := filepath.Join(outDir, "renamed_species-2.png")
	if err := os.WriteFile(stale, []byte("old run"), 0644); err != nil {
		t.Fatalf("planting stale file: %v", err)
	}

	n, err := Run(Config{ImageDir: imageDir, OutDir: outDir})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	ttesting.AssertEqualInt(t, "file count", n, 161)
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Errorf("stale file survived the run: %v", err)
	}
}

func TestRunDeterministic(t *testing.T) {
	imageDir := t.TempDir()
	writeTestSheets(t, imageDir)
	outDir := t.TempDir()

	if _, err := Run(Config{ImageDir: imageDir, OutDir: outDir}); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	first := hashOutputs(t, outDir)

	if _, err := Run(Config{ImageDir: imageDir, OutDir: outDir}); err != nil {
		t.Fatalf("second Run: %v", err)
	}
	second := hashOutputs(t, outDir)

	ttesting.AssertEqualInt(t, "stable file set", len(second), len(first))
	for name, sum := range first {
		if second[name] != sum {
			t.Errorf("%s changed between identical runs", name)
		}
	}
}

func TestRunMissingSheets(t *testing.T) {
	if _, err := Run(Config{ImageDir: t.TempDir(), OutDir: t.TempDir()}); err == nil {
		t.Fatal("Run with no source sheets did not fail")
	}
}

func TestSuggestPalette(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.SetNRGBA(x, y, color.NRGBA{200, 50, 50, 255})
		}
	}

	primary, secondary, spot := SuggestPalette(img)
	for _, hex := range []string{primary, secondary, spot} {
		if len(hex) != 7 || !strings.HasPrefix(hex, "#") {
			t.Errorf("suggested color %q is not a #RRGGBB hex triple", hex)
		}
		if hex != strings.ToUpper(hex) {
			t.Errorf("suggested color %q is not uppercase like the palette table", hex)
		}
	}
	if primary == secondary || primary == spot {
		t.Errorf("suggested triple does not vary: %s %s %s", primary, secondary, spot)
	}
}
