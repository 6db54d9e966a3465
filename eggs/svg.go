package eggs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// The egg template: a radial body gradient running spot -> primary ->
// secondary, a glossy white highlight and three mottling spots. The viewbox
// stays at 64x64; the intended render size is 256x256.
const svgTemplate = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 64 64" width="256" height="256">
  <defs>
    <radialGradient id="egg-grad" cx="40%%" cy="35%%" r="60%%">
      <stop offset="0%%" stop-color="%s"/>
      <stop offset="60%%" stop-color="%s"/>
      <stop offset="100%%" stop-color="%s"/>
    </radialGradient>
    <radialGradient id="shine" cx="35%%" cy="30%%" r="25%%">
      <stop offset="0%%" stop-color="white" stop-opacity="0.6"/>
      <stop offset="100%%" stop-color="white" stop-opacity="0"/>
    </radialGradient>
  </defs>
  <ellipse cx="32" cy="35" rx="18" ry="23" fill="url(#egg-grad)" stroke="%s" stroke-width="1.5"/>
  <ellipse cx="28" cy="28" rx="8" ry="10" fill="url(#shine)"/>
  <ellipse cx="38" cy="42" rx="4" ry="3" fill="%s" opacity="0.5"/>
  <ellipse cx="26" cy="44" rx="3" ry="2.5" fill="%s" opacity="0.4"/>
  <ellipse cx="36" cy="30" rx="2.5" ry="2" fill="%s" opacity="0.3"/>
</svg>`

// SVG returns the egg icon document for one palette.
func SVG(p Palette) string {
	return fmt.Sprintf(svgTemplate,
		p.Spot, p.Primary, p.Secondary,
		p.Secondary,
		p.Spot, p.Spot, p.Spot)
}

// WriteAll emits one <species>-1.svg per palette entry into outDir and
// returns the number of documents written.
func WriteAll(outDir string) (int, error) {
	written := 0
	for _, sp := range Species() {
		doc := SVG(Palettes[sp])
		name := sp + "-1.svg"
		if err := os.WriteFile(filepath.Join(outDir, name), []byte(doc), 0644); err != nil {
			return written, errors.Wrapf(err, "writing %s", name)
		}
		glog.V(1).Infof("  %s", name)
		written++
	}
	return written, nil
}
