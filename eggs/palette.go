// Package eggs generates the egg icon for each species: a small vector
// document parameterized by a three-color palette, plus an optional
// rasterized PNG rendition.
package eggs

import (
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Palette is the three-color set parameterizing one species' egg icon.
//
// The colors are kept as the literal hex strings from the design table so
// the emitted markup matches it byte for byte; use Colors for color math.
type Palette struct {
	Primary   string
	Secondary string
	Spot      string
}

// Colors parses the palette into colorful values for callers that need to
// do color math rather than emit markup.
func (p Palette) Colors() (primary, secondary, spot colorful.Color, err error) {
	if primary, err = colorful.Hex(p.Primary); err != nil {
		return primary, secondary, spot, errors.Wrap(err, "parsing primary")
	}
	if secondary, err = colorful.Hex(p.Secondary); err != nil {
		return primary, secondary, spot, errors.Wrap(err, "parsing secondary")
	}
	if spot, err = colorful.Hex(p.Spot); err != nil {
		return primary, secondary, spot, errors.Wrap(err, "parsing spot")
	}
	return primary, secondary, spot, nil
}

// Palettes maps every species to its egg palette. It deliberately covers
// more species than the sheet tables do; every entry gets an egg icon.
var Palettes = map[string]Palette{
	"spirit_dog":     {Primary: "#C8B896", Secondary: "#A08868", Spot: "#E8D8C0"},
	"chick_bird":     {Primary: "#A0C8E8", Secondary: "#6898C0", Spot: "#C8E0F8"},
	"young_scale":    {Primary: "#4A90B8", Secondary: "#2A6088", Spot: "#78B0D0"},
	"beetle":         {Primary: "#88A848", Secondary: "#587828", Spot: "#A8C868"},
	"electric_mouse": {Primary: "#E8D040", Secondary: "#B8A020", Spot: "#F8E878"},
	"hard_crab":      {Primary: "#B0886A", Secondary: "#88603A", Spot: "#D0A88A"},
	"mimic_lizard":   {Primary: "#B8B8B8", Secondary: "#888888", Spot: "#D8D8D8"},
	"seed_ball":      {Primary: "#68B048", Secondary: "#408020", Spot: "#90D070"},
	"jellyfish":      {Primary: "#88C0E8", Secondary: "#5090C0", Spot: "#B0D8F8"},
	"ore_giant":      {Primary: "#8888A0", Secondary: "#585878", Spot: "#A8A8C0"},
	"jungle_cub":     {Primary: "#58A038", Secondary: "#387018", Spot: "#80C060"},
	"sky_dragon":     {Primary: "#E88040", Secondary: "#C06020", Spot: "#F8A868"},
	"dune_bug":       {Primary: "#C8A868", Secondary: "#987838", Spot: "#E0C890"},
	"sonic_bat":      {Primary: "#9088B8", Secondary: "#685898", Spot: "#B0A8D8"},
	"snow_beast":     {Primary: "#C0D8E8", Secondary: "#90B0C8", Spot: "#E0F0FF"},
	"circuit_fish":   {Primary: "#4888B8", Secondary: "#285888", Spot: "#70A8D8"},
	"mushroom":       {Primary: "#C07848", Secondary: "#904818", Spot: "#E09870"},
	"crystal_beast":  {Primary: "#B090D0", Secondary: "#8060A8", Spot: "#D0B8E8"},
	"nebula_fish":    {Primary: "#6070B8", Secondary: "#384090", Spot: "#8898D8"},
	"clockwork_bird": {Primary: "#A0A0B0", Secondary: "#707088", Spot: "#C0C0D0"},
}

// Species returns every species with a palette, in a stable order.
func Species() []string {
	out := make([]string, 0, len(Palettes))
	for sp := range Palettes {
		out = append(out, sp)
	}
	sort.Strings(out)
	return out
}
