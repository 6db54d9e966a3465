// Package sheets slices the pre-rendered creature sheet images into
// individual sprite cells.
//
// Every sheet is a 4-row, 7-column grid of poses: one species per row, one
// pose variant per column, with a series-name label strip on the right edge
// and a text caption under each row. The tables and layout constants below
// are tuned against the known 2816x1536 source images and encode which part
// of each sheet is actual creature art.
package sheets

// A Sheet describes one source image: its file name under the image
// directory and the species drawn in each of its rows, top to bottom.
type Sheet struct {
	File    string
	Species [NumRows]string
}

const (
	NumRows = 4
	NumCols = 7

	// labelMargin is the width of the series-name label strip on the right
	// edge of every sheet; cells only occupy the area left of it.
	labelMargin = 316

	// captionTrim cuts the caption text from the bottom of each row.
	captionTrim = 120

	// hInset and vInsetTop exclude the arrows and separator lines drawn
	// between cells.
	hInset    = 30
	vInsetTop = 12
)

// Sheets lists the five source images and their species rows.
var Sheets = []Sheet{
	{
		File:    "Gemini_Generated_Image_quvfovquvfovquvf.png",
		Species: [NumRows]string{"spirit_dog", "chick_bird", "young_scale", "beetle"},
	},
	{
		File:    "Gemini_Generated_Image_tt5yqbtt5yqbtt5y.png",
		Species: [NumRows]string{"electric_mouse", "hard_crab", "mimic_lizard", "seed_ball"},
	},
	{
		File:    "Gemini_Generated_Image_sug7njsug7njsug7.png",
		Species: [NumRows]string{"jellyfish", "ore_giant", "jungle_cub", "sky_dragon"},
	},
	{
		File:    "Gemini_Generated_Image_nbsvaxnbsvaxnbsv.png",
		Species: [NumRows]string{"dune_bug", "sonic_bat", "snow_beast", "circuit_fish"},
	},
	{
		File:    "Gemini_Generated_Image_tj9euntj9euntj9e.png",
		Species: [NumRows]string{"mushroom", "crystal_beast", "nebula_fish", "clockwork_bird"},
	},
}

// ColSuffixes maps a column index to the output file name suffix that
// distinguishes the pose variants of one species.
var ColSuffixes = [NumCols]string{"-2", "-a3", "-a4", "-a5", "-b3", "-b4", "-b5"}
