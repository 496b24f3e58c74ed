package colour

import (
	"image"
	"math"
)

// ansiReference is the standard 16-colour ANSI palette (xterm defaults)
// used as matching targets by the ansi method. Index order is the
// terminal slot order: normal colours 0-7, bright colours 8-15.
var ansiReference = [PaletteSize][3]uint8{
	{0x00, 0x00, 0x00}, {0xcd, 0x00, 0x00}, {0x00, 0xcd, 0x00}, {0xcd, 0xcd, 0x00},
	{0x00, 0x00, 0xee}, {0xcd, 0x00, 0xcd}, {0x00, 0xcd, 0xcd}, {0xe5, 0xe5, 0xe5},
	{0x7f, 0x7f, 0x7f}, {0xff, 0x00, 0x00}, {0x00, 0xff, 0x00}, {0xff, 0xff, 0x00},
	{0x5c, 0x5c, 0xff}, {0xff, 0x00, 0xff}, {0x00, 0xff, 0xff}, {0xff, 0xff, 0xff},
}

// generateANSI builds a colorscheme by matching each ANSI reference
// colour to its nearest block-averaged sample. Matches are not mutually
// exclusive: one sample may fill several slots. Slots 0 and 15 are
// forced to the darkest and lightest samples regardless of the match
// result, so terminals always get a usable black and white.
func generateANSI(img image.Image) Colorscheme {
	samples, darkest, lightest := sampleImage(img, sampleBlocks)
	if len(samples) == 0 {
		return Colorscheme{Background: darkest, Foreground: lightest}
	}

	palette := make([]Colour, 0, PaletteSize)
	for _, ref := range ansiReference {
		base := New(ref[0], ref[1], ref[2])

		best := samples[0]
		bestDist := math.Inf(1)
		for _, sample := range samples {
			if dist := sample.DistanceTo(base); dist < bestDist {
				bestDist = dist
				best = sample
			}
		}
		palette = append(palette, best)
	}

	palette[0] = darkest
	palette[PaletteSize-1] = lightest

	return Colorscheme{
		Palette:    palette,
		Background: darkest,
		Foreground: lightest,
	}
}
