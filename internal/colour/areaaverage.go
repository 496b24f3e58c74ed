package colour

import "image"

// minPaletteDistance is the minimum Manhattan RGB distance between any
// two colours accepted into an area-average palette.
const minPaletteDistance = 50

// generateAreaAverage builds a colorscheme by greedily selecting
// visually distinct block-averaged samples, most vivid first. Samples
// too close in luminance to the darkest or lightest sample are skipped;
// those roles are reserved for the background and foreground.
func generateAreaAverage(img image.Image) Colorscheme {
	samples, darkest, lightest := sampleImage(img, sampleBlocks)
	sortByChroma(samples)

	palette := make([]Colour, 0, PaletteSize)
	for _, sample := range samples {
		if nearExtremum(sample, darkest, lightest) {
			continue
		}

		distinct := true
		for _, existing := range palette {
			if sample.manhattanDistanceTo(existing) < minPaletteDistance {
				distinct = false
				break
			}
		}
		if !distinct {
			continue
		}

		palette = append(palette, sample)
		if len(palette) >= PaletteSize {
			break
		}
	}
	sortByChroma(palette)

	return Colorscheme{
		Palette:    palette,
		Background: darkest,
		Foreground: lightest,
	}
}
