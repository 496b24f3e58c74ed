package colour

import (
	"image"
	"math"
)

// kmeansIterations is the fixed number of refinement iterations. There
// is no early-exit convergence check; ten rounds are enough for 1024
// samples and keep the output deterministic.
const kmeansIterations = 10

// generateKMeans builds a colorscheme by clustering point samples into
// PaletteSize centroids. Seeding is deterministic: centroids start as
// evenly spaced picks from the samples sorted by descending chroma.
func generateKMeans(img image.Image) Colorscheme {
	samples, darkest, lightest := sampleImage(img, samplePoints)
	if len(samples) == 0 {
		return Colorscheme{Background: darkest, Foreground: lightest}
	}
	sortByChroma(samples)

	// Seed from the chroma-sorted samples. The stride shrinks with the
	// sample count so short sample sets still seed every centroid.
	stride := max(1, len(samples)/PaletteSize)
	centroids := make([]Colour, PaletteSize)
	for i := range centroids {
		centroids[i] = samples[min(i*stride, len(samples)-1)]
	}

	for iter := 0; iter < kmeansIterations; iter++ {
		var rSum, gSum, bSum [PaletteSize]int
		var counts [PaletteSize]int

		for _, sample := range samples {
			if nearExtremum(sample, darkest, lightest) {
				continue
			}

			best := 0
			bestDist := math.Inf(1)
			for k, centroid := range centroids {
				if dist := sample.DistanceTo(centroid); dist < bestDist {
					bestDist = dist
					best = k
				}
			}

			rSum[best] += int(sample.R)
			gSum[best] += int(sample.G)
			bSum[best] += int(sample.B)
			counts[best]++
		}

		for k := range centroids {
			// A centroid with no assigned samples keeps its value.
			if counts[k] == 0 {
				continue
			}
			centroids[k] = New(
				uint8(rSum[k]/counts[k]),
				uint8(gSum[k]/counts[k]),
				uint8(bSum[k]/counts[k]),
			)
		}
	}
	sortByChroma(centroids)

	return Colorscheme{
		Palette:    centroids,
		Background: darkest,
		Foreground: lightest,
	}
}
