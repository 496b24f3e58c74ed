package colour

import (
	"image"
	"image/color"
)

const (
	// gridDivisor controls the sampling grid density: step sizes are
	// derived as dimension/gridDivisor, floored at 1.
	gridDivisor = 32

	// maxSamples bounds the number of samples taken from any image.
	maxSamples = 1024

	// blockSize is the edge length of the pixel block averaged in
	// block mode.
	blockSize = 4

	// Samples with luminance outside (minUsableLuminance,
	// maxUsableLuminance) are never considered for the darkest/lightest
	// extrema; near-black and near-white noise make poor
	// background/foreground candidates.
	minUsableLuminance = 0.05
	maxUsableLuminance = 0.95
)

// sampleMode selects how the sampler reads pixels at each grid point.
type sampleMode int

const (
	// sampleBlocks averages a 4x4 pixel block at each grid point,
	// skipping fully transparent pixels. Blocks that run past the image
	// bounds or contain only transparent pixels produce no sample.
	sampleBlocks sampleMode = iota

	// samplePoints reads the single pixel at each grid point, ignoring
	// alpha.
	samplePoints
)

// defaultDarkest and defaultLightest are the extrema accumulator seeds;
// they survive unchanged when no sample falls inside the usable
// luminance band.
func defaultDarkest() Colour {
	return Colour{R: 255, G: 255, B: 255, Chroma: 0, Luminance: 1.0}
}

func defaultLightest() Colour {
	return Colour{R: 0, G: 0, B: 0, Chroma: 0, Luminance: 0.0}
}

// sampleImage walks the image on a fixed grid in row-major order and
// returns up to maxSamples colour samples along with the darkest and
// lightest usable samples seen during the same scan. The scan stops as
// soon as the sample budget is exhausted, even mid-row.
func sampleImage(img image.Image, mode sampleMode) (samples []Colour, darkest, lightest Colour) {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	stepX := max(1, w/gridDivisor)
	stepY := max(1, h/gridDivisor)

	samples = make([]Colour, 0, maxSamples)
	darkest = defaultDarkest()
	lightest = defaultLightest()

scan:
	for y := 0; y < h; y += stepY {
		for x := 0; x < w; x += stepX {
			if len(samples) >= maxSamples {
				break scan
			}

			var c Colour
			if mode == sampleBlocks {
				var ok bool
				c, ok = sampleBlock(img, x, y, w, h)
				if !ok {
					continue
				}
			} else {
				c = colourAt(img, x, y)
			}

			if c.Luminance < darkest.Luminance && c.Luminance > minUsableLuminance {
				darkest = c
			}
			if c.Luminance > lightest.Luminance && c.Luminance < maxUsableLuminance {
				lightest = c
			}

			samples = append(samples, c)
		}
	}

	return samples, darkest, lightest
}

// sampleBlock averages the 4x4 pixel block whose top-left corner is at
// (x, y), skipping fully transparent pixels. It reports false when the
// block would run past the image bounds or every pixel in it is
// transparent.
func sampleBlock(img image.Image, x, y, w, h int) (Colour, bool) {
	if x+blockSize-1 >= w || y+blockSize-1 >= h {
		return Colour{}, false
	}

	bounds := img.Bounds()
	var rSum, gSum, bSum, count uint32

	for ky := 0; ky < blockSize; ky++ {
		for kx := 0; kx < blockSize; kx++ {
			c := nrgbaAt(img, bounds.Min.X+x+kx, bounds.Min.Y+y+ky)
			if c.A == 0 {
				continue
			}
			rSum += uint32(c.R)
			gSum += uint32(c.G)
			bSum += uint32(c.B)
			count++
		}
	}
	if count == 0 {
		return Colour{}, false
	}

	return New(uint8(rSum/count), uint8(gSum/count), uint8(bSum/count)), true
}

// colourAt reads the single pixel at grid offset (x, y), ignoring its
// alpha value.
func colourAt(img image.Image, x, y int) Colour {
	bounds := img.Bounds()
	c := nrgbaAt(img, bounds.Min.X+x, bounds.Min.Y+y)
	return New(c.R, c.G, c.B)
}

// nrgbaAt reads a pixel as straight (non-premultiplied) RGBA. Sampling
// works on raw channel values: a half-transparent red pixel is still
// pure red, not the darkened value premultiplication would give.
func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}
