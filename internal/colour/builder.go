package colour

import (
	"fmt"
	"image"
	"slices"
)

// Method identifies a palette construction strategy.
type Method int

const (
	// MethodAreaAverage greedily selects visually distinct block
	// averages, most vivid first.
	MethodAreaAverage Method = iota

	// MethodKMeans clusters point samples into 16 centroids.
	MethodKMeans

	// MethodANSI matches samples against the standard 16-colour ANSI
	// reference table.
	MethodANSI
)

// ParseMethod converts a method name (or its short alias) to a Method.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "area_average", "aa":
		return MethodAreaAverage, nil
	case "kmeans", "km":
		return MethodKMeans, nil
	case "ansi", "an":
		return MethodANSI, nil
	default:
		return 0, fmt.Errorf("unknown method: %s (valid methods: area_average, kmeans, ansi)", name)
	}
}

// String returns the canonical method name.
func (m Method) String() string {
	switch m {
	case MethodAreaAverage:
		return "area_average"
	case MethodKMeans:
		return "kmeans"
	case MethodANSI:
		return "ansi"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// Discriminant returns the single-byte identifier hashed into cache
// keys for this method.
func (m Method) Discriminant() byte {
	return byte(m)
}

// Generate derives a colorscheme from a decoded image using the given
// method. The saturation transform is not applied here; callers chain
// WithSaturation on the result. Generation is total: degenerate images
// (fully transparent, uniform, tiny) yield an empty or short palette
// with default background/foreground rather than an error.
func Generate(img image.Image, method Method) Colorscheme {
	if img == nil {
		return Colorscheme{Background: defaultDarkest(), Foreground: defaultLightest()}
	}
	switch method {
	case MethodKMeans:
		return generateKMeans(img)
	case MethodANSI:
		return generateANSI(img)
	default:
		return generateAreaAverage(img)
	}
}

// sortByChroma orders colours descending by chroma. The sort is stable
// so samples with equal chroma keep their scan order.
func sortByChroma(colours []Colour) {
	slices.SortStableFunc(colours, func(a, b Colour) int {
		return int(b.Chroma) - int(a.Chroma)
	})
}

// nearExtremum reports whether the sample's luminance falls within the
// exclusion band around the darkest or lightest sample. Such samples
// are reserved for the background/foreground roles and never enter a
// palette.
func nearExtremum(c, darkest, lightest Colour) bool {
	const band = 0.08
	diffBg := c.Luminance - darkest.Luminance
	diffFg := c.Luminance - lightest.Luminance
	if diffBg < 0 {
		diffBg = -diffBg
	}
	if diffFg < 0 {
		diffFg = -diffFg
	}
	return diffBg < band || diffFg < band
}
