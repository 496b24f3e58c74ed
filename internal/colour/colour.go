// Package colour implements the colour model, image sampling, and the
// palette generation strategies used to derive terminal colorschemes.
package colour

import (
	"fmt"
	"math"
)

// Colour is an RGB sample together with its derived chroma and relative
// luminance. Chroma and Luminance are always recomputed whenever the
// channel values change; construct values through New so they are never
// stale.
type Colour struct {
	R, G, B uint8

	// Chroma is max(R,G,B) - min(R,G,B), a proxy for vividness.
	Chroma uint8

	// Luminance is the ITU-R BT.709 relative luminance in [0, 1].
	Luminance float64
}

// New creates a Colour from 8-bit channel values, deriving chroma and
// luminance.
func New(r, g, b uint8) Colour {
	return Colour{
		R:         r,
		G:         g,
		B:         b,
		Chroma:    maxChannel(r, g, b) - minChannel(r, g, b),
		Luminance: luminance(r, g, b),
	}
}

// DistanceTo returns the Euclidean distance to other in RGB space.
func (c Colour) DistanceTo(other Colour) float64 {
	dr := float64(c.R) - float64(other.R)
	dg := float64(c.G) - float64(other.G)
	db := float64(c.B) - float64(other.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// manhattanDistanceTo returns |dR| + |dG| + |dB|, used by the
// area-average builder's distinctness filter.
func (c Colour) manhattanDistanceTo(other Colour) int {
	dr := int(c.R) - int(other.R)
	dg := int(c.G) - int(other.G)
	db := int(c.B) - int(other.B)
	return abs(dr) + abs(dg) + abs(db)
}

// WithSaturation interpolates the colour toward its own gray point.
// A factor of 1.0 is the identity; 0.0 collapses the colour onto its
// gray point; factors above 1.0 push channels apart, clamped to [0, 255].
// Neutral grays (zero chroma) are returned unchanged.
func (c Colour) WithSaturation(factor float64) Colour {
	if factor == 1.0 || c.Chroma == 0 {
		return c
	}

	gray := c.Luminance * 255.0
	return New(
		saturateChannel(c.R, gray, factor),
		saturateChannel(c.G, gray, factor),
		saturateChannel(c.B, gray, factor),
	)
}

// Hex returns the colour as a lowercase hex string (e.g. "#1a2b3c").
func (c Colour) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGB returns the colour as a string in the format "rgb(r, g, b)".
func (c Colour) RGB() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Format represents a textual output format for colours.
type Format string

const (
	// FormatHex renders colours as "#rrggbb".
	FormatHex Format = "hex"

	// FormatRGB renders colours as "rgb(r, g, b)".
	FormatRGB Format = "rgb"
)

// ParseFormat converts a format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "hex":
		return FormatHex, nil
	case "rgb":
		return FormatRGB, nil
	default:
		return "", fmt.Errorf("unknown format: %s (valid formats: hex, rgb)", name)
	}
}

// String renders the colour in the given format. Unknown formats fall
// back to hex.
func (c Colour) String(format Format) string {
	if format == FormatRGB {
		return c.RGB()
	}
	return c.Hex()
}

// luminance computes the BT.709 relative luminance of 8-bit channels.
func luminance(r, g, b uint8) float64 {
	return (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 255.0
}

func saturateChannel(v uint8, gray, factor float64) uint8 {
	scaled := gray + (float64(v)-gray)*factor
	return uint8(math.Min(255, math.Max(0, scaled)))
}

func maxChannel(r, g, b uint8) uint8 {
	return max(r, max(g, b))
}

func minChannel(r, g, b uint8) uint8 {
	return min(r, min(g, b))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
