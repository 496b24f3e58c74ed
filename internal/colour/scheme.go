package colour

// PaletteSize is the number of palette slots in a terminal colorscheme.
const PaletteSize = 16

// Colorscheme is an ordered palette of up to 16 colours plus dedicated
// background and foreground colours. The palette order is semantically
// meaningful: consumers index it positionally ("color3"). A colour may
// appear in more than one role. Colorschemes are immutable after
// construction.
type Colorscheme struct {
	Palette    []Colour
	Background Colour
	Foreground Colour
}

// WithSaturation returns a copy of the scheme with the saturation
// transform applied to every palette entry, the background, and the
// foreground.
func (s Colorscheme) WithSaturation(factor float64) Colorscheme {
	palette := make([]Colour, len(s.Palette))
	for i, c := range s.Palette {
		palette[i] = c.WithSaturation(factor)
	}
	return Colorscheme{
		Palette:    palette,
		Background: s.Background.WithSaturation(factor),
		Foreground: s.Foreground.WithSaturation(factor),
	}
}
