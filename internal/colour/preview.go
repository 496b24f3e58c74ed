package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for truecolor terminal previews.
const (
	ansiReset    = "\033[0m"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	swatchWidth  = 8
)

// Preview returns an ANSI-coloured swatch for the colour: a block of
// spaces drawn with the colour as background. Callers are expected to
// gate this on terminal detection.
func (c Colour) Preview() string {
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bg + strings.Repeat(" ", swatchWidth) + ansiReset
}

// PreviewLine formats a colour swatch followed by its textual value in
// the given format.
func (c Colour) PreviewLine(format Format) string {
	return fmt.Sprintf("%s  %s", c.Preview(), c.String(format))
}
