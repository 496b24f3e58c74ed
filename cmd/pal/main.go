// Pal - derive terminal colorschemes from images
//
// Pal extracts a 16-colour terminal colorscheme from an image, caches
// the result, and substitutes the colours into user template files.
package main

import (
	"github.com/halgrim/pal/internal/cli"
)

func main() {
	cli.Execute()
}
