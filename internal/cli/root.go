// Package cli provides the command-line interface for pal.
package cli

import (
	"fmt"
	"os"

	"github.com/halgrim/pal/internal/version"
	"github.com/spf13/cobra"
)

var (
	// Root command flags
	rootSaturation float64
	rootMethod     string
	rootFormat     string
	rootVerbose    bool
	rootPreview    bool

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "pal <image>",
		Short: "Derive a terminal colorscheme from an image",
		Long: `Pal derives a deterministic 16-colour terminal colorscheme from an image
and substitutes it into your template files.

The image is reduced to a bounded set of samples and one of three
palette-construction strategies turns them into a colorscheme: greedy
distinct-colour selection (area_average), iterative clustering (kmeans),
or nearest-neighbour matching against the standard ANSI table (ansi).
Results are cached, so repeated runs on an unchanged image are free.

Template files live in the config directory and use backtick-delimited
placeholders ('@background', '@foreground', '@colorN'); rendered copies
are written to the template cache directory.

Examples:
  # Generate a colorscheme from a wallpaper
  pal wallpaper.jpg

  # Use k-means clustering with boosted saturation
  pal --method kmeans --saturation 1.2 wallpaper.png

  # Match against the ANSI reference colours, from a remote image
  pal -m ansi https://example.com/wallpaper.jpg

  # Print the colours without rendering templates
  pal --preview --verbose wallpaper.jpg`,
		Args:         cobra.ExactArgs(1),
		RunE:         runRoot,
		Version:      version.Short(),
		SilenceUsage: true,
	}
)

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Float64VarP(&rootSaturation, "saturation", "s", 1.0, "saturation factor applied to the palette (1.0 = unchanged)")
	rootCmd.Flags().StringVarP(&rootMethod, "method", "m", "area_average", "extraction method (area_average/aa, kmeans/km, ansi/an)")
	rootCmd.Flags().StringVarP(&rootFormat, "format", "f", "hex", "colour output format (hex, rgb)")
	rootCmd.Flags().BoolVarP(&rootVerbose, "verbose", "v", false, "print the colorscheme to stdout")
	rootCmd.Flags().BoolVarP(&rootPreview, "preview", "p", false, "show the colorscheme without rendering templates")

	rootCmd.SetVersionTemplate(version.String() + "\n")
	rootCmd.AddCommand(versionCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
