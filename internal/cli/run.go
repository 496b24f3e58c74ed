package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/halgrim/pal/internal/cache"
	"github.com/halgrim/pal/internal/colour"
	"github.com/halgrim/pal/internal/config"
	palimage "github.com/halgrim/pal/internal/image"
	"github.com/halgrim/pal/internal/template"
)

// runRoot executes the main pipeline: resolve the cache record for the
// (image, method, saturation) combination, reuse it when present,
// otherwise extract a fresh colorscheme and persist it, then render
// templates and optionally print the result.
func runRoot(cmd *cobra.Command, args []string) error {
	imagePath := args[0]

	method, err := colour.ParseMethod(rootMethod)
	if err != nil {
		return err
	}
	format, err := colour.ParseFormat(rootFormat)
	if err != nil {
		return err
	}

	logger := newLogger(rootVerbose)

	paths, err := config.Resolve()
	if err != nil {
		return err
	}
	if err := paths.Ensure(); err != nil {
		return err
	}

	params := cache.NewParams(imagePath, rootSaturation, method)
	recordPath := params.Path(paths.SchemeCache)

	var scheme colour.Colorscheme
	if _, statErr := os.Stat(recordPath); statErr == nil {
		logger.Debug("reusing cached colorscheme", "record", recordPath)
		scheme, err = cache.Read(recordPath)
		if err != nil {
			return err
		}
	} else {
		logger.Debug("extracting colorscheme",
			"image", imagePath, "method", method.String(), "saturation", rootSaturation)

		loader := palimage.NewSmartLoader()
		img, err := loader.Load(cmd.Context(), imagePath)
		if err != nil {
			return fmt.Errorf("failed to load image %s: %w", imagePath, err)
		}

		scheme = colour.Generate(img, method).WithSaturation(rootSaturation)

		// A failed cache write only costs the next run an extraction.
		if err := cache.Write(recordPath, scheme); err != nil {
			logger.Warn("failed to cache colorscheme", "error", err)
		}
	}

	if !rootPreview {
		rendered, err := template.RenderAll(paths.Config, paths.TemplateCache, scheme, format)
		if err != nil {
			return fmt.Errorf("failed to process template files: %w", err)
		}
		logger.Debug("templates rendered", "count", rendered, "dir", paths.TemplateCache)
	}

	if rootPreview {
		printScheme(cmd.OutOrStdout(), scheme, format, stdoutIsTerminal())
	} else if rootVerbose {
		printScheme(cmd.OutOrStdout(), scheme, format, false)
	}

	return nil
}

// newLogger builds the run logger; verbose runs log at debug level.
func newLogger(verbose bool) hclog.Logger {
	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "pal",
		Level:  level,
		Output: os.Stderr,
	})
}

// printScheme writes the colorscheme one colour per line: background,
// foreground, then the palette in order. With swatches enabled each
// line is prefixed with a truecolor block.
func printScheme(w io.Writer, scheme colour.Colorscheme, format colour.Format, swatches bool) {
	line := func(c colour.Colour) string {
		if swatches {
			return c.PreviewLine(format)
		}
		return c.String(format)
	}

	fmt.Fprintln(w, line(scheme.Background))
	fmt.Fprintln(w, line(scheme.Foreground))
	for _, c := range scheme.Palette {
		fmt.Fprintln(w, line(c))
	}
}

// stdoutIsTerminal reports whether stdout is attached to a terminal,
// which gates ANSI swatch output.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
