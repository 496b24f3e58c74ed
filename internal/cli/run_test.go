package cli

import (
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"

	"github.com/halgrim/pal/internal/colour"
)

func TestPrintScheme(t *testing.T) {
	scheme := colour.Colorscheme{
		Background: colour.New(25, 25, 25),
		Foreground: colour.New(230, 230, 230),
		Palette: []colour.Colour{
			colour.New(255, 0, 0),
			colour.New(0, 255, 255),
		},
	}

	var sb strings.Builder
	printScheme(&sb, scheme, colour.FormatHex, false)

	want := "#191919\n#e6e6e6\n#ff0000\n#00ffff\n"
	if sb.String() != want {
		t.Errorf("printScheme(hex) = %q, want %q", sb.String(), want)
	}

	sb.Reset()
	printScheme(&sb, scheme, colour.FormatRGB, false)

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("printScheme(rgb) produced %d lines, want 4", len(lines))
	}
	if lines[0] != "rgb(25, 25, 25)" {
		t.Errorf("first line = %q, want %q", lines[0], "rgb(25, 25, 25)")
	}
}

func TestPrintSchemeWithSwatches(t *testing.T) {
	scheme := colour.Colorscheme{
		Background: colour.New(25, 25, 25),
		Foreground: colour.New(230, 230, 230),
	}

	var sb strings.Builder
	printScheme(&sb, scheme, colour.FormatHex, true)

	if !strings.Contains(sb.String(), "\033[48;2;25;25;25m") {
		t.Error("swatch output missing background escape sequence")
	}
	if !strings.Contains(sb.String(), "#191919") {
		t.Error("swatch output missing hex value")
	}
}

func TestNewLogger(t *testing.T) {
	if newLogger(false).IsDebug() {
		t.Error("non-verbose logger should not log at debug level")
	}
	if !newLogger(true).IsDebug() {
		t.Error("verbose logger should log at debug level")
	}

	var _ hclog.Logger = newLogger(false)
}
