// Package template substitutes colorscheme placeholders in user
// template files. Placeholders are backtick-delimited: `@background`,
// `@foreground`, and `@colorN` where N indexes the palette. Unknown
// placeholders are left verbatim, backticks included, so template
// syntax that happens to use backticks survives a render.
package template

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/halgrim/pal/internal/colour"
)

// RenderAll renders every regular file in configDir into outDir under
// the same name. Subdirectories are skipped. Returns the number of
// files rendered.
func RenderAll(configDir, outDir string, scheme colour.Colorscheme, format colour.Format) (int, error) {
	entries, err := os.ReadDir(configDir)
	if err != nil {
		return 0, fmt.Errorf("failed to read template directory: %w", err)
	}

	rendered := 0
	for _, entry := range entries {
		path := filepath.Join(configDir, entry.Name())

		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}

		content, err := os.ReadFile(path) // #nosec G304 - user-owned template file
		if err != nil {
			return rendered, fmt.Errorf("failed to read template %s: %w", path, err)
		}

		outPath := filepath.Join(outDir, entry.Name())
		if err := os.WriteFile(outPath, []byte(Render(string(content), scheme, format)), 0o644); err != nil { // #nosec G306
			return rendered, fmt.Errorf("failed to write rendered template %s: %w", outPath, err)
		}
		rendered++
	}
	return rendered, nil
}

// Render substitutes all placeholders in content. An unterminated
// trailing placeholder is emitted as a literal backtick plus the
// partial text.
func Render(content string, scheme colour.Colorscheme, format colour.Format) string {
	var result strings.Builder
	var placeholder strings.Builder
	inside := false

	for _, r := range content {
		switch {
		case !inside && r == '`':
			inside = true
			placeholder.Reset()
		case !inside:
			result.WriteRune(r)
		case r == '`':
			if repl, ok := resolve(placeholder.String(), scheme, format); ok {
				result.WriteString(repl)
			} else {
				result.WriteByte('`')
				result.WriteString(placeholder.String())
				result.WriteByte('`')
			}
			inside = false
		default:
			placeholder.WriteRune(r)
		}
	}

	if inside {
		result.WriteByte('`')
		result.WriteString(placeholder.String())
	}

	return result.String()
}

// resolve maps a placeholder name to its formatted colour value.
func resolve(placeholder string, scheme colour.Colorscheme, format colour.Format) (string, bool) {
	switch {
	case strings.HasPrefix(placeholder, "@background"):
		return scheme.Background.String(format), true
	case strings.HasPrefix(placeholder, "@foreground"):
		return scheme.Foreground.String(format), true
	case strings.HasPrefix(placeholder, "@color"):
		i, err := strconv.Atoi(placeholder[len("@color"):])
		if err != nil || i < 0 || i >= len(scheme.Palette) {
			return "", false
		}
		return scheme.Palette[i].String(format), true
	default:
		return "", false
	}
}
