// Package cache persists colorschemes on disk so repeated invocations
// on an unchanged image and configuration are free. Cache records are
// keyed by a deterministic hash of the image identity and the
// extraction parameters, and stored in a fixed plain-text line format.
package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/halgrim/pal/internal/colour"
	palimage "github.com/halgrim/pal/internal/image"
)

// Extension is the file extension for cached colorscheme records.
const Extension = ".pal"

// Params identifies a single (image, method, saturation) combination.
// Two invocations with equal Params resolve to the same cache record.
type Params struct {
	// Identity is the image path or URL exactly as supplied.
	Identity string

	// ModTime is the image's last-modified time in whole seconds.
	// Only hashed when HasModTime is set; remote resources have no
	// resolvable modification time and omit it.
	ModTime    int64
	HasModTime bool

	Saturation float64
	Method     colour.Method
}

// NewParams builds Params for the given invocation, resolving the
// image's modification time when the identity is a stat-able local
// file. Stat failures are silently treated as "no modification time";
// the identity alone still keys the record.
func NewParams(identity string, saturation float64, method colour.Method) Params {
	p := Params{
		Identity:   identity,
		Saturation: saturation,
		Method:     method,
	}
	if !palimage.IsRemote(identity) {
		if info, err := os.Stat(identity); err == nil {
			p.ModTime = info.ModTime().Unix()
			p.HasModTime = true
		}
	}
	return p
}

// Filename derives the deterministic cache filename for the params:
// the first 16 bytes of a SHA-256 digest as lowercase hex, plus the
// record extension.
func (p Params) Filename() string {
	h := sha256.New()
	h.Write([]byte(p.Identity))
	if p.HasModTime {
		var mtime [8]byte
		binary.BigEndian.PutUint64(mtime[:], uint64(p.ModTime))
		h.Write(mtime[:])
	}
	var satBits [8]byte
	binary.BigEndian.PutUint64(satBits[:], math.Float64bits(p.Saturation))
	h.Write(satBits[:])
	h.Write([]byte{p.Method.Discriminant()})

	sum := h.Sum(nil)
	return fmt.Sprintf("%x%s", sum[:16], Extension)
}

// Path returns the full record path for the params inside dir.
func (p Params) Path(dir string) string {
	return filepath.Join(dir, p.Filename())
}

// Encode serializes a colorscheme to the on-disk record format: one
// colour per line as "#rrggbb"; line 1 is the background, line 2 the
// foreground, remaining lines the palette in order.
func Encode(scheme colour.Colorscheme) []byte {
	var sb strings.Builder
	sb.WriteString(scheme.Background.Hex() + "\n")
	sb.WriteString(scheme.Foreground.Hex() + "\n")
	for _, c := range scheme.Palette {
		sb.WriteString(c.Hex() + "\n")
	}
	return []byte(sb.String())
}

// Write persists the colorscheme record at path.
func Write(path string, scheme colour.Colorscheme) error {
	if err := os.WriteFile(path, Encode(scheme), 0o644); err != nil { // #nosec G306 - cache records are not sensitive
		return fmt.Errorf("failed to write colorscheme cache: %w", err)
	}
	return nil
}

// Read reconstitutes a colorscheme from the record at path. Parsing is
// strict: this is a local on-disk format with no external producers, so
// a malformed line or a missing background/foreground line means the
// record cannot be trusted and is surfaced as an error rather than
// repaired.
func Read(path string) (colour.Colorscheme, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path is derived from our own cache key
	if err != nil {
		return colour.Colorscheme{}, fmt.Errorf("failed to read colorscheme cache: %w", err)
	}
	scheme, err := Decode(data)
	if err != nil {
		return colour.Colorscheme{}, fmt.Errorf("corrupt colorscheme cache %s: %w", path, err)
	}
	return scheme, nil
}

// Decode parses a colorscheme record. Blank lines are ignored; every
// other line must be exactly six hex digits, optionally prefixed with
// '#'. Chroma and luminance are recomputed from the parsed channels,
// so they are never stale relative to the serialized channel values.
func Decode(data []byte) (colour.Colorscheme, error) {
	var colours []colour.Colour
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		c, err := parseHexLine(line)
		if err != nil {
			return colour.Colorscheme{}, err
		}
		colours = append(colours, c)
	}

	if len(colours) < 1 {
		return colour.Colorscheme{}, fmt.Errorf("missing background colour")
	}
	if len(colours) < 2 {
		return colour.Colorscheme{}, fmt.Errorf("missing foreground colour")
	}

	return colour.Colorscheme{
		Background: colours[0],
		Foreground: colours[1],
		Palette:    colours[2:],
	}, nil
}

// parseHexLine parses one record line into a colour. Leading '#'
// characters are stripped and the remainder must be exactly six hex
// digits.
func parseHexLine(line string) (colour.Colour, error) {
	s := strings.TrimSpace(strings.TrimLeft(line, "#"))
	if len(s) != 6 {
		return colour.Colour{}, fmt.Errorf("colour line must be 6 hex digits, got %q", line)
	}

	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return colour.Colour{}, fmt.Errorf("invalid hex in colour line %q: %w", line, err)
		}
		channels[i] = uint8(v)
	}

	return colour.New(channels[0], channels[1], channels[2]), nil
}
