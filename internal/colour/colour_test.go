package colour

import (
	"math"
	"testing"
)

// almostEqual compares floats within a small tolerance.
func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// expectedLuminance recomputes the BT.709 weighted sum for a channel
// triple, independent of the implementation under test.
func expectedLuminance(r, g, b uint8) float64 {
	return (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 255.0
}

func TestNewDerivesChromaAndLuminance(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b    uint8
		wantChroma uint8
	}{
		{name: "black", r: 0, g: 0, b: 0, wantChroma: 0},
		{name: "white", r: 255, g: 255, b: 255, wantChroma: 0},
		{name: "pure red", r: 255, g: 0, b: 0, wantChroma: 255},
		{name: "gray", r: 128, g: 128, b: 128, wantChroma: 0},
		{name: "muted teal", r: 40, g: 130, b: 120, wantChroma: 90},
		{name: "near gray", r: 100, g: 102, b: 99, wantChroma: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.r, tt.g, tt.b)
			if c.Chroma != tt.wantChroma {
				t.Errorf("Chroma = %d, want %d", c.Chroma, tt.wantChroma)
			}
			if want := expectedLuminance(tt.r, tt.g, tt.b); !almostEqual(c.Luminance, want) {
				t.Errorf("Luminance = %f, want %f", c.Luminance, want)
			}
		})
	}
}

func TestDistanceTo(t *testing.T) {
	tests := []struct {
		name string
		a, b Colour
		want float64
	}{
		{name: "identical", a: New(10, 20, 30), b: New(10, 20, 30), want: 0},
		{name: "black to white", a: New(0, 0, 0), b: New(255, 255, 255), want: math.Sqrt(3 * 255 * 255)},
		{name: "single channel", a: New(0, 0, 0), b: New(100, 0, 0), want: 100},
		{name: "symmetric", a: New(200, 50, 25), b: New(25, 50, 200), want: math.Sqrt(2 * 175 * 175)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.DistanceTo(tt.b); !almostEqual(got, tt.want) {
				t.Errorf("DistanceTo() = %f, want %f", got, tt.want)
			}
			if got := tt.b.DistanceTo(tt.a); !almostEqual(got, tt.want) {
				t.Errorf("reverse DistanceTo() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestWithSaturationIdentity(t *testing.T) {
	colours := []Colour{
		New(255, 0, 0),
		New(12, 200, 133),
		New(128, 128, 128),
		New(0, 0, 0),
	}
	for _, c := range colours {
		if got := c.WithSaturation(1.0); got != c {
			t.Errorf("WithSaturation(1.0) = %+v, want %+v", got, c)
		}
	}
}

func TestWithSaturationZeroCollapsesToGray(t *testing.T) {
	colours := []Colour{
		New(255, 0, 0),
		New(12, 200, 133),
		New(200, 190, 15),
	}
	for _, c := range colours {
		got := c.WithSaturation(0.0)
		gray := uint8(c.Luminance * 255.0)
		if got.R != gray || got.G != gray || got.B != gray {
			t.Errorf("WithSaturation(0.0) = (%d,%d,%d), want gray point %d", got.R, got.G, got.B, gray)
		}
		if got.Chroma != 0 {
			t.Errorf("WithSaturation(0.0) chroma = %d, want 0", got.Chroma)
		}
	}
}

func TestWithSaturationNeutralGrayNoOp(t *testing.T) {
	gray := New(77, 77, 77)
	for _, factor := range []float64{0.0, 0.5, 2.0, 10.0} {
		if got := gray.WithSaturation(factor); got != gray {
			t.Errorf("WithSaturation(%f) on gray = %+v, want unchanged", factor, got)
		}
	}
}

func TestWithSaturationClampsChannels(t *testing.T) {
	// A vivid colour pushed far past full saturation must clamp to the
	// channel range instead of wrapping.
	c := New(240, 20, 20)
	got := c.WithSaturation(5.0)
	if got.R != 255 {
		t.Errorf("R = %d, want clamped 255", got.R)
	}
	if got.G != 0 || got.B != 0 {
		t.Errorf("G,B = %d,%d, want clamped 0,0", got.G, got.B)
	}
}

func TestWithSaturationRecomputesDerivedValues(t *testing.T) {
	for _, factor := range []float64{0.0, 0.3, 0.9, 1.5} {
		c := New(30, 180, 90).WithSaturation(factor)
		wantChroma := max(c.R, max(c.G, c.B)) - min(c.R, min(c.G, c.B))
		if c.Chroma != wantChroma {
			t.Errorf("factor %f: Chroma = %d, want %d", factor, c.Chroma, wantChroma)
		}
		if want := expectedLuminance(c.R, c.G, c.B); !almostEqual(c.Luminance, want) {
			t.Errorf("factor %f: Luminance = %f, want %f", factor, c.Luminance, want)
		}
	}
}

func TestFormatting(t *testing.T) {
	tests := []struct {
		name    string
		c       Colour
		wantHex string
		wantRGB string
	}{
		{name: "black", c: New(0, 0, 0), wantHex: "#000000", wantRGB: "rgb(0, 0, 0)"},
		{name: "mixed", c: New(26, 43, 60), wantHex: "#1a2b3c", wantRGB: "rgb(26, 43, 60)"},
		{name: "white", c: New(255, 255, 255), wantHex: "#ffffff", wantRGB: "rgb(255, 255, 255)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Hex(); got != tt.wantHex {
				t.Errorf("Hex() = %q, want %q", got, tt.wantHex)
			}
			if got := tt.c.RGB(); got != tt.wantRGB {
				t.Errorf("RGB() = %q, want %q", got, tt.wantRGB)
			}
			if got := tt.c.String(FormatHex); got != tt.wantHex {
				t.Errorf("String(hex) = %q, want %q", got, tt.wantHex)
			}
			if got := tt.c.String(FormatRGB); got != tt.wantRGB {
				t.Errorf("String(rgb) = %q, want %q", got, tt.wantRGB)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("hex"); err != nil || f != FormatHex {
		t.Errorf("ParseFormat(hex) = %v, %v", f, err)
	}
	if f, err := ParseFormat("rgb"); err != nil || f != FormatRGB {
		t.Errorf("ParseFormat(rgb) = %v, %v", f, err)
	}
	if _, err := ParseFormat("hsl"); err == nil {
		t.Error("ParseFormat(hsl) should fail")
	}
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		input   string
		want    Method
		wantErr bool
	}{
		{input: "area_average", want: MethodAreaAverage},
		{input: "aa", want: MethodAreaAverage},
		{input: "kmeans", want: MethodKMeans},
		{input: "km", want: MethodKMeans},
		{input: "ansi", want: MethodANSI},
		{input: "an", want: MethodANSI},
		{input: "mediancut", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMethod(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseMethod(%q) should fail", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMethod(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMethod(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMethodDiscriminant(t *testing.T) {
	// The discriminant bytes are part of the cache key derivation and
	// must stay fixed.
	if MethodAreaAverage.Discriminant() != 0 {
		t.Errorf("area_average discriminant = %d, want 0", MethodAreaAverage.Discriminant())
	}
	if MethodKMeans.Discriminant() != 1 {
		t.Errorf("kmeans discriminant = %d, want 1", MethodKMeans.Discriminant())
	}
	if MethodANSI.Discriminant() != 2 {
		t.Errorf("ansi discriminant = %d, want 2", MethodANSI.Discriminant())
	}
}
