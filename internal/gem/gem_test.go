package gem

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

var samples = [][3]float64{
	{0, 0, 0},
	{1, 1, 1},
	{0.5, 0.5, 0.5},
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
	{0.2, 0.4, 0.6},
	{0.9, 0.1, 0.3},
	{0.25, 0.75, 0.125},
	{0.6, 0.6, 0.2},
}

func TestTransferRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 0.001, 0.003, 0.04, 0.05, 0.2, 0.5, 0.8, 1} {
		assert.InDelta(t, v, LinearToSRGB(SRGBToLinear(v)), 1e-9, "v=%g", v)
	}
}

func TestTransferMatchesColorful(t *testing.T) {
	for _, v := range []float64{0.01, 0.1, 0.3, 0.7, 0.95} {
		want, _, _ := colorful.Color{R: v, G: v, B: v}.LinearRgb()
		assert.InDelta(t, want, SRGBToLinear(v), 1e-6, "v=%g", v)
	}
}

func TestHSBMatchesColorful(t *testing.T) {
	for _, s := range samples {
		h, sat, v := RGBToHSB(s[0], s[1], s[2])
		ch, cs, cv := colorful.Color{R: s[0], G: s[1], B: s[2]}.Hsv()
		assert.InDelta(t, ch/360.0, h, 1e-9, "hue of %v", s)
		assert.InDelta(t, cs, sat, 1e-9, "saturation of %v", s)
		assert.InDelta(t, cv, v, 1e-9, "brightness of %v", s)
	}
}

func TestHSLMatchesColorful(t *testing.T) {
	for _, s := range samples {
		h, sat, l := RGBToHSL(s[0], s[1], s[2])
		ch, cs, cl := colorful.Color{R: s[0], G: s[1], B: s[2]}.Hsl()
		assert.InDelta(t, ch/360.0, h, 1e-9, "hue of %v", s)
		assert.InDelta(t, cs, sat, 1e-9, "saturation of %v", s)
		assert.InDelta(t, cl, l, 1e-9, "lightness of %v", s)
	}
}

func TestHueModelsRoundTrip(t *testing.T) {
	models := []struct {
		name string
		to   func(r, g, b float64) (float64, float64, float64)
		from func(a, b, c float64) (float64, float64, float64)
	}{
		{"HSB", RGBToHSB, HSBToRGB},
		{"HSL", RGBToHSL, HSLToRGB},
		{"HWB", RGBToHWB, HWBToRGB},
	}
	for _, m := range models {
		t.Run(m.name, func(t *testing.T) {
			for _, s := range samples {
				a, b, c := m.to(s[0], s[1], s[2])
				r, g, bl := m.from(a, b, c)
				assert.InDelta(t, s[0], r, 1e-9, "red of %v", s)
				assert.InDelta(t, s[1], g, 1e-9, "green of %v", s)
				assert.InDelta(t, s[2], bl, 1e-9, "blue of %v", s)
			}
		})
	}
}

func TestHWBAchromatic(t *testing.T) {
	h, w, b := RGBToHWB(0.4, 0.4, 0.4)
	assert.Equal(t, -1.0, h)
	assert.InDelta(t, 0.4, w, 1e-12)
	assert.InDelta(t, 0.6, b, 1e-12)
}

func TestLabRoundTrip(t *testing.T) {
	for _, s := range samples[1:] {
		x, y, z := RGBToXYZ(s[0], s[1], s[2])
		l, a, b := XYZToLab(x, y, z)
		for _, v := range []float64{l, a, b} {
			if v < 0 || v > 1 {
				t.Errorf("Lab of %v = (%g, %g, %g), want values in [0,1]", s, l, a, b)
			}
		}
		x2, y2, z2 := LabToXYZ(l, a, b)
		r, g, bl := XYZToRGB(x2, y2, z2)
		assert.InDelta(t, s[0], r, 2e-3, "red of %v", s)
		assert.InDelta(t, s[1], g, 2e-3, "green of %v", s)
		assert.InDelta(t, s[2], bl, 2e-3, "blue of %v", s)
	}
}

func TestLabBlackIsNeutral(t *testing.T) {
	l, a, b := XYZToLab(0, 0, 0)
	assert.Equal(t, [3]float64{0, 0.5, 0.5}, [3]float64{l, a, b})

	x, y, z := LabToXYZ(0, 0.5, 0.5)
	assert.Equal(t, [3]float64{0, 0, 0}, [3]float64{x, y, z})
}

func TestLabWhite(t *testing.T) {
	x, y, z := RGBToXYZ(1, 1, 1)
	l, _, _ := XYZToLab(x, y, z)
	assert.InDelta(t, 1.0, l, 1e-3)
}

func TestCMYK(t *testing.T) {
	tests := []struct {
		name       string
		rgb        [3]float64
		c, m, y, k float64
	}{
		{"black", [3]float64{0, 0, 0}, 0, 0, 0, 1},
		{"white", [3]float64{1, 1, 1}, 0, 0, 0, 0},
		{"red", [3]float64{1, 0, 0}, 0, 1, 1, 0},
		{"gray", [3]float64{0.5, 0.5, 0.5}, 0, 0, 0, 0.5},
		{"dark teal", [3]float64{0, 0.25, 0.25}, 1, 0, 0, 0.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, m, y, k := RGBToCMYK(tt.rgb[0], tt.rgb[1], tt.rgb[2])
			assert.InDelta(t, tt.c, c, 1e-12)
			assert.InDelta(t, tt.m, m, 1e-12)
			assert.InDelta(t, tt.y, y, 1e-12)
			assert.InDelta(t, tt.k, k, 1e-12)

			r, g, b := CMYKToRGB(c, m, y, k)
			assert.InDelta(t, tt.rgb[0], r, 1e-12)
			assert.InDelta(t, tt.rgb[1], g, 1e-12)
			assert.InDelta(t, tt.rgb[2], b, 1e-12)
		})
	}
}

func TestXYZWhitePoint(t *testing.T) {
	x, y, z := RGBToXYZ(1, 1, 1)
	if math.Abs(y-1.0) > 1e-3 {
		t.Errorf("Y of white = %g, want 1", y)
	}
	assert.InDelta(t, 0.9505, x, 1e-3)
	assert.InDelta(t, 1.089, z, 1e-3)
}
