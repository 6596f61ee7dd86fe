// Package gem implements the scalar color kernels used by the colorspace
// transforms.
//
// Channel arguments and results are normalized to [0, 1]. Callers scale to
// and from their quantum range and decide how to round or clamp.
package gem

import "math"

// sRGB transfer function break points.
const (
	DecodeThreshold = 0.0404482362771082
	EncodeThreshold = 0.00313066844250063
)

// D50 reference white used by the Lab mapping.
const (
	D50X = 0.9642
	D50Y = 1.0
	D50Z = 0.8249
)

// Epsilon is the magnitude below which a value is treated as zero.
const Epsilon = 1.0e-12

// ============================================================================
// sRGB transfer function
// ============================================================================

// SRGBToLinear removes the sRGB gamma from v.
func SRGBToLinear(v float64) float64 {
	if v > DecodeThreshold {
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return v / 12.92
}

// LinearToSRGB applies the sRGB gamma to v.
func LinearToSRGB(v float64) float64 {
	if v > EncodeThreshold {
		return 1.055*math.Pow(v, 1.0/2.4) - 0.055
	}
	return v * 12.92
}

// ============================================================================
// CIE XYZ and Lab
// ============================================================================

// RGBToXYZ converts gamma-encoded sRGB to CIE XYZ.
func RGBToXYZ(r, g, b float64) (x, y, z float64) {
	r = SRGBToLinear(r)
	g = SRGBToLinear(g)
	b = SRGBToLinear(b)
	x = 0.4124240*r + 0.3575790*g + 0.1804640*b
	y = 0.2126560*r + 0.7151580*g + 0.0721856*b
	z = 0.0193324*r + 0.1191930*g + 0.9504440*b
	return x, y, z
}

// XYZToRGB converts CIE XYZ to gamma-encoded sRGB. The result is not
// clamped.
func XYZToRGB(x, y, z float64) (r, g, b float64) {
	r = 3.2404542*x - 1.5371385*y - 0.4985314*z
	g = -0.9692660*x + 1.8760108*y + 0.0415560*z
	b = 0.0556434*x - 0.2040259*y + 1.0572252*z
	return LinearToSRGB(r), LinearToSRGB(g), LinearToSRGB(b)
}

func labF1(alpha float64) float64 {
	if alpha <= (24.0/116.0)*(24.0/116.0)*(24.0/116.0) {
		return (841.0/108.0)*alpha + 16.0/116.0
	}
	return math.Pow(alpha, 1.0/3.0)
}

func labF2(alpha float64) float64 {
	if alpha > 24.0/116.0 {
		return alpha * alpha * alpha
	}
	beta := (108.0 / 841.0) * (alpha - 16.0/116.0)
	if beta > 0.0 {
		return beta
	}
	return 0.0
}

// XYZToLab maps XYZ to Lab scaled for storage: L in [0,1] and a, b shifted
// by one when negative so both stay non-negative. A black input yields the
// neutral (0, 0.5, 0.5).
func XYZToLab(x, y, z float64) (l, a, b float64) {
	if math.Abs(x) < Epsilon && math.Abs(y) < Epsilon && math.Abs(z) < Epsilon {
		return 0.0, 0.5, 0.5
	}
	fx := labF1(x / D50X)
	fy := labF1(y / D50Y)
	fz := labF1(z / D50Z)
	l = (116.0*fy - 16.0) / 100.0
	a = (500.0 * (fx - fy)) / 255.0
	if a < 0.0 {
		a += 1.0
	}
	b = (200.0 * (fy - fz)) / 255.0
	if b < 0.0 {
		b += 1.0
	}
	return l, a, b
}

// LabToXYZ is the inverse of XYZToLab.
func LabToXYZ(l, a, b float64) (x, y, z float64) {
	if l <= 0.0 {
		return 0, 0, 0
	}
	if a > 0.5 {
		a -= 1.0
	}
	if b > 0.5 {
		b -= 1.0
	}
	fy := (100.0*l + 16.0) / 116.0
	fx := fy + 255.0*0.002*a
	fz := fy - 255.0*0.005*b
	return D50X * labF2(fx), D50Y * labF2(fy), D50Z * labF2(fz)
}

// ============================================================================
// Hue based models
// ============================================================================

// RGBToHSB converts to hue, saturation and brightness.
func RGBToHSB(r, g, b float64) (hue, saturation, brightness float64) {
	lo := min(r, g, b)
	hi := max(r, g, b)
	if hi == 0 {
		return 0, 0, 0
	}
	delta := hi - lo
	saturation = delta / hi
	brightness = hi
	if delta == 0 {
		return 0, saturation, brightness
	}
	switch hi {
	case r:
		hue = (g - b) / delta
	case g:
		hue = 2.0 + (b-r)/delta
	default:
		hue = 4.0 + (r-g)/delta
	}
	hue /= 6.0
	if hue < 0.0 {
		hue += 1.0
	}
	return hue, saturation, brightness
}

// HSBToRGB is the inverse of RGBToHSB.
func HSBToRGB(hue, saturation, brightness float64) (r, g, b float64) {
	if saturation == 0 {
		return brightness, brightness, brightness
	}
	h := 6.0 * (hue - math.Floor(hue))
	f := h - math.Floor(h)
	p := brightness * (1.0 - saturation)
	q := brightness * (1.0 - saturation*f)
	t := brightness * (1.0 - saturation*(1.0-f))
	switch int(h) {
	case 1:
		return q, brightness, p
	case 2:
		return p, brightness, t
	case 3:
		return p, q, brightness
	case 4:
		return t, p, brightness
	case 5:
		return brightness, p, q
	default:
		return brightness, t, p
	}
}

// RGBToHSL converts to hue, saturation and lightness.
func RGBToHSL(r, g, b float64) (hue, saturation, lightness float64) {
	hi := max(r, g, b)
	lo := min(r, g, b)
	lightness = (lo + hi) / 2.0
	delta := hi - lo
	if delta == 0 {
		return 0, 0, lightness
	}
	if lightness < 0.5 {
		saturation = delta / (lo + hi)
	} else {
		saturation = delta / (2.0 - hi - lo)
	}
	dr := ((hi-r)/6.0 + delta/2.0) / delta
	dg := ((hi-g)/6.0 + delta/2.0) / delta
	db := ((hi-b)/6.0 + delta/2.0) / delta
	switch hi {
	case r:
		hue = db - dg
	case g:
		hue = 1.0/3.0 + dr - db
	default:
		hue = 2.0/3.0 + dg - dr
	}
	if hue < 0.0 {
		hue += 1.0
	}
	if hue > 1.0 {
		hue -= 1.0
	}
	return hue, saturation, lightness
}

func hueToRGB(m1, m2, hue float64) float64 {
	if hue < 0.0 {
		hue += 1.0
	}
	if hue > 1.0 {
		hue -= 1.0
	}
	switch {
	case 6.0*hue < 1.0:
		return m1 + 6.0*(m2-m1)*hue
	case 2.0*hue < 1.0:
		return m2
	case 3.0*hue < 2.0:
		return m1 + 6.0*(m2-m1)*(2.0/3.0-hue)
	}
	return m1
}

// HSLToRGB is the inverse of RGBToHSL.
func HSLToRGB(hue, saturation, lightness float64) (r, g, b float64) {
	if saturation == 0 {
		return lightness, lightness, lightness
	}
	var m2 float64
	if lightness < 0.5 {
		m2 = lightness * (saturation + 1.0)
	} else {
		m2 = lightness + saturation - lightness*saturation
	}
	m1 := 2.0*lightness - m2
	r = hueToRGB(m1, m2, hue+1.0/3.0)
	g = hueToRGB(m1, m2, hue)
	b = hueToRGB(m1, m2, hue-1.0/3.0)
	return r, g, b
}

// RGBToHWB converts to hue, whiteness and blackness. Achromatic input has
// hue -1.
func RGBToHWB(r, g, b float64) (hue, whiteness, blackness float64) {
	w := min(r, g, b)
	v := max(r, g, b)
	blackness = 1.0 - v
	whiteness = w
	if v == w {
		return -1.0, whiteness, blackness
	}
	var f, i float64
	switch w {
	case r:
		f, i = g-b, 3
	case g:
		f, i = b-r, 5
	default:
		f, i = r-g, 1
	}
	hue = (i - f/(v-w)) / 6.0
	return hue, whiteness, blackness
}

// HWBToRGB is the inverse of RGBToHWB.
func HWBToRGB(hue, whiteness, blackness float64) (r, g, b float64) {
	v := 1.0 - blackness
	if hue == -1.0 {
		return v, v, v
	}
	i := int(math.Floor(6.0 * hue))
	f := 6.0*hue - float64(i)
	if i&0x01 != 0 {
		f = 1.0 - f
	}
	n := whiteness + f*(v-whiteness)
	switch i {
	case 1:
		return n, v, whiteness
	case 2:
		return whiteness, v, n
	case 3:
		return whiteness, n, v
	case 4:
		return n, whiteness, v
	case 5:
		return v, whiteness, n
	default:
		return v, n, whiteness
	}
}

// ============================================================================
// Subtractive models
// ============================================================================

// RGBToCMYK separates r, g, b into cyan, magenta, yellow and black. Black
// input yields pure K.
func RGBToCMYK(r, g, b float64) (c, m, y, k float64) {
	if math.Abs(r) < Epsilon && math.Abs(g) < Epsilon && math.Abs(b) < Epsilon {
		return 0, 0, 0, 1
	}
	c = 1.0 - r
	m = 1.0 - g
	y = 1.0 - b
	k = min(c, m, y)
	if 1.0-k < Epsilon {
		return 0, 0, 0, k
	}
	c = (c - k) / (1.0 - k)
	m = (m - k) / (1.0 - k)
	y = (y - k) / (1.0 - k)
	return c, m, y, k
}

// CMYKToRGB recombines a separated color.
func CMYKToRGB(c, m, y, k float64) (r, g, b float64) {
	r = 1.0 - (c*(1.0-k) + k)
	g = 1.0 - (m*(1.0-k) + k)
	b = 1.0 - (y*(1.0-k) + k)
	return r, g, b
}
