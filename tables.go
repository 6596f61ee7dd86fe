package imagecore

import (
	"math"

	"github.com/mrjoshuak/go-imagecore/internal/gem"
	"github.com/mrjoshuak/go-imagecore/internal/lut"
)

// tableConv describes a table driven transform.
type tableConv struct {
	entry func(p Policy) lut.Entry
	// primary is the offset added after the lookups.
	primary func(p Policy) lut.Packet
	// correct, when set, maps each output channel once more before it is
	// stored. Values are in table units.
	correct func(p Policy) func(v float64) float64
}

func linear(m lut.Matrix) func(Policy) lut.Entry {
	return func(Policy) lut.Entry { return lut.Linear(m) }
}

func centered(m lut.Matrix) func(Policy) lut.Entry {
	return func(Policy) lut.Entry { return lut.Centered(m) }
}

// halfChroma centers the second and third output channels.
func halfChroma(p Policy) lut.Packet {
	h := (float64(p.MaxMap) + 1.0) / 2.0
	return lut.Packet{Y: h, Z: h}
}

var (
	rec601Luma = lut.Matrix{
		{0.299, 0.587, 0.114},
		{0.299, 0.587, 0.114},
		{0.299, 0.587, 0.114},
	}
	rec709Luma = lut.Matrix{
		{0.2126, 0.7152, 0.0722},
		{0.2126, 0.7152, 0.0722},
		{0.2126, 0.7152, 0.0722},
	}
	rec601YCbCr = lut.Matrix{
		{0.299, 0.587, 0.114},
		{-0.168736, -0.331264, 0.5},
		{0.5, -0.418688, -0.081312},
	}
	// srgbXYZ is the D65 sRGB to XYZ matrix.
	srgbXYZ = lut.Matrix{
		{0.4124564, 0.3575761, 0.1804375},
		{0.2126729, 0.7151522, 0.0721750},
		{0.0193339, 0.1191920, 0.9503041},
	}
	rec601YCbCrInverse = lut.Matrix{
		{1, 0, 1.402 * 0.5},
		{1, -0.344136 * 0.5, -0.714136 * 0.5},
		{1, 1.772 * 0.5, 0},
	}
)

// forwardTables converts from sRGB. Colorspaces not listed here and not
// handled per pixel fall back to the identity.
var forwardTables = map[Colorspace]tableConv{
	OHTA: {
		entry: linear(lut.Matrix{
			{0.33333, 0.33334, 0.33333},
			{0.5, 0, -0.5},
			{-0.25, 0.5, -0.25},
		}),
		primary: halfChroma,
	},
	Gray:        {entry: linear(rec601Luma)},
	Rec601Luma:  {entry: linear(rec601Luma)},
	Rec709Luma:  {entry: linear(rec709Luma)},
	YCbCr:       {entry: linear(rec601YCbCr), primary: halfChroma},
	Rec601YCbCr: {entry: linear(rec601YCbCr), primary: halfChroma},
	Rec709YCbCr: {
		entry: linear(lut.Matrix{
			{0.2126, 0.7152, 0.0722},
			{-0.114572, -0.385428, 0.5},
			{0.5, -0.454153, -0.045847},
		}),
		primary: halfChroma,
	},
	RGBLinear: {entry: func(Policy) lut.Entry { return diagonal(decodeRGB) }},
	XYZ:       {entry: linear(srgbXYZ)},
	YCC:       {entry: func(Policy) lut.Entry { return yccForward }, primary: yccPrimary},
	YIQ: {
		entry: linear(lut.Matrix{
			{0.299, 0.587, 0.114},
			{0.596, -0.274, -0.322},
			{0.211, -0.523, 0.312},
		}),
		primary: halfChroma,
	},
	YPbPr: {entry: linear(rec601YCbCr), primary: halfChroma},
	YUV: {
		entry: linear(lut.Matrix{
			{0.299, 0.587, 0.114},
			{-0.1474, -0.2895, 0.4369},
			{0.615, -0.515, -0.1},
		}),
		primary: halfChroma,
	},
}

// inverseTables converts to sRGB. The luma colorspaces already hold equal
// channels and use the identity.
var inverseTables = map[Colorspace]tableConv{
	OHTA: {
		entry: centered(lut.Matrix{
			{1, 0.5, -0.33334},
			{1, 0, 0.666665},
			{1, -0.5, -0.33334},
		}),
	},
	YCbCr:       {entry: centered(rec601YCbCrInverse)},
	Rec601YCbCr: {entry: centered(rec601YCbCrInverse)},
	Rec709YCbCr: {
		entry: centered(lut.Matrix{
			{1, 0, 1.5748 * 0.5},
			{1, -0.187324 * 0.5, -0.468124 * 0.5},
			{1, 1.8556 * 0.5, 0},
		}),
	},
	RGBLinear: {entry: func(Policy) lut.Entry { return diagonal(encodeRGB) }},
	XYZ:       {entry: linear(srgbXYZ.Invert())},
	YCC:       {entry: yccInverse, correct: yccCorrection},
	YIQ: {
		entry: centered(lut.Matrix{
			{1, 0.4781, 0.3107},
			{1, -0.13635, -0.3234},
			{1, -0.55185, 0.8503},
		}),
	},
	YPbPr: {
		entry: centered(lut.Matrix{
			{1, 0, 0.701},
			{1, -0.172068, -0.357068},
			{1, 0.886, 0},
		}),
	},
	YUV: {
		entry: centered(lut.Matrix{
			{1, 0, 0.5699},
			{1, -0.1969, -0.29025},
			{1, 1.01395, 0},
		}),
	},
}

var identityTables = tableConv{entry: linear(lut.Identity)}

// diagonal maps each channel through curve independently.
func diagonal(curve func(v float64) float64) lut.Entry {
	return func(i int, maxMap float64) (x, y, z lut.Packet) {
		v := maxMap * curve(float64(i)/maxMap)
		return lut.Packet{X: v}, lut.Packet{Y: v}, lut.Packet{Z: v}
	}
}

func decodeRGB(v float64) float64 {
	if v <= float64(float32(gem.DecodeThreshold)) {
		return v / float64(float32(12.92))
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func encodeRGB(v float64) float64 {
	if v <= gem.EncodeThreshold {
		return v * float64(float32(12.92))
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}

// ============================================================================
// Kodak PhotoYCC
// ============================================================================

// PhotoYCC chroma zero points on an 8-bit scale.
const (
	yccC1Zero = 156
	yccC2Zero = 137
)

func yccPrimary(p Policy) lut.Packet {
	return lut.Packet{
		Y: float64(p.ToMap(ScaleCharToQuantum(yccC1Zero))),
		Z: float64(p.ToMap(ScaleCharToQuantum(yccC2Zero))),
	}
}

var (
	yccLinear = lut.Matrix{
		{0.003962014134275617, 0.007778268551236748, 0.001510600706713781},
		{-0.002426619775463276, -0.004763965913702149, 0.007190585689165425},
		{0.006927257754597858, -0.005800713697502058, -0.0011265440570958},
	}
	yccPower = [3][3]float64{
		{0.2201118963486454, 0.4321260306242638, 0.08392226148409894},
		{-0.1348122097479598, -0.2646647729834528, 0.3994769827314126},
		{0.3848476530332144, -0.3222618720834477, -0.06258578094976668},
	}
)

// yccForward scales linearly near black and applies the Rec. 709 transfer
// slope above 0.018 of the table range.
func yccForward(i int, maxMap float64) (x, y, z lut.Packet) {
	v := float64(i)
	if v <= math.Trunc(0.018*maxMap) {
		return lut.Linear(yccLinear)(i, maxMap)
	}
	s := float64(float32(1.099))*v - float64(float32(0.099))
	col := func(in int) lut.Packet {
		return lut.Packet{X: yccPower[0][in] * s, Y: yccPower[1][in] * s, Z: yccPower[2][in] * s}
	}
	return col(0), col(1), col(2)
}

// yccInverseMatrix undoes yccPower. Deriving it keeps the toe, whose slope
// magnifies channel errors, close to exact.
var yccInverseMatrix = func() lut.Matrix {
	var m lut.Matrix
	for r := range yccPower {
		for c := range yccPower[r] {
			m[r][c] = float32(yccPower[r][c])
		}
	}
	return m.Invert()
}()

// yccInverse recovers the transfer encoded channels from luma and the two
// chroma channels taken about their zero points.
func yccInverse(p Policy) lut.Entry {
	c1 := float64(p.ToMap(ScaleCharToQuantum(yccC1Zero)))
	c2 := float64(p.ToMap(ScaleCharToQuantum(yccC2Zero)))
	m := yccInverseMatrix
	return func(i int, _ float64) (x, y, z lut.Packet) {
		v := float64(i)
		x = lut.Packet{X: float64(m[0][0]) * v, Y: float64(m[1][0]) * v, Z: float64(m[2][0]) * v}
		y = lut.Packet{X: float64(m[0][1]) * (v - c1), Y: float64(m[1][1]) * (v - c1), Z: float64(m[2][1]) * (v - c1)}
		z = lut.Packet{X: float64(m[0][2]) * (v - c2), Y: float64(m[1][2]) * (v - c2), Z: float64(m[2][2]) * (v - c2)}
		return x, y, z
	}
}

// yccDecode inverts the transfer of yccForward. Values between the top of
// the toe and the start of the slope are split at their midpoint.
func yccDecode(v, maxMap float64) float64 {
	toe := math.Trunc(0.018 * maxMap)
	knee := 0.018 * toe
	slope := float64(float32(1.099))*(toe+1) - float64(float32(0.099))
	if v <= (knee+slope)/2 {
		return min(v/0.018, toe)
	}
	return (v + float64(float32(0.099))) / float64(float32(1.099))
}

// yccCurveRange is the span of the correction curve relative to the
// channel range.
const yccCurveRange = 1388.0 / 1024.0

// yccCorrection undoes the transfer. The quantized policy first resamples
// each channel through the correction curve at 1/1024 of the range.
func yccCorrection(p Policy) func(v float64) float64 {
	maxMap := float64(p.MaxMap)
	if !p.Quantized() {
		return func(v float64) float64 { return yccDecode(v, maxMap) }
	}
	return func(v float64) float64 {
		c := maxMap * yccCurveRange * float64(yccMap[roundToYCC(1024.0*v/maxMap)])
		return yccDecode(c, maxMap)
	}
}

func roundToYCC(v float64) int {
	if v <= 0.0 {
		return 0
	}
	if v >= 1388.0 {
		return 1388
	}
	return int(v + 0.5)
}
