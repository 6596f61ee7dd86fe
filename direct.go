package imagecore

import (
	"fmt"
	"math"
	"strconv"
	"unsafe"

	"github.com/mrjoshuak/go-imagecore/internal/gem"
)

// PixelFunc converts one pixel in place. Alpha is never touched.
type PixelFunc func(p *Pixel)

// directConv describes a transform computed per pixel.
type directConv struct {
	build func(pol Policy, s Surface, limit int64) (PixelFunc, error)
}

func kernel(f func(pol Policy) PixelFunc) directConv {
	return directConv{build: func(pol Policy, _ Surface, _ int64) (PixelFunc, error) {
		return f(pol), nil
	}}
}

// forwardDirect converts from sRGB.
var forwardDirect = map[Colorspace]directConv{
	CMY:  kernel(invertChannels),
	CMYK: kernel(toCMYK),
	HSB:  kernel(hueModel(gem.RGBToHSB)),
	HSL:  kernel(hueModel(gem.RGBToHSL)),
	HWB:  kernel(hueModel(gem.RGBToHWB)),
	Lab:  kernel(toLab),
	Log:  {build: toLog},
}

// inverseDirect converts to sRGB.
var inverseDirect = map[Colorspace]directConv{
	CMY:  kernel(invertChannels),
	CMYK: kernel(fromCMYK),
	HSB:  kernel(rgbModel(gem.HSBToRGB)),
	HSL:  kernel(rgbModel(gem.HSLToRGB)),
	HWB:  kernel(rgbModel(gem.HWBToRGB)),
	Lab:  kernel(fromLab),
	Log:  {build: fromLog},
}

func unit(q Quantum) float64 {
	return QuantumScale * float64(q)
}

func invertChannels(pol Policy) PixelFunc {
	return func(p *Pixel) {
		p.Red = pol.Clamp(QuantumRange - float64(p.Red))
		p.Green = pol.Clamp(QuantumRange - float64(p.Green))
		p.Blue = pol.Clamp(QuantumRange - float64(p.Blue))
	}
}

func toCMYK(pol Policy) PixelFunc {
	return func(p *Pixel) {
		c, m, y, k := gem.RGBToCMYK(unit(p.Red), unit(p.Green), unit(p.Blue))
		p.Red = pol.Clamp(QuantumRange * c)
		p.Green = pol.Clamp(QuantumRange * m)
		p.Blue = pol.Clamp(QuantumRange * y)
		p.Black = pol.Clamp(QuantumRange * k)
	}
}

func fromCMYK(pol Policy) PixelFunc {
	return func(p *Pixel) {
		r, g, b := gem.CMYKToRGB(unit(p.Red), unit(p.Green), unit(p.Blue), unit(p.Black))
		p.Red = pol.Clamp(QuantumRange * r)
		p.Green = pol.Clamp(QuantumRange * g)
		p.Blue = pol.Clamp(QuantumRange * b)
	}
}

func hueModel(f func(r, g, b float64) (float64, float64, float64)) func(Policy) PixelFunc {
	return func(pol Policy) PixelFunc {
		return func(p *Pixel) {
			h, s, v := f(unit(p.Red), unit(p.Green), unit(p.Blue))
			p.Red = pol.Clamp(QuantumRange * h)
			p.Green = pol.Clamp(QuantumRange * s)
			p.Blue = pol.Clamp(QuantumRange * v)
		}
	}
}

func rgbModel(f func(h, s, v float64) (float64, float64, float64)) func(Policy) PixelFunc {
	return func(pol Policy) PixelFunc {
		return func(p *Pixel) {
			r, g, b := f(unit(p.Red), unit(p.Green), unit(p.Blue))
			p.Red = pol.Clamp(QuantumRange * r)
			p.Green = pol.Clamp(QuantumRange * g)
			p.Blue = pol.Clamp(QuantumRange * b)
		}
	}
}

func toLab(pol Policy) PixelFunc {
	return func(p *Pixel) {
		x, y, z := gem.RGBToXYZ(unit(p.Red), unit(p.Green), unit(p.Blue))
		l, a, b := gem.XYZToLab(x, y, z)
		p.Red = pol.Clamp(QuantumRange * l)
		p.Green = pol.Clamp(QuantumRange * a)
		p.Blue = pol.Clamp(QuantumRange * b)
	}
}

func fromLab(pol Policy) PixelFunc {
	return func(p *Pixel) {
		x, y, z := gem.LabToXYZ(unit(p.Red), unit(p.Green), unit(p.Blue))
		r, g, b := gem.XYZToRGB(x, y, z)
		p.Red = pol.Clamp(QuantumRange * r)
		p.Green = pol.Clamp(QuantumRange * g)
		p.Blue = pol.Clamp(QuantumRange * b)
	}
}

// ============================================================================
// Cineon log
// ============================================================================

// Log curve defaults, overridden by the image properties "gamma",
// "film-gamma", "reference-black" and "reference-white".
const (
	DisplayGamma   = 1.0 / 1.7
	FilmGamma      = 0.6
	ReferenceBlack = 95.0
	ReferenceWhite = 685.0
)

// LogParams are the parameters of the Cineon log curve.
type LogParams struct {
	Gamma          float64
	Density        float64
	FilmGamma      float64
	ReferenceBlack float64
	ReferenceWhite float64
}

// LogParamsOf reads the log curve parameters of s. Values that do not parse
// as numbers are ignored.
func LogParamsOf(s Surface) LogParams {
	lp := LogParams{
		Gamma:          DisplayGamma,
		Density:        DisplayGamma,
		FilmGamma:      FilmGamma,
		ReferenceBlack: ReferenceBlack,
		ReferenceWhite: ReferenceWhite,
	}
	if v, ok := property(s, "gamma"); ok {
		lp.Gamma = v
		if 1.0/v == 0.0 {
			lp.Gamma = 1.0
		}
	}
	if v, ok := property(s, "film-gamma"); ok {
		lp.FilmGamma = v
	}
	if v, ok := property(s, "reference-black"); ok {
		lp.ReferenceBlack = v
	}
	if v, ok := property(s, "reference-white"); ok {
		lp.ReferenceWhite = v
	}
	return lp
}

func property(s Surface, key string) (float64, bool) {
	raw, ok := s.Property(key)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// slope is the density change per code value.
func (lp LogParams) slope() float64 {
	return (lp.Gamma / lp.Density) * 0.002 / lp.FilmGamma
}

// black is the linear value of the reference black code.
func (lp LogParams) black() float64 {
	return math.Pow(10.0, (lp.ReferenceBlack-lp.ReferenceWhite)*lp.slope())
}

func logMap(pol Policy, limit int64) ([]Quantum, error) {
	size := int64(pol.MaxMap+1) * int64(unsafe.Sizeof(Quantum(0)))
	if limit > 0 && size > limit {
		return nil, fmt.Errorf("%w: log map of %d bytes", ErrResourceLimit, size)
	}
	return make([]Quantum, pol.MaxMap+1), nil
}

func applyMap(pol Policy, m []Quantum) PixelFunc {
	return func(p *Pixel) {
		p.Red = m[pol.ToMap(p.Red)]
		p.Green = m[pol.ToMap(p.Green)]
		p.Blue = m[pol.ToMap(p.Blue)]
	}
}

func toLog(pol Policy, s Surface, limit int64) (PixelFunc, error) {
	m, err := logMap(pol, limit)
	if err != nil {
		return nil, err
	}
	lp := LogParamsOf(s)
	black := lp.black()
	maxMap := float64(pol.MaxMap)
	for i := range m {
		v := lp.ReferenceWhite + math.Log10(black+(float64(i)/maxMap)*(1.0-black))/lp.slope()
		m[i] = pol.FromMap(maxMap * v / 1024.0)
	}
	return applyMap(pol, m), nil
}

func fromLog(pol Policy, s Surface, limit int64) (PixelFunc, error) {
	m, err := logMap(pol, limit)
	if err != nil {
		return nil, err
	}
	lp := LogParamsOf(s)
	black := lp.black()
	maxMap := float64(pol.MaxMap)
	lo := int(lp.ReferenceBlack * maxMap / 1024.0)
	hi := int(lp.ReferenceWhite * maxMap / 1024.0)
	for i := range m {
		switch {
		case i <= lo:
			m[i] = 0
		case i < hi:
			v := math.Pow(10.0, (1024.0*float64(i)/maxMap-lp.ReferenceWhite)*lp.slope())
			m[i] = pol.Clamp(QuantumRange / (1.0 - black) * (v - black))
		default:
			m[i] = QuantumRange
		}
	}
	return applyMap(pol, m), nil
}
