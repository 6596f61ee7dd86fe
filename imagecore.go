// Package imagecore implements an in-memory image surface with a colorspace
// conversion engine and a small set of format coders.
//
// The engine converts between sRGB and a range of alternate colorspaces:
// CMY, CMYK, HSB, HSL, HWB, Lab, Log, OHTA, XYZ, YCbCr, YCC, YIQ, YPbPr,
// YUV, linear RGB and the grayscale luma variants. sRGB is the pivot: a
// conversion between two alternate colorspaces goes through sRGB.
//
// Basic usage:
//
//	img := imagecore.NewImage(640, 480)
//	t := imagecore.NewTransformer()
//	if err := t.TransformColorspace(img, imagecore.CMYK); err != nil {
//	    log.Fatal(err)
//	}
//
// Coders:
//   - TIM2 (PlayStation 2 textures), read only, registered with the image
//     package
//   - NULL, a constant image of uniform color
package imagecore

import (
	"fmt"
	"strings"
)

// Quantum is a single channel sample. Under the default quantized policy
// samples hold integer values in [0, QuantumRange]; the extended policy
// allows fractional and out of range values.
type Quantum float32

// QuantumRange is the maximum channel value.
const QuantumRange = 65535.0

// QuantumScale converts a quantum to the unit interval.
const QuantumScale = 1.0 / QuantumRange

// Opaque and transparent alpha values.
const (
	OpaqueAlpha      Quantum = QuantumRange
	TransparentAlpha Quantum = 0
)

// MaxColormapSize is the largest colormap an Indexed image may carry.
const MaxColormapSize = 65536

// ScaleCharToQuantum widens an 8-bit sample.
func ScaleCharToQuantum(v uint8) Quantum {
	return Quantum(257 * uint32(v))
}

// ScaleQuantumToChar narrows a sample to 8 bits with rounding.
func ScaleQuantumToChar(q Quantum) uint8 {
	if q <= 0 {
		return 0
	}
	if q >= QuantumRange {
		return 255
	}
	return uint8((float64(q) + 128.5) / 257.0)
}

// Pixel holds the channels of one pixel. Black is only meaningful for CMYK
// images.
type Pixel struct {
	Red, Green, Blue Quantum
	Alpha            Quantum
	Black            Quantum
}

// RGB returns an opaque pixel.
func RGB(r, g, b Quantum) Pixel {
	return Pixel{Red: r, Green: g, Blue: b, Alpha: OpaqueAlpha}
}

// RGB8 returns an opaque pixel from 8-bit samples.
func RGB8(r, g, b uint8) Pixel {
	return RGB(ScaleCharToQuantum(r), ScaleCharToQuantum(g), ScaleCharToQuantum(b))
}

// Colorspace records which colorspace an image's channel values are in.
type Colorspace int

// Supported colorspaces.
const (
	Undefined Colorspace = iota
	RGBLinear
	Gray
	Transparent
	OHTA
	Lab
	XYZ
	YCbCr
	YCC
	YIQ
	YPbPr
	YUV
	CMYK
	SRGB
	HSB
	HSL
	HWB
	Rec601Luma
	Rec601YCbCr
	Rec709Luma
	Rec709YCbCr
	Log
	CMY
)

var colorspaceNames = [...]string{
	Undefined:   "Undefined",
	RGBLinear:   "RGB",
	Gray:        "Gray",
	Transparent: "Transparent",
	OHTA:        "OHTA",
	Lab:         "Lab",
	XYZ:         "XYZ",
	YCbCr:       "YCbCr",
	YCC:         "YCC",
	YIQ:         "YIQ",
	YPbPr:       "YPbPr",
	YUV:         "YUV",
	CMYK:        "CMYK",
	SRGB:        "sRGB",
	HSB:         "HSB",
	HSL:         "HSL",
	HWB:         "HWB",
	Rec601Luma:  "Rec601Luma",
	Rec601YCbCr: "Rec601YCbCr",
	Rec709Luma:  "Rec709Luma",
	Rec709YCbCr: "Rec709YCbCr",
	Log:         "Log",
	CMY:         "CMY",
}

// String returns the colorspace name.
func (c Colorspace) String() string {
	if c >= 0 && int(c) < len(colorspaceNames) {
		return colorspaceNames[c]
	}
	return fmt.Sprintf("Colorspace(%d)", int(c))
}

// ParseColorspace looks up a colorspace by name, ignoring case.
func ParseColorspace(name string) (Colorspace, error) {
	for i, n := range colorspaceNames {
		if strings.EqualFold(n, name) {
			return Colorspace(i), nil
		}
	}
	switch strings.ToLower(name) {
	case "grey":
		return Gray, nil
	case "linear", "linearrgb":
		return RGBLinear, nil
	}
	return Undefined, fmt.Errorf("%w: unknown colorspace %q", ErrUnsupported, name)
}

// IsGray reports whether c is one of the single channel luma colorspaces.
func (c Colorspace) IsGray() bool {
	return c == Gray || c == Rec601Luma || c == Rec709Luma
}

// IsSRGB reports whether channel values in c are already sRGB.
func (c Colorspace) IsSRGB() bool {
	return c == SRGB || c == Transparent
}

// StorageClass is the way an image stores its pixels.
type StorageClass int

// Storage classes.
const (
	// Direct images store channel values per pixel.
	Direct StorageClass = iota
	// Indexed images store a colormap index per pixel.
	Indexed
)

// String returns the storage class name.
func (s StorageClass) String() string {
	switch s {
	case Direct:
		return "Direct"
	case Indexed:
		return "Indexed"
	default:
		return "Unknown"
	}
}

// ImageType classifies image content.
type ImageType int

// Image types.
const (
	UndefinedType ImageType = iota
	BilevelType
	GrayscaleType
	GrayscaleMatteType
	PaletteType
	PaletteMatteType
	TrueColorType
	TrueColorMatteType
	ColorSeparationType
	ColorSeparationMatteType
)

// String returns the image type name.
func (t ImageType) String() string {
	switch t {
	case BilevelType:
		return "Bilevel"
	case GrayscaleType:
		return "Grayscale"
	case GrayscaleMatteType:
		return "GrayscaleMatte"
	case PaletteType:
		return "Palette"
	case PaletteMatteType:
		return "PaletteMatte"
	case TrueColorType:
		return "TrueColor"
	case TrueColorMatteType:
		return "TrueColorMatte"
	case ColorSeparationType:
		return "ColorSeparation"
	case ColorSeparationMatteType:
		return "ColorSeparationMatte"
	default:
		return "Undefined"
	}
}
