package imagecore

import (
	"image"
	"io"
)

// NewNullImage returns a transparent black image tagged c. An image with no
// size is 1x1. When c is CMYK the background is stored as CMYK black.
func NewNullImage(width, height int, c Colorspace) *Image {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	img := NewImage(width, height)
	img.colorspace = c
	img.matte = true
	img.typ = TrueColorMatteType

	bg := Pixel{Alpha: TransparentAlpha}
	if c == CMYK {
		toCMYK(Quantized(DefaultMaxMap))(&bg)
		img.typ = ColorSeparationMatteType
	}
	for i := range img.pix {
		img.pix[i] = bg
	}
	return img
}

// EncodeNull discards m. It exists so that "null:" is a valid output.
func EncodeNull(w io.Writer, m image.Image) error {
	return nil
}
