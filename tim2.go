package imagecore

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"

	"github.com/mrjoshuak/go-imagecore/internal/blob"
	"github.com/mrjoshuak/go-imagecore/internal/tim2"
)

// TIM2Options configures the TIM2 reader.
type TIM2Options struct {
	// Logger receives header traces. Nil uses slog.Default().
	Logger *slog.Logger
}

// DecodeTIM2 reads a single-picture TIM2 texture. Palette pictures decode
// to Indexed images, direct color pictures to Direct images. The result is
// tagged sRGB.
func DecodeTIM2(r io.Reader) (*Image, error) {
	return DecodeTIM2WithOptions(r, nil)
}

// DecodeTIM2WithOptions is DecodeTIM2 with explicit options.
func DecodeTIM2WithOptions(r io.Reader, opts *TIM2Options) (*Image, error) {
	d := newTIM2Decoder(r, opts)
	if err := d.readHeaders(); err != nil {
		return nil, err
	}
	return d.decode()
}

// DecodeTIM2Config returns the dimensions of a TIM2 texture without reading
// its pixel data.
func DecodeTIM2Config(r io.Reader) (image.Config, error) {
	d := newTIM2Decoder(r, nil)
	if err := d.readHeaders(); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.NRGBA64Model,
		Width:      int(d.pic.Width),
		Height:     int(d.pic.Height),
	}, nil
}

func init() {
	// "TIM2" signature
	image.RegisterFormat("tim2", "TIM2",
		func(r io.Reader) (image.Image, error) {
			return DecodeTIM2(r)
		},
		DecodeTIM2Config,
	)
}

type tim2Decoder struct {
	r      *blob.Reader
	logger *slog.Logger
	file   *tim2.FileHeader
	pic    tim2.PictureHeader
}

func newTIM2Decoder(r io.Reader, opts *TIM2Options) *tim2Decoder {
	d := &tim2Decoder{r: blob.NewReader(r), logger: slog.Default()}
	if opts != nil && opts.Logger != nil {
		d.logger = opts.Logger
	}
	return d
}

func (d *tim2Decoder) readHeaders() error {
	fh, err := tim2.ReadFileHeader(d.r)
	if err != nil {
		return fmt.Errorf("%w: tim2 file header: %v", ErrFormat, err)
	}
	d.file = fh
	if fh.ImageCount != 1 {
		return fmt.Errorf("%w: tim2 with %d pictures", ErrUnsupported, fh.ImageCount)
	}

	pic, err := tim2.ReadPictureHeader(d.r)
	if err != nil {
		return fmt.Errorf("%w: tim2 picture header: %v", ErrFormat, err)
	}
	d.pic = *pic
	if extra := int64(d.pic.HeaderSize) - tim2.PictureHeaderSize; extra > 0 {
		if err := d.r.Discard(extra); err != nil {
			return fmt.Errorf("%w: tim2 extended header: %v", ErrFormat, err)
		}
	}

	d.logger.Debug("tim2 picture",
		"width", d.pic.Width, "height", d.pic.Height,
		"pixel_type", d.pic.PixelType, "clut_type", d.pic.CLUTType,
		"clut_colors", d.pic.CLUTColorCount, "image_size", d.pic.ImageSize,
		"clut_size", d.pic.CLUTSize, "gs_tex0", fmt.Sprintf("%016x", d.pic.GsTex0))

	if d.pic.Width == 0 || d.pic.Height == 0 {
		return fmt.Errorf("%w: tim2 picture is %dx%d", ErrFormat, d.pic.Width, d.pic.Height)
	}
	if d.pic.HasCLUT() {
		if d.pic.StorageMode() != tim2.CSM1 {
			return fmt.Errorf("%w: tim2 CLUT storage mode %d", ErrUnsupported, d.pic.StorageMode())
		}
		if bpp := d.pic.BitsPerPixel(); bpp != 4 && bpp != 8 {
			return fmt.Errorf("%w: tim2 palette picture with %d bits per pixel", ErrFormat, bpp)
		}
	}
	return nil
}

func (d *tim2Decoder) decode() (*Image, error) {
	data, err := d.r.ReadBytes(int(d.pic.ImageSize))
	if err != nil {
		return nil, d.truncated("image data", err)
	}
	w, h := int(d.pic.Width), int(d.pic.Height)
	stride := d.pic.BytesPerLine()
	if len(data) < stride*h {
		return nil, fmt.Errorf("%w: tim2 image data has %d bytes, want %d",
			ErrInsufficientData, len(data), stride*h)
	}

	if !d.pic.HasCLUT() {
		img := NewImage(w, h)
		img.SetDepth(d.pic.Depth())
		if err := d.decodeDirect(img, data, stride); err != nil {
			return nil, err
		}
		d.checkTrailing()
		return img, nil
	}

	colormap, err := d.readCLUT()
	if err != nil {
		return nil, err
	}
	img, err := NewIndexedImage(w, h, colormap)
	if err != nil {
		return nil, err
	}
	img.SetDepth(d.pic.Depth())
	if hasAlpha(colormap) {
		img.SetMatte(true)
		img.SetType(PaletteMatteType)
	}
	if err := d.decodeIndexed(img, data, stride); err != nil {
		return nil, err
	}
	d.checkTrailing()
	return img, nil
}

// truncated reports a short read of part at the current stream offset.
func (d *tim2Decoder) truncated(part string, err error) error {
	return fmt.Errorf("%w: tim2 %s truncated at offset %d: %v", ErrInsufficientData, part, d.r.Offset(), err)
}

// checkTrailing logs data past the last picture. Mipmaps and further
// pictures are not read.
func (d *tim2Decoder) checkTrailing() {
	if !d.r.EOF() {
		d.logger.Debug("tim2 trailing data", "offset", d.r.Offset())
	}
}

func (d *tim2Decoder) decodeIndexed(img *Image, data []byte, stride int) error {
	w := img.Width()
	var bad error
	set := func(x, y, idx int) {
		if err := img.SetIndex(x, y, idx); err != nil && bad == nil {
			bad = err
		}
	}
	for y := 0; y < img.Height(); y++ {
		p := data[y*stride : (y+1)*stride]
		switch d.pic.BitsPerPixel() {
		case 4:
			// Low nibble first.
			for x := 0; x < w; x++ {
				b := p[x/2]
				if x%2 == 0 {
					set(x, y, int(b&0x0F))
				} else {
					set(x, y, int(b>>4))
				}
			}
		case 8:
			for x := 0; x < w; x++ {
				set(x, y, int(p[x]))
			}
		}
	}
	if bad != nil {
		return fmt.Errorf("%w: tim2 %v", ErrFormat, bad)
	}
	return nil
}

func (d *tim2Decoder) decodeDirect(img *Image, data []byte, stride int) error {
	bpp := d.pic.BitsPerPixel()
	switch bpp {
	case 16, 32:
		img.SetMatte(true)
		img.SetType(TrueColorMatteType)
	case 24:
	default:
		return fmt.Errorf("%w: tim2 direct picture with %d bits per pixel", ErrFormat, bpp)
	}
	for y := 0; y < img.Height(); y++ {
		row, err := img.Row(y)
		if err != nil {
			return err
		}
		p := data[y*stride : (y+1)*stride]
		for x := range row {
			switch bpp {
			case 16:
				row[x] = color16(uint16(p[2*x]) | uint16(p[2*x+1])<<8)
			case 24:
				row[x] = RGB8(p[3*x], p[3*x+1], p[3*x+2])
			case 32:
				row[x] = color32(p[4*x:])
			}
		}
	}
	return nil
}

// readCLUT reads the color lookup table that follows the image data.
func (d *tim2Decoder) readCLUT() ([]Pixel, error) {
	n := int(d.pic.CLUTColorCount)
	if n == 0 {
		return nil, fmt.Errorf("%w: tim2 CLUT has no colors", ErrFormat)
	}
	size := d.pic.CLUTDepth() / 8
	raw, err := d.r.ReadBytes(int(d.pic.CLUTSize))
	if err != nil {
		return nil, d.truncated("CLUT", err)
	}
	if len(raw) < n*size {
		return nil, fmt.Errorf("%w: tim2 CLUT has %d bytes, want %d",
			ErrInsufficientData, len(raw), n*size)
	}

	colormap := make([]Pixel, n)
	for i := range colormap {
		p := raw[i*size:]
		switch size {
		case 2:
			colormap[i] = color16(uint16(p[0]) | uint16(p[1])<<8)
		case 3:
			colormap[i] = RGB8(p[0], p[1], p[2])
		default:
			colormap[i] = color32(p)
		}
	}
	if d.pic.BitsPerPixel() == 8 {
		colormap = unswizzleCLUT(colormap)
	}
	return colormap, nil
}

// unswizzleCLUT undoes the CSM1 layout of 8-bit palettes, where the second
// and third runs of 8 entries in every block of 32 are swapped. The swap is
// its own inverse, so it also produces the stored layout.
func unswizzleCLUT(colormap []Pixel) []Pixel {
	out := make([]Pixel, len(colormap))
	copy(out, colormap)
	for i := range colormap {
		j := i&^0x18 | (i&0x08)<<1 | (i&0x10)>>1
		if j < len(colormap) {
			out[i] = colormap[j]
		}
	}
	return out
}

func scale5to8(v uint16) uint8 {
	v &= 0x1F
	return uint8(v<<3 | v>>2)
}

// color16 decodes an A1B5G5R5 word.
func color16(word uint16) Pixel {
	p := RGB8(scale5to8(word), scale5to8(word>>5), scale5to8(word>>10))
	if word>>15 == 0 {
		p.Alpha = TransparentAlpha
	}
	return p
}

// color32 decodes R, G, B, A bytes. Any nonzero alpha is opaque.
func color32(b []byte) Pixel {
	p := RGB8(b[0], b[1], b[2])
	if b[3] == 0 {
		p.Alpha = TransparentAlpha
	}
	return p
}

// IsTIM2 reports whether data starts with the TIM2 signature.
func IsTIM2(data []byte) bool {
	return len(data) >= 4 && string(data[:4]) == "TIM2"
}
