package imagecore

import (
	"fmt"
	"image"
	"image/color"
	"maps"
	"math"
)

// Surface is the pixel storage a Transformer converts in place.
//
// Row returns a mutable view of one row of a Direct surface; SyncRow commits
// it. Indexed surfaces are converted through Colormap, after which
// SyncColormap refreshes the per-pixel values derived from it.
type Surface interface {
	Width() int
	Height() int
	StorageClass() StorageClass
	Row(y int) ([]Pixel, error)
	SyncRow(y int, row []Pixel) error
	Colormap() []Pixel
	SyncColormap() error
	Colorspace() Colorspace
	SetColorspace(c Colorspace) error
	Property(key string) (string, bool)
}

// typed is implemented by surfaces that track their content type.
type typed interface {
	Matte() bool
	SetType(t ImageType)
}

// Image is an in-memory Surface. It also implements image.Image, reporting
// channel values as stored regardless of colorspace.
type Image struct {
	width, height int
	class         StorageClass
	colorspace    Colorspace
	typ           ImageType
	matte         bool
	depth         int

	pix      []Pixel
	index    []uint16
	colormap []Pixel

	properties map[string]string
}

// NewImage returns an opaque black sRGB image with Direct storage.
func NewImage(width, height int) *Image {
	width, height = max(width, 0), max(height, 0)
	img := &Image{
		width:      width,
		height:     height,
		class:      Direct,
		colorspace: SRGB,
		typ:        TrueColorType,
		depth:      16,
		pix:        make([]Pixel, width*height),
	}
	for i := range img.pix {
		img.pix[i].Alpha = OpaqueAlpha
	}
	return img
}

// NewIndexedImage returns an sRGB image with Indexed storage. Every pixel
// starts at colormap entry 0.
func NewIndexedImage(width, height int, colormap []Pixel) (*Image, error) {
	if len(colormap) == 0 || len(colormap) > MaxColormapSize {
		return nil, fmt.Errorf("%w: %d entries", ErrColormapSize, len(colormap))
	}
	img := NewImage(width, height)
	img.class = Indexed
	img.typ = PaletteType
	img.colormap = append([]Pixel(nil), colormap...)
	img.index = make([]uint16, len(img.pix))
	for i := range img.pix {
		img.pix[i] = img.colormap[0]
	}
	return img, nil
}

// Width returns the number of columns.
func (img *Image) Width() int { return img.width }

// Height returns the number of rows.
func (img *Image) Height() int { return img.height }

// StorageClass returns the storage class.
func (img *Image) StorageClass() StorageClass { return img.class }

// Colorspace returns the colorspace tag.
func (img *Image) Colorspace() Colorspace { return img.colorspace }

// SetColorspace retags the image without touching channel data.
func (img *Image) SetColorspace(c Colorspace) error {
	img.colorspace = c
	return nil
}

// Type returns the content type.
func (img *Image) Type() ImageType { return img.typ }

// SetType sets the content type.
func (img *Image) SetType(t ImageType) { img.typ = t }

// Matte reports whether the alpha channel is in use.
func (img *Image) Matte() bool { return img.matte }

// SetMatte enables or disables the alpha channel.
func (img *Image) SetMatte(matte bool) { img.matte = matte }

// Depth returns the nominal bits per channel of the source data.
func (img *Image) Depth() int { return img.depth }

// SetDepth sets the nominal bits per channel.
func (img *Image) SetDepth(depth int) { img.depth = depth }

// Row returns row y for in-place editing.
func (img *Image) Row(y int) ([]Pixel, error) {
	if y < 0 || y >= img.height {
		return nil, fmt.Errorf("row %d out of range [0,%d)", y, img.height)
	}
	return img.pix[y*img.width : (y+1)*img.width : (y+1)*img.width], nil
}

// SyncRow commits row y. Rows returned by Row are committed in place; any
// other slice is copied.
func (img *Image) SyncRow(y int, row []Pixel) error {
	dst, err := img.Row(y)
	if err != nil {
		return err
	}
	if len(row) != len(dst) {
		return fmt.Errorf("row %d has %d pixels, want %d", y, len(row), len(dst))
	}
	if len(row) > 0 && &row[0] != &dst[0] {
		copy(dst, row)
	}
	return nil
}

// Colormap returns the colormap of an Indexed image for in-place editing.
// It is nil for Direct images.
func (img *Image) Colormap() []Pixel {
	if img.class != Indexed {
		return nil
	}
	return img.colormap
}

// SyncColormap refreshes every pixel from its colormap entry.
func (img *Image) SyncColormap() error {
	if img.class != Indexed {
		return nil
	}
	var bad error
	for i, idx := range img.index {
		if int(idx) >= len(img.colormap) {
			if bad == nil {
				bad = fmt.Errorf("%w: %d at pixel %d", ErrInvalidColormapIndex, idx, i)
			}
			continue
		}
		img.pix[i] = img.colormap[idx]
	}
	return bad
}

// SetStorageClass switches between Direct and Indexed storage. Converting
// to Indexed builds a colormap of the distinct colors and fails with
// ErrColormapSize when there are more than MaxColormapSize. NaN channels
// are stored as 0 in the colormap.
func (img *Image) SetStorageClass(class StorageClass) error {
	if class == img.class {
		return nil
	}
	switch class {
	case Direct:
		if err := img.SyncColormap(); err != nil {
			return err
		}
		img.index = nil
		img.colormap = nil
		img.class = Direct
		return nil
	case Indexed:
		seen := make(map[Pixel]uint16)
		var colormap []Pixel
		index := make([]uint16, len(img.pix))
		for i, p := range img.pix {
			p = paletteKey(p)
			idx, ok := seen[p]
			if !ok {
				if len(colormap) == MaxColormapSize {
					return fmt.Errorf("%w: more than %d colors", ErrColormapSize, MaxColormapSize)
				}
				idx = uint16(len(colormap))
				seen[p] = idx
				colormap = append(colormap, p)
			}
			index[i] = idx
		}
		if len(colormap) == 0 {
			colormap = []Pixel{{Alpha: OpaqueAlpha}}
		}
		img.colormap = colormap
		img.index = index
		img.class = Indexed
		return nil
	}
	return fmt.Errorf("%w: storage class %d", ErrUnsupported, class)
}

// paletteKey zeroes NaN channels, which never compare equal as map keys.
func paletteKey(p Pixel) Pixel {
	for _, c := range []*Quantum{&p.Red, &p.Green, &p.Blue, &p.Alpha, &p.Black} {
		if math.IsNaN(float64(*c)) {
			*c = 0
		}
	}
	return p
}

// PixelAt returns the pixel at (x, y).
func (img *Image) PixelAt(x, y int) Pixel {
	if x < 0 || y < 0 || x >= img.width || y >= img.height {
		return Pixel{}
	}
	return img.pix[y*img.width+x]
}

// SetPixel sets the pixel at (x, y) of a Direct image.
func (img *Image) SetPixel(x, y int, p Pixel) {
	if img.class != Direct || x < 0 || y < 0 || x >= img.width || y >= img.height {
		return
	}
	img.pix[y*img.width+x] = p
}

// Index returns the colormap index at (x, y) of an Indexed image.
func (img *Image) Index(x, y int) int {
	if img.class != Indexed || x < 0 || y < 0 || x >= img.width || y >= img.height {
		return 0
	}
	return int(img.index[y*img.width+x])
}

// SetIndex points the pixel at (x, y) at colormap entry idx.
func (img *Image) SetIndex(x, y, idx int) error {
	if img.class != Indexed {
		return fmt.Errorf("%w: image is not indexed", ErrUnsupported)
	}
	if x < 0 || y < 0 || x >= img.width || y >= img.height {
		return fmt.Errorf("pixel (%d,%d) out of range", x, y)
	}
	if idx < 0 || idx >= len(img.colormap) {
		return fmt.Errorf("%w: %d", ErrInvalidColormapIndex, idx)
	}
	i := y*img.width + x
	img.index[i] = uint16(idx)
	img.pix[i] = img.colormap[idx]
	return nil
}

// Property returns an image property.
func (img *Image) Property(key string) (string, bool) {
	v, ok := img.properties[key]
	return v, ok
}

// SetProperty sets an image property.
func (img *Image) SetProperty(key, value string) {
	if img.properties == nil {
		img.properties = make(map[string]string)
	}
	img.properties[key] = value
}

// Clone returns a deep copy.
func (img *Image) Clone() *Image {
	c := *img
	c.pix = append([]Pixel(nil), img.pix...)
	if img.index != nil {
		c.index = append([]uint16(nil), img.index...)
		c.colormap = append([]Pixel(nil), img.colormap...)
	}
	c.properties = maps.Clone(img.properties)
	return &c
}

// ============================================================================
// image.Image
// ============================================================================

// ColorModel implements image.Image.
func (img *Image) ColorModel() color.Model { return color.NRGBA64Model }

// Bounds implements image.Image.
func (img *Image) Bounds() image.Rectangle { return image.Rect(0, 0, img.width, img.height) }

// At implements image.Image.
func (img *Image) At(x, y int) color.Color {
	p := img.PixelAt(x, y)
	a := p.Alpha
	if !img.matte {
		a = OpaqueAlpha
	}
	return color.NRGBA64{R: to16(p.Red), G: to16(p.Green), B: to16(p.Blue), A: to16(a)}
}

func to16(q Quantum) uint16 {
	if q <= 0 {
		return 0
	}
	if q >= QuantumRange {
		return 0xFFFF
	}
	return uint16(float64(q) + 0.5)
}

// FromImage copies src into a new sRGB image. Paletted sources keep Indexed
// storage.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if p, ok := src.(*image.Paletted); ok && len(p.Palette) > 0 {
		colormap := make([]Pixel, len(p.Palette))
		for i, c := range p.Palette {
			colormap[i] = pixelOf(c)
		}
		img, err := NewIndexedImage(w, h, colormap)
		if err == nil {
			img.matte = hasAlpha(colormap)
			img.typ = pick(img.matte, PaletteMatteType, PaletteType)
			img.depth = 8
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					idx := int(p.ColorIndexAt(b.Min.X+x, b.Min.Y+y))
					if idx < len(colormap) {
						_ = img.SetIndex(x, y, idx)
					}
				}
			}
			return img
		}
	}
	img := NewImage(w, h)
	for y := 0; y < h; y++ {
		row := img.pix[y*w : (y+1)*w]
		for x := range row {
			row[x] = pixelOf(src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	img.matte = hasAlpha(img.pix)
	img.typ = pick(img.matte, TrueColorMatteType, TrueColorType)
	return img
}

func pixelOf(c color.Color) Pixel {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Pixel{Red: Quantum(n.R), Green: Quantum(n.G), Blue: Quantum(n.B), Alpha: Quantum(n.A)}
}

func hasAlpha(pix []Pixel) bool {
	for _, p := range pix {
		if p.Alpha != OpaqueAlpha {
			return true
		}
	}
	return false
}
