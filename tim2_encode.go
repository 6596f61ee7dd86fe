package imagecore

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/mrjoshuak/go-imagecore/internal/blob"
	"github.com/mrjoshuak/go-imagecore/internal/tim2"
)

// tim2Opaque is the alpha byte the GS treats as fully opaque.
const tim2Opaque = 0x80

// EncodeTIM2 writes m as a single-picture TIM2 texture. Indexed images with
// at most 256 colormap entries become 8-bit palette pictures with a 32-bit
// CLUT, everything else 32-bit direct color. Alpha is written as opaque at
// half opacity or more and as transparent below.
func EncodeTIM2(w io.Writer, m image.Image) error {
	img, ok := m.(*Image)
	if !ok {
		img = FromImage(m)
	}
	width, height := img.Width(), img.Height()
	if width < 1 || height < 1 || width > math.MaxUint16 || height > math.MaxUint16 {
		return fmt.Errorf("%w: tim2 picture of %dx%d", ErrUnsupported, width, height)
	}

	cm := img.Colormap()
	palette := len(cm) > 0 && len(cm) <= 256
	ph := tim2.PictureHeader{
		HeaderSize:  tim2.PictureHeaderSize,
		MipmapCount: 1,
		Width:       uint16(width),
		Height:      uint16(height),
	}
	pixelSize := int64(4)
	if palette {
		pixelSize = 1
		ph.PixelType = tim2.PixelIndex8
		ph.CLUTType = tim2.CLUT32
		ph.CLUTColorCount = uint16(len(cm))
		ph.CLUTSize = uint32(4 * len(cm))
	} else {
		ph.PixelType = tim2.PixelRGB32
	}
	size := pixelSize * int64(width) * int64(height)
	total := size + int64(ph.CLUTSize) + tim2.PictureHeaderSize
	if total > math.MaxUint32 {
		return fmt.Errorf("%w: tim2 picture of %d bytes", ErrUnsupported, total)
	}
	ph.ImageSize = uint32(size)
	ph.TotalSize = uint32(total)
	fh := tim2.FileHeader{Magic: tim2.Magic, FormatType: tim2.Version, ImageCount: 1}

	bw := blob.NewWriter(w)
	_ = fh.Encode(bw)
	_ = ph.Encode(bw)
	matte := img.Matte()
	line := make([]byte, 0, int(pixelSize)*width)
	for y := 0; y < height && bw.Err() == nil; y++ {
		line = line[:0]
		for x := 0; x < width; x++ {
			if palette {
				line = append(line, byte(img.Index(x, y)))
			} else {
				line = appendColor32(line, img.PixelAt(x, y), matte)
			}
		}
		_, _ = bw.Write(line)
	}
	if palette {
		clut := make([]byte, 0, ph.CLUTSize)
		for _, p := range unswizzleCLUT(cm) {
			clut = appendColor32(clut, p, matte)
		}
		_, _ = bw.Write(clut)
	}
	if err := bw.Err(); err != nil {
		return fmt.Errorf("tim2: write failed at offset %d: %w", bw.Offset(), err)
	}
	return nil
}

// appendColor32 appends p as R, G, B, A bytes.
func appendColor32(b []byte, p Pixel, matte bool) []byte {
	a := byte(tim2Opaque)
	if matte && p.Alpha < QuantumRange/2 {
		a = 0
	}
	return append(b, ScaleQuantumToChar(p.Red), ScaleQuantumToChar(p.Green), ScaleQuantumToChar(p.Blue), a)
}
