package imagecore

import (
	"bufio"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // registers the webp decoder
)

// Format identifies an image file format.
type Format int

// Supported formats.
const (
	FormatUnknown Format = iota
	FormatPNG
	FormatJPEG
	FormatGIF
	FormatTIFF
	FormatBMP
	FormatWebP
	FormatTIM2
	FormatNull
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "PNG"
	case FormatJPEG:
		return "JPEG"
	case FormatGIF:
		return "GIF"
	case FormatTIFF:
		return "TIFF"
	case FormatBMP:
		return "BMP"
	case FormatWebP:
		return "WEBP"
	case FormatTIM2:
		return "TIM2"
	case FormatNull:
		return "NULL"
	default:
		return "Unknown"
	}
}

// tim2Type is the filetype registration of TIM2 textures.
var tim2Type = types.NewType("tim2", "image/x-tim2")

func init() {
	filetype.AddMatcher(tim2Type, IsTIM2)
}

// sniffLen is the number of leading bytes used to detect a format.
const sniffLen = 262

// ParseFormat returns the format for a name or filename extension, with or
// without the leading dot.
func ParseFormat(ext string) (Format, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	switch ext {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "gif":
		return FormatGIF, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	case "bmp":
		return FormatBMP, nil
	case "webp":
		return FormatWebP, nil
	case "tm2", "tim2":
		return FormatTIM2, nil
	case "null":
		return FormatNull, nil
	case "":
		return FormatUnknown, fmt.Errorf("%w: empty format name", ErrUnsupported)
	}
	return FormatUnknown, fmt.Errorf("%w: format %q", ErrUnsupported, ext)
}

// Sniff detects the format from the leading bytes of a file.
func Sniff(head []byte) Format {
	kind, err := filetype.Match(head)
	if err != nil || kind == filetype.Unknown {
		return FormatUnknown
	}
	if kind == tim2Type {
		return FormatTIM2
	}
	f, err := ParseFormat(kind.Extension)
	if err != nil {
		return FormatUnknown
	}
	return f
}

// Decode reads an image in any supported format. Formats without a native
// decoder go through the image package and are copied into an sRGB Image.
func Decode(r io.Reader) (*Image, Format, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(sniffLen)
	f := Sniff(head)
	if f == FormatTIM2 {
		img, err := DecodeTIM2(br)
		return img, f, err
	}
	m, name, err := image.Decode(br)
	if err != nil {
		return nil, f, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if f == FormatUnknown {
		f, _ = ParseFormat(name)
	}
	return FromImage(m), f, nil
}

// Open decodes the named file.
func Open(filename string) (*Image, Format, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, FormatUnknown, err
	}
	defer file.Close()
	return Decode(file)
}

// Encode writes m in format f. Channels are written as stored, whatever the
// colorspace tag of m.
func Encode(w io.Writer, m image.Image, f Format) error {
	switch f {
	case FormatPNG:
		return png.Encode(w, m)
	case FormatJPEG:
		return jpeg.Encode(w, m, &jpeg.Options{Quality: 90})
	case FormatGIF:
		return gif.Encode(w, m, nil)
	case FormatTIFF:
		return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
	case FormatBMP:
		return bmp.Encode(w, m)
	case FormatTIM2:
		return EncodeTIM2(w, m)
	case FormatNull:
		return EncodeNull(w, m)
	}
	return fmt.Errorf("%w: encoding %s", ErrUnsupported, f)
}

// Save writes m to filename in the format named by its extension.
func Save(m image.Image, filename string) error {
	f, err := ParseFormat(filepath.Ext(filename))
	if err != nil {
		return err
	}
	return SaveAs(m, filename, f)
}

// SaveAs writes m to filename in format f. The null format creates no file.
func SaveAs(m image.Image, filename string, f Format) error {
	if f == FormatNull {
		return EncodeNull(io.Discard, m)
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(file)
	if err := Encode(bw, m, f); err != nil {
		file.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
