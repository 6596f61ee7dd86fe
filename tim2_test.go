package imagecore

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"io"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrjoshuak/go-imagecore/internal/blob"
	"github.com/mrjoshuak/go-imagecore/internal/tim2"
)

// tim2Fixture assembles a single picture file. headerPad extends the
// picture header past its fixed 48 bytes.
type tim2Fixture struct {
	width, height int
	pixelType     uint8
	clutType      uint8
	colors        int
	pixels        []byte
	clut          []byte
	headerPad     int
	count         uint16
}

func (f tim2Fixture) bytes(t *testing.T) []byte {
	t.Helper()
	b, err := f.encode()
	require.NoError(t, err)
	return b
}

func (f tim2Fixture) encode() ([]byte, error) {
	count := f.count
	if count == 0 {
		count = 1
	}
	fh := tim2.FileHeader{Magic: tim2.Magic, FormatType: tim2.Version, ImageCount: count}
	ph := tim2.PictureHeader{
		TotalSize:      uint32(tim2.PictureHeaderSize + f.headerPad + len(f.pixels) + len(f.clut)),
		CLUTSize:       uint32(len(f.clut)),
		ImageSize:      uint32(len(f.pixels)),
		HeaderSize:     uint16(tim2.PictureHeaderSize + f.headerPad),
		CLUTColorCount: uint16(f.colors),
		CLUTType:       f.clutType,
		PixelType:      f.pixelType,
		Width:          uint16(f.width),
		Height:         uint16(f.height),
	}
	var buf bytes.Buffer
	w := blob.NewWriter(&buf)
	_ = fh.Encode(w)
	_ = ph.Encode(w)
	_, _ = w.Write(make([]byte, f.headerPad))
	_, _ = w.Write(f.pixels)
	_, _ = w.Write(f.clut)
	return buf.Bytes(), w.Err()
}

func clut32(colors ...[4]byte) []byte {
	var b []byte
	for _, c := range colors {
		b = append(b, c[:]...)
	}
	return b
}

func TestDecodeTIM2Index4(t *testing.T) {
	// 3x2 at 4 bits: rows are 2 bytes, low nibble first.
	f := tim2Fixture{
		width: 3, height: 2,
		pixelType: tim2.PixelIndex4, clutType: 0x03, colors: 3,
		pixels: []byte{0x10, 0x02, 0x21, 0x00},
		clut:   clut32([4]byte{255, 0, 0, 0x80}, [4]byte{0, 255, 0, 0x80}, [4]byte{0, 0, 255, 0}),
	}
	img, err := DecodeTIM2(bytes.NewReader(f.bytes(t)))
	require.NoError(t, err)

	assert.Equal(t, Indexed, img.StorageClass())
	assert.Equal(t, SRGB, img.Colorspace())
	assert.Equal(t, 32, img.Depth())
	assert.True(t, img.Matte())
	assert.Equal(t, PaletteMatteType, img.Type())

	got := [][]int{
		{img.Index(0, 0), img.Index(1, 0), img.Index(2, 0)},
		{img.Index(0, 1), img.Index(1, 1), img.Index(2, 1)},
	}
	if diff := cmp.Diff([][]int{{0, 1, 2}, {1, 2, 0}}, got); diff != "" {
		t.Errorf("indices mismatch (-want +got):\n%s", diff)
	}
	want := []Pixel{
		RGB8(255, 0, 0),
		RGB8(0, 255, 0),
		{Blue: QuantumRange, Alpha: TransparentAlpha},
	}
	if diff := cmp.Diff(want, img.Colormap()); diff != "" {
		t.Errorf("colormap mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeTIM2Index8Unswizzle(t *testing.T) {
	const n = 32
	clut := make([]byte, 0, 3*n)
	for i := 0; i < n; i++ {
		clut = append(clut, byte(i), 0, 0)
	}
	// Stored entry 8 is logical entry 16 and vice versa.
	f := tim2Fixture{
		width: 4, height: 1,
		pixelType: tim2.PixelIndex8, clutType: 0x02, colors: n,
		pixels: []byte{0, 8, 16, 31},
		clut:   clut,
	}
	img, err := DecodeTIM2(bytes.NewReader(f.bytes(t)))
	require.NoError(t, err)
	assert.Equal(t, 24, img.Depth())
	assert.False(t, img.Matte())

	cm := img.Colormap()
	assert.Equal(t, RGB8(16, 0, 0), cm[8])
	assert.Equal(t, RGB8(8, 0, 0), cm[16])
	assert.Equal(t, RGB8(7, 0, 0), cm[7])
	assert.Equal(t, RGB8(24, 0, 0), cm[24])
	assert.Equal(t, RGB8(16, 0, 0), img.PixelAt(1, 0))
	assert.Equal(t, RGB8(31, 0, 0), img.PixelAt(3, 0))
}

func TestDecodeTIM2CLUT16(t *testing.T) {
	word := func(r, g, b uint16, opaque bool) []byte {
		v := r | g<<5 | b<<10
		if opaque {
			v |= 0x8000
		}
		return binary.LittleEndian.AppendUint16(nil, v)
	}
	clut := append(word(31, 0, 0, true), word(0, 16, 31, false)...)
	f := tim2Fixture{
		width: 2, height: 1,
		pixelType: tim2.PixelIndex4, clutType: 0x01, colors: 2,
		pixels: []byte{0x10},
		clut:   clut,
	}
	img, err := DecodeTIM2(bytes.NewReader(f.bytes(t)))
	require.NoError(t, err)
	assert.Equal(t, 16, img.Depth())
	assert.Equal(t, RGB8(255, 0, 0), img.Colormap()[0])
	second := img.Colormap()[1]
	assert.Equal(t, ScaleCharToQuantum(16<<3|16>>2), second.Green)
	assert.Equal(t, ScaleCharToQuantum(255), second.Blue)
	assert.Equal(t, TransparentAlpha, second.Alpha)
}

func TestDecodeTIM2Direct(t *testing.T) {
	tests := []struct {
		name      string
		pixelType uint8
		pixels    []byte
		want      []Pixel
		matte     bool
	}{
		{
			name:      "16-bit",
			pixelType: tim2.PixelRGB16,
			pixels:    []byte{0x1F, 0x80, 0xE0, 0x03},
			want:      []Pixel{RGB8(255, 0, 0), {Green: QuantumRange}},
			matte:     true,
		},
		{
			name:      "24-bit",
			pixelType: tim2.PixelRGB24,
			pixels:    []byte{10, 20, 30, 40, 50, 60},
			want:      []Pixel{RGB8(10, 20, 30), RGB8(40, 50, 60)},
		},
		{
			name:      "32-bit",
			pixelType: tim2.PixelRGB32,
			pixels:    []byte{1, 2, 3, 0x80, 4, 5, 6, 0},
			want:      []Pixel{RGB8(1, 2, 3), {Red: 4 * 257, Green: 5 * 257, Blue: 6 * 257}},
			matte:     true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tim2Fixture{width: 2, height: 1, pixelType: tt.pixelType, pixels: tt.pixels}
			img, err := DecodeTIM2(bytes.NewReader(f.bytes(t)))
			require.NoError(t, err)
			assert.Equal(t, Direct, img.StorageClass())
			assert.Equal(t, tt.matte, img.Matte())
			got := []Pixel{img.PixelAt(0, 0), img.PixelAt(1, 0)}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("pixels mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeTIM2ExtendedHeader(t *testing.T) {
	f := tim2Fixture{
		width: 1, height: 1,
		pixelType: tim2.PixelRGB24,
		pixels:    []byte{9, 8, 7},
		headerPad: 16,
	}
	img, err := DecodeTIM2(bytes.NewReader(f.bytes(t)))
	require.NoError(t, err)
	assert.Equal(t, RGB8(9, 8, 7), img.PixelAt(0, 0))
}

func TestDecodeTIM2Errors(t *testing.T) {
	good := tim2Fixture{
		width: 2, height: 2,
		pixelType: tim2.PixelIndex8, clutType: 0x03, colors: 2,
		pixels: []byte{0, 1, 1, 0},
		clut:   clut32([4]byte{0, 0, 0, 1}, [4]byte{1, 1, 1, 1}),
	}
	goodBytes := good.bytes(t)

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrFormat},
		{"bad magic", append([]byte("TIM3"), goodBytes[4:]...), ErrFormat},
		{"truncated picture header", goodBytes[:30], ErrFormat},
		{"truncated image data", goodBytes[:tim2.FileHeaderSize+tim2.PictureHeaderSize+2], ErrInsufficientData},
		{"truncated CLUT", goodBytes[:len(goodBytes)-3], ErrInsufficientData},
		{"two pictures", func() []byte { f := good; f.count = 2; return f.bytes(t) }(), ErrUnsupported},
		{"CSM2", func() []byte { f := good; f.clutType = 0x13; return f.bytes(t) }(), ErrUnsupported},
		{"index past CLUT", func() []byte { f := good; f.pixels = []byte{0, 1, 2, 0}; return f.bytes(t) }(), ErrFormat},
		{"empty CLUT", func() []byte { f := good; f.colors = 0; return f.bytes(t) }(), ErrFormat},
		{"zero width", func() []byte { f := good; f.width = 0; return f.bytes(t) }(), ErrFormat},
		{"palette with direct pixels", func() []byte { f := good; f.pixelType = tim2.PixelRGB32; return f.bytes(t) }(), ErrFormat},
		{"direct with index pixels", func() []byte { f := good; f.clutType = 0; f.clut = nil; return f.bytes(t) }(), ErrFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeTIM2(bytes.NewReader(tt.data))
			assert.True(t, errors.Is(err, tt.want), "err = %v, want %v", err, tt.want)
		})
	}
}

func TestDecodeTIM2TruncationOffset(t *testing.T) {
	good := tim2Fixture{
		width: 2, height: 2,
		pixelType: tim2.PixelIndex8, clutType: tim2.CLUT32, colors: 2,
		pixels: []byte{0, 1, 1, 0},
		clut:   clut32([4]byte{0, 0, 0, 1}, [4]byte{1, 1, 1, 1}),
	}
	b := good.bytes(t)
	require.Len(t, b, 76)

	_, err := DecodeTIM2(bytes.NewReader(b[:66]))
	require.True(t, errors.Is(err, ErrInsufficientData), "err = %v", err)
	assert.Contains(t, err.Error(), "image data truncated at offset 66")

	_, err = DecodeTIM2(bytes.NewReader(b[:73]))
	require.True(t, errors.Is(err, ErrInsufficientData), "err = %v", err)
	assert.Contains(t, err.Error(), "CLUT truncated at offset 73")
}

func TestDecodeTIM2TrailingData(t *testing.T) {
	f := tim2Fixture{width: 1, height: 1, pixelType: tim2.PixelRGB24, pixels: []byte{1, 2, 3}}
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	img, err := DecodeTIM2WithOptions(bytes.NewReader(f.bytes(t)), &TIM2Options{Logger: logger})
	require.NoError(t, err)
	assert.Equal(t, RGB8(1, 2, 3), img.PixelAt(0, 0))
	assert.NotContains(t, logs.String(), "trailing")

	logs.Reset()
	data := append(f.bytes(t), "mipmap"...)
	_, err = DecodeTIM2WithOptions(bytes.NewReader(data), &TIM2Options{Logger: logger})
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "tim2 trailing data")
	assert.Contains(t, logs.String(), "offset=67")
}

// TestDecodeTIM2ByteLayout pins the pixel layouts this reader assumes.
func TestDecodeTIM2ByteLayout(t *testing.T) {
	t.Run("odd 4-bit row ends on a low nibble", func(t *testing.T) {
		// A high nibble of 0xF would point past the 4 color CLUT.
		f := tim2Fixture{
			width: 3, height: 2,
			pixelType: tim2.PixelIndex4, clutType: tim2.CLUT32, colors: 4,
			pixels: []byte{0x21, 0xF3, 0x10, 0xF2},
			clut:   make([]byte, 16),
		}
		img, err := DecodeTIM2(bytes.NewReader(f.bytes(t)))
		require.NoError(t, err)
		got := []int{img.Index(0, 0), img.Index(1, 0), img.Index(2, 0), img.Index(0, 1), img.Index(1, 1), img.Index(2, 1)}
		assert.Equal(t, []int{1, 2, 3, 0, 1, 2}, got)
	})

	t.Run("24-bit pixels are RGB888", func(t *testing.T) {
		f := tim2Fixture{width: 1, height: 1, pixelType: tim2.PixelRGB24, pixels: []byte{0xFF, 0xC0, 0x3F}}
		img, err := DecodeTIM2(bytes.NewReader(f.bytes(t)))
		require.NoError(t, err)
		assert.Equal(t, RGB8(255, 192, 63), img.PixelAt(0, 0))
	})

	t.Run("8-bit CLUT is stored in CSM1 order", func(t *testing.T) {
		const n = 64
		var clut []byte
		for i := 0; i < n; i++ {
			clut = append(clut, byte(i), byte(255-i), 0, 0x80)
		}
		f := tim2Fixture{
			width: 4, height: 1,
			pixelType: tim2.PixelIndex8, clutType: tim2.CLUT32, colors: n,
			pixels: []byte{40, 52, 3, 63},
			clut:   clut,
		}
		img, err := DecodeTIM2(bytes.NewReader(f.bytes(t)))
		require.NoError(t, err)
		got := []Pixel{img.PixelAt(0, 0), img.PixelAt(1, 0), img.PixelAt(2, 0), img.PixelAt(3, 0)}
		want := []Pixel{RGB8(48, 207, 0), RGB8(44, 211, 0), RGB8(3, 252, 0), RGB8(63, 192, 0)}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("pixels mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestEncodeTIM2Indexed(t *testing.T) {
	const n = 40
	cm := make([]Pixel, n)
	for i := range cm {
		cm[i] = RGB8(uint8(6*i), uint8(255-6*i), uint8(i))
	}
	cm[n-1] = Pixel{Red: ScaleCharToQuantum(3), Alpha: TransparentAlpha}
	img, err := NewIndexedImage(8, 5, cm)
	require.NoError(t, err)
	img.SetMatte(true)
	for y := 0; y < 5; y++ {
		for x := 0; x < 8; x++ {
			require.NoError(t, img.SetIndex(x, y, (x+8*y)%n))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, EncodeTIM2(&buf, img))
	assert.Equal(t, FormatTIM2, Sniff(buf.Bytes()))
	assert.Equal(t, tim2.FileHeaderSize+tim2.PictureHeaderSize+8*5+4*n, buf.Len())

	back, err := DecodeTIM2(&buf)
	require.NoError(t, err)
	assert.Equal(t, Indexed, back.StorageClass())
	assert.True(t, back.Matte())
	if diff := cmp.Diff(cm, back.Colormap()); diff != "" {
		t.Errorf("colormap mismatch (-want +got):\n%s", diff)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 8; x++ {
			assert.Equal(t, img.Index(x, y), back.Index(x, y), "index (%d,%d)", x, y)
		}
	}
}

func TestEncodeTIM2Direct(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	src.SetNRGBA(0, 0, color.NRGBA{10, 20, 30, 255})
	src.SetNRGBA(1, 0, color.NRGBA{40, 50, 60, 200})
	src.SetNRGBA(2, 0, color.NRGBA{70, 80, 90, 100})

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, src, FormatTIM2))
	back, err := DecodeTIM2(&buf)
	require.NoError(t, err)
	assert.Equal(t, Direct, back.StorageClass())
	assert.Equal(t, 32, back.Depth())

	assert.Equal(t, RGB8(10, 20, 30), back.PixelAt(0, 0))
	assertPixelNear(t, RGB8(40, 50, 60), back.PixelAt(1, 0), 257, "half opaque")
	assert.Equal(t, OpaqueAlpha, back.PixelAt(1, 0).Alpha)
	assertPixelNear(t, RGB8(70, 80, 90), back.PixelAt(2, 0), 257, "mostly transparent")
	assert.Equal(t, TransparentAlpha, back.PixelAt(2, 0).Alpha)
}

func TestEncodeTIM2LargeColormap(t *testing.T) {
	cm := make([]Pixel, 300)
	for i := range cm {
		cm[i] = RGB8(uint8(i), uint8(i>>8), 7)
	}
	img, err := NewIndexedImage(2, 1, cm)
	require.NoError(t, err)
	require.NoError(t, img.SetIndex(1, 0, 299))

	var buf bytes.Buffer
	require.NoError(t, EncodeTIM2(&buf, img))
	back, err := DecodeTIM2(&buf)
	require.NoError(t, err)
	assert.Equal(t, Direct, back.StorageClass(), "more than 256 colors are written as direct color")
	assert.Equal(t, cm[0], back.PixelAt(0, 0))
	assert.Equal(t, cm[299], back.PixelAt(1, 0))
}

// limitWriter accepts n bytes, then fails.
type limitWriter struct{ n int }

func (w *limitWriter) Write(p []byte) (int, error) {
	if len(p) > w.n {
		n := w.n
		w.n = 0
		return n, errors.New("disk full")
	}
	w.n -= len(p)
	return len(p), nil
}

func TestEncodeTIM2Errors(t *testing.T) {
	err := EncodeTIM2(&limitWriter{n: 20}, NewImage(2, 2))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "offset 20")

	err = EncodeTIM2(io.Discard, NewImage(70000, 1))
	assert.True(t, errors.Is(err, ErrUnsupported), "err = %v", err)
	err = EncodeTIM2(io.Discard, NewImage(0, 0))
	assert.True(t, errors.Is(err, ErrUnsupported), "err = %v", err)
}

func TestDecodeTIM2Config(t *testing.T) {
	f := tim2Fixture{width: 5, height: 3, pixelType: tim2.PixelRGB24, pixels: make([]byte, 45)}
	cfg, err := DecodeTIM2Config(bytes.NewReader(f.bytes(t)))
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Width)
	assert.Equal(t, 3, cfg.Height)
}

func TestTIM2RegisteredFormat(t *testing.T) {
	f := tim2Fixture{width: 2, height: 1, pixelType: tim2.PixelRGB24, pixels: []byte{1, 2, 3, 4, 5, 6}}
	m, name, err := image.Decode(bytes.NewReader(f.bytes(t)))
	require.NoError(t, err)
	assert.Equal(t, "tim2", name)
	assert.Equal(t, image.Rect(0, 0, 2, 1), m.Bounds())
}

func TestDecodedTIM2Transforms(t *testing.T) {
	f := tim2Fixture{
		width: 2, height: 1,
		pixelType: tim2.PixelIndex4, clutType: 0x03, colors: 2,
		pixels: []byte{0x10},
		clut:   clut32([4]byte{200, 100, 50, 0x80}, [4]byte{30, 60, 90, 0x80}),
	}
	img, err := DecodeTIM2(bytes.NewReader(f.bytes(t)))
	require.NoError(t, err)
	tr := NewTransformer()
	require.NoError(t, tr.TransformColorspace(img, YCbCr))
	require.NoError(t, tr.TransformColorspace(img, SRGB))
	assertPixelNear(t, RGB8(200, 100, 50), img.PixelAt(0, 0), 16, "pixel 0")
	assertPixelNear(t, RGB8(30, 60, 90), img.PixelAt(1, 0), 16, "pixel 1")
	assert.Equal(t, 1, img.Index(1, 0))
}
