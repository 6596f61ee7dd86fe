package imagecore

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewImage(t *testing.T) {
	img := NewImage(3, 2)
	assert.Equal(t, 3, img.Width())
	assert.Equal(t, 2, img.Height())
	assert.Equal(t, Direct, img.StorageClass())
	assert.Equal(t, SRGB, img.Colorspace())
	assert.Equal(t, RGB(0, 0, 0), img.PixelAt(1, 1))
	assert.Nil(t, img.Colormap())
}

func TestRowAccess(t *testing.T) {
	img := NewImage(2, 2)
	row, err := img.Row(1)
	require.NoError(t, err)
	row[0] = RGB8(1, 2, 3)
	require.NoError(t, img.SyncRow(1, row))
	assert.Equal(t, RGB8(1, 2, 3), img.PixelAt(0, 1))

	cp := []Pixel{RGB8(9, 9, 9), RGB8(8, 8, 8)}
	require.NoError(t, img.SyncRow(0, cp))
	assert.Equal(t, RGB8(8, 8, 8), img.PixelAt(1, 0))

	_, err = img.Row(2)
	assert.Error(t, err)
	assert.Error(t, img.SyncRow(0, cp[:1]))
}

func TestIndexedImage(t *testing.T) {
	_, err := NewIndexedImage(2, 2, nil)
	assert.True(t, errors.Is(err, ErrColormapSize))

	cm := []Pixel{RGB8(255, 0, 0), RGB8(0, 0, 255)}
	img, err := NewIndexedImage(2, 1, cm)
	require.NoError(t, err)
	require.NoError(t, img.SetIndex(1, 0, 1))
	assert.Equal(t, RGB8(0, 0, 255), img.PixelAt(1, 0))
	assert.Equal(t, 1, img.Index(1, 0))

	err = img.SetIndex(0, 0, 2)
	assert.True(t, errors.Is(err, ErrInvalidColormapIndex), "err = %v", err)

	img.Colormap()[0] = RGB8(0, 255, 0)
	require.NoError(t, img.SyncColormap())
	assert.Equal(t, RGB8(0, 255, 0), img.PixelAt(0, 0))
}

func TestSyncColormapBadIndex(t *testing.T) {
	img, err := NewIndexedImage(2, 1, []Pixel{RGB8(1, 1, 1), RGB8(2, 2, 2)})
	require.NoError(t, err)
	require.NoError(t, img.SetIndex(1, 0, 1))
	img.colormap = img.colormap[:1]
	err = img.SyncColormap()
	assert.True(t, errors.Is(err, ErrInvalidColormapIndex), "err = %v", err)
}

func TestSetStorageClass(t *testing.T) {
	img := NewImage(3, 1)
	img.SetPixel(0, 0, RGB8(10, 20, 30))
	img.SetPixel(2, 0, RGB8(10, 20, 30))

	require.NoError(t, img.SetStorageClass(Indexed))
	assert.Len(t, img.Colormap(), 2)
	assert.Equal(t, img.Index(0, 0), img.Index(2, 0))
	assert.NotEqual(t, img.Index(0, 0), img.Index(1, 0))

	require.NoError(t, img.SetStorageClass(Direct))
	assert.Nil(t, img.Colormap())
	assert.Equal(t, RGB8(10, 20, 30), img.PixelAt(2, 0))
}

func TestSetStorageClassNaN(t *testing.T) {
	nan := Quantum(math.NaN())
	img := NewImage(3, 1)
	img.SetPixel(0, 0, Pixel{Red: nan, Alpha: OpaqueAlpha})
	img.SetPixel(1, 0, Pixel{Red: nan, Alpha: OpaqueAlpha})
	img.SetPixel(2, 0, Pixel{Alpha: OpaqueAlpha})

	require.NoError(t, img.SetStorageClass(Indexed))
	require.Len(t, img.Colormap(), 1)
	assert.Equal(t, Pixel{Alpha: OpaqueAlpha}, img.Colormap()[0])
	assert.Equal(t, []int{0, 0, 0}, []int{img.Index(0, 0), img.Index(1, 0), img.Index(2, 0)})

	require.NoError(t, img.SetStorageClass(Direct))
	assert.Equal(t, Quantum(0), img.PixelAt(0, 0).Red)
}

func TestClone(t *testing.T) {
	img, err := NewIndexedImage(1, 1, []Pixel{RGB8(1, 2, 3)})
	require.NoError(t, err)
	img.SetProperty("gamma", "2.2")

	c := img.Clone()
	c.Colormap()[0] = RGB8(7, 7, 7)
	c.SetProperty("gamma", "1.0")

	assert.Equal(t, RGB8(1, 2, 3), img.Colormap()[0])
	v, _ := img.Property("gamma")
	assert.Equal(t, "2.2", v)
}

func TestImageInterface(t *testing.T) {
	img := NewImage(2, 1)
	img.SetPixel(0, 0, Pixel{Red: QuantumRange, Alpha: TransparentAlpha})

	var m image.Image = img
	assert.Equal(t, image.Rect(0, 0, 2, 1), m.Bounds())
	assert.Equal(t, color.NRGBA64{R: 0xFFFF, A: 0xFFFF}, m.At(0, 0), "alpha ignored without matte")

	img.SetMatte(true)
	assert.Equal(t, color.NRGBA64{R: 0xFFFF}, m.At(0, 0))
}

func TestFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 7, 6))
	src.SetNRGBA(5, 5, color.NRGBA{R: 255, G: 128, A: 255})
	src.SetNRGBA(6, 5, color.NRGBA{B: 255, A: 0})

	img := FromImage(src)
	assert.Equal(t, 2, img.Width())
	assert.True(t, img.Matte())
	assert.Equal(t, TrueColorMatteType, img.Type())
	assert.Equal(t, RGB8(255, 128, 0), img.PixelAt(0, 0))
	assert.Equal(t, TransparentAlpha, img.PixelAt(1, 0).Alpha)
}

func TestFromPaletted(t *testing.T) {
	pal := color.Palette{color.NRGBA{R: 255, A: 255}, color.NRGBA{G: 255, A: 255}}
	src := image.NewPaletted(image.Rect(0, 0, 2, 2), pal)
	src.SetColorIndex(1, 1, 1)

	img := FromImage(src)
	require.Equal(t, Indexed, img.StorageClass())
	assert.Equal(t, PaletteType, img.Type())
	want := []Pixel{RGB8(255, 0, 0), RGB8(0, 255, 0)}
	if diff := cmp.Diff(want, img.Colormap()); diff != "" {
		t.Errorf("colormap mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []int{0, 0, 0, 1}, []int{img.Index(0, 0), img.Index(1, 0), img.Index(0, 1), img.Index(1, 1)})
}

func TestParseColorspace(t *testing.T) {
	for c := Undefined; c <= CMY; c++ {
		got, err := ParseColorspace(c.String())
		require.NoError(t, err, c.String())
		assert.Equal(t, c, got)
	}
	got, err := ParseColorspace("grey")
	require.NoError(t, err)
	assert.Equal(t, Gray, got)
	got, err = ParseColorspace("srgb")
	require.NoError(t, err)
	assert.Equal(t, SRGB, got)

	_, err = ParseColorspace("Munsell")
	assert.Error(t, err)
}
