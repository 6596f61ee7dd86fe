// Package tim2 implements the layout of PlayStation 2 TIM2 texture headers.
//
// A TIM2 file starts with a 16-byte file header followed by one picture per
// image. Each picture has a 48-byte header, the pixel data and an optional
// color lookup table (CLUT), in that order:
//
//	"TIM2" | format type | format id | picture count | 8 reserved bytes
//	total size | CLUT size | image size | header size | CLUT colors |
//	image format | mipmaps | CLUT type | pixel type | width | height |
//	GsTex0 | GsTex1 | GsRegs | GsTexClut
//
// Sizes and counts are little-endian. The GS register words are stored
// big-endian.
package tim2

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/mrjoshuak/go-imagecore/internal/blob"
)

// Magic is the file signature "TIM2" read as a big-endian word.
const Magic uint32 = 0x54494D32

// Header sizes in bytes.
const (
	FileHeaderSize    = 16
	PictureHeaderSize = 48
)

// Version is the format type recorded in files this package writes.
const Version = 4

// Pixel type codes.
const (
	PixelRGB16  = 1 // 16-bit direct color (A1B5G5R5)
	PixelRGB24  = 2 // 24-bit direct color
	PixelRGB32  = 3 // 32-bit direct color
	PixelIndex4 = 4 // 4-bit palette index
	PixelIndex8 = 5 // 8-bit palette index
)

// CLUT storage modes.
const (
	CSM1 = 1
	CSM2 = 2
)

// CLUT32 is the CLUT type of a CSM1 table with 32-bit entries.
const CLUT32 = 0x03

var (
	// ErrMagic is returned when the signature is missing.
	ErrMagic = errors.New("tim2: bad magic")

	// ErrShortHeader is returned when a header buffer is truncated.
	ErrShortHeader = errors.New("tim2: header too short")
)

// FileHeader is the header at the start of a TIM2 file.
type FileHeader struct {
	Magic      uint32
	FormatType uint8
	FormatID   uint8
	ImageCount uint16
	Reserved   [8]byte
}

// ReadFileHeader reads and validates the file header.
func ReadFileHeader(r *blob.Reader) (*FileHeader, error) {
	var h FileHeader
	var err error
	if h.Magic, err = r.ReadUint32(binary.BigEndian); err != nil {
		return nil, fmt.Errorf("reading magic: %w", err)
	}
	if h.Magic != Magic {
		return nil, ErrMagic
	}
	if h.FormatType, err = r.ReadByte(); err != nil {
		return nil, fmt.Errorf("reading format type: %w", err)
	}
	if h.FormatID, err = r.ReadByte(); err != nil {
		return nil, fmt.Errorf("reading format id: %w", err)
	}
	if h.ImageCount, err = r.ReadUint16(binary.LittleEndian); err != nil {
		return nil, fmt.Errorf("reading picture count: %w", err)
	}
	reserved, err := r.ReadBytes(len(h.Reserved))
	if err != nil {
		return nil, fmt.Errorf("reading reserved bytes: %w", err)
	}
	copy(h.Reserved[:], reserved)
	return &h, nil
}

// Encode writes the file header.
func (h *FileHeader) Encode(w *blob.Writer) error {
	_ = w.WriteUint32(binary.BigEndian, h.Magic)
	_ = w.WriteByte(h.FormatType)
	_ = w.WriteByte(h.FormatID)
	_ = w.WriteUint16(binary.LittleEndian, h.ImageCount)
	_, _ = w.Write(h.Reserved[:])
	return w.Err()
}

// PictureHeader describes one picture.
type PictureHeader struct {
	TotalSize      uint32
	CLUTSize       uint32
	ImageSize      uint32
	HeaderSize     uint16
	CLUTColorCount uint16
	ImageFormat    uint8
	MipmapCount    uint8
	CLUTType       uint8
	PixelType      uint8
	Width          uint16
	Height         uint16
	GsTex0         uint64
	GsTex1         uint64
	GsRegs         uint32
	GsTexClut      uint32
}

// ReadPictureHeader reads the fixed part of a picture header. A truncated
// header yields ErrShortHeader.
func ReadPictureHeader(r *blob.Reader) (*PictureHeader, error) {
	var (
		h   PictureHeader
		err error
	)
	u8 := func(v *uint8) {
		if err == nil {
			*v, err = r.ReadByte()
		}
	}
	u16 := func(v *uint16) {
		if err == nil {
			*v, err = r.ReadUint16(binary.LittleEndian)
		}
	}
	u32 := func(order binary.ByteOrder, v *uint32) {
		if err == nil {
			*v, err = r.ReadUint32(order)
		}
	}
	u64 := func(v *uint64) {
		if err == nil {
			*v, err = r.ReadUint64(binary.BigEndian)
		}
	}
	u32(binary.LittleEndian, &h.TotalSize)
	u32(binary.LittleEndian, &h.CLUTSize)
	u32(binary.LittleEndian, &h.ImageSize)
	u16(&h.HeaderSize)
	u16(&h.CLUTColorCount)
	u8(&h.ImageFormat)
	u8(&h.MipmapCount)
	u8(&h.CLUTType)
	u8(&h.PixelType)
	u16(&h.Width)
	u16(&h.Height)
	u64(&h.GsTex0)
	u64(&h.GsTex1)
	u32(binary.BigEndian, &h.GsRegs)
	u32(binary.BigEndian, &h.GsTexClut)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShortHeader, err)
	}
	return &h, nil
}

// Encode writes the fixed part of the picture header.
func (h *PictureHeader) Encode(w *blob.Writer) error {
	_ = w.WriteUint32(binary.LittleEndian, h.TotalSize)
	_ = w.WriteUint32(binary.LittleEndian, h.CLUTSize)
	_ = w.WriteUint32(binary.LittleEndian, h.ImageSize)
	_ = w.WriteUint16(binary.LittleEndian, h.HeaderSize)
	_ = w.WriteUint16(binary.LittleEndian, h.CLUTColorCount)
	_, _ = w.Write([]byte{h.ImageFormat, h.MipmapCount, h.CLUTType, h.PixelType})
	_ = w.WriteUint16(binary.LittleEndian, h.Width)
	_ = w.WriteUint16(binary.LittleEndian, h.Height)
	_ = w.WriteUint64(binary.BigEndian, h.GsTex0)
	_ = w.WriteUint64(binary.BigEndian, h.GsTex1)
	_ = w.WriteUint32(binary.BigEndian, h.GsRegs)
	_ = w.WriteUint32(binary.BigEndian, h.GsTexClut)
	return w.Err()
}

// HasCLUT reports whether the picture carries a color lookup table.
func (h *PictureHeader) HasCLUT() bool {
	return h.CLUTType != 0
}

// StorageMode returns the CLUT storage mode from the high nibble of the
// CLUT type.
func (h *PictureHeader) StorageMode() int {
	if h.CLUTType>>4 == 1 {
		return CSM2
	}
	return CSM1
}

// CLUTDepth returns the bits per CLUT entry from the low nibble of the CLUT
// type.
func (h *PictureHeader) CLUTDepth() int {
	return depthOf(h.CLUTType & 0x0F)
}

// BitsPerPixel returns the bits per image pixel.
func (h *PictureHeader) BitsPerPixel() int {
	switch h.PixelType {
	case PixelIndex4:
		return 4
	case PixelIndex8:
		return 8
	case PixelRGB16, PixelRGB24, PixelRGB32:
		return depthOf(h.PixelType)
	}
	return 8
}

// Depth returns the color depth of the decoded picture: the CLUT entry
// depth for palette pictures, the pixel depth otherwise.
func (h *PictureHeader) Depth() int {
	if h.HasCLUT() {
		return h.CLUTDepth()
	}
	return h.BitsPerPixel()
}

// BytesPerLine returns the size of one row of pixel data.
func (h *PictureHeader) BytesPerLine() int {
	return (int(h.Width)*h.BitsPerPixel() + 7) / 8
}

func depthOf(code uint8) int {
	switch code {
	case 1:
		return 16
	case 2:
		return 24
	}
	return 32
}
