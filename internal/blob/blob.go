// Package blob provides the structured stream used by the format coders:
// fixed-width reads and writes in either byte order, byte range reads and an
// end-of-stream query.
package blob

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
)

// Reader reads fixed-width values from a byte stream.
type Reader struct {
	r      *bufio.Reader
	offset int64
	eof    bool
}

// NewReader creates a new stream reader.
func NewReader(r io.Reader) *Reader {
	if br, ok := r.(*bufio.Reader); ok {
		return &Reader{r: br}
	}
	return &Reader{r: bufio.NewReader(r)}
}

// Peek returns the next n bytes without consuming them.
func (r *Reader) Peek(n int) ([]byte, error) {
	return r.r.Peek(n)
}

// ReadBytes reads exactly n bytes. A short read returns the bytes that were
// available together with io.ErrUnexpectedEOF.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.New("blob: negative length")
	}
	if n > largeRead {
		// Grow with the data actually present instead of trusting n.
		buf, err := io.ReadAll(io.LimitReader(r.r, int64(n)))
		r.offset += int64(len(buf))
		if err == nil && len(buf) < n {
			err = io.ErrUnexpectedEOF
		}
		if err != nil {
			r.eof = true
		}
		return buf, err
	}
	buf := make([]byte, n)
	got, err := io.ReadFull(r.r, buf)
	r.offset += int64(got)
	if err != nil {
		r.eof = true
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return buf[:got], err
	}
	return buf, nil
}

const largeRead = 1 << 16

// Discard skips n bytes.
func (r *Reader) Discard(n int64) error {
	for n > 0 {
		step := int(min(n, 1<<20))
		got, err := r.r.Discard(step)
		r.offset += int64(got)
		n -= int64(got)
		if err != nil {
			r.eof = true
			if err == io.EOF {
				return io.ErrUnexpectedEOF
			}
			return err
		}
	}
	return nil
}

// ReadByte reads a single byte.
func (r *Reader) ReadByte() (byte, error) {
	b, err := r.r.ReadByte()
	if err != nil {
		r.eof = true
		return 0, err
	}
	r.offset++
	return b, nil
}

func (r *Reader) fixed(n int) ([]byte, error) {
	var buf [8]byte
	got, err := io.ReadFull(r.r, buf[:n])
	r.offset += int64(got)
	if err != nil {
		r.eof = true
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return buf[:n], nil
}

// ReadUint16 reads a 16-bit value in the given byte order.
func (r *Reader) ReadUint16(order binary.ByteOrder) (uint16, error) {
	b, err := r.fixed(2)
	if err != nil {
		return 0, err
	}
	return order.Uint16(b), nil
}

// ReadUint32 reads a 32-bit value in the given byte order.
func (r *Reader) ReadUint32(order binary.ByteOrder) (uint32, error) {
	b, err := r.fixed(4)
	if err != nil {
		return 0, err
	}
	return order.Uint32(b), nil
}

// ReadUint64 reads a 64-bit value in the given byte order.
func (r *Reader) ReadUint64(order binary.ByteOrder) (uint64, error) {
	b, err := r.fixed(8)
	if err != nil {
		return 0, err
	}
	return order.Uint64(b), nil
}

// EOF reports whether a read has hit the end of the stream.
func (r *Reader) EOF() bool {
	if r.eof {
		return true
	}
	if _, err := r.r.Peek(1); err != nil {
		r.eof = true
	}
	return r.eof
}

// Offset returns the number of bytes consumed.
func (r *Reader) Offset() int64 {
	return r.offset
}

// Writer writes fixed-width values to a byte stream.
type Writer struct {
	w      io.Writer
	offset int64
	err    error
}

// NewWriter creates a new stream writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write writes p unless an earlier write failed.
func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(p)
	w.offset += int64(n)
	w.err = err
	return n, err
}

// WriteByte writes a single byte.
func (w *Writer) WriteByte(b byte) error {
	_, err := w.Write([]byte{b})
	return err
}

// WriteUint16 writes a 16-bit value in the given byte order.
func (w *Writer) WriteUint16(order binary.ByteOrder, v uint16) error {
	var buf [2]byte
	order.PutUint16(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

// WriteUint32 writes a 32-bit value in the given byte order.
func (w *Writer) WriteUint32(order binary.ByteOrder, v uint32) error {
	var buf [4]byte
	order.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

// WriteUint64 writes a 64-bit value in the given byte order.
func (w *Writer) WriteUint64(order binary.ByteOrder, v uint64) error {
	var buf [8]byte
	order.PutUint64(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

// Offset returns the number of bytes written.
func (w *Writer) Offset() int64 {
	return w.offset
}

// Err returns the first write error.
func (w *Writer) Err() error {
	return w.err
}
