// Package lut builds the per-channel lookup tables used by the table driven
// colorspace transforms.
//
// A table set holds three tables, one per input channel. Entry i of a table
// is the contribution of that channel at quantized value i toward each of
// the three output channels, so a transform reduces to three lookups and a
// sum:
//
//	out = X[q(red)] + Y[q(green)] + Z[q(blue)] + Primary
package lut

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sync/errgroup"
)

// ErrTooLarge is returned when a table set would exceed the allowed size.
var ErrTooLarge = errors.New("lut: table set exceeds memory limit")

// Packet is one entry of a table: the contribution toward output channels
// 0, 1 and 2.
type Packet struct {
	X, Y, Z float64
}

// Add returns the component-wise sum.
func (p Packet) Add(q Packet) Packet {
	return Packet{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Entry computes the packets of the three tables at index i.
type Entry func(i int, maxMap float64) (x, y, z Packet)

// Tables is a populated table set.
type Tables struct {
	MaxMap  int
	X, Y, Z []Packet
	// Primary is added after the three lookups.
	Primary Packet
}

// Size returns the number of bytes a table set of the given resolution
// occupies.
func Size(maxMap int) int64 {
	return 3 * int64(maxMap+1) * int64(unsafe.Sizeof(Packet{}))
}

// New allocates a table set with maxMap+1 entries per table. A positive
// limit bounds the allocation in bytes.
func New(maxMap int, limit int64) (*Tables, error) {
	if maxMap < 1 {
		return nil, fmt.Errorf("lut: invalid resolution %d", maxMap)
	}
	if limit > 0 && Size(maxMap) > limit {
		return nil, fmt.Errorf("%w: %d bytes > %d", ErrTooLarge, Size(maxMap), limit)
	}
	n := maxMap + 1
	return &Tables{
		MaxMap: maxMap,
		X:      make([]Packet, n),
		Y:      make([]Packet, n),
		Z:      make([]Packet, n),
	}, nil
}

// Fill populates every index with f. Indices are independent, so the range
// is split into chunks computed on up to workers goroutines.
func (t *Tables) Fill(f Entry, workers int) {
	n := t.MaxMap + 1
	maxMap := float64(t.MaxMap)
	if workers < 1 {
		workers = 1
	}
	chunk := (n + workers - 1) / workers
	if chunk < 256 {
		chunk = 256
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				t.X[i], t.Y[i], t.Z[i] = f(i, maxMap)
			}
			return nil
		})
	}
	_ = g.Wait()
}

// Lookup sums the contributions of the three quantized inputs.
func (t *Tables) Lookup(r, g, b int) Packet {
	return t.X[r].Add(t.Y[g]).Add(t.Z[b]).Add(t.Primary)
}

// ============================================================================
// Matrix entries
// ============================================================================

// Matrix is a 3x3 coefficient matrix indexed [output][input]. Coefficients
// are single precision to reproduce reference tables exactly.
type Matrix [3][3]float32

// Identity is the identity matrix.
var Identity = Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// Linear returns entries scaling i by the matrix columns.
func Linear(m Matrix) Entry {
	return func(i int, _ float64) (x, y, z Packet) {
		v := float64(i)
		return column(m, 0, v), column(m, 1, v), column(m, 2, v)
	}
}

// Centered returns entries for a luma plus two chroma channels centered on
// the middle of the table: input 0 passes through to every output and
// inputs 1 and 2 contribute m[out][in]*(2i-maxMap). Column 0 of m is
// ignored.
func Centered(m Matrix) Entry {
	return func(i int, maxMap float64) (x, y, z Packet) {
		v := float64(i)
		c := 2.0*v - maxMap
		x = Packet{v, v, v}
		y = column(m, 1, c)
		z = column(m, 2, c)
		return x, y, z
	}
}

func column(m Matrix, in int, v float64) Packet {
	return Packet{
		X: float64(m[0][in]) * v,
		Y: float64(m[1][in]) * v,
		Z: float64(m[2][in]) * v,
	}
}

// Invert returns the inverse of m, computed in double precision. A singular
// matrix yields the identity.
func (m Matrix) Invert() Matrix {
	var a [9]float64
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			a[r*3+c] = float64(m[r][c])
		}
	}
	det := a[0]*(a[4]*a[8]-a[5]*a[7]) -
		a[1]*(a[3]*a[8]-a[5]*a[6]) +
		a[2]*(a[3]*a[7]-a[4]*a[6])
	if det > -1e-10 && det < 1e-10 {
		return Identity
	}
	inv := 1.0 / det
	d := [3][3]float64{
		{(a[4]*a[8] - a[5]*a[7]) * inv, (a[2]*a[7] - a[1]*a[8]) * inv, (a[1]*a[5] - a[2]*a[4]) * inv},
		{(a[5]*a[6] - a[3]*a[8]) * inv, (a[0]*a[8] - a[2]*a[6]) * inv, (a[2]*a[3] - a[0]*a[5]) * inv},
		{(a[3]*a[7] - a[4]*a[6]) * inv, (a[1]*a[6] - a[0]*a[7]) * inv, (a[0]*a[4] - a[1]*a[3]) * inv},
	}
	var out Matrix
	for r := range d {
		for c := range d[r] {
			out[r][c] = float32(d[r][c])
		}
	}
	return out
}
