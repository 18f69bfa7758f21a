// Package matrix - the Dense implementation and its sentinel errors.
package matrix

import (
	"errors"
	"fmt"
)

// Sentinel errors for matrix construction and access.
var (
	// ErrInvalidDimensions indicates non-positive rows or columns.
	ErrInvalidDimensions = errors.New("matrix: rows and cols must be positive")

	// ErrIndexOutOfBounds indicates an index outside the matrix shape.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNilMatrix indicates a nil *Dense argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNotSquare indicates a non-square matrix where a square one is required.
	ErrNotSquare = errors.New("matrix: matrix must be square")
)

// Dense is a row-major float64 matrix. The zero value is not usable;
// construct with NewDense. All accessors are bounds-checked; the flat
// buffer is private so the shape invariant cannot be broken from outside.
type Dense struct {
	r, c int
	data []float64 // len == r*c, row-major
}

// NewDense allocates an r×c zero matrix.
// Returns ErrInvalidDimensions unless r > 0 and c > 0.
// Complexity: O(r*c).
func NewDense(r, c int) (*Dense, error) {
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", r, c, ErrInvalidDimensions)
	}

	return &Dense{r: r, c: c, data: make([]float64, r*c)}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (d *Dense) Rows() int { return d.r }

// Cols returns the number of columns. Complexity: O(1).
func (d *Dense) Cols() int { return d.c }

// At returns the element at (i, j).
// Returns ErrIndexOutOfBounds for indices outside the shape.
// Complexity: O(1).
func (d *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= d.r || j < 0 || j >= d.c {
		return 0, fmt.Errorf("At(%d,%d) on %dx%d: %w", i, j, d.r, d.c, ErrIndexOutOfBounds)
	}

	return d.data[i*d.c+j], nil
}

// Set stores v at (i, j).
// Returns ErrIndexOutOfBounds for indices outside the shape.
// Complexity: O(1).
func (d *Dense) Set(i, j int, v float64) error {
	if i < 0 || i >= d.r || j < 0 || j >= d.c {
		return fmt.Errorf("Set(%d,%d) on %dx%d: %w", i, j, d.r, d.c, ErrIndexOutOfBounds)
	}
	d.data[i*d.c+j] = v

	return nil
}

// Fill sets every element to v. Complexity: O(r*c).
func (d *Dense) Fill(v float64) {
	for i := range d.data {
		d.data[i] = v
	}
}

// Row returns a copy of row i.
// Returns ErrIndexOutOfBounds for i outside 0..Rows()-1.
// Complexity: O(c).
func (d *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= d.r {
		return nil, fmt.Errorf("Row(%d) on %dx%d: %w", i, d.r, d.c, ErrIndexOutOfBounds)
	}

	out := make([]float64, d.c)
	copy(out, d.data[i*d.c:(i+1)*d.c])

	return out, nil
}

// Clone returns an independent deep copy. Complexity: O(r*c).
func (d *Dense) Clone() *Dense {
	c := &Dense{r: d.r, c: d.c, data: make([]float64, len(d.data))}
	copy(c.data, d.data)

	return c
}

// Equal reports whether o has the same shape and elements as d.
// Exact float comparison on purpose: featurization output is specified
// bit for bit. Complexity: O(r*c).
func (d *Dense) Equal(o *Dense) bool {
	if o == nil || d.r != o.r || d.c != o.c {
		return false
	}
	for i, v := range d.data {
		if o.data[i] != v {
			return false
		}
	}

	return true
}

// Raw returns the row-major backing slice as a fresh copy, for handoff to
// numeric libraries that consume flat buffers. Complexity: O(r*c).
func (d *Dense) Raw() []float64 {
	out := make([]float64, len(d.data))
	copy(out, d.data)

	return out
}
