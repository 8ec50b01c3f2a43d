package triangle

import (
	"fmt"

	apperrors "github.com/agbru/tricalc/internal/errors"
)

// Triangle is a number triangle: row i holds exactly i+1 values, so each
// cell (i, j) has the two children (i+1, j) and (i+1, j+1). The zero value
// is invalid; a triangle must contain at least one row.
//
// Solvers treat triangles as read-only. None of the operations in this
// package mutate a triangle once it has been built.
type Triangle [][]int64

// New validates rows and returns them as a Triangle backed by a fresh copy,
// so later mutation of the input slices cannot corrupt the triangle.
//
// Parameters:
//   - rows: The triangle rows, top to base.
//
// Returns:
//   - Triangle: The validated copy.
//   - error: A ValidationError when the shape is malformed.
func New(rows [][]int64) (Triangle, error) {
	t := Triangle(rows)
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t.Clone(), nil
}

// Validate checks the triangular shape: at least one row, and row i holding
// exactly i+1 values. It runs in O(rows) and is called by every solver
// before any computation starts.
//
// Returns:
//   - error: A ValidationError naming the offending row, or nil.
func (t Triangle) Validate() error {
	if len(t) == 0 {
		return apperrors.ValidationError{
			Field:   "triangle",
			Message: "must contain at least one row",
		}
	}
	for i, row := range t {
		if len(row) != i+1 {
			return apperrors.ValidationError{
				Field:   fmt.Sprintf("triangle[%d]", i),
				Message: fmt.Sprintf("row has %d values, want %d", len(row), i+1),
			}
		}
	}
	return nil
}

// Rows returns the height of the triangle.
func (t Triangle) Rows() int {
	return len(t)
}

// Clone returns a deep copy sharing no backing arrays with t.
func (t Triangle) Clone() Triangle {
	if t == nil {
		return nil
	}
	out := make(Triangle, len(t))
	for i, row := range t {
		out[i] = make([]int64, len(row))
		copy(out[i], row)
	}
	return out
}

// Equal reports whether two triangles hold the same values in the same
// shape.
func (t Triangle) Equal(other Triangle) bool {
	if len(t) != len(other) {
		return false
	}
	for i, row := range t {
		if len(row) != len(other[i]) {
			return false
		}
		for j, v := range row {
			if v != other[i][j] {
				return false
			}
		}
	}
	return true
}

// Split divides a triangle below its apex into the left and right
// subtriangles rooted at the apex's children. Row i of the input
// contributes its first i values to the left subtriangle and its last i
// values to the right one. Both subtriangles are fresh copies; the input
// is left untouched.
//
// A single-row triangle has nothing below the apex, so both results are
// nil.
//
// Parameters:
//   - t: The triangle to divide.
//
// Returns:
//   - Triangle: The left subtriangle.
//   - Triangle: The right subtriangle.
func Split(t Triangle) (Triangle, Triangle) {
	if len(t) <= 1 {
		return nil, nil
	}
	left := make(Triangle, len(t)-1)
	right := make(Triangle, len(t)-1)
	for i := 1; i < len(t); i++ {
		row := t[i]
		l := make([]int64, i)
		r := make([]int64, i)
		copy(l, row[:i])
		copy(r, row[1:i+1])
		left[i-1] = l
		right[i-1] = r
	}
	return left, right
}
