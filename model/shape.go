package model

import (
	"fmt"

	"github.com/sheikhrachel/go-life/rules"
)

// ShapeError reports a matrix that cannot seed a board
type ShapeError struct {
	Row    int
	Col    int
	Reason string
}

func (e *ShapeError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("invalid board shape: %s", e.Reason)
	}
	if e.Col < 0 {
		return fmt.Sprintf("invalid board shape at row %d: %s", e.Row, e.Reason)
	}
	return fmt.Sprintf("invalid board cell at (%d, %d): %s", e.Col, e.Row, e.Reason)
}

// ValidateShape checks that m is non-empty and rectangular
func ValidateShape[T any](m [][]T) error {
	if len(m) == 0 {
		return &ShapeError{Row: -1, Col: -1, Reason: "no rows"}
	}
	width := len(m[0])
	if width == 0 {
		return &ShapeError{Row: 0, Col: -1, Reason: "row is empty"}
	}
	for y, row := range m {
		if len(row) != width {
			return &ShapeError{
				Row:    y,
				Col:    -1,
				Reason: fmt.Sprintf("has %d cells, want %d", len(row), width),
			}
		}
	}
	return nil
}

// CloneMatrix returns a deep copy: a new outer slice and a new slice per row
func CloneMatrix[T any](m [][]T) [][]T {
	if m == nil {
		return nil
	}
	out := make([][]T, len(m))
	for y, row := range m {
		out[y] = make([]T, len(row))
		copy(out[y], row)
	}
	return out
}

// copyInto copies src into dst, reusing dst's rows when the shapes match
func copyInto[T any](dst, src [][]T) [][]T {
	if len(dst) != len(src) {
		return CloneMatrix(src)
	}
	for y, row := range src {
		if len(dst[y]) != len(row) {
			return CloneMatrix(src)
		}
	}
	for y, row := range src {
		copy(dst[y], row)
	}
	return dst
}

// FromBools converts a checkbox matrix into cells
func FromBools(m [][]bool) [][]rules.Cell {
	out := make([][]rules.Cell, len(m))
	for y, row := range m {
		out[y] = make([]rules.Cell, len(row))
		for x, alive := range row {
			out[y][x] = rules.FromBool(alive)
		}
	}
	return out
}

// ToBools converts cells into a checkbox matrix
func ToBools(m [][]rules.Cell) [][]bool {
	out := make([][]bool, len(m))
	for y, row := range m {
		out[y] = make([]bool, len(row))
		for x, cell := range row {
			out[y][x] = cell.Alive()
		}
	}
	return out
}
