package model

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// Board is a finite, bounded Game of Life grid.
//
// A Board is not safe for concurrent use. Callers that drive it from a
// timer must serialize Advance with every read of its cells.
type Board struct {
	width      int
	height     int
	current    [][]rules.Cell
	previous   [][]rules.Cell // frozen at the start of the last Advance
	generation int
}

// NewBoard creates a board from a seed, which is copied and never aliased
func NewBoard(seed [][]rules.Cell) (*Board, error) {
	if err := ValidateShape(seed); err != nil {
		return nil, errors.Wrap(err, "[NewBoard] rejected seed")
	}
	for y, row := range seed {
		for x, cell := range row {
			if !cell.Valid() {
				return nil, errors.Wrap(
					&ShapeError{Row: y, Col: x, Reason: "cell is neither dead nor alive"},
					"[NewBoard] rejected seed",
				)
			}
		}
	}
	return &Board{
		width:   len(seed[0]),
		height:  len(seed),
		current: CloneMatrix(seed),
	}, nil
}

// NewBoardFromBools creates a board from a checkbox-style matrix
func NewBoardFromBools(seed [][]bool) (*Board, error) {
	if err := ValidateShape(seed); err != nil {
		return nil, errors.Wrap(err, "[NewBoardFromBools] rejected seed")
	}
	return NewBoard(FromBools(seed))
}

// Width returns the width of the board
func (b *Board) Width() int {
	return b.width
}

// Height returns the height of the board
func (b *Board) Height() int {
	return b.height
}

// Generation returns how many times the board has been advanced
func (b *Board) Generation() int {
	return b.generation
}

// Get returns the state of a cell; positions off the board are dead
func (b *Board) Get(x, y int) rules.Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return rules.Dead
	}
	return b.current[y][x]
}

// Current returns a copy of the current generation
func (b *Board) Current() [][]rules.Cell {
	return CloneMatrix(b.current)
}

// Previous returns a copy of the snapshot the last Advance read from,
// or nil if the board has never been advanced
func (b *Board) Previous() [][]rules.Cell {
	if b.previous == nil {
		return nil
	}
	return CloneMatrix(b.previous)
}

// LiveNeighbors counts living neighbors of (x, y) in the current generation
func (b *Board) LiveNeighbors(x, y int) int {
	return countNeighbors(b.current, b.width, b.height, x, y)
}

// Advance computes the next generation in place.
//
// Every neighbor count reads from a snapshot taken before any cell is
// rewritten, so all cells move to the next generation together.
func (b *Board) Advance() {
	b.previous = copyInto(b.previous, b.current)

	for y := range b.height {
		for x := range b.width {
			neighbors := countNeighbors(b.previous, b.width, b.height, x, y)
			b.current[y][x] = rules.Next(b.current[y][x], neighbors)
		}
	}
	b.generation++
}

// CountLivingCells returns the total number of living cells
func (b *Board) CountLivingCells() (count int) {
	for y := range b.height {
		for x := range b.width {
			if b.current[y][x].Alive() {
				count++
			}
		}
	}
	return
}

// String renders the board as rows of space separated 0/1 cells
func (b *Board) String() string {
	var sb strings.Builder
	for y, row := range b.current {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, cell := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(cell.String())
		}
	}
	return sb.String()
}

// countNeighbors counts living cells around (x, y), treating positions
// outside [0,width)x[0,height) as dead
func countNeighbors(cells [][]rules.Cell, width, height, x, y int) int {
	count := 0

	minX := max(0, x-1)
	maxX := min(width-1, x+1)
	minY := max(0, y-1)
	maxY := min(height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if cells[ny][nx].Alive() {
				count++
			}
		}
	}

	return count
}
