package model

import (
	"math/rand"

	"github.com/pkg/errors"
)

var (
	// Blinker is a period 2 oscillator
	Blinker = [][]bool{
		{false, false, false},
		{true, true, true},
		{false, false, false},
	}
	// Block is a 2x2 still life with a dead border
	Block = [][]bool{
		{false, false, false, false},
		{false, true, true, false},
		{false, true, true, false},
		{false, false, false, false},
	}
	Glider = [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}
)

// Patterns maps pattern names to their seeds
var Patterns = map[string][][]bool{
	"blinker": Blinker,
	"block":   Block,
	"glider":  Glider,
}

// NewSeed returns an all-dead width x height matrix
func NewSeed(width, height int) [][]bool {
	seed := make([][]bool, height)
	for i := range seed {
		seed[i] = make([]bool, width)
	}
	return seed
}

// PlacePattern stamps pattern into seed with its top-left corner at
// (startX, startY); cells falling off the seed are dropped
func PlacePattern(seed, pattern [][]bool, startX, startY int) {
	for y, row := range pattern {
		for x, alive := range row {
			ny, nx := startY+y, startX+x
			if ny < 0 || ny >= len(seed) || nx < 0 || nx >= len(seed[ny]) {
				continue
			}
			seed[ny][nx] = alive
		}
	}
}

// RandomSeed fills a width x height matrix with living cells at the given density
func RandomSeed(width, height int, density float64, rng *rand.Rand) [][]bool {
	seed := NewSeed(width, height)
	for y := range height {
		for x := range width {
			seed[y][x] = rng.Float64() < density
		}
	}
	return seed
}

// PatternSeed centers a named pattern on a width x height matrix
func PatternSeed(name string, width, height int) ([][]bool, error) {
	pattern, ok := Patterns[name]
	if !ok {
		return nil, errors.Errorf("[PatternSeed] unknown pattern: %+v", name)
	}
	seed := NewSeed(width, height)
	PlacePattern(seed, pattern, (width-len(pattern[0]))/2, (height-len(pattern))/2)
	return seed, nil
}
