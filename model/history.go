package model

import (
	"crypto/md5"
	"fmt"
)

const historySize = 5

// Hash returns an MD5 hash of the current generation
func (b *Board) Hash() string {
	h := md5.New()
	for y := range b.height {
		for x := range b.width {
			h.Write([]byte{byte(b.current[y][x])})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// History keeps the hashes of recent generations for cycle detection
type History struct {
	hashes []string
}

// Record adds a generation hash, keeping only the most recent ones
func (h *History) Record(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// Reset forgets all recorded generations
func (h *History) Reset() {
	h.hashes = nil
}

// Len returns the number of recorded generations
func (h *History) Len() int {
	return len(h.hashes)
}

// IsStagnant reports whether hash repeats one of the last three recorded
// generations: a still life or an oscillator of period 3 or less
func (h *History) IsStagnant(hash string) bool {
	if len(h.hashes) < 3 {
		return false
	}
	for i := 1; i <= 3; i++ {
		if h.hashes[len(h.hashes)-i] == hash {
			return true
		}
	}
	return false
}
