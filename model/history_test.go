package model

import "testing"

func TestHistoryDetectsStillLife(t *testing.T) {
	b, err := NewBoardFromBools(Block)
	if err != nil {
		t.Fatal(err)
	}
	var h History
	for range 3 {
		if h.IsStagnant(b.Hash()) {
			t.Fatalf("stagnant after only %d records", h.Len())
		}
		h.Record(b.Hash())
		b.Advance()
	}
	if !h.IsStagnant(b.Hash()) {
		t.Error("block should be stagnant")
	}
}

func TestHistoryDetectsOscillator(t *testing.T) {
	b, err := NewBoardFromBools(Blinker)
	if err != nil {
		t.Fatal(err)
	}
	var h History
	for range 3 {
		h.Record(b.Hash())
		b.Advance()
	}
	if !h.IsStagnant(b.Hash()) {
		t.Error("blinker should be stagnant")
	}
}

func TestHistoryGlider(t *testing.T) {
	b, err := NewBoardFromBools(patternSeed(t, "glider", 12, 12))
	if err != nil {
		t.Fatal(err)
	}
	var h History
	for range 4 {
		h.Record(b.Hash())
		b.Advance()
	}
	if h.IsStagnant(b.Hash()) {
		t.Error("a moving glider should not be stagnant")
	}
}

func TestHistoryBounded(t *testing.T) {
	var h History
	for i := range 10 {
		h.Record(string(rune('a' + i)))
	}
	if h.Len() != historySize {
		t.Errorf("Len() = %d, want %d", h.Len(), historySize)
	}
	if h.IsStagnant("a") {
		t.Error("evicted hash still matched")
	}
	h.Reset()
	if h.Len() != 0 {
		t.Error("Reset left hashes behind")
	}
}

func patternSeed(t *testing.T, name string, width, height int) [][]bool {
	t.Helper()
	seed, err := PatternSeed(name, width, height)
	if err != nil {
		t.Fatal(err)
	}
	return seed
}
