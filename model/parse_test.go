package model

import (
	"testing"

	"github.com/pkg/errors"
)

func TestParseBoardRoundTrip(t *testing.T) {
	text := "0 1 0\n0 1 0\n0 1 0"
	b, err := ParseBoard(text)
	if err != nil {
		t.Fatalf("ParseBoard: %v", err)
	}
	if b.Width() != 3 || b.Height() != 3 {
		t.Fatalf("got %dx%d, want 3x3", b.Width(), b.Height())
	}
	if got := b.String(); got != text {
		t.Errorf("String() = %q, want %q", got, text)
	}
}

func TestParseBoardPlaintext(t *testing.T) {
	text := `!Name: Glider
.O.
..O
OOO
`
	b, err := ParseBoard(text)
	if err != nil {
		t.Fatalf("ParseBoard: %v", err)
	}
	want := "0 1 0\n0 0 1\n1 1 1"
	if got := b.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParseBoardErrors(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantShape bool
	}{
		{"empty", "", true},
		{"only comments", "!nothing here\n\n", true},
		{"ragged", "0 1\n0 1 1", true},
		{"unknown token", "0 x 1", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBoard(tt.text)
			if err == nil {
				t.Fatal("expected error")
			}
			var shapeErr *ShapeError
			if got := errors.As(err, &shapeErr); got != tt.wantShape {
				t.Errorf("ShapeError = %v, want %v (err: %v)", got, tt.wantShape, err)
			}
			if !tt.wantShape && !errors.Is(err, ErrParse) {
				t.Errorf("error %v should wrap ErrParse", err)
			}
		})
	}
}
