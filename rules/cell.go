package rules

// Cell is the state of a single board position
type Cell uint8

// The two cell states, stored as 0 and 1
const (
	Dead  Cell = 0
	Alive Cell = 1
)

// FromBool maps a checkbox-style value onto a Cell
func FromBool(alive bool) Cell {
	if alive {
		return Alive
	}
	return Dead
}

// Alive reports whether the cell is alive
func (c Cell) Alive() bool {
	return c == Alive
}

// Valid reports whether c is one of the two defined states
func (c Cell) Valid() bool {
	return c == Dead || c == Alive
}

func (c Cell) String() string {
	switch c {
	case Dead:
		return "0"
	case Alive:
		return "1"
	}
	return "?"
}
