package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Next returns the state a cell moves to given its live neighbor count
func Next(cell Cell, neighbors int) Cell {
	return FromBool(ApplyConwayRules(neighbors, cell.Alive()))
}
