package engine

// Player is the side to move. The zero value None means "no stone here".
type Player int8

const (
	None Player = iota
	Black
	White
)

// Other returns the opposing side.
func (p Player) Other() Player {
	switch p {
	case Black:
		return White
	case White:
		return Black
	}
	return None
}

func (p Player) String() string {
	switch p {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "none"
}

// Point is a board intersection. Rows and columns are 1-indexed; Point is
// comparable and usable as a map key.
type Point struct {
	Row int
	Col int
}

// Neighbors returns the four orthogonal coordinates without bounds
// filtering. Callers must check Board.IsOnGrid.
func (p Point) Neighbors() [4]Point {
	return [4]Point{
		{p.Row - 1, p.Col},
		{p.Row + 1, p.Col},
		{p.Row, p.Col - 1},
		{p.Row, p.Col + 1},
	}
}
