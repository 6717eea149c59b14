package engine

import "fmt"

// Group is a maximal set of same-colored stones connected through orthogonal
// adjacency, together with the liberties of that set. Every point a group
// covers maps to the same *Group instance, so liberty changes are visible
// from all of its stones and pointer identity tells two groups apart even if
// they happen to be structurally equal.
type Group struct {
	Color     Player
	Stones    map[Point]struct{}
	Liberties map[Point]struct{}
}

func newGroup(color Player, stones, liberties []Point) *Group {
	g := &Group{
		Color:     color,
		Stones:    make(map[Point]struct{}, len(stones)),
		Liberties: make(map[Point]struct{}, len(liberties)),
	}
	for _, p := range stones {
		g.Stones[p] = struct{}{}
	}
	for _, p := range liberties {
		g.Liberties[p] = struct{}{}
	}
	return g
}

// NumLiberties counts the group's remaining liberties.
func (g *Group) NumLiberties() int {
	return len(g.Liberties)
}

func (g *Group) addLiberty(p Point) {
	g.Liberties[p] = struct{}{}
}

func (g *Group) removeLiberty(p Point) {
	delete(g.Liberties, p)
}

// MergedWith returns a new group holding the stones of both groups. A
// liberty of one side may be occupied by the other side's stones, so the
// combined stones are subtracted from the combined liberties. The result
// does not depend on merge order.
func (g *Group) MergedWith(other *Group) *Group {
	if other.Color != g.Color {
		panic("engine: merged groups must share a color")
	}
	merged := &Group{
		Color:     g.Color,
		Stones:    make(map[Point]struct{}, len(g.Stones)+len(other.Stones)),
		Liberties: make(map[Point]struct{}, len(g.Liberties)+len(other.Liberties)),
	}
	for p := range g.Stones {
		merged.Stones[p] = struct{}{}
	}
	for p := range other.Stones {
		merged.Stones[p] = struct{}{}
	}
	for p := range g.Liberties {
		merged.Liberties[p] = struct{}{}
	}
	for p := range other.Liberties {
		merged.Liberties[p] = struct{}{}
	}
	for p := range merged.Stones {
		delete(merged.Liberties, p)
	}
	return merged
}

// Equal reports structural equality, which tests rely on. On a board it is
// identity, not Equal, that decides whether two groups are the same group.
func (g *Group) Equal(other *Group) bool {
	if g.Color != other.Color ||
		len(g.Stones) != len(other.Stones) ||
		len(g.Liberties) != len(other.Liberties) {
		return false
	}
	for p := range g.Stones {
		if _, ok := other.Stones[p]; !ok {
			return false
		}
	}
	for p := range g.Liberties {
		if _, ok := other.Liberties[p]; !ok {
			return false
		}
	}
	return true
}

func (g *Group) clone() *Group {
	c := &Group{
		Color:     g.Color,
		Stones:    make(map[Point]struct{}, len(g.Stones)),
		Liberties: make(map[Point]struct{}, len(g.Liberties)),
	}
	for p := range g.Stones {
		c.Stones[p] = struct{}{}
	}
	for p := range g.Liberties {
		c.Liberties[p] = struct{}{}
	}
	return c
}

// Board maps occupied points to the group covering them. Empty points have
// no entry.
type Board struct {
	Rows int
	Cols int
	grid map[Point]*Group
}

func NewBoard(rows, cols int) *Board {
	return &Board{
		Rows: rows,
		Cols: cols,
		grid: make(map[Point]*Group),
	}
}

// IsOnGrid reports whether p lies within the board bounds.
func (b *Board) IsOnGrid(p Point) bool {
	return p.Row >= 1 && p.Row <= b.Rows && p.Col >= 1 && p.Col <= b.Cols
}

// Get returns the color of the stone at p, or None for an empty point.
func (b *Board) Get(p Point) Player {
	if g, ok := b.grid[p]; ok {
		return g.Color
	}
	return None
}

// GroupAt returns the group covering p, or nil for an empty point.
func (b *Board) GroupAt(p Point) *Group {
	return b.grid[p]
}

// PlaceStone puts a stone for player on an empty on-grid point, merges it
// with adjacent friendly groups and captures adjacent enemy groups left
// without liberties. It checks only its own two preconditions and panics on
// violation; suicide and ko are the caller's job (see GameState.IsValidMove).
func (b *Board) PlaceStone(player Player, point Point) {
	if !b.IsOnGrid(point) {
		panic(fmt.Sprintf("engine: point (%d,%d) outside %dx%d board", point.Row, point.Col, b.Rows, b.Cols))
	}
	if _, occupied := b.grid[point]; occupied {
		panic(fmt.Sprintf("engine: point (%d,%d) already occupied", point.Row, point.Col))
	}

	var liberties []Point
	var friendly, enemy []*Group
	for _, neighbor := range point.Neighbors() {
		if !b.IsOnGrid(neighbor) {
			continue
		}
		neighborGroup, ok := b.grid[neighbor]
		switch {
		case !ok:
			liberties = append(liberties, neighbor)
		case neighborGroup.Color == player:
			friendly = appendDistinct(friendly, neighborGroup)
		default:
			enemy = appendDistinct(enemy, neighborGroup)
		}
	}

	group := newGroup(player, []Point{point}, liberties)
	for _, f := range friendly {
		group = group.MergedWith(f)
	}
	for p := range group.Stones {
		b.grid[p] = group
	}
	// Each distinct enemy group loses exactly one liberty, however many
	// sides it touches the placed point from.
	for _, e := range enemy {
		e.removeLiberty(point)
	}
	for _, e := range enemy {
		if e.NumLiberties() == 0 {
			b.removeGroup(e)
		}
	}
}

// appendDistinct dedups by pointer identity, never by structural equality.
func appendDistinct(groups []*Group, g *Group) []*Group {
	for _, seen := range groups {
		if seen == g {
			return groups
		}
	}
	return append(groups, g)
}

// removeGroup erases a captured group from the grid. Vacating a stone hands
// a liberty back to every distinct neighboring group still on the board;
// already-removed siblings of the same group no longer have grid entries and
// are skipped naturally.
func (b *Board) removeGroup(group *Group) {
	for point := range group.Stones {
		for _, neighbor := range point.Neighbors() {
			neighborGroup, ok := b.grid[neighbor]
			if !ok || neighborGroup == group {
				continue
			}
			neighborGroup.addLiberty(point)
		}
		delete(b.grid, point)
	}
}

// Equal reports the same dimensions and the same stone layout. Stone colors
// alone determine the groups and liberties of a position, so comparing
// occupancy point by point is sufficient.
func (b *Board) Equal(other *Board) bool {
	if b.Rows != other.Rows || b.Cols != other.Cols {
		return false
	}
	if len(b.grid) != len(other.grid) {
		return false
	}
	for p, g := range b.grid {
		og, ok := other.grid[p]
		if !ok || og.Color != g.Color {
			return false
		}
	}
	return true
}

// Clone deep-copies the board. Placement mutates in place, so every Play
// simulation and every applied Play works on a clone. Points covered by one
// group keep sharing a single group instance in the copy.
func (b *Board) Clone() *Board {
	clone := NewBoard(b.Rows, b.Cols)
	copied := make(map[*Group]*Group)
	for p, g := range b.grid {
		cg, ok := copied[g]
		if !ok {
			cg = g.clone()
			copied[g] = cg
		}
		clone.grid[p] = cg
	}
	return clone
}
