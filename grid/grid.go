package grid

import (
	"fmt"
	"strings"
)

// Grid is a dense row-major matrix of blocks. Blocks[y][x] always holds a
// Block whose Position is (x, y).
type Grid struct {
	Width, Height int
	Blocks        [][]Block
}

// New allocates a width×height grid with every cell set to Wall.
// Non-positive dimensions yield an empty grid (Width = Height = 0).
// Complexity: O(W×H) time and memory.
func New(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		return &Grid{}
	}
	rows := make([][]Block, height)
	for y := 0; y < height; y++ {
		row := make([]Block, width)
		for x := range row {
			row[x] = Block{Type: Wall, Position: Position{X: x, Y: y}}
		}
		rows[y] = row
	}
	return &Grid{Width: width, Height: height, Blocks: rows}
}

// IsEmpty reports whether the grid has no cells at all. A failed
// generation attempt is represented by an empty grid.
func (g *Grid) IsEmpty() bool {
	return g == nil || g.Width == 0 || g.Height == 0
}

// InBounds reports whether p lies within the grid boundaries.
func (g *Grid) InBounds(p Position) bool {
	return g != nil && p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the block at p, or ok=false when p is out of bounds.
func (g *Grid) At(p Position) (Block, bool) {
	if !g.InBounds(p) {
		return Block{}, false
	}
	return g.Blocks[p.Y][p.X], true
}

// TypeAt returns the block type at p, or ok=false when p is out of bounds.
func (g *Grid) TypeAt(p Position) (BlockType, bool) {
	b, ok := g.At(p)
	return b.Type, ok
}

// Is reports whether p is in bounds and holds type t.
func (g *Grid) Is(p Position, t BlockType) bool {
	got, ok := g.TypeAt(p)
	return ok && got == t
}

// IsPassable reports whether p is in bounds and walkable.
func (g *Grid) IsPassable(p Position) bool {
	got, ok := g.TypeAt(p)
	return ok && got.Passable()
}

// Set overwrites the type at p. It returns false, leaving the grid
// untouched, when p is out of bounds.
func (g *Grid) Set(p Position, t BlockType) bool {
	if !g.InBounds(p) {
		return false
	}
	g.Blocks[p.Y][p.X].Type = t
	return true
}

// Index maps p to a row-major index: y*Width + x.
func (g *Grid) Index(p Position) int {
	return p.Y*g.Width + p.X
}

// Coordinate converts a row-major index back to a position.
func (g *Grid) Coordinate(idx int) Position {
	return Position{X: idx % g.Width, Y: idx / g.Width}
}

// Count returns the number of cells whose type is any of types.
func (g *Grid) Count(types ...BlockType) int {
	if g.IsEmpty() {
		return 0
	}
	n := 0
	for _, row := range g.Blocks {
		for _, b := range row {
			for _, t := range types {
				if b.Type == t {
					n++
					break
				}
			}
		}
	}
	return n
}

// PassableNeighbors counts the orthogonal neighbors of p that are walkable.
func (g *Grid) PassableNeighbors(p Position) int {
	n := 0
	for _, d := range Offsets(Conn4) {
		if g.IsPassable(p.Add(d)) {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	if g.IsEmpty() {
		return &Grid{}
	}
	rows := make([][]Block, g.Height)
	for y := range g.Blocks {
		rows[y] = make([]Block, g.Width)
		copy(rows[y], g.Blocks[y])
	}
	return &Grid{Width: g.Width, Height: g.Height, Blocks: rows}
}

// Equal reports whether g and o have the same dimensions and cell types.
func (g *Grid) Equal(o *Grid) bool {
	if g.IsEmpty() || o.IsEmpty() {
		return g.IsEmpty() && o.IsEmpty()
	}
	if g.Width != o.Width || g.Height != o.Height {
		return false
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Blocks[y][x].Type != o.Blocks[y][x].Type {
				return false
			}
		}
	}
	return true
}

// Rows returns the text form of g, one string per row.
func (g *Grid) Rows() []string {
	if g.IsEmpty() {
		return nil
	}
	out := make([]string, g.Height)
	var sb strings.Builder
	for y, row := range g.Blocks {
		sb.Reset()
		for _, b := range row {
			sb.WriteRune(b.Type.Symbol())
		}
		out[y] = sb.String()
	}
	return out
}

// String joins Rows with newlines.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

// Parse builds a grid from its text form (see package doc for symbols).
// Returns ErrEmptyGrid, ErrNonRectangular or a wrapped ErrUnknownSymbol.
func Parse(rows ...string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len([]rune(rows[0]))
	g := New(w, len(rows))
	for y, line := range rows {
		runes := []rune(line)
		if len(runes) != w {
			return nil, ErrNonRectangular
		}
		for x, r := range runes {
			t, ok := typeOf(r)
			if !ok {
				return nil, fmt.Errorf("grid: %q at (%d,%d): %w", r, x, y, ErrUnknownSymbol)
			}
			g.Blocks[y][x].Type = t
		}
	}
	return g, nil
}

// MustParse is Parse for fixtures; it panics on malformed input.
func MustParse(rows ...string) *Grid {
	g, err := Parse(rows...)
	if err != nil {
		panic(err)
	}
	return g
}
