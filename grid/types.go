package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnknownSymbol indicates an unrecognized cell symbol in text input.
	ErrUnknownSymbol = errors.New("grid: unknown cell symbol")
)

// BlockType classifies a single cell.
type BlockType int

const (
	// Wall is impassable. Every cell starts as Wall.
	Wall BlockType = iota
	// Empty is a walkable corridor cell.
	Empty
	// GhostHouse marks the fixed central enclosure.
	GhostHouse
	// Teleporter is a walkable edge cell paired with its mirror on the far side.
	Teleporter
)

// String returns the lower-case name of the block type.
func (t BlockType) String() string {
	switch t {
	case Wall:
		return "wall"
	case Empty:
		return "empty"
	case GhostHouse:
		return "ghost-house"
	case Teleporter:
		return "teleporter"
	default:
		return fmt.Sprintf("BlockType(%d)", int(t))
	}
}

// Passable reports whether the type can be walked on (Empty or Teleporter).
func (t BlockType) Passable() bool {
	return t == Empty || t == Teleporter
}

// Symbol returns the single-rune text form of t.
func (t BlockType) Symbol() rune {
	switch t {
	case Empty:
		return '.'
	case GhostHouse:
		return 'G'
	case Teleporter:
		return 'T'
	default:
		return '#'
	}
}

// typeOf is the inverse of Symbol.
func typeOf(r rune) (BlockType, bool) {
	switch r {
	case '#':
		return Wall, true
	case '.':
		return Empty, true
	case 'G':
		return GhostHouse, true
	case 'T':
		return Teleporter, true
	}
	return Wall, false
}

// Position is an integer cell coordinate.
type Position struct {
	X, Y int
}

// Add returns p translated by d.
func (p Position) Add(d Direction) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Direction is a unit step. The four cardinal directions are the only
// values used for carving.
type Direction struct {
	X, Y int
}

// Cardinal directions in the canonical draw order: up, right, down, left.
var (
	Up    = Direction{X: 0, Y: -1}
	Right = Direction{X: 1, Y: 0}
	Down  = Direction{X: 0, Y: 1}
	Left  = Direction{X: -1, Y: 0}
)

// Cardinals lists the four carving directions in canonical order.
// Random direction draws index into this order, so it must stay stable.
var Cardinals = [4]Direction{Up, Right, Down, Left}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return Direction{X: -d.X, Y: -d.Y}
}

// IsZero reports whether d is the zero step.
func (d Direction) IsZero() bool {
	return d.X == 0 && d.Y == 0
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

var (
	offsets4 = []Direction{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = []Direction{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Offsets returns the neighbor offsets for c. The slice is shared; do not modify it.
func Offsets(c Connectivity) []Direction {
	if c == Conn8 {
		return offsets8
	}
	return offsets4
}

// Block is a typed cell at a fixed position.
type Block struct {
	Type     BlockType
	Position Position
}
