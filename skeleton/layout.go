// Package skeleton lays down the fixed regions of a map and carves the
// initial corridor skeleton on the left half of the grid.
//
// Only the left half (Width/2 columns) is ever built here; the right half
// is produced later by mirroring, so every region below is clipped to the
// half-grid.
package skeleton

import "github.com/katalvlaran/pacmaze/grid"

// Rect is an axis-aligned cell rectangle [X, X+W) × [Y, Y+H).
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p grid.Position) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Layout holds the fixed regions for a full map of the given size.
type Layout struct {
	Width, Height int // full map size
	HalfWidth     int

	GhostHouse Rect          // 2×3 enclosure touching the seam
	Outline    Rect          // one-cell Empty ring around GhostHouse
	StartArea  Rect          // one-row Empty corridor below the outline
	Start      grid.Position // player start cell; odd coordinates
}

// NewLayout computes the fixed regions for a width×height map
// (width even, height odd).
func NewLayout(width, height int) Layout {
	mid := (height - 1) / 2
	gh := Rect{X: width/2 - 2, Y: mid - 3, W: 2, H: 3}
	outline := Rect{X: gh.X - 1, Y: gh.Y - 1, W: gh.W + 2, H: gh.H + 2}

	start := grid.Position{X: gh.X, Y: mid + 1}
	if start.X%2 == 0 {
		start.X++
	}
	if start.Y%2 == 0 {
		start.Y++
	}

	return Layout{
		Width:      width,
		Height:     height,
		HalfWidth:  width / 2,
		GhostHouse: gh,
		Outline:    outline,
		StartArea:  Rect{X: start.X - 2, Y: start.Y, W: gh.W + 3, H: 1},
		Start:      start,
	}
}

// FirstOrigin is where the first builder pool starts: the left end of the
// start corridor.
func (l Layout) FirstOrigin() grid.Position {
	return grid.Position{X: l.Start.X - 2, Y: l.Start.Y}
}

// TypeAt returns the fixed type for p before any carving.
func (l Layout) TypeAt(p grid.Position) grid.BlockType {
	switch {
	case l.GhostHouse.Contains(p):
		return grid.GhostHouse
	case l.Outline.Contains(p), l.StartArea.Contains(p):
		return grid.Empty
	default:
		return grid.Wall
	}
}

// Base returns a fresh half-width grid holding only the fixed regions.
func (l Layout) Base() *grid.Grid {
	g := grid.New(l.HalfWidth, l.Height)
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.HalfWidth; x++ {
			p := grid.Position{X: x, Y: y}
			g.Set(p, l.TypeAt(p))
		}
	}
	return g
}
