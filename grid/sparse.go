package grid

import "strings"

// Sparse is a grid of optional cells. A nil entry is an absent cell, which
// consumers must treat as "not a wall" when computing visual adjacency.
type Sparse struct {
	Width, Height int
	Cells         [][]*Block
}

// At returns the block at p. ok is false when p is out of bounds or the
// cell is absent.
func (s *Sparse) At(p Position) (Block, bool) {
	if s == nil || p.X < 0 || p.X >= s.Width || p.Y < 0 || p.Y >= s.Height {
		return Block{}, false
	}
	b := s.Cells[p.Y][p.X]
	if b == nil {
		return Block{}, false
	}
	return *b, true
}

// IsEmpty reports whether the sparse grid has no rows.
func (s *Sparse) IsEmpty() bool {
	return s == nil || s.Width == 0 || s.Height == 0
}

// Count returns how many present cells have type t.
func (s *Sparse) Count(t BlockType) int {
	if s.IsEmpty() {
		return 0
	}
	n := 0
	for _, row := range s.Cells {
		for _, b := range row {
			if b != nil && b.Type == t {
				n++
			}
		}
	}
	return n
}

// Absent returns the number of nil cells.
func (s *Sparse) Absent() int {
	if s.IsEmpty() {
		return 0
	}
	n := 0
	for _, row := range s.Cells {
		for _, b := range row {
			if b == nil {
				n++
			}
		}
	}
	return n
}

// Rows returns the text form with a space for absent cells.
func (s *Sparse) Rows() []string {
	if s.IsEmpty() {
		return nil
	}
	out := make([]string, s.Height)
	var sb strings.Builder
	for y, row := range s.Cells {
		sb.Reset()
		for _, b := range row {
			if b == nil {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteRune(b.Type.Symbol())
		}
		out[y] = sb.String()
	}
	return out
}
