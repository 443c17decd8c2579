// Package dmdt implements the dm-dt density-map engine: a 2-D histogram
// over every ordered pair of observations in a light curve, binned by
// log10(time gap) and magnitude difference.
package dmdt

import "lightcurve/domain/numeric"

// CellLocation classifies where a value falls relative to a Grid.
type CellLocation int

const (
	// BelowGrid means the value is less than the grid's start.
	BelowGrid CellLocation = iota
	// AboveGrid means the value is at or past the grid's end.
	AboveGrid
	// InGrid means the value landed in one of the grid's cells.
	InGrid
)

// Grid is an evenly-spaced 1-D partition of [Start, End) into N cells.
type Grid[T numeric.Float] struct {
	Start, End T
	N          int
	CellSize   T
	Borders    []T
}

// NewGrid builds an N-cell evenly-spaced grid over [start, end).
func NewGrid[T numeric.Float](start, end T, n int) *Grid[T] {
	cellSize := (end - start) / T(n)
	borders := make([]T, n+1)
	for i := 0; i <= n; i++ {
		borders[i] = start + T(i)*cellSize
	}
	return &Grid[T]{Start: start, End: end, N: n, CellSize: cellSize, Borders: borders}
}

// Idx classifies x and, if it falls inside the grid, returns its cell index.
func (g *Grid[T]) Idx(x T) (CellLocation, int) {
	if x < g.Start {
		return BelowGrid, -1
	}
	if x >= g.End {
		return AboveGrid, -1
	}
	idx := int((x - g.Start) / g.CellSize)
	if idx >= g.N {
		idx = g.N - 1
	}
	return InGrid, idx
}
