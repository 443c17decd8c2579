package dmdt

import (
	"lightcurve/domain/numeric"
	"lightcurve/domain/timeseries"
)

// DmDt pairs a log10(time-gap) grid with a magnitude-difference grid and
// bins every ordered pair (i<j) of observations into the resulting 2-D
// histogram, either as an integer count (Points) or as a Gaussian-smeared
// weight distributed across the magnitude axis using each pair's combined
// measurement error (Gausses).
type DmDt[T numeric.Float] struct {
	LgDtGrid *Grid[T]
	DmGrid   *Grid[T]
}

// New builds a DmDt engine over the given lgdt and dm grids.
func New[T numeric.Float](lgdt, dm *Grid[T]) *DmDt[T] {
	return &DmDt[T]{LgDtGrid: lgdt, DmGrid: dm}
}

// Shape returns (rows, cols) = (LgDtGrid.N, DmGrid.N).
func (d *DmDt[T]) Shape() (int, int) {
	return d.LgDtGrid.N, d.DmGrid.N
}

// Points computes the hard (integer-count) dm-dt map, row-major with
// LgDtGrid.N rows and DmGrid.N columns. Because t is non-decreasing, the
// inner loop breaks as soon as a pair's lgdt passes the grid's end rather
// than scanning every remaining j.
func (d *DmDt[T]) Points(ts *timeseries.TimeSeries[T]) []int {
	rows, cols := d.Shape()
	counts := make([]int, rows*cols)
	t, m := ts.T.Data(), ts.M.Data()
	n := len(t)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dt := t[j] - t[i]
			if dt <= 0 {
				continue
			}
			lgdt := numeric.Log10(dt)
			loc, row := d.LgDtGrid.Idx(lgdt)
			if loc == BelowGrid {
				continue
			}
			if loc == AboveGrid {
				break
			}
			dm := m[j] - m[i]
			dmLoc, col := d.DmGrid.Idx(dm)
			if dmLoc != InGrid {
				continue
			}
			counts[row*cols+col]++
		}
	}
	return counts
}

// Gausses computes the Gaussian-smeared dm-dt map: each pair contributes,
// within its lgdt row, the probability mass of a Normal(dm, w_i+w_j)
// distribution falling in each magnitude-axis cell, rather than a single
// hard count.
func (d *DmDt[T]) Gausses(ts *timeseries.TimeSeries[T]) []T {
	rows, cols := d.Shape()
	out := make([]T, rows*cols)
	t, m, w := ts.T.Data(), ts.M.Data(), ts.W.Data()
	n := len(t)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dt := t[j] - t[i]
			if dt <= 0 {
				continue
			}
			lgdt := numeric.Log10(dt)
			loc, row := d.LgDtGrid.Idx(lgdt)
			if loc == BelowGrid {
				continue
			}
			if loc == AboveGrid {
				break
			}
			dm := m[j] - m[i]
			dmVar := w[i] + w[j]
			for k := 0; k < cols; k++ {
				lo := numeric.NormalCDF(d.DmGrid.Borders[k], dm, dmVar)
				hi := numeric.NormalCDF(d.DmGrid.Borders[k+1], dm, dmVar)
				out[row*cols+k] += hi - lo
			}
		}
	}
	return out
}

// Normalise rescales a into [0, 255], returning zeros if a's maximum is
// zero. T may be int-backed counts (via NormaliseInts) or a float weight
// map (via Normalise).
func Normalise[T numeric.Float](a []T) []byte {
	var max T
	for _, v := range a {
		if v > max {
			max = v
		}
	}
	out := make([]byte, len(a))
	if max == 0 {
		return out
	}
	scale := T(255) / max
	for i, v := range a {
		scaled := v * scale
		if scaled < 0 {
			scaled = 0
		}
		if scaled > 255 {
			scaled = 255
		}
		out[i] = byte(scaled)
	}
	return out
}

// NormaliseInts rescales an integer count map into [0, 255].
func NormaliseInts(a []int) []byte {
	max := 0
	for _, v := range a {
		if v > max {
			max = v
		}
	}
	out := make([]byte, len(a))
	if max == 0 {
		return out
	}
	scale := 255.0 / float64(max)
	for i, v := range a {
		scaled := float64(v) * scale
		if scaled > 255 {
			scaled = 255
		}
		out[i] = byte(scaled)
	}
	return out
}
