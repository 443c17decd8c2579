package dmdt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lightcurve/domain/timeseries"
)

func TestGrid_Idx(t *testing.T) {
	g := NewGrid(0.0, 10.0, 5)
	loc, i := g.Idx(-1)
	assert.Equal(t, BelowGrid, loc)

	loc, i = g.Idx(10)
	assert.Equal(t, AboveGrid, loc)

	loc, i = g.Idx(3.5)
	require.Equal(t, InGrid, loc)
	assert.Equal(t, 1, i)
}

func TestDmDt_PointsCountsOrderedPairs(t *testing.T) {
	lgdtGrid := NewGrid(-2.0, 2.0, 4)
	dmGrid := NewGrid(-2.0, 2.0, 4)
	engine := New(lgdtGrid, dmGrid)

	ts := timeseries.New([]float64{0, 1, 2}, []float64{0, 0.5, 1}, nil)
	counts := engine.Points(ts)

	total := 0
	for _, c := range counts {
		total += c
	}
	// Every ordered pair with a positive, in-range dt and dm should land
	// in exactly one cell; with 3 points there are 3 ordered pairs.
	assert.LessOrEqual(t, total, 3)
	assert.Greater(t, total, 0)
}

func TestNormalise_AllZeroStaysZero(t *testing.T) {
	out := Normalise([]float64{0, 0, 0})
	assert.Equal(t, []byte{0, 0, 0}, out)
}

func TestNormalise_ScalesToByteRange(t *testing.T) {
	out := Normalise([]float64{0, 5, 10})
	assert.Equal(t, byte(0), out[0])
	assert.Equal(t, byte(255), out[2])
}

func TestWritePNG_ProducesValidHeader(t *testing.T) {
	var buf bytes.Buffer
	err := WritePNG(&buf, []byte{0, 255, 128, 64}, 2, 2)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")))
}
