package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLnErfc_MatchesDirectLogErfcNearZero(t *testing.T) {
	cases := []float64{-3, -1, 0, 0.5, 2, 5}
	for _, x := range cases {
		want := math.Log(math.Erfc(x))
		got := float64(LnErfc[float64](x))
		assert.InDeltaf(t, want, got, 1e-9, "x=%v", x)
	}
}

func TestLnErfc_LargeXStaysFinite(t *testing.T) {
	got := LnErfc[float64](40)
	assert.False(t, math.IsInf(float64(got), 0))
	assert.False(t, math.IsNaN(float64(got)))
	// erfc(40) is astronomically small; ln(erfc(40)) should be a large
	// negative number, not -Inf from a premature underflow to zero.
	assert.Less(t, float64(got), -1000.0)
}

func TestNormalCDF_StandardNormalAtZeroIsOneHalf(t *testing.T) {
	got := NormalCDF[float64](0, 0, 1)
	assert.InDelta(t, 0.5, got, 1e-9)
}

func TestNormalCDF_Monotone(t *testing.T) {
	a := NormalCDF[float64](-1, 0, 1)
	b := NormalCDF[float64](0, 0, 1)
	c := NormalCDF[float64](1, 0, 1)
	assert.Less(t, a, b)
	assert.Less(t, b, c)
}

func TestNormalCDF_ZeroVariance(t *testing.T) {
	assert.Equal(t, 1.0, NormalCDF[float64](5, 3, 0))
	assert.Equal(t, 0.0, NormalCDF[float64](1, 3, 0))
}
