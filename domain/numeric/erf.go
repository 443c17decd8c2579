package numeric

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// LnErfc returns ln(erfc(x)), accurate across the full range of x including
// the far right tail where erfc(x) itself underflows to zero in floating
// point. No example or ecosystem package in this module's dependency
// closure exposes a log-scale complementary error function, so this is a
// hand-written piecewise evaluator: the standard library's Erfc (itself a
// rational/continued-fraction approximation) is accurate enough to log
// directly for |x| within a few units of zero, and a classical asymptotic
// expansion takes over once x grows large enough that erfc(x) would
// otherwise underflow before we get to take its logarithm.
func LnErfc[T Float](x T) T {
	xf := float64(x)
	if xf <= erfcAsymptoticThreshold {
		return T(math.Log(math.Erfc(xf)))
	}
	return T(lnErfcAsymptotic(xf))
}

// erfcAsymptoticThreshold is comfortably below the point where math.Erfc
// underflows to exactly zero (~27.3 for float64), leaving headroom so the
// direct branch never takes the log of a flushed-to-zero value.
const erfcAsymptoticThreshold = 6.0

// lnErfcAsymptotic evaluates ln(erfc(x)) for large positive x using the
// standard asymptotic series
//
//	erfc(x) ~ exp(-x^2)/(x*sqrt(pi)) * sum_k (-1)^k (2k-1)!! / (2x^2)^k
//
// which converges rapidly (not absolutely) for the x this is called with.
func lnErfcAsymptotic(x float64) float64 {
	x2 := x * x
	series := 1.0
	doubleFactorial := 1.0
	sign := -1.0
	for k := 1; k <= 10; k++ {
		doubleFactorial *= float64(2*k - 1)
		term := sign * doubleFactorial / math.Pow(2*x2, float64(k))
		series += term
		sign = -sign
		if math.Abs(term) < 1e-17 {
			break
		}
	}
	return -x2 - math.Log(x*math.Sqrt(math.Pi)) + math.Log(series)
}

// NormalCDF computes Phi(x; mu, sigma2), the CDF of a normal distribution
// with mean mu and variance sigma2, evaluated at x, via gonum's distuv
// package rather than a hand-rolled erfc call. sigma2 <= 0 returns 0 or 1
// depending on which side of mu x falls, matching the degenerate
// (zero-variance) limit of a Gaussian, which distuv.Normal rejects outright.
func NormalCDF[T Float](x, mu, sigma2 T) T {
	if sigma2 <= 0 {
		if x >= mu {
			return 1
		}
		return 0
	}
	dist := distuv.Normal{Mu: float64(mu), Sigma: math.Sqrt(float64(sigma2))}
	return T(dist.CDF(float64(x)))
}

// Sqrt2T returns sqrt(2) at working precision T.
func Sqrt2T[T Float]() T {
	return T(math.Sqrt2)
}
