// Package lcerr defines the closed set of evaluator errors feature
// extraction can fail with. The feature-evaluator contract only ever fails
// in one of four well-known ways, so each gets its own concrete type
// matchable with errors.As instead of a shared code enum.
package lcerr

import "fmt"

// ShortTimeSeriesError reports a time series shorter than an evaluator's
// declared minimum length.
type ShortTimeSeriesError struct {
	Actual, Minimum int
}

func (e *ShortTimeSeriesError) Error() string {
	return fmt.Sprintf("time series too short: have %d points, need at least %d", e.Actual, e.Minimum)
}

// FlatTimeSeriesError reports a time series whose values (or weights) carry
// no usable spread for the statistic being computed — e.g. zero standard
// deviation where a ratio divides by it.
type FlatTimeSeriesError struct{}

func (e *FlatTimeSeriesError) Error() string {
	return "time series has no variation along the required axis"
}

// RequiresWeightsError reports an evaluator that needs per-point weights
// (w = delta^2) but was handed a time series without them.
type RequiresWeightsError struct {
	Feature string
}

func (e *RequiresWeightsError) Error() string {
	return fmt.Sprintf("%s requires weighted observations", e.Feature)
}

// InvalidParameterError reports a caller-supplied evaluator parameter
// outside its valid domain (e.g. a quantile outside (0, 0.5)).
type InvalidParameterError struct {
	Feature, Parameter, Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("%s: parameter %q invalid: %s", e.Feature, e.Parameter, e.Reason)
}
