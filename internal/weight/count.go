// Package weight implements the load-cell side of the judgment pipeline:
// per-product count estimation and bounded multi-product combination
// matching against an observed weight change.
package weight

import (
	"math"

	"github.com/aivend/judge/internal/catalog"
)

// MinDeltaWeightG is the smallest absolute weight change treated as a
// real event. Anything below is load-cell noise and never reaches the
// calculators.
const MinDeltaWeightG = 5.0

// CountEstimate is the most plausible integer count for one product
// given an observed absolute weight.
type CountEstimate struct {
	Count           int
	ExpectedWeight  float64 // Count * unit weight, grams
	ErrorG          float64 // |observed - expected|
	WithinTolerance bool
}

// EstimateCount returns the count that best explains the observed weight
// for a single product, and whether the residual error is inside the
// product's category tolerance.
//
// Products without a known unit weight are ineligible: count 0, never
// within tolerance.
func EstimateCount(p catalog.Product, observedG float64) CountEstimate {
	if !p.HasKnownWeight() {
		return CountEstimate{}
	}

	count := int(math.Round(observedG / p.UnitWeight))
	if count < 1 {
		return CountEstimate{Count: count}
	}

	expected := float64(count) * p.UnitWeight
	errorG := math.Abs(observedG - expected)

	return CountEstimate{
		Count:           count,
		ExpectedWeight:  expected,
		ErrorG:          errorG,
		WithinTolerance: errorG <= expected*p.Tolerance(),
	}
}
