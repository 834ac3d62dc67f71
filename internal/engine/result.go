// Package engine fuses vision candidates with the measured weight change
// into a final product judgment.
package engine

// Status classifies the outcome of one judgment.
type Status string

const (
	// StatusComplete - the weight is explained within tolerance by a
	// sufficiently confident candidate combination. Safe to charge.
	StatusComplete Status = "complete"
	// StatusPartial - the best combination explains most of the weight
	// but misses tolerance. Needs confirmation before charging.
	StatusPartial Status = "partial"
	// StatusUncertain - a combination exists but explains the weight
	// poorly.
	StatusUncertain Status = "uncertain"
	// StatusNoDetection - no usable candidates or no meaningful weight
	// change.
	StatusNoDetection Status = "no_detection"
)

// ProductLine is one judged product with its count and pricing.
type ProductLine struct {
	ProductID  int
	Name       string
	Count      int
	UnitPrice  int
	LinePrice  int // Count * UnitPrice
	Confidence float64
}

// WeightInfo is the weight accounting of a judgment.
type WeightInfo struct {
	Delta     float64 // signed grams as received, negative = removal
	Explained float64 // grams accounted for by the chosen combination
	Residual  float64 // | |Delta| - Explained |
}

// Decision is the final judgment returned to the caller. All fields are
// value-only; a decision never carries an error for domain-valid inputs.
type Decision struct {
	ID         string // per-judgment id, carried in logs and events
	Status     Status
	Products   []ProductLine // empty iff StatusNoDetection, ordered by fused score
	TotalPrice int
	Confidence float64
	Weight     WeightInfo
	IsRemoval  bool
	Timestamp  float64 // wall-clock seconds
}

// Success reports whether the decision is actionable for payment.
func (d Decision) Success() bool {
	return d.Status == StatusComplete || d.Status == StatusPartial
}

// ProductCount returns the total number of judged items across all lines.
func (d Decision) ProductCount() int {
	total := 0
	for _, p := range d.Products {
		total += p.Count
	}
	return total
}
