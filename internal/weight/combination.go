package weight

import (
	"math"

	"github.com/aivend/judge/internal/catalog"
)

const (
	// MaxCount bounds the per-product count searched in a combination.
	MaxCount = 5
	// MaxComboSize bounds how many distinct products one grasp may mix.
	// Three or more distinct products in a single grasp is both rare and
	// ambiguous to the weight signal, so the search stops at pairs.
	MaxComboSize = 2
)

// ScoredProduct is a catalog product paired with its ensembled vision
// score, the matcher's search unit.
type ScoredProduct struct {
	Product    catalog.Product
	FusedScore float64
}

// ComboItem is one product line of a matched combination.
type ComboItem struct {
	Product    catalog.Product
	FusedScore float64
	Count      int
}

// Combination is a candidate explanation of the observed weight as an
// integer mix of products.
type Combination struct {
	Items      []ComboItem
	Expected   float64 // total expected weight, grams
	ErrorG     float64 // |observed - expected|
	ToleranceG float64 // summed per-item tolerance, grams
	Within     bool    // ErrorG <= ToleranceG
	RankScore  float64 // summed fused scores of the products involved
	Score      float64 // overall tuple score used for ordering
}

// Match searches all combinations of one or two candidate products with
// counts 1..MaxCount for the one that best explains the observed absolute
// weight. The tolerance budget is additive per item: each unit contributes
// its own category tolerance in grams, so a combination of small items
// never inherits a large item's looser bound.
//
// Returns false when no candidate has a known unit weight. The search is
// deliberately brute force: at most TopK*MaxCount + C(TopK,2)*MaxCount^2
// tuples, small enough that determinism beats cleverness.
func Match(candidates []ScoredProduct, observedG float64) (Combination, bool) {
	weighable := make([]ScoredProduct, 0, len(candidates))
	for _, c := range candidates {
		if c.Product.HasKnownWeight() {
			weighable = append(weighable, c)
		}
	}
	if len(weighable) == 0 {
		return Combination{}, false
	}

	var best Combination
	found := false

	consider := func(combo Combination) {
		if !found || better(combo, best) {
			best = combo
			found = true
		}
	}

	// Single-product tuples.
	for _, c := range weighable {
		for count := 1; count <= MaxCount; count++ {
			consider(evaluate([]ComboItem{{Product: c.Product, FusedScore: c.FusedScore, Count: count}}, observedG))
		}
	}

	// Distinct pairs.
	for i := 0; i < len(weighable); i++ {
		for j := i + 1; j < len(weighable); j++ {
			for c1 := 1; c1 <= MaxCount; c1++ {
				for c2 := 1; c2 <= MaxCount; c2++ {
					consider(evaluate([]ComboItem{
						{Product: weighable[i].Product, FusedScore: weighable[i].FusedScore, Count: c1},
						{Product: weighable[j].Product, FusedScore: weighable[j].FusedScore, Count: c2},
					}, observedG))
				}
			}
		}
	}

	return best, found
}

// evaluate scores one (products, counts) tuple against the observed weight.
func evaluate(items []ComboItem, observedG float64) Combination {
	var expected, toleranceG, rankScore float64
	for _, item := range items {
		lineWeight := float64(item.Count) * item.Product.UnitWeight
		expected += lineWeight
		toleranceG += lineWeight * item.Product.Tolerance()
		rankScore += item.FusedScore
	}

	errorG := math.Abs(observedG - expected)
	within := errorG <= toleranceG

	score := rankScore - errorG/math.Max(observedG, 1.0)
	if within {
		score += 10
	}

	return Combination{
		Items:      items,
		Expected:   expected,
		ErrorG:     errorG,
		ToleranceG: toleranceG,
		Within:     within,
		RankScore:  rankScore,
		Score:      score,
	}
}

// better orders combinations: higher score first, then fewer distinct
// products (prefer singleton explanations), then smaller error.
func better(a, b Combination) bool {
	// Degenerate tuples (no expected weight) never win.
	if a.Expected <= 0 {
		return false
	}
	if b.Expected <= 0 {
		return true
	}
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if len(a.Items) != len(b.Items) {
		return len(a.Items) < len(b.Items)
	}
	return a.ErrorG < b.ErrorG
}
